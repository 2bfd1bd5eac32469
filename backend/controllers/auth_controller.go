package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lms/backend/config"
	"lms/backend/services"
	"lms/backend/store"
	"lms/backend/utils"
	"lms/backend/validators"
)

type AuthController struct {
	Auth *services.AuthService
	Cfg  *config.Config
}

func NewAuthController(auth *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account; students are auto-enrolled into the first catalog course
// @Tags auth
// @Accept json
// @Produce json
// @Param user body validators.RegisterInput true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input validators.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validators.Check(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	user, err := ac.Auth.Register(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return utils.BadRequest(c, "User already exists")
		}
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary User login
// @Description Resolves credentials to a user and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validators.LoginInput true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input validators.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validators.Check(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	user, err := ac.Auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
