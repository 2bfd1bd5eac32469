package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lms/backend/config"
	"lms/backend/store"
	"lms/backend/utils"
)

type UserController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewUserController(st *store.Store, cfg *config.Config) *UserController {
	return &UserController{Store: st, Cfg: cfg}
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Applies the provided profile fields; email uniqueness is re-checked excluding the user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		AvatarURL *string `json:"avatarUrl"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := uc.Store.UpdateUser(id, store.UserPatch{
		Name:      input.Name,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		if errors.Is(err, store.ErrConflict) {
			return utils.BadRequest(c, "Email already in use")
		}
		return utils.InternalServerError(c, "Could not update user")
	}

	return c.JSON(user)
}
