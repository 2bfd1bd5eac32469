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

type EnrollmentsController struct {
	Store       *store.Store
	Enrollments *services.EnrollmentService
	Cfg         *config.Config
}

func NewEnrollmentsController(st *store.Store, enrollments *services.EnrollmentService, cfg *config.Config) *EnrollmentsController {
	return &EnrollmentsController{Store: st, Enrollments: enrollments, Cfg: cfg}
}

func (ec *EnrollmentsController) ListEnrollments(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return utils.BadRequest(c, "userId required")
	}

	enrollments, err := ec.Store.ListEnrollmentsByUser(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(enrollments)
}

// Enroll creates the enrollment for the (userId, courseId) pair, or returns
// the existing one unchanged. 201 means a new record was written.
func (ec *EnrollmentsController) Enroll(c *fiber.Ctx) error {
	var input validators.EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validators.Check(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	enrollment, created, err := ec.Enrollments.Enroll(input.UserID, input.CourseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User or course not found")
		}
		return utils.InternalServerError(c, "Could not enroll")
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(enrollment)
}

func (ec *EnrollmentsController) CompleteModule(c *fiber.Ctx) error {
	var input validators.ProgressInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if fields := validators.Check(input); fields != nil {
		return utils.ValidationError(c, fields)
	}

	enrollment, err := ec.Enrollments.CompleteModule(input.UserID, input.CourseID, input.ModuleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Enrollment not found")
		}
		return utils.InternalServerError(c, "Could not update progress")
	}

	return c.JSON(enrollment)
}
