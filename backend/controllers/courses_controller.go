package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lms/backend/config"
	"lms/backend/models"
	"lms/backend/store"
	"lms/backend/utils"
	"lms/backend/validators"
)

type CoursesController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCoursesController(st *store.Store, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: st, Cfg: cfg}
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Store.ListCourses()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.Store.GetCourse(c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(course)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if course.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if fields := validators.CourseModules(course.Modules); fields != nil {
		return utils.ValidationError(c, fields)
	}

	// Instructor identity is copied at creation time; default to the
	// authenticated teacher when the payload omits it.
	if course.InstructorID == "" {
		if userID, ok := c.Locals("userId").(string); ok {
			course.InstructorID = userID
			if instructor, err := cc.Store.FindUserByID(userID); err == nil {
				course.InstructorName = instructor.Name
			}
		}
	}

	if err := cc.Store.CreateCourse(&course); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return utils.BadRequest(c, "Course ID already in use")
		}
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	var input struct {
		Title          *string          `json:"title"`
		Description    *string          `json:"description"`
		InstructorID   *string          `json:"instructorId"`
		InstructorName *string          `json:"instructorName"`
		Category       *string          `json:"category"`
		ThumbnailURL   *string          `json:"thumbnailUrl"`
		Modules        *[]models.Module `json:"modules"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Modules != nil {
		if fields := validators.CourseModules(*input.Modules); fields != nil {
			return utils.ValidationError(c, fields)
		}
	}

	course, err := cc.Store.UpdateCourse(c.Params("id"), store.CoursePatch{
		Title:          input.Title,
		Description:    input.Description,
		InstructorID:   input.InstructorID,
		InstructorName: input.InstructorName,
		Category:       input.Category,
		ThumbnailURL:   input.ThumbnailURL,
		Modules:        input.Modules,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not update course")
	}

	return c.JSON(course)
}

// DeleteCourse removes the course. Enrollments referencing it are kept;
// deleting an unknown id still reports success.
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	if err := cc.Store.DeleteCourse(c.Params("id")); err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}
	return c.JSON(fiber.Map{"success": true})
}
