package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/backend/config"
	"lms/backend/controllers"
	"lms/backend/middleware"
	"lms/backend/models"
	"lms/backend/services"
	"lms/backend/store"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	entityStore := store.New(db)
	enrollmentService := services.NewEnrollmentService(entityStore)
	authService := services.NewAuthService(entityStore, enrollmentService, logger)

	// Auth routes
	authController := controllers.NewAuthController(authService, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	teacherMiddleware := middleware.RequireRole(db, cfg, models.RoleTeacher)
	studentMiddleware := middleware.RequireRole(db, cfg, models.RoleStudent)

	// User routes
	userController := controllers.NewUserController(entityStore, cfg)
	app.Put("/api/users/:id", authMiddleware, userController.UpdateProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(entityStore, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Post("/", teacherMiddleware, coursesController.CreateCourse)
	courses.Put("/:id", teacherMiddleware, coursesController.UpdateCourse)
	courses.Delete("/:id", teacherMiddleware, coursesController.DeleteCourse)

	// Enrollment routes
	enrollmentsController := controllers.NewEnrollmentsController(entityStore, enrollmentService, cfg)
	enrollments := app.Group("/api/enrollments", authMiddleware)
	enrollments.Get("/", enrollmentsController.ListEnrollments)
	enrollments.Post("/", studentMiddleware, enrollmentsController.Enroll)
	enrollments.Put("/progress", enrollmentsController.CompleteModule)
}
