package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"lms/backend/models"
)

var validate = validator.New()

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=STUDENT TEACHER"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EnrollInput struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
}

type ProgressInput struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
	ModuleID string `json:"moduleId" validate:"required"`
}

// Check runs struct-tag validation and returns per-field messages, or nil
// when the input is valid.
func Check(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
	} else {
		fields["input"] = err.Error()
	}
	return fields
}

// CourseModules validates the nested quiz structure: every question's
// correctAnswerIndex must index into its own options.
func CourseModules(modules []models.Module) map[string]string {
	fields := make(map[string]string)
	for mi, module := range modules {
		for qi, q := range module.Quiz {
			if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
				fields[fmt.Sprintf("modules[%d].quiz[%d].correctAnswerIndex", mi, qi)] = "out of range for options"
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
