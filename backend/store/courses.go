package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/backend/models"
)

// CoursePatch is a partial course update. Nil fields are left untouched;
// a present Modules field replaces the whole nested structure as a unit.
type CoursePatch struct {
	Title          *string
	Description    *string
	InstructorID   *string
	InstructorName *string
	Category       *string
	ThumbnailURL   *string
	Modules        *[]models.Module
}

// CreateCourse persists a course with its full nested module/quiz structure.
// A caller-supplied id is honored, otherwise one is generated.
func (s *Store) CreateCourse(course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if err := s.db.Create(course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *Store) GetCourse(id string) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// ListCourses returns all courses in insertion order.
func (s *Store) ListCourses() ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.db.Order("created_at asc, id asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) UpdateCourse(id string, patch CoursePatch) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.InstructorID != nil {
		course.InstructorID = *patch.InstructorID
	}
	if patch.InstructorName != nil {
		course.InstructorName = *patch.InstructorName
	}
	if patch.Category != nil {
		course.Category = *patch.Category
	}
	if patch.ThumbnailURL != nil {
		course.ThumbnailURL = *patch.ThumbnailURL
	}
	if patch.Modules != nil {
		course.Modules = datatypes.JSONSlice[models.Module](*patch.Modules)
	}

	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course. Deleting a missing course is a no-op;
// enrollments referencing the course are left alone.
func (s *Store) DeleteCourse(id string) error {
	return s.db.Delete(&models.Course{}, "id = ?", id).Error
}
