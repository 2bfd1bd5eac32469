package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lms/backend/models"
)

// CreateEnrollment persists a new enrollment and fails with ErrConflict if
// the (userId, courseId) pair already exists.
func (s *Store) CreateEnrollment(enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}

	var count int64
	if err := s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", enrollment.UserID, enrollment.CourseID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}

	if err := s.db.Create(enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *Store) FindEnrollment(userID, courseID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, "user_id = ? AND course_id = ?", userID, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (s *Store) ListEnrollmentsByUser(userID string) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	if err := s.db.Where("user_id = ?", userID).Order("created_at asc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *Store) SaveEnrollment(enrollment *models.Enrollment) error {
	return s.db.Save(enrollment).Error
}

// MutateEnrollment runs fn against the enrollment for (userID, courseID)
// inside a transaction and persists the result. On postgres the row is
// locked with SELECT ... FOR UPDATE so concurrent mutations of the same
// pair serialize instead of losing updates. fn receives the transaction
// handle for any reads it needs at the same isolation.
func (s *Store) MutateEnrollment(userID, courseID string, fn func(tx *gorm.DB, e *models.Enrollment) error) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&enrollment, "user_id = ? AND course_id = ?", userID, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := fn(tx, &enrollment); err != nil {
			return err
		}
		return tx.Save(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
