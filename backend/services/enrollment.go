package services

import (
	"errors"
	"math"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/backend/models"
	"lms/backend/store"
)

// EnrollmentService owns the two state transitions an enrollment may
// undergo: creation via Enroll and monotonic progress via CompleteModule.
type EnrollmentService struct {
	Store *store.Store

	locks sync.Map // "userId|courseId" -> *sync.Mutex
}

func NewEnrollmentService(st *store.Store) *EnrollmentService {
	return &EnrollmentService{Store: st}
}

func (s *EnrollmentService) pairLock(userID, courseID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID+"|"+courseID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Enroll creates an enrollment for (userID, courseID) with zero progress.
// Both the user and the course must exist. The operation is idempotent: if
// the pair is already enrolled the existing record is returned unchanged.
// The boolean reports whether a new record was created.
func (s *EnrollmentService) Enroll(userID, courseID string) (*models.Enrollment, bool, error) {
	if _, err := s.Store.FindUserByID(userID); err != nil {
		return nil, false, err
	}
	if _, err := s.Store.GetCourse(courseID); err != nil {
		return nil, false, err
	}

	existing, err := s.Store.FindEnrollment(userID, courseID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	enrollment := &models.Enrollment{
		UserID:             userID,
		CourseID:           courseID,
		Progress:           0,
		CompletedModuleIDs: datatypes.JSONSlice[string]{},
	}
	if err := s.Store.CreateEnrollment(enrollment); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost the race to a concurrent enroll; that record wins.
			existing, ferr := s.Store.FindEnrollment(userID, courseID)
			return existing, false, ferr
		}
		return nil, false, err
	}
	return enrollment, true, nil
}

// CompleteModule records moduleID as completed on the enrollment for
// (userID, courseID) and recomputes progress from the course's current
// module count. Re-completing a module is a no-op. If the course has been
// deleted, or has no modules, the membership change still persists and
// progress keeps its previous value.
//
// A per-pair lock plus the store's row lock serialize concurrent calls, so
// the final completed set is the union of everything submitted.
func (s *EnrollmentService) CompleteModule(userID, courseID, moduleID string) (*models.Enrollment, error) {
	mu := s.pairLock(userID, courseID)
	mu.Lock()
	defer mu.Unlock()

	return s.Store.MutateEnrollment(userID, courseID, func(tx *gorm.DB, e *models.Enrollment) error {
		if e.HasCompleted(moduleID) {
			return nil
		}
		e.CompletedModuleIDs = append(e.CompletedModuleIDs, moduleID)

		var course models.Course
		if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if total := len(course.Modules); total > 0 {
			e.Progress = int(math.Round(float64(len(e.CompletedModuleIDs)) / float64(total) * 100))
		}
		return nil
	})
}
