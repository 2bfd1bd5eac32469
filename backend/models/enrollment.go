package models

import (
	"time"

	"gorm.io/datatypes"
)

// Enrollment links one user to one course. The (UserID, CourseID) pair is
// unique; Progress is derived from CompletedModuleIDs and never set directly.
type Enrollment struct {
	ID                 string                      `gorm:"primaryKey" json:"-"`
	UserID             string                      `gorm:"uniqueIndex:idx_enrollment_pair;not null" json:"userId"`
	CourseID           string                      `gorm:"uniqueIndex:idx_enrollment_pair;not null" json:"courseId"`
	Progress           int                         `gorm:"default:0" json:"progress"` // 0-100
	CompletedModuleIDs datatypes.JSONSlice[string] `json:"completedModuleIds"`        // set semantics, insertion-ordered

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HasCompleted reports whether moduleID is already recorded on the enrollment.
func (e *Enrollment) HasCompleted(moduleID string) bool {
	for _, id := range e.CompletedModuleIDs {
		if id == moduleID {
			return true
		}
	}
	return false
}
