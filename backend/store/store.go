package store

import (
	"errors"

	"gorm.io/gorm"

	"lms/backend/models"
)

var (
	// ErrNotFound is returned when a referenced User, Course or Enrollment
	// does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned on a uniqueness violation (email or
	// enrollment pair).
	ErrConflict = errors.New("record already exists")
)

// Store is the durable keyed storage for Users, Courses and Enrollments.
// It owns id generation and uniqueness enforcement; everything above it
// works in terms of the sentinel errors declared here.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the three entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
	)
}
