package services

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"lms/backend/models"
	"lms/backend/store"
)

// ErrInvalidCredentials is returned by Login when the email is unknown or
// the password does not match. Callers get no hint which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService resolves credentials to users and registers new accounts.
type AuthService struct {
	Store       *store.Store
	Enrollments *EnrollmentService
	Logger      *log.Logger
}

func NewAuthService(st *store.Store, enrollments *EnrollmentService, logger *log.Logger) *AuthService {
	return &AuthService{Store: st, Enrollments: enrollments, Logger: logger}
}

// Login finds the user for email (case-insensitive) and verifies the
// password against the stored bcrypt hash.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.Store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a new user with a bcrypt-hashed password. Students are
// auto-enrolled into the first catalog course as a convenience; failure of
// that step is logged and never fails the registration.
func (s *AuthService) Register(name, email, password, role string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		AvatarURL:    AvatarURL(name),
	}
	if err := s.Store.CreateUser(user); err != nil {
		return nil, err
	}

	if user.Role == models.RoleStudent {
		s.autoEnroll(user)
	}
	return user, nil
}

func (s *AuthService) autoEnroll(user *models.User) {
	courses, err := s.Store.ListCourses()
	if err != nil {
		s.logf("auto-enroll: could not list courses for user %s: %v", user.ID, err)
		return
	}
	if len(courses) == 0 {
		return
	}
	if _, _, err := s.Enrollments.Enroll(user.ID, courses[0].ID); err != nil {
		s.logf("auto-enroll failed for user %s: %v", user.ID, err)
	}
}

func (s *AuthService) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// AvatarURL builds the default avatar for a display name.
func AvatarURL(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + strings.ReplaceAll(name, " ", "")
}
