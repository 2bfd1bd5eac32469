package models

import "time"

const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:STUDENT" json:"role"` // STUDENT, TEACHER
	AvatarURL    string `json:"avatarUrl"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
