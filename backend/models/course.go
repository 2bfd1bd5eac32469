package models

import (
	"time"

	"gorm.io/datatypes"
)

type Course struct {
	ID             string                      `gorm:"primaryKey" json:"id"`
	Title          string                      `gorm:"not null" json:"title"`
	Description    string                      `json:"description"`
	InstructorID   string                      `json:"instructorId"`
	InstructorName string                      `json:"instructorName"`
	Category       string                      `json:"category"`
	ThumbnailURL   string                      `json:"thumbnailUrl"`
	Modules        datatypes.JSONSlice[Module] `json:"modules"` // ordered; stored as a unit

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Module struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Quiz    []QuizQuestion `json:"quiz,omitempty"`
}

type QuizQuestion struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}
