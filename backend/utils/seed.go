package utils

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/backend/models"
)

// SeedDemoData populates an empty database with the demo accounts and
// courses. It is idempotent: nothing is written if users or courses
// already exist.
func SeedDemoData(db *gorm.DB, logger *log.Logger) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		logger.Println("Seeding demo users...")
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users := []models.User{
			{
				ID:           "s1",
				Name:         "John Student",
				Email:        "student@demo.com",
				PasswordHash: string(hash),
				Role:         models.RoleStudent,
				AvatarURL:    "https://api.dicebear.com/7.x/avataaars/svg?seed=JohnStudent",
			},
			{
				ID:           "t1",
				Name:         "Sarah Tech",
				Email:        "teacher@demo.com",
				PasswordHash: string(hash),
				Role:         models.RoleTeacher,
				AvatarURL:    "https://api.dicebear.com/7.x/avataaars/svg?seed=SarahTech",
			},
		}
		if err := db.Create(&users).Error; err != nil {
			return err
		}
	}

	var courseCount int64
	if err := db.Model(&models.Course{}).Count(&courseCount).Error; err != nil {
		return err
	}
	if courseCount == 0 {
		logger.Println("Seeding demo courses...")
		courses := []models.Course{
			{
				ID:             "c1",
				Title:          "Modern Web Development",
				Description:    "Learn React, TypeScript, and Tailwind CSS to build modern web apps.",
				InstructorID:   "t1",
				InstructorName: "Sarah Tech",
				Category:       "Development",
				ThumbnailURL:   "https://picsum.photos/seed/webdev/400/250",
				Modules: datatypes.JSONSlice[models.Module]{
					{
						ID:      "m1",
						Title:   "Introduction to React",
						Content: "React is a library for building user interfaces...",
						Quiz: []models.QuizQuestion{
							{
								Question:           "What is React mainly used for?",
								Options:            []string{"Building databases", "Building user interfaces", "Managing server logic", "Editing photos"},
								CorrectAnswerIndex: 1,
							},
							{
								Question:           "What are the building blocks of a React application called?",
								Options:            []string{"Blocks", "Elements", "Components", "Modules"},
								CorrectAnswerIndex: 2,
							},
						},
					},
					{
						ID:      "m2",
						Title:   "State and Props",
						Content: "Understanding how data flows in a React application is crucial...",
						Quiz: []models.QuizQuestion{
							{
								Question:           "Are props mutable?",
								Options:            []string{"Yes", "No", "Sometimes", "Only in class components"},
								CorrectAnswerIndex: 1,
							},
						},
					},
				},
			},
			{
				ID:             "c2",
				Title:          "Data Science Fundamentals",
				Description:    "An introduction to Python, Pandas, and data visualization techniques.",
				InstructorID:   "t1",
				InstructorName: "Sarah Tech",
				Category:       "Data Science",
				ThumbnailURL:   "https://picsum.photos/seed/datascience/400/250",
				Modules: datatypes.JSONSlice[models.Module]{
					{
						ID:      "m3",
						Title:   "Python Basics",
						Content: "Variables, loops, and functions in Python...",
						Quiz: []models.QuizQuestion{
							{
								Question:           "Who created Python?",
								Options:            []string{"Elon Musk", "Guido van Rossum", "Mark Zuckerberg", "Bill Gates"},
								CorrectAnswerIndex: 1,
							},
						},
					},
				},
			},
		}
		if err := db.Create(&courses).Error; err != nil {
			return err
		}
	}

	return nil
}
