package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseCRUD(t *testing.T) {
	teacher, token := register(t, "Course Teacher", "course-teacher@example.com", "TEACHER")

	course := createCourse(t, token, map[string]interface{}{
		"title":        "Modern Web Development",
		"description":  "Learn modern web apps.",
		"category":     "Development",
		"thumbnailUrl": "https://example.com/thumb.png",
		"modules": []map[string]interface{}{
			{
				"id":      "crud-m1",
				"title":   "Introduction",
				"content": "Welcome...",
				"quiz": []map[string]interface{}{
					{
						"question":           "What is this course about?",
						"options":            []string{"Cooking", "Web development"},
						"correctAnswerIndex": 1,
					},
				},
			},
		},
	})
	courseID := course["id"].(string)
	require.NotEmpty(t, courseID)

	// Instructor identity is copied from the authenticated teacher.
	assert.Equal(t, teacher["id"], course["instructorId"])
	assert.Equal(t, "Course Teacher", course["instructorName"])

	// Catalog contains the new course.
	resp := doRequest(t, "GET", "/api/courses", nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	listed := decodeList(t, resp)
	found := false
	for _, item := range listed {
		if item["id"] == courseID {
			found = true
		}
	}
	assert.True(t, found)

	// Fetch by id.
	resp = doRequest(t, "GET", "/api/courses/"+courseID, nil, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	fetched := decodeBody(t, resp)
	assert.Equal(t, "Modern Web Development", fetched["title"])
	assert.Len(t, fetched["modules"], 1)

	// Partial update: title only, modules untouched.
	resp = doRequest(t, "PUT", "/api/courses/"+courseID, map[string]interface{}{
		"title": "Modern Web Development v2",
	}, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decodeBody(t, resp)
	assert.Equal(t, "Modern Web Development v2", updated["title"])
	assert.Len(t, updated["modules"], 1)

	// Delete, then delete again: both report success.
	for i := 0; i < 2; i++ {
		resp = doRequest(t, "DELETE", "/api/courses/"+courseID, nil, token)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		result := decodeBody(t, resp)
		assert.Equal(t, true, result["success"])
	}

	resp = doRequest(t, "GET", "/api/courses/"+courseID, nil, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreateCourseHonorsClientID(t *testing.T) {
	_, token := register(t, "ID Teacher", "id-teacher@example.com", "TEACHER")

	course := createCourse(t, token, map[string]interface{}{
		"id":    "course-custom-id",
		"title": "Custom ID Course",
	})
	assert.Equal(t, "course-custom-id", course["id"])
}

func TestCreateCourseRejectsInvalidQuiz(t *testing.T) {
	_, token := register(t, "Quiz Teacher", "quiz-teacher@example.com", "TEACHER")

	resp := doRequest(t, "POST", "/api/courses", map[string]interface{}{
		"title": "Broken Quiz",
		"modules": []map[string]interface{}{
			{
				"id":    "bq-m1",
				"title": "Module",
				"quiz": []map[string]interface{}{
					{
						"question":           "Pick one",
						"options":            []string{"a", "b"},
						"correctAnswerIndex": 5,
					},
				},
			},
		},
	}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCourseMutationsRequireTeacherRole(t *testing.T) {
	_, studentToken := register(t, "Sneaky Student", "sneaky@example.com", "STUDENT")

	resp := doRequest(t, "POST", "/api/courses", map[string]interface{}{
		"title": "Not Allowed",
	}, studentToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, "DELETE", "/api/courses/anything", nil, studentToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCoursesRequireAuth(t *testing.T) {
	resp := doRequest(t, "GET", "/api/courses", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
