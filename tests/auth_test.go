package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	user, token := register(t, "New User", "newuser@example.com", "STUDENT")

	assert.NotEmpty(t, token)
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "New User", user["name"])
	assert.Equal(t, "newuser@example.com", user["email"])
	assert.Equal(t, "STUDENT", user["role"])
	assert.Contains(t, user["avatarUrl"], "seed=NewUser")

	// The credential never leaves the server.
	_, leaked := user["password"]
	assert.False(t, leaked)
	_, leaked = user["passwordHash"]
	assert.False(t, leaked)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	register(t, "First", "Dup@Example.com", "TEACHER")

	resp := doRequest(t, "POST", "/api/auth/register", map[string]string{
		"name":     "Second",
		"email":    "dup@example.com",
		"password": "password",
		"role":     "TEACHER",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "User already exists", result["message"])
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	resp := doRequest(t, "POST", "/api/auth/register", map[string]string{
		"name":     "No Role",
		"email":    "norole@example.com",
		"password": "password",
		"role":     "ADMIN",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	register(t, "Login User", "login@example.com", "STUDENT")

	resp := doRequest(t, "POST", "/api/auth/login", map[string]string{
		"email":    "LOGIN@example.com",
		"password": "password",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.NotEmpty(t, result["token"])
	assert.Equal(t, "login@example.com", result["user"].(map[string]interface{})["email"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	register(t, "Secure User", "secure@example.com", "STUDENT")

	resp := doRequest(t, "POST", "/api/auth/login", map[string]string{
		"email":    "secure@example.com",
		"password": "not-the-password",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, "POST", "/api/auth/login", map[string]string{
		"email":    "unknown@example.com",
		"password": "password",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	user, token := register(t, "Profile User", "profile@example.com", "STUDENT")
	register(t, "Taken", "taken@example.com", "STUDENT")

	resp := doRequest(t, "PUT", "/api/users/"+user["id"].(string), map[string]string{
		"name": "Renamed User",
	}, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated := decodeBody(t, resp)
	assert.Equal(t, "Renamed User", updated["name"])
	assert.Equal(t, "profile@example.com", updated["email"])

	// Email collision with another account.
	resp = doRequest(t, "PUT", "/api/users/"+user["id"].(string), map[string]string{
		"email": "Taken@Example.com",
	}, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Unknown user id.
	resp = doRequest(t, "PUT", "/api/users/missing", map[string]string{
		"name": "Ghost",
	}, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	resp := doRequest(t, "PUT", "/api/users/whoever", map[string]string{"name": "x"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
