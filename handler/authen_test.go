package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, env *testEnv, email, password string) (int, map[string]any) {
	t.Helper()
	status, body := env.json(t, http.MethodPost, "/login", map[string]any{"email": email, "password": password})
	return status, decode[map[string]any](t, body)
}

func TestLoginUser(t *testing.T) {
	env := newTestEnv(t)
	userID := env.create(t, "/user", newUser("asha@example.com", "pw1", uuid.NewString()))

	status, res := login(t, env, "asha@example.com", "pw1")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, res["id"])
	assert.Equal(t, "asha@example.com", res["email"])
	assert.Equal(t, "User", res["login"])
	assert.NotContains(t, res, "status")
}

func TestLoginHotel(t *testing.T) {
	env := newTestEnv(t)
	hotelID := env.create(t, "/hotel", map[string]any{
		"hotel_name":     "Sea Breeze",
		"hotel_email":    "sb@example.com",
		"hotel_address":  "Beach Rd",
		"place_id":       uuid.NewString(),
		"hotel_password": "hpw",
	})

	status, res := login(t, env, "sb@example.com", "hpw")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, hotelID, res["id"])
	assert.Equal(t, "Hotel", res["login"])
	assert.Equal(t, "pending", res["status"])
}

func TestLoginRejectsUnknownCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, "/user", newUser("asha@example.com", "pw1", uuid.NewString()))

	for i := 0; i < 2; i++ {
		status, _ := login(t, env, "asha@example.com", "wrong")
		assert.Equal(t, http.StatusUnauthorized, status)
		status, _ = login(t, env, "nobody@example.com", "pw1")
		assert.Equal(t, http.StatusUnauthorized, status)
	}

	status, _ := env.json(t, http.MethodPost, "/login", map[string]any{"email": "asha@example.com"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDuplicateEmailsAreAllowed(t *testing.T) {
	env := newTestEnv(t)
	first := env.create(t, "/user", newUser("shared@example.com", "one", uuid.NewString()))
	second := env.create(t, "/user", newUser("shared@example.com", "two", uuid.NewString()))
	assert.NotEqual(t, first, second)

	status, res := login(t, env, "shared@example.com", "one")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, first, res["id"])

	status, res = login(t, env, "shared@example.com", "two")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, second, res["id"])
}
