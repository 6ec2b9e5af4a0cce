package handler_test

import (
	"jetsetgo/model"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(email, password, placeID string) map[string]any {
	return map[string]any{
		"user_name":         "Asha",
		"user_email":        email,
		"user_phone_number": 9876543210,
		"place_id":          placeID,
		"user_idproof":      "http://127.0.0.1:8000/uploads/id.png",
		"user_photo":        "http://127.0.0.1:8000/uploads/me.png",
		"user_password":     password,
		"user_address":      "Lake Road",
	}
}

func TestUserDetailsJoinsLocation(t *testing.T) {
	env := newTestEnv(t)
	stateID, districtID, placeID := env.seedLocation(t)
	userID := env.create(t, "/user", newUser("asha@example.com", "pw1", placeID))

	status, body := env.json(t, http.MethodGet, "/userdetails/"+userID, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	details := decode[map[string]any](t, body)

	assert.Equal(t, userID, details["_id"])
	assert.Equal(t, "Asha", details["user_name"])
	assert.Equal(t, "asha@example.com", details["user_email"])
	assert.EqualValues(t, 9876543210, details["user_phone_number"])
	assert.Equal(t, "Lake Road", details["user_address"])
	assert.Equal(t, placeID, details["place_id"])
	assert.Equal(t, "Munnar", details["place_name"])
	assert.Equal(t, districtID, details["district_id"])
	assert.Equal(t, "Idukki", details["district_name"])
	assert.Equal(t, stateID, details["state_id"])
	assert.Equal(t, "Kerala", details["state_name"])
	assert.NotContains(t, details, "user_password")
}

func TestUserDetailsWithDanglingPlace(t *testing.T) {
	env := newTestEnv(t)
	userID := env.create(t, "/user", newUser("asha@example.com", "pw1", uuid.NewString()))

	status, body := env.json(t, http.MethodGet, "/userdetails/"+userID, nil)
	require.Equal(t, http.StatusOK, status)
	details := decode[map[string]any](t, body)
	assert.Equal(t, "", details["place_name"])
	assert.Equal(t, "", details["state_name"])
}

func TestUserDetailsNotFound(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.json(t, http.MethodGet, "/userdetails/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.json(t, http.MethodGet, "/userdetails/123", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPasswordsAreHashed(t *testing.T) {
	env := newTestEnv(t)
	userID := env.create(t, "/user", newUser("asha@example.com", "pw1", uuid.NewString()))

	var user model.User
	require.NoError(t, env.db.Where("id = ?", userID).First(&user).Error)
	assert.NotEqual(t, "pw1", user.UserPassword)
	assert.NotEmpty(t, user.UserPassword)
}

func TestUpdatePassword(t *testing.T) {
	env := newTestEnv(t)
	userID := env.create(t, "/user", newUser("asha@example.com", "old", uuid.NewString()))

	status, body := env.json(t, http.MethodPost, "/updatepassword/"+userID, map[string]any{"user_password": "new"})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.EqualValues(t, 1, decode[map[string]any](t, body)["matched"])

	status, _ = env.json(t, http.MethodPost, "/login", map[string]any{"email": "asha@example.com", "password": "old"})
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = env.json(t, http.MethodPost, "/login", map[string]any{"email": "asha@example.com", "password": "new"})
	assert.Equal(t, http.StatusOK, status)

	// unknown user still reports success, with nothing matched
	status, body = env.json(t, http.MethodPost, "/updatepassword/"+uuid.NewString(), map[string]any{"user_password": "x"})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, decode[map[string]any](t, body)["matched"])
}

func TestCreateGuideAndAdmin(t *testing.T) {
	env := newTestEnv(t)

	guideID := env.create(t, "/guide", map[string]any{
		"guide_name":         "Ravi",
		"guide_email":        "ravi@example.com",
		"guide_phone_number": 9000000001,
		"guide_status":       "active",
		"guide_password":     "g1",
		"hotel_id":           uuid.NewString(),
	})
	var guide model.Guide
	require.NoError(t, env.db.Where("id = ?", guideID).First(&guide).Error)
	assert.Equal(t, "Ravi", guide.GuideName)
	assert.Equal(t, int64(9000000001), guide.GuidePhoneNumber)
	assert.NotEqual(t, "g1", guide.GuidePassword)

	adminID := env.create(t, "/admin", map[string]any{
		"admin_name":     "root",
		"admin_photo":    "a.png",
		"admin_email":    "root@example.com",
		"admin_password": "secret",
	})
	var admin model.Admin
	require.NoError(t, env.db.Where("id = ?", adminID).First(&admin).Error)
	assert.Equal(t, "root@example.com", admin.AdminEmail)
}
