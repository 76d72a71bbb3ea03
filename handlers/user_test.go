package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"listeden-backend/database"
	"listeden-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile_UsernameCollision(t *testing.T) {
	setupHandlerTest(t)

	alice := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&alice).Error)
	bob := models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&bob).Error)

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPut, models.UpdateProfileRequest{Username: usernamePtr("alice")})
	c.Set("user_id", bob.ID)

	UpdateProfile(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.User
	require.NoError(t, database.DB.First(&stored, "id = ?", bob.ID).Error)
	assert.Equal(t, "bob", stored.Username)
}

func TestUpdateProfile_KeepingOwnUsername(t *testing.T) {
	setupHandlerTest(t)

	alice := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&alice).Error)

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPut, models.UpdateProfileRequest{
		Username:  usernamePtr("alice"),
		FirstName: usernamePtr("Alice"),
	})
	c.Set("user_id", alice.ID)

	UpdateProfile(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, database.DB.First(&stored, "id = ?", alice.ID).Error)
	assert.Equal(t, "Alice", stored.FirstName)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	setupHandlerTest(t)

	alice := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, database.DB.Create(&alice).Error)

	w := httptest.NewRecorder()
	c := jsonContext(t, w, http.MethodPost, RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})

	Register(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
