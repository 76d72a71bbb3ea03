package handlers

import (
	"errors"
	"net/http"
	"strings"

	"listeden-backend/database"
	"listeden-backend/models"
	"listeden-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/users/me
func GetProfile(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", user.ToResponse())
}

// PUT /api/users/me
func UpdateProfile(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if req.Username != nil && *req.Username != user.Username {
		var existing models.User
		if err := database.DB.Where("username = ?", *req.Username).First(&existing).Error; err == nil {
			utils.BadRequest(c, "Username already taken")
			return
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			var existing models.User
			if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
				utils.BadRequest(c, "Email already registered")
				return
			}
			user.Email = email
		}
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := database.DB.Save(&user).Error; err != nil {
		// A concurrent registration can still win the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.BadRequest(c, "Username or email already taken")
			return
		}
		utils.InternalError(c, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated", user.ToResponse())
}

// PUT /api/users/me/fcm-token
func UpdateFCMToken(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.UpdateFCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	database.DB.Model(&models.User{}).Where("id = ?", userID).Update("fcm_token", req.Token)

	utils.SuccessResponse(c, http.StatusOK, "FCM token updated", nil)
}

// GET /api/users
func GetUsers(c *gin.Context) {
	var users []models.User
	database.DB.Find(&users)

	var responses []models.UserResponse
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}
