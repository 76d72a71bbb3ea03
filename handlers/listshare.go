package handlers

import (
	"context"
	"net/http"

	"listeden-backend/database"
	"listeden-backend/models"
	"listeden-backend/services"
	"listeden-backend/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/shoppinglists/:id/shares
func GetListShares(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	listID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	// The share manager itself has no gate; viewers of the list may see who
	// it is shared with.
	listSvc := &services.ShoppingListService{DB: database.DB}
	if _, err := listSvc.GetByID(c.Request.Context(), listID, userID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	svc := &services.ListShareService{DB: database.DB}
	shares, err := svc.ListForList(c.Request.Context(), listID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", shares)
}

// POST /api/shoppinglists/:id/shares
func CreateListShare(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	listID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	var req models.CreateListShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	targetUserID, err := utils.ParseUUID(req.UserID)
	if err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	svc := &services.ListShareService{DB: database.DB}
	share, err := svc.Create(c.Request.Context(), listID, targetUserID, req.PermissionLevel, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	// Notify the newly shared user, best effort.
	var list models.ShoppingList
	var sharer, target models.User
	if database.DB.First(&list, "id = ?", listID).Error == nil &&
		database.DB.First(&sharer, "id = ?", userID).Error == nil &&
		database.DB.First(&target, "id = ?", targetUserID).Error == nil {
		go services.GetNotificationService().NotifyShareCreated(context.Background(), list, sharer, target, req.PermissionLevel)
	}

	utils.SuccessResponse(c, http.StatusCreated, "List shared", share)
}

// PUT /api/shares/:shareId
func UpdateListShare(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	shareID, err := utils.ParseUUID(c.Param("shareId"))
	if err != nil {
		utils.BadRequest(c, "Invalid share ID")
		return
	}

	var req models.UpdateListShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	svc := &services.ListShareService{DB: database.DB}
	share, err := svc.Update(c.Request.Context(), shareID, req.PermissionLevel, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Share updated", share)
}

// DELETE /api/shares/:shareId
func DeleteListShare(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	shareID, err := utils.ParseUUID(c.Param("shareId"))
	if err != nil {
		utils.BadRequest(c, "Invalid share ID")
		return
	}

	svc := &services.ListShareService{DB: database.DB}
	if err := svc.Delete(c.Request.Context(), shareID, userID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
