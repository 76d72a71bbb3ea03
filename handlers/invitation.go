package handlers

import (
	"net/http"

	"listeden-backend/database"
	"listeden-backend/models"
	"listeden-backend/services"
	"listeden-backend/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/invitations/pending
func GetPendingInvitations(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	svc := &services.InvitationService{DB: database.DB}
	invitations, err := svc.PendingForUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", invitations)
}

// POST /api/invitations/send
func SendInvitation(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	listID, err := utils.ParseUUID(req.ShoppingListID)
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	// Default permission level is EDITOR.
	level := req.PermissionLevel
	if level == "" {
		level = models.PermissionEditor
	}

	svc := &services.InvitationService{DB: database.DB}
	invitation, err := svc.Send(c.Request.Context(), listID, req.RecipientEmail, userID, level)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	var sender models.User
	var list models.ShoppingList
	if database.DB.First(&sender, "id = ?", userID).Error == nil &&
		database.DB.First(&list, "id = ?", listID).Error == nil {
		go services.GetNotificationService().NotifyInvitation(*invitation, sender, list.Name)
	}

	utils.SuccessResponse(c, http.StatusCreated, "Invitation sent", invitation)
}

// POST /api/invitations/accept/:code
func AcceptInvitation(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	code := c.Param("code")

	svc := &services.InvitationService{DB: database.DB}
	invitation, err := svc.Accept(c.Request.Context(), code, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation accepted", invitation)
}

// POST /api/invitations/reject/:code
func RejectInvitation(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	code := c.Param("code")

	svc := &services.InvitationService{DB: database.DB}
	invitation, err := svc.Reject(c.Request.Context(), code, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation rejected", invitation)
}

// DELETE /api/invitations/:id
func DeleteInvitation(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	invitationID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invitation ID")
		return
	}

	svc := &services.InvitationService{DB: database.DB}
	if err := svc.Delete(c.Request.Context(), invitationID, userID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
