package handlers

import (
	"net/http"

	"listeden-backend/database"
	"listeden-backend/models"
	"listeden-backend/services"
	"listeden-backend/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/shoppinglists/:id/items
func GetListItems(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	listID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	svc := &services.ListItemService{DB: database.DB}
	items, err := svc.ListItems(c.Request.Context(), listID, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// POST /api/shoppinglists/:id/items
func AddListItem(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	listID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	var req models.AddListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	svc := &services.ListItemService{DB: database.DB}
	item, err := svc.AddItem(c.Request.Context(), listID, req, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Item added", item)
}

// PUT /api/items/:itemId
func UpdateListItem(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	itemID, err := utils.ParseUUID(c.Param("itemId"))
	if err != nil {
		utils.BadRequest(c, "Invalid item ID")
		return
	}

	var req models.UpdateListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	svc := &services.ListItemService{DB: database.DB}
	item, err := svc.UpdateItem(c.Request.Context(), itemID, req, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item updated", item)
}

// DELETE /api/items/:itemId
func DeleteListItem(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	itemID, err := utils.ParseUUID(c.Param("itemId"))
	if err != nil {
		utils.BadRequest(c, "Invalid item ID")
		return
	}

	svc := &services.ListItemService{DB: database.DB}
	if err := svc.DeleteItem(c.Request.Context(), itemID, userID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
