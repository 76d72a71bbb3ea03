package handlers

import (
	"net/http"

	"listeden-backend/database"
	"listeden-backend/models"
	"listeden-backend/services"
	"listeden-backend/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/shoppinglists
func CreateShoppingList(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	var req models.CreateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	svc := &services.ShoppingListService{DB: database.DB}
	list, err := svc.Create(c.Request.Context(), req, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shopping list created", list)
}

// GET /api/shoppinglists
func GetAccessibleShoppingLists(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)

	svc := &services.ShoppingListService{DB: database.DB}
	lists, err := svc.GetAccessible(c.Request.Context(), userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", lists)
}

// GET /api/shoppinglists/:id
func GetShoppingList(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	listID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	svc := &services.ShoppingListService{DB: database.DB}
	list, err := svc.GetByID(c.Request.Context(), listID, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", list)
}

// PUT /api/shoppinglists/:id
func UpdateShoppingList(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	listID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	var req models.UpdateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	svc := &services.ShoppingListService{DB: database.DB}
	list, err := svc.Update(c.Request.Context(), listID, req, userID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shopping list updated", list)
}

// DELETE /api/shoppinglists/:id
func DeleteShoppingList(c *gin.Context) {
	userID := utils.GetCurrentUserID(c)
	listID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shopping list ID")
		return
	}

	svc := &services.ShoppingListService{DB: database.DB}
	if err := svc.Delete(c.Request.Context(), listID, userID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
