package handlers

import (
	"net/http"

	"listeden-backend/database"
	"listeden-backend/models"
	"listeden-backend/services"
	"listeden-backend/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/catalog
func GetCatalogItems(c *gin.Context) {
	svc := &services.ItemService{DB: database.DB}
	items, err := svc.GetAll(c.Request.Context())
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GET /api/catalog/:id
func GetCatalogItem(c *gin.Context) {
	itemID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid item ID")
		return
	}

	svc := &services.ItemService{DB: database.DB}
	item, err := svc.GetByID(c.Request.Context(), itemID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", item)
}

// POST /api/catalog
func CreateCatalogItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	svc := &services.ItemService{DB: database.DB}
	item, err := svc.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Item created", item)
}

// DELETE /api/catalog/:id
func DeleteCatalogItem(c *gin.Context) {
	itemID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid item ID")
		return
	}

	svc := &services.ItemService{DB: database.DB}
	if err := svc.Delete(c.Request.Context(), itemID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
