package main

import (
	"log"

	"listeden-backend/config"
	"listeden-backend/database"
	"listeden-backend/handlers"
	"listeden-backend/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.Load()

	// Connect to database
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// ==========================================
	// AUTH ROUTES (public)
	// ==========================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		// Users
		api.GET("/users", handlers.GetUsers)
		api.GET("/users/me", handlers.GetProfile)
		api.PUT("/users/me", handlers.UpdateProfile)
		api.PUT("/users/me/fcm-token", handlers.UpdateFCMToken)

		// Shopping lists
		api.POST("/shoppinglists", handlers.CreateShoppingList)
		api.GET("/shoppinglists", handlers.GetAccessibleShoppingLists)
		api.GET("/shoppinglists/:id", handlers.GetShoppingList)
		api.PUT("/shoppinglists/:id", handlers.UpdateShoppingList)
		api.DELETE("/shoppinglists/:id", handlers.DeleteShoppingList)

		// List items
		api.GET("/shoppinglists/:id/items", handlers.GetListItems)
		api.POST("/shoppinglists/:id/items", handlers.AddListItem)
		api.PUT("/items/:itemId", handlers.UpdateListItem)
		api.DELETE("/items/:itemId", handlers.DeleteListItem)

		// List shares
		api.GET("/shoppinglists/:id/shares", handlers.GetListShares)
		api.POST("/shoppinglists/:id/shares", handlers.CreateListShare)
		api.PUT("/shares/:shareId", handlers.UpdateListShare)
		api.DELETE("/shares/:shareId", handlers.DeleteListShare)

		// Invitations
		api.GET("/invitations/pending", handlers.GetPendingInvitations)
		api.POST("/invitations/send", handlers.SendInvitation)
		api.POST("/invitations/accept/:code", handlers.AcceptInvitation)
		api.POST("/invitations/reject/:code", handlers.RejectInvitation)
		api.DELETE("/invitations/:id", handlers.DeleteInvitation)

		// Product catalog
		api.GET("/catalog", handlers.GetCatalogItems)
		api.GET("/catalog/:id", handlers.GetCatalogItem)
		api.POST("/catalog", handlers.CreateCatalogItem)
		api.DELETE("/catalog/:id", handlers.DeleteCatalogItem)
	}

	// Start server
	port := config.AppConfig.Port
	log.Printf("🚀 %s server starting on port %s", config.AppConfig.AppName, port)

	addr := "0.0.0.0:" + port
	log.Printf("🚀 Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
