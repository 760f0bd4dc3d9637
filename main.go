package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Yogeshjindal/RestaurantApplication/config"
	"github.com/Yogeshjindal/RestaurantApplication/notify"
	"github.com/Yogeshjindal/RestaurantApplication/realtime"
	"github.com/Yogeshjindal/RestaurantApplication/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	config.InitDB()

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// Credentialed CORS for the browser frontend
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", config.FrontendURL)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Reservation API",
			"version": "1.0.0",
		})
	})

	// Live dashboard channel + best-effort status-change notifications
	hub := realtime.NewHub(config.FrontendURL)
	notifier := notify.NewDispatcher(notify.MailerFromConfig(config.SMTP()), hub, 2)
	defer notifier.Shutdown()

	// Register all routes
	routes.SetupRoutes(r, notifier, hub)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
