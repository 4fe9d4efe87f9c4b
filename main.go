package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-management-server/config"
	"hotel-management-server/database"
	"hotel-management-server/jobs"
	"hotel-management-server/middleware"
	"hotel-management-server/models"
	"hotel-management-server/routes"
	ws "hotel-management-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.Load()

	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	if os.Getenv("SEED_DATA") == "true" {
		if err := seedData(); err != nil {
			log.Printf("⚠️ Seeding failed: %v", err)
		}
	}

	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Live feed for the management dashboard
	feedHub := ws.NewHub()
	go feedHub.Run()

	router := setupRouter(feedHub)

	cleanupJob := jobs.NewDraftCleanupJob()
	cleanupJob.Start()
	defer cleanupJob.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// setupRouter builds the full route tree
func setupRouter(feedHub *ws.Hub) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hotel Management Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Auth routes (no authentication required)
	routes.RegisterAuthRoutes(router)

	// Feedback workflow (customers and staff)
	feedback := router.Group("/feedback")
	feedback.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleCustomer),
	)
	routes.RegisterFeedbackRoutes(feedback, feedHub)

	// Management dashboard (staff only)
	management := router.Group("/management")
	management.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.RoleAdmin, models.RoleManager),
	)
	routes.RegisterManagementRoutes(management, feedHub)

	return router
}
