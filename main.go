// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"tampa-blades-api/config"
	"tampa-blades-api/database"
	"tampa-blades-api/jobs"
	"tampa-blades-api/middleware"
	"tampa-blades-api/routes"
	"tampa-blades-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with the initial super admin and sample content
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	emailService := services.NewEmailService(cfg)
	uploadService, err := services.NewUploadService(cfg.UploadsDir)
	if err != nil {
		log.Fatal("Failed to prepare uploads directory:", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "4000" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// CORS and security headers
	router.Use(routes.SetupCORS(cfg.FrontendURL))
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	limiters := routes.SetupRoutes(router, db, cfg, emailService, uploadService)

	// Evict idle rate-limit entries every 10 minutes
	sweepJob := jobs.NewRateLimitSweepJob(10*time.Minute, limiters.Auth, limiters.API, limiters.Upload)
	sweepJob.Start()
	defer sweepJob.Stop()

	// Start server
	log.Printf("Starting Tampa Blades API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
