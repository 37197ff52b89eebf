// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tampa-blades-api/config"
	"tampa-blades-api/controllers"
	"tampa-blades-api/middleware"
	"tampa-blades-api/services"
)

// Limiters bundles the per-concern rate limiters so main can hand them to
// the sweep job.
type Limiters struct {
	Auth   *middleware.RateLimiter
	API    *middleware.RateLimiter
	Upload *middleware.RateLimiter
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, uploadService *services.UploadService) *Limiters {
	weatherService := services.NewWeatherService(cfg.OpenWeatherAPIKey)
	placesService := services.NewPlacesService(cfg.GooglePlacesAPIKey)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	eventController := controllers.NewEventController(db, uploadService, emailService)
	spotController := controllers.NewSpotController(db, weatherService, placesService)
	galleryController := controllers.NewGalleryController(db, uploadService)
	messageController := controllers.NewMessageController(db)
	adminController := controllers.NewAdminController(db)
	placesController := controllers.NewPlacesController(placesService)
	weatherController := controllers.NewWeatherController(weatherService)

	limiters := &Limiters{
		Auth:   middleware.NewAuthRateLimiter(),
		API:    middleware.NewAPIRateLimiter(),
		Upload: middleware.NewUploadRateLimiter(),
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Uploaded images
	r.Static("/uploads", uploadService.Dir())

	api := r.Group("/api")
	api.Use(limiters.API.Middleware())

	// Auth routes (public, tighter limit)
	api.POST("/register", limiters.Auth.Middleware(), authController.Register)
	api.POST("/login", limiters.Auth.Middleware(), authController.Login)
	api.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), authController.Me)

	// Events
	events := api.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.POST("", middleware.AuthMiddleware(cfg.JWTSecret), limiters.Upload.Middleware(), eventController.CreateEvent)
		events.GET("/pending", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(), eventController.GetPendingEvents)
		events.POST("/:id/approve", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(), eventController.ApproveEvent)
		events.DELETE("/:id", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(), eventController.DeleteEvent)
	}

	// Skate spots
	spots := api.Group("/skate-spots")
	{
		spots.GET("", spotController.GetSpots)
		spots.GET("/area", spotController.GetSpotsByArea)
		spots.GET("/type/:type", spotController.GetSpotsByType)
		spots.POST("", middleware.AuthMiddleware(cfg.JWTSecret), spotController.CreateSpot)
		spots.POST("/:id/rate", middleware.AuthMiddleware(cfg.JWTSecret), spotController.RateSpot)
		spots.GET("/pending", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(), spotController.GetPendingSpots)
		spots.POST("/:id/approve", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(), spotController.ApproveSpot)
		spots.DELETE("/:id", middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin(), spotController.DeleteSpot)
		spots.GET("/:id/enhanced", spotController.GetEnhancedSpot)
		spots.POST("/:id/reviews", middleware.AuthMiddleware(cfg.JWTSecret), spotController.AddReview)
		spots.GET("/:id/reviews", spotController.GetReviews)
		spots.POST("/:id/photos", middleware.AuthMiddleware(cfg.JWTSecret), limiters.Upload.Middleware(), spotController.AddPhoto)
		spots.GET("/:id/photos", spotController.GetPhotos)
	}

	// Gallery
	gallery := api.Group("/gallery")
	{
		gallery.GET("/photos", galleryController.GetPhotos)
		gallery.POST("/photos", middleware.AuthMiddleware(cfg.JWTSecret), galleryController.PostPhoto)
		gallery.POST("/upload", middleware.AuthMiddleware(cfg.JWTSecret), limiters.Upload.Middleware(), galleryController.UploadImage)
		gallery.GET("/photos/my", middleware.AuthMiddleware(cfg.JWTSecret), galleryController.GetMyPhotos)
		gallery.POST("/photos/:id/like", middleware.AuthMiddleware(cfg.JWTSecret), galleryController.ToggleLike)
		gallery.POST("/photos/:id/comments", middleware.AuthMiddleware(cfg.JWTSecret), galleryController.AddComment)
		gallery.GET("/photos/:id/comments", galleryController.GetComments)
		gallery.DELETE("/photos/:id", middleware.AuthMiddleware(cfg.JWTSecret), galleryController.DeletePhoto)
	}

	// Messages (all authenticated)
	messages := api.Group("/messages")
	messages.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		messages.POST("", messageController.SendMessage)
		messages.GET("", messageController.GetMessages)
		messages.GET("/unread/count", messageController.GetUnreadCount)
		messages.GET("/:userId", messageController.GetConversation)
		messages.PUT("/:id/read", messageController.MarkRead)
	}

	// Super admin console
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireSuperAdmin())
	{
		admin.GET("/users", adminController.GetUsers)
		admin.POST("/users", adminController.CreateUser)
		admin.PUT("/users/:id/role", adminController.UpdateRole)
		admin.DELETE("/users/:id", adminController.DeleteUser)
		admin.GET("/stats", adminController.GetStats)
		admin.GET("/logs", adminController.GetLogs)
	}

	// Third-party proxies
	api.GET("/weather/:lat/:lng", weatherController.GetWeather)
	api.GET("/search-location", placesController.SearchLocation)
	api.GET("/autocomplete", placesController.Autocomplete)
	api.GET("/nearby-places", placesController.GetNearbyPlaces)
	api.POST("/places/nearby", placesController.NearbySearch)

	return limiters
}
