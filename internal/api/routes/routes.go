// internal/api/routes/routes.go
package routes

import (
	"log"

	"marketplace-bff/internal/api/handlers"
	"marketplace-bff/internal/api/middleware"
	"marketplace-bff/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	sessionHandler := handlers.NewSessionHandler(app.SessionService, app.Validator)
	wizardHandler := handlers.NewWizardHandler(app.WizardService, app.Validator)
	bidHandler := handlers.NewBidHandler(app.BidService, app.Validator)
	searchHandler := handlers.NewSearchHandler(app.SearchService, app.Validator)
	profileHandler := handlers.NewProfileHandler(app.ProfileService)
	notificationHandler := handlers.NewNotificationHandler(app.NotificationService)

	checks := make(map[string]handlers.Pinger, len(app.HealthChecks))
	for name, ping := range app.HealthChecks {
		checks[name] = ping
	}
	healthHandler := handlers.NewHealthHandler(checks)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	optionalAuth := middleware.OptionalJWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterSessionRoutes(apiV1, sessionHandler, authMiddleware, optionalAuth)
	RegisterWizardRoutes(apiV1, wizardHandler, authMiddleware)
	RegisterBidRoutes(apiV1, bidHandler, authMiddleware)
	RegisterSearchRoutes(apiV1, searchHandler, authMiddleware)
	RegisterProfileRoutes(apiV1, profileHandler, authMiddleware)
	RegisterNotificationRoutes(apiV1, notificationHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", healthHandler.HealthCheck)

	// Locally stored job images; the S3 backend serves its own URLs
	if app.Config.Images.Backend == "local" {
		router.Static("/uploads", app.Config.Images.LocalPath)
	}

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
