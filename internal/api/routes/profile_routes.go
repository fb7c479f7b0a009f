package routes

import (
	"marketplace-bff/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the profile screen, its section editors and the skill catalogue.
func RegisterProfileRoutes(
	rg *gin.RouterGroup,
	profileHandler handlers.ProfileHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	profile := rg.Group("/profile")
	profile.Use(authMiddleware)
	{
		profile.GET("", profileHandler.Me)
		profile.PUT("/:section", profileHandler.UpdateSection)
	}

	rg.GET("/skills", authMiddleware, profileHandler.Skills)
}
