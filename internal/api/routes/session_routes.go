package routes

import (
	"marketplace-bff/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers login, the session resource, the theme and deep link resolution.
// Login and link resolution are public; the theme is public but personalised when a token is sent.
func RegisterSessionRoutes(
	rg *gin.RouterGroup,
	sessionHandler handlers.SessionHandlerInterface,
	authMiddleware gin.HandlerFunc,
	optionalAuth gin.HandlerFunc,
) {
	rg.POST("/session/login", sessionHandler.Login)
	rg.GET("/theme", optionalAuth, sessionHandler.GetTheme)

	links := rg.Group("/links")
	{
		links.GET("/resolve", sessionHandler.ResolveDeepLink)
		links.GET("/routes", sessionHandler.ListRoutes)
	}

	session := rg.Group("/session")
	session.Use(authMiddleware)
	{
		session.GET("", sessionHandler.GetSession)
		session.POST("/logout", sessionHandler.Logout)
		session.PUT("/view", sessionHandler.SetView)
		session.PUT("/theme", sessionHandler.SetTheme)
		session.GET("/location", sessionHandler.GetLocation)
		session.PUT("/location", sessionHandler.SetLocation)
	}
}
