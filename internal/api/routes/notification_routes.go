package routes

import (
	"marketplace-bff/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the notification list.
func RegisterNotificationRoutes(
	rg *gin.RouterGroup,
	notificationHandler handlers.NotificationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	notifications := rg.Group("/notifications")
	notifications.Use(authMiddleware)
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("/:id", notificationHandler.Mark)
	}
}
