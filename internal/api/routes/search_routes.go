package routes

import (
	"marketplace-bff/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers the nearby lists and address lookup.
func RegisterSearchRoutes(
	rg *gin.RouterGroup,
	searchHandler handlers.SearchHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	search := rg.Group("/search")
	search.Use(authMiddleware)
	{
		search.POST("/contractors", searchHandler.SearchContractors)
		search.POST("/jobs", searchHandler.SearchJobs)
		search.GET("/geocode", searchHandler.Geocode)
	}
}
