package routes

import (
	"marketplace-bff/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBidRoutes registers bid placement, the bid lifecycle and reviews.
// It applies the provided authentication middleware to all of them.
func RegisterBidRoutes(
	rg *gin.RouterGroup,
	bidHandler handlers.BidHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.POST("/:id/bids", bidHandler.PlaceBid)
		jobs.GET("/:id/bid-action", bidHandler.BidAction) // Which bid control to render
		jobs.POST("/:id/complete", bidHandler.CompleteJob)
	}

	bids := rg.Group("/bids")
	bids.Use(authMiddleware)
	{
		bids.POST("/:id/accept", bidHandler.AcceptBid)
		bids.POST("/:id/reject", bidHandler.RejectBid)
		bids.POST("/:id/complete", bidHandler.CompleteBid) // Contractor finished the work
	}

	rg.POST("/reviews", authMiddleware, bidHandler.SubmitReview)
}
