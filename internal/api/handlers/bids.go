package handlers

import (
	"context"
	"net/http"

	"marketplace-bff/internal/models"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BidHandler serves bid placement, the bid lifecycle transitions and reviews.
type BidHandler struct {
	service   services.BidService
	validator *validator.Validate
}

// NewBidHandler creates a new BidHandler.
func NewBidHandler(service services.BidService, validate *validator.Validate) *BidHandler {
	return &BidHandler{service: service, validator: validate}
}

// PlaceBid godoc
// @Summary      Place a bid on a job
// @Description  Contractors only. The job owner cannot bid, and a job that is completed or still a draft takes no bids.
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id   path      string             true "Job ID" Format(uuid)
// @Param        bid  body      dto.PlaceBidRequest true "Bid form"
// @Success      201 {object}  models.Bid
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      403 {object}  map[string]string "Owner cannot bid"
// @Failure      409 {object}  map[string]string "Job takes no bids, or a bid already exists"
// @Failure      422 {object}  map[string]interface{} "Bid form is invalid"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /jobs/{id}/bids [post]
// @Security     BearerAuth
func (h *BidHandler) PlaceBid(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	jobID, ok := uuidParam(c, "id", "job")
	if !ok {
		return
	}
	var req dto.PlaceBidRequest
	if !bindJSON(c, nil, &req) {
		return
	}
	req.JobID = jobID
	req.UserID = userID

	bid, err := h.service.PlaceBid(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to place bid")
		return
	}
	c.JSON(http.StatusCreated, bid)
}

// AcceptBid godoc
// @Summary      Accept a bid
// @Description  Job owner only. The bid must be open.
// @Tags         bids
// @Produce      json
// @Param        id path      string true "Bid ID" Format(uuid)
// @Success      200 {object}  models.Bid
// @Failure      403 {object}  map[string]string "Not the job owner"
// @Failure      409 {object}  map[string]string "Bid is not open"
// @Router       /bids/{id}/accept [post]
// @Security     BearerAuth
func (h *BidHandler) AcceptBid(c *gin.Context) {
	h.transition(c, h.service.AcceptBid, "Failed to accept bid")
}

// RejectBid godoc
// @Summary      Reject a bid
// @Description  Job owner only. Open and accepted bids can be rejected.
// @Tags         bids
// @Produce      json
// @Param        id path      string true "Bid ID" Format(uuid)
// @Success      200 {object}  models.Bid
// @Failure      403 {object}  map[string]string "Not the job owner"
// @Failure      409 {object}  map[string]string "Bid is already rejected or completed"
// @Router       /bids/{id}/reject [post]
// @Security     BearerAuth
func (h *BidHandler) RejectBid(c *gin.Context) {
	h.transition(c, h.service.RejectBid, "Failed to reject bid")
}

// CompleteBid godoc
// @Summary      Finish the work on a bid
// @Description  The contractor of an accepted bid marks the work as done.
// @Tags         bids
// @Produce      json
// @Param        id path      string true "Bid ID" Format(uuid)
// @Success      200 {object}  models.Bid
// @Failure      403 {object}  map[string]string "Not the bidder"
// @Failure      409 {object}  map[string]string "Bid is not accepted"
// @Router       /bids/{id}/complete [post]
// @Security     BearerAuth
func (h *BidHandler) CompleteBid(c *gin.Context) {
	h.transition(c, h.service.CompleteBid, "Failed to complete bid")
}

func (h *BidHandler) transition(c *gin.Context, fn func(context.Context, *dto.BidTransitionRequest) (*models.Bid, error), fallback string) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	bidID, ok := uuidParam(c, "id", "bid")
	if !ok {
		return
	}
	bid, err := fn(c.Request.Context(), &dto.BidTransitionRequest{BidID: bidID, UserID: userID})
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, bid)
}

// CompleteJob godoc
// @Summary      Close a job
// @Description  The owner closes the job once its contractor has completed the bid. The response asks the client to prompt for a review.
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true "Job ID" Format(uuid)
// @Param        request body      dto.CompleteJobRequest true "Completed bid"
// @Success      200 {object}  dto.CompleteJobResponse
// @Failure      403 {object}  map[string]string "Not the job owner"
// @Failure      409 {object}  map[string]string "Bid is not completed"
// @Router       /jobs/{id}/complete [post]
// @Security     BearerAuth
func (h *BidHandler) CompleteJob(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	jobID, ok := uuidParam(c, "id", "job")
	if !ok {
		return
	}
	var req dto.CompleteJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.JobID = jobID
	req.UserID = userID

	resp, err := h.service.CompleteJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to complete job")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitReview godoc
// @Summary      Review the other party of a completed job
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        review body      dto.CreateReviewRequest true "Rating 1 to 5 and comment"
// @Success      201 {object}  models.Review
// @Failure      400 {object}  map[string]string "Invalid input"
// @Failure      409 {object}  map[string]string "Job is not completed"
// @Router       /reviews [post]
// @Security     BearerAuth
func (h *BidHandler) SubmitReview(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if !bindJSON(c, nil, &req) {
		return
	}
	req.ReviewerID = userID

	review, err := h.service.SubmitReview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to submit review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// BidAction godoc
// @Summary      Which bid control to show
// @Description  Derives the bid button for the job screen from the job, the viewer and the relevant bid.
// @Tags         bids
// @Produce      json
// @Param        id     path      string true  "Job ID" Format(uuid)
// @Param        bid_id query     string false "Bid the owner is looking at" Format(uuid)
// @Success      200 {object}  dto.BidActionResponse
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job not found"
// @Router       /jobs/{id}/bid-action [get]
// @Security     BearerAuth
func (h *BidHandler) BidAction(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	jobID, ok := uuidParam(c, "id", "job")
	if !ok {
		return
	}
	req := dto.BidActionRequest{JobID: jobID, UserID: userID}
	if raw := c.Query("bid_id"); raw != "" {
		bidID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bid ID format"})
			return
		}
		req.BidID = &bidID
	}

	resp, err := h.service.BidAction(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to load bid action")
		return
	}
	c.JSON(http.StatusOK, resp)
}
