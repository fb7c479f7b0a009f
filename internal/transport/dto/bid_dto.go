package dto

import (
	"time"

	"github.com/google/uuid"
)

// BidForm is the bid placement dialog input.
type BidForm struct {
	Quote             float64    `json:"quote"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	Proposal          string     `json:"proposal"`
	AgreementAccepted bool       `json:"agreementAccepted"`
	// ScrolledToEnd is set when the user scrolled the agreement text to the bottom.
	ScrolledToEnd bool `json:"scrolledToEnd"`
}

// PlaceBidRequest is used internally by the PlaceBid service method.
type PlaceBidRequest struct {
	JobID  uuid.UUID `json:"-"` // From path
	UserID uuid.UUID `json:"-"` // Set from user context
	Form   BidForm   `json:"form"`
}

// BidInput is what gets sent to the placeBid mutation.
type BidInput struct {
	JobID             uuid.UUID  `json:"jobId"`
	Quote             float64    `json:"quote"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	Proposal          string     `json:"proposal"`
	AgreementAccepted bool       `json:"agreementAccepted"`
}

// BidTransitionRequest is shared by accept/reject/complete.
type BidTransitionRequest struct {
	BidID  uuid.UUID `json:"-"` // From path
	UserID uuid.UUID `json:"-"` // Set from user context
}

// CompleteJobRequest closes a job whose contractor finished the work.
type CompleteJobRequest struct {
	JobID  uuid.UUID `json:"-"`
	BidID  uuid.UUID `json:"bidId" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// BidActionRequest asks which bid control to show on a job screen.
type BidActionRequest struct {
	JobID  uuid.UUID  `json:"-"`
	BidID  *uuid.UUID `form:"bid_id"` // Owner viewing a specific bid
	UserID uuid.UUID  `json:"-"`
}

// BidActionResponse carries the derived control.
type BidActionResponse struct {
	Action string `json:"action"`
}

// CreateReviewRequest is submitted from the review modal.
type CreateReviewRequest struct {
	JobID      uuid.UUID `json:"jobId" validate:"required"`
	ReviewedID uuid.UUID `json:"reviewedId" validate:"required"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
	Comment    string    `json:"comment" validate:"max=2000"`
	ReviewerID uuid.UUID `json:"-"`
}
