// Package bidflow derives which bid control a job screen shows from the bid, the job and the viewer.
package bidflow

import (
	"marketplace-bff/internal/models"

	"github.com/google/uuid"
)

// Action is the single bid-related control to render.
type Action string

const (
	ActionHidden           Action = "Hidden"
	ActionShowBidButton    Action = "ShowBidButton"
	ActionShowViewBid      Action = "ShowViewBid"
	ActionShowFinishJob    Action = "ShowFinishJob"
	ActionShowAcceptReject Action = "ShowAcceptReject"
	ActionShowCompleteJob  Action = "ShowCompleteJob"
)

// View is everything the derivation looks at. Bid is the viewer's own bid for a
// contractor, or the bid being inspected for the job owner; nil when there is none.
type View struct {
	Bid    *models.Bid
	Job    models.Job
	Viewer *models.User
}

// CanBid reports whether viewer may place a bid on job at all.
func CanBid(job models.Job, viewer *models.User) bool {
	if viewer == nil || !viewer.HasType(models.UserTypeContractor) {
		return false
	}
	if job.UserID == viewer.ID {
		return false
	}
	if job.IsDraft || job.Status == models.JobStatusDraft || job.Status == models.JobStatusCompleted {
		return false
	}
	return true
}

// IsOwner reports whether viewer posted job.
func IsOwner(job models.Job, viewer *models.User) bool {
	return viewer != nil && viewer.ID != uuid.Nil && job.UserID == viewer.ID
}

// Answerable reports whether the job owner may still answer a bid in status.
// Rejected and completed bids are final.
func Answerable(status models.BidStatus) bool {
	return status != models.BidStatusRejected && status != models.BidStatusCompleted
}

// DeriveBidAction maps bid status, job status and viewer to a control.
func DeriveBidAction(v View) Action {
	if v.Viewer == nil {
		return ActionHidden
	}
	if IsOwner(v.Job, v.Viewer) {
		return ownerAction(v)
	}
	return contractorAction(v)
}

func ownerAction(v View) Action {
	if v.Bid == nil {
		return ActionHidden
	}
	if v.Bid.Status == models.BidStatusCompleted {
		// contractor marked the work done, owner closes the job
		if v.Job.Status == models.JobStatusInProgress {
			return ActionShowCompleteJob
		}
		return ActionHidden
	}
	if Answerable(v.Bid.Status) {
		return ActionShowAcceptReject
	}
	return ActionHidden
}

func contractorAction(v View) Action {
	if v.Bid == nil || v.Bid.Status == models.BidStatusRejected {
		if CanBid(v.Job, v.Viewer) {
			return ActionShowBidButton
		}
		return ActionHidden
	}
	if v.Bid.ContractorID != v.Viewer.ID {
		return ActionHidden
	}
	if v.Bid.Status == models.BidStatusAccepted {
		return ActionShowFinishJob
	}
	return ActionShowViewBid
}
