package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"marketplace-bff/config"
	"marketplace-bff/internal/bidflow"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/transport/dto"
	"marketplace-bff/internal/validation"

	"github.com/go-playground/validator/v10"
)

type bidService struct {
	bids     BidGateway
	jobs     JobGateway
	users    UserGateway
	sessions SessionStore
	validate *validator.Validate
	rules    config.RulesConfig
	now      func() time.Time
}

// NewBidService creates a new instance of BidService.
func NewBidService(bids BidGateway, jobs JobGateway, users UserGateway, sessions SessionStore, v *validator.Validate, rules config.RulesConfig) BidService {
	return &bidService{
		bids:     bids,
		jobs:     jobs,
		users:    users,
		sessions: sessions,
		validate: v,
		rules:    rules,
		now:      time.Now,
	}
}

// NewBidServiceWithClock is NewBidService with a fixed clock for date checks.
func NewBidServiceWithClock(bids BidGateway, jobs JobGateway, users UserGateway, sessions SessionStore, v *validator.Validate, rules config.RulesConfig, now func() time.Time) BidService {
	s := NewBidService(bids, jobs, users, sessions, v, rules).(*bidService)
	s.now = now
	return s
}

func (s *bidService) PlaceBid(ctx context.Context, req *dto.PlaceBidRequest) (*models.Bid, error) {
	user, _, err := currentUser(ctx, s.sessions, s.users, req.UserID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.Job(ctx, req.JobID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching job")
	}
	if bidflow.IsOwner(*job, user) {
		return nil, fmt.Errorf("%w: you cannot bid on your own job", ErrForbidden)
	}
	if !bidflow.CanBid(*job, user) {
		return nil, fmt.Errorf("%w: job %s is not open for bids", ErrInvalidState, job.ID)
	}

	existing, err := s.bids.MyBid(ctx, job.ID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching existing bid")
	}
	if existing != nil && existing.Status != models.BidStatusRejected {
		return nil, fmt.Errorf("%w: you already have a bid on this job", ErrInvalidState)
	}

	msgs, fieldErrs := validation.ValidateBid(s.rules, req.Form, s.now())
	if len(msgs) > 0 {
		return nil, newValidationError(msgs, fieldErrs.Fields())
	}

	bid, err := s.bids.PlaceBid(ctx, dto.BidInput{
		JobID:             job.ID,
		Quote:             req.Form.Quote,
		StartDate:         req.Form.StartDate,
		EndDate:           req.Form.EndDate,
		Proposal:          req.Form.Proposal,
		AgreementAccepted: validation.AgreementAccepted(req.Form),
	})
	if err != nil {
		return nil, MapGatewayError(err, "placing bid")
	}
	return bid, nil
}

// ownedBid loads a bid and its job and checks the caller posted the job.
func (s *bidService) ownedBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, *models.Job, error) {
	user, _, err := currentUser(ctx, s.sessions, s.users, req.UserID)
	if err != nil {
		return nil, nil, err
	}
	bid, err := s.bids.Bid(ctx, req.BidID)
	if err != nil {
		return nil, nil, MapGatewayError(err, "fetching bid")
	}
	job, err := s.jobs.Job(ctx, bid.JobID)
	if err != nil {
		return nil, nil, MapGatewayError(err, "fetching job")
	}
	if !bidflow.IsOwner(*job, user) {
		return nil, nil, fmt.Errorf("%w: only the job owner can answer bids", ErrForbidden)
	}
	return bid, job, nil
}

func (s *bidService) AcceptBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error) {
	bid, _, err := s.ownedBid(ctx, req)
	if err != nil {
		return nil, err
	}
	if bid.Status != models.BidStatusOpen {
		return nil, fmt.Errorf("%w: bid is %s", ErrInvalidState, bid.Status)
	}
	accepted, err := s.bids.AcceptBid(ctx, bid.ID)
	if err != nil {
		return nil, MapGatewayError(err, "accepting bid")
	}
	return accepted, nil
}

func (s *bidService) RejectBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error) {
	bid, _, err := s.ownedBid(ctx, req)
	if err != nil {
		return nil, err
	}
	// an accepted bid can still be withdrawn by the owner
	if !bidflow.Answerable(bid.Status) {
		return nil, fmt.Errorf("%w: bid is %s", ErrInvalidState, bid.Status)
	}
	rejected, err := s.bids.RejectBid(ctx, bid.ID)
	if err != nil {
		return nil, MapGatewayError(err, "rejecting bid")
	}
	return rejected, nil
}

func (s *bidService) CompleteBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error) {
	user, _, err := currentUser(ctx, s.sessions, s.users, req.UserID)
	if err != nil {
		return nil, err
	}
	bid, err := s.bids.Bid(ctx, req.BidID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching bid")
	}
	if bid.ContractorID != user.ID {
		return nil, fmt.Errorf("%w: only the contractor who placed the bid can finish it", ErrForbidden)
	}
	if bid.Status != models.BidStatusAccepted {
		return nil, fmt.Errorf("%w: bid is %s", ErrInvalidState, bid.Status)
	}
	completed, err := s.bids.CompleteBid(ctx, bid.ID)
	if err != nil {
		return nil, MapGatewayError(err, "completing bid")
	}
	return completed, nil
}

func (s *bidService) CompleteJob(ctx context.Context, req *dto.CompleteJobRequest) (*dto.CompleteJobResponse, error) {
	user, _, err := currentUser(ctx, s.sessions, s.users, req.UserID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Job(ctx, req.JobID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching job")
	}
	if !bidflow.IsOwner(*job, user) {
		return nil, fmt.Errorf("%w: only the job owner can complete the job", ErrForbidden)
	}
	bid, err := s.bids.Bid(ctx, req.BidID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching bid")
	}
	if bid.JobID != job.ID {
		return nil, fmt.Errorf("%w: bid does not belong to job", ErrInvalidState)
	}
	if bidflow.DeriveBidAction(bidflow.View{Bid: bid, Job: *job, Viewer: user}) != bidflow.ActionShowCompleteJob {
		return nil, fmt.Errorf("%w: job is %s and bid is %s", ErrInvalidState, job.Status, bid.Status)
	}

	completed, err := s.jobs.CompleteJob(ctx, job.ID, bid.ID)
	if err != nil {
		return nil, MapGatewayError(err, "completing job")
	}
	return &dto.CompleteJobResponse{Job: completed, PromptReview: true}, nil
}

func (s *bidService) SubmitReview(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := validation.FormatValidationErrors(verrs)
			return nil, newValidationError(sortedMessages(fields), singleFields(fields))
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, _, err := currentUser(ctx, s.sessions, s.users, req.ReviewerID)
	if err != nil {
		return nil, err
	}
	if req.ReviewedID == user.ID {
		return nil, fmt.Errorf("%w: you cannot review yourself", ErrForbidden)
	}
	job, err := s.jobs.Job(ctx, req.JobID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching job")
	}
	if job.Status != models.JobStatusCompleted {
		return nil, fmt.Errorf("%w: reviews open once the job is completed", ErrInvalidState)
	}

	review, err := s.jobs.CreateReview(ctx, *req)
	if err != nil {
		return nil, MapGatewayError(err, "creating review")
	}
	log.Printf("BidService: review left on job %s by %s", job.ID, user.ID)
	return review, nil
}

func (s *bidService) BidAction(ctx context.Context, req *dto.BidActionRequest) (*dto.BidActionResponse, error) {
	user, _, err := currentUser(ctx, s.sessions, s.users, req.UserID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.Job(ctx, req.JobID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching job")
	}

	var bid *models.Bid
	if bidflow.IsOwner(*job, user) {
		if req.BidID != nil {
			bid, err = s.bids.Bid(ctx, *req.BidID)
			if err != nil {
				return nil, MapGatewayError(err, "fetching bid")
			}
			if bid.JobID != job.ID {
				return nil, fmt.Errorf("%w: bid does not belong to job", ErrInvalidState)
			}
		}
	} else if user.HasType(models.UserTypeContractor) {
		bid, err = s.bids.MyBid(ctx, job.ID)
		if err != nil {
			return nil, MapGatewayError(err, "fetching bid")
		}
	}

	action := bidflow.DeriveBidAction(bidflow.View{Bid: bid, Job: *job, Viewer: user})
	return &dto.BidActionResponse{Action: string(action)}, nil
}
