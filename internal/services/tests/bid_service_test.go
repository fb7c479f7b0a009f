package services_test

import (
	"errors"
	"testing"
	"time"

	"marketplace-bff/internal/bidflow"
	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var bidClock = time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

func setupBidTest(t *testing.T) (*fixture, services.BidService) {
	t.Helper()
	f := newFixture(t)
	svc := services.NewBidServiceWithClock(f.gw, f.gw, f.gw, f.sessions, f.validate, f.rules, func() time.Time { return bidClock })
	return f, svc
}

func validBidForm() dto.BidForm {
	return dto.BidForm{
		Quote:         250,
		StartDate:     ptrTime(bidClock.Add(24 * time.Hour)),
		EndDate:       ptrTime(bidClock.Add(72 * time.Hour)),
		Proposal:      "I have ten years of experience with exactly this.",
		ScrolledToEnd: true,
	}
}

func TestBidService_PlaceBid(t *testing.T) {
	owner := clientUser()
	pro := contractorUser()

	tests := []struct {
		name      string
		viewer    models.User
		job       func() *models.Job
		form      dto.BidForm
		mockSetup func(gw *mockGateway, job *models.Job)
		wantErr   error
	}{
		{
			name:   "Success",
			viewer: pro,
			job:    func() *models.Job { return openJob(owner.ID) },
			form:   validBidForm(),
			mockSetup: func(gw *mockGateway, job *models.Job) {
				gw.On("MyBid", mock.Anything, job.ID).Return(nil, nil).Once()
				gw.On("PlaceBid", mock.Anything, mock.MatchedBy(func(in dto.BidInput) bool {
					return in.JobID == job.ID && in.AgreementAccepted && in.Quote == 250
				})).Return(&models.Bid{ID: uuid.New(), JobID: job.ID, Status: models.BidStatusOpen}, nil).Once()
			},
		},
		{
			name:    "Owner cannot bid",
			viewer:  owner,
			job:     func() *models.Job { return openJob(owner.ID) },
			form:    validBidForm(),
			wantErr: services.ErrForbidden,
		},
		{
			name:   "Completed job",
			viewer: pro,
			job: func() *models.Job {
				j := openJob(owner.ID)
				j.Status = models.JobStatusCompleted
				return j
			},
			form:    validBidForm(),
			wantErr: services.ErrInvalidState,
		},
		{
			name:   "Existing open bid",
			viewer: pro,
			job:    func() *models.Job { return openJob(owner.ID) },
			form:   validBidForm(),
			mockSetup: func(gw *mockGateway, job *models.Job) {
				gw.On("MyBid", mock.Anything, job.ID).Return(&models.Bid{Status: models.BidStatusOpen}, nil).Once()
			},
			wantErr: services.ErrInvalidState,
		},
		{
			name:   "Invalid form",
			viewer: pro,
			job:    func() *models.Job { return openJob(owner.ID) },
			form:   dto.BidForm{Quote: 5, Proposal: "short"},
			mockSetup: func(gw *mockGateway, job *models.Job) {
				gw.On("MyBid", mock.Anything, job.ID).Return(&models.Bid{Status: models.BidStatusRejected}, nil).Once()
			},
			wantErr: services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := setupBidTest(t)
			f.loginAs(t, tt.viewer)
			job := tt.job()
			f.gw.On("Job", mock.Anything, job.ID).Return(job, nil).Once()
			if tt.mockSetup != nil {
				tt.mockSetup(f.gw, job)
			}

			bid, err := svc.PlaceBid(f.ctx, &dto.PlaceBidRequest{JobID: job.ID, UserID: tt.viewer.ID, Form: tt.form})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "Expected error %v, got %v", tt.wantErr, err)
				assert.Nil(t, bid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.BidStatusOpen, bid.Status)
		})
	}
}

func TestBidService_PlaceBidValidationFields(t *testing.T) {
	f, svc := setupBidTest(t)
	pro := contractorUser()
	f.loginAs(t, pro)
	job := openJob(uuid.New())
	f.gw.On("Job", mock.Anything, job.ID).Return(job, nil).Once()
	f.gw.On("MyBid", mock.Anything, job.ID).Return(nil, nil).Once()

	form := validBidForm()
	form.StartDate = ptrTime(bidClock.Add(-48 * time.Hour))
	form.ScrolledToEnd = false

	_, err := svc.PlaceBid(f.ctx, &dto.PlaceBidRequest{JobID: job.ID, UserID: pro.ID, Form: form})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 2)
	assert.Contains(t, verr.Fields, "startDate")
	assert.Contains(t, verr.Fields, "agreement")
}

func TestBidService_AcceptReject(t *testing.T) {
	owner := clientUser()
	pro := contractorUser()

	tests := []struct {
		name    string
		caller  models.User
		status  models.BidStatus
		accept  bool
		wantErr error
	}{
		{name: "Owner accepts open bid", caller: owner, status: models.BidStatusOpen, accept: true},
		{name: "Owner rejects open bid", caller: owner, status: models.BidStatusOpen},
		{name: "Contractor cannot accept", caller: pro, status: models.BidStatusOpen, accept: true, wantErr: services.ErrForbidden},
		{name: "Already accepted", caller: owner, status: models.BidStatusAccepted, accept: true, wantErr: services.ErrInvalidState},
		{name: "Owner rejects accepted bid", caller: owner, status: models.BidStatusAccepted},
		{name: "Rejected cannot be rejected again", caller: owner, status: models.BidStatusRejected, wantErr: services.ErrInvalidState},
		{name: "Completed cannot be rejected", caller: owner, status: models.BidStatusCompleted, wantErr: services.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := setupBidTest(t)
			f.loginAs(t, tt.caller)
			job := openJob(owner.ID)
			bid := &models.Bid{ID: uuid.New(), JobID: job.ID, ContractorID: pro.ID, Status: tt.status}
			f.gw.On("Bid", mock.Anything, bid.ID).Return(bid, nil).Once()
			f.gw.On("Job", mock.Anything, job.ID).Return(job, nil).Once()

			req := &dto.BidTransitionRequest{BidID: bid.ID, UserID: tt.caller.ID}
			var got *models.Bid
			var err error
			if tt.accept {
				if tt.wantErr == nil {
					f.gw.On("AcceptBid", mock.Anything, bid.ID).Return(&models.Bid{ID: bid.ID, Status: models.BidStatusAccepted}, nil).Once()
				}
				got, err = svc.AcceptBid(f.ctx, req)
			} else {
				if tt.wantErr == nil {
					f.gw.On("RejectBid", mock.Anything, bid.ID).Return(&models.Bid{ID: bid.ID, Status: models.BidStatusRejected}, nil).Once()
				}
				got, err = svc.RejectBid(f.ctx, req)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.accept {
				assert.Equal(t, models.BidStatusAccepted, got.Status)
			} else {
				assert.Equal(t, models.BidStatusRejected, got.Status)
			}
		})
	}
}

func TestBidService_CompleteBid(t *testing.T) {
	f, svc := setupBidTest(t)
	pro := contractorUser()
	other := contractorUser()
	f.loginAs(t, pro)
	f.loginAs(t, other)

	accepted := &models.Bid{ID: uuid.New(), ContractorID: pro.ID, Status: models.BidStatusAccepted}
	f.gw.On("Bid", mock.Anything, accepted.ID).Return(accepted, nil).Times(3)
	f.gw.On("CompleteBid", mock.Anything, accepted.ID).Return(&models.Bid{ID: accepted.ID, Status: models.BidStatusCompleted}, nil).Once()

	_, err := svc.CompleteBid(f.ctx, &dto.BidTransitionRequest{BidID: accepted.ID, UserID: other.ID})
	assert.ErrorIs(t, err, services.ErrForbidden)

	got, err := svc.CompleteBid(f.ctx, &dto.BidTransitionRequest{BidID: accepted.ID, UserID: pro.ID})
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusCompleted, got.Status)

	accepted.Status = models.BidStatusCompleted
	_, err = svc.CompleteBid(f.ctx, &dto.BidTransitionRequest{BidID: accepted.ID, UserID: pro.ID})
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestBidService_CompleteJobPromptsReview(t *testing.T) {
	f, svc := setupBidTest(t)
	owner := clientUser()
	f.loginAs(t, owner)

	job := openJob(owner.ID)
	job.Status = models.JobStatusInProgress
	bid := &models.Bid{ID: uuid.New(), JobID: job.ID, Status: models.BidStatusCompleted}
	f.gw.On("Job", mock.Anything, job.ID).Return(job, nil).Once()
	f.gw.On("Bid", mock.Anything, bid.ID).Return(bid, nil).Once()
	f.gw.On("CompleteJob", mock.Anything, job.ID, bid.ID).Return(&models.Job{ID: job.ID, Status: models.JobStatusCompleted}, nil).Once()

	resp, err := svc.CompleteJob(f.ctx, &dto.CompleteJobRequest{JobID: job.ID, BidID: bid.ID, UserID: owner.ID})
	require.NoError(t, err)
	assert.True(t, resp.PromptReview)
	assert.Equal(t, models.JobStatusCompleted, resp.Job.Status)
}

func TestBidService_CompleteJobNeedsCompletedBid(t *testing.T) {
	f, svc := setupBidTest(t)
	owner := clientUser()
	f.loginAs(t, owner)

	job := openJob(owner.ID)
	job.Status = models.JobStatusInProgress
	bid := &models.Bid{ID: uuid.New(), JobID: job.ID, Status: models.BidStatusAccepted}
	f.gw.On("Job", mock.Anything, job.ID).Return(job, nil).Once()
	f.gw.On("Bid", mock.Anything, bid.ID).Return(bid, nil).Once()

	_, err := svc.CompleteJob(f.ctx, &dto.CompleteJobRequest{JobID: job.ID, BidID: bid.ID, UserID: owner.ID})
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestBidService_SubmitReview(t *testing.T) {
	f, svc := setupBidTest(t)
	owner := clientUser()
	pro := contractorUser()
	f.loginAs(t, owner)

	_, err := svc.SubmitReview(f.ctx, &dto.CreateReviewRequest{JobID: uuid.New(), ReviewedID: pro.ID, Rating: 6, ReviewerID: owner.ID})
	require.ErrorIs(t, err, services.ErrValidation)

	job := openJob(owner.ID)
	job.Status = models.JobStatusCompleted
	req := &dto.CreateReviewRequest{JobID: job.ID, ReviewedID: pro.ID, Rating: 5, Comment: "Great", ReviewerID: owner.ID}
	f.gw.On("Job", mock.Anything, job.ID).Return(job, nil).Once()
	f.gw.On("CreateReview", mock.Anything, *req).Return(&models.Review{ID: uuid.New(), Rating: 5}, nil).Once()

	review, err := svc.SubmitReview(f.ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestBidService_BidAction(t *testing.T) {
	owner := clientUser()
	pro := contractorUser()

	tests := []struct {
		name      string
		viewer    models.User
		jobStatus models.JobStatus
		bid       *models.Bid
		want      bidflow.Action
	}{
		{name: "Contractor without bid", viewer: pro, jobStatus: models.JobStatusOpen, want: bidflow.ActionShowBidButton},
		{name: "Contractor with open bid", viewer: pro, jobStatus: models.JobStatusOpen, bid: &models.Bid{ContractorID: pro.ID, Status: models.BidStatusOpen}, want: bidflow.ActionShowViewBid},
		{name: "Contractor with accepted bid", viewer: pro, jobStatus: models.JobStatusInProgress, bid: &models.Bid{ContractorID: pro.ID, Status: models.BidStatusAccepted}, want: bidflow.ActionShowFinishJob},
		{name: "Owner inspecting open bid", viewer: owner, jobStatus: models.JobStatusOpen, bid: &models.Bid{Status: models.BidStatusOpen}, want: bidflow.ActionShowAcceptReject},
		{name: "Owner inspecting completed bid", viewer: owner, jobStatus: models.JobStatusInProgress, bid: &models.Bid{Status: models.BidStatusCompleted}, want: bidflow.ActionShowCompleteJob},
		{name: "Owner without bid", viewer: owner, jobStatus: models.JobStatusOpen, want: bidflow.ActionHidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, svc := setupBidTest(t)
			f.loginAs(t, tt.viewer)
			job := openJob(owner.ID)
			job.Status = tt.jobStatus
			f.gw.On("Job", mock.Anything, job.ID).Return(job, nil).Once()

			req := &dto.BidActionRequest{JobID: job.ID, UserID: tt.viewer.ID}
			if tt.viewer.ID == owner.ID {
				if tt.bid != nil {
					tt.bid.ID = uuid.New()
					tt.bid.JobID = job.ID
					req.BidID = &tt.bid.ID
					f.gw.On("Bid", mock.Anything, tt.bid.ID).Return(tt.bid, nil).Once()
				}
			} else {
				f.gw.On("MyBid", mock.Anything, job.ID).Return(tt.bid, nil).Once()
			}

			resp, err := svc.BidAction(f.ctx, req)
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), resp.Action)
		})
	}
}

func TestBidService_FetchesUserOnCacheMiss(t *testing.T) {
	f, svc := setupBidTest(t)
	pro := contractorUser()
	job := openJob(uuid.New())

	f.gw.On("User", mock.Anything, pro.ID).Return(&pro, nil).Once()
	f.gw.On("Job", mock.Anything, job.ID).Return(nil, graphql.ErrNotFound).Once()

	_, err := svc.BidAction(f.ctx, &dto.BidActionRequest{JobID: job.ID, UserID: pro.ID})
	assert.ErrorIs(t, err, services.ErrNotFound)

	st, err := f.sessions.Load(f.ctx, pro.ID.String())
	require.NoError(t, err)
	require.NotNil(t, st.User)
	assert.Equal(t, pro.ID, st.User.ID)
}
