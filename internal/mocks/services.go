package mocks

import (
	"context"
	"io"

	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/theme"
	"marketplace-bff/internal/transport/dto"
	"marketplace-bff/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SessionService is a testify mock of services.SessionService.
type SessionService struct{ mock.Mock }

var _ services.SessionService = (*SessionService)(nil)

func (m *SessionService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	return ptrResult[dto.LoginResponse](args, 0), args.Error(1)
}

func (m *SessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *SessionService) Get(ctx context.Context, userID uuid.UUID) (*session.State, error) {
	args := m.Called(ctx, userID)
	return ptrResult[session.State](args, 0), args.Error(1)
}

func (m *SessionService) SetView(ctx context.Context, userID uuid.UUID, req *dto.SetViewRequest) (*session.State, error) {
	args := m.Called(ctx, userID, req)
	return ptrResult[session.State](args, 0), args.Error(1)
}

func (m *SessionService) SetTheme(ctx context.Context, userID uuid.UUID, req *dto.SetThemeRequest) (*theme.Theme, error) {
	args := m.Called(ctx, userID, req)
	return ptrResult[theme.Theme](args, 0), args.Error(1)
}

func (m *SessionService) Theme(ctx context.Context, userID uuid.UUID) (*theme.Theme, error) {
	args := m.Called(ctx, userID)
	return ptrResult[theme.Theme](args, 0), args.Error(1)
}

func (m *SessionService) SetLocation(ctx context.Context, userID uuid.UUID, req *dto.SetLocationRequest) (*dto.SetLocationResponse, error) {
	args := m.Called(ctx, userID, req)
	return ptrResult[dto.SetLocationResponse](args, 0), args.Error(1)
}

func (m *SessionService) Location(ctx context.Context, userID uuid.UUID) (*location.State, error) {
	args := m.Called(ctx, userID)
	return ptrResult[location.State](args, 0), args.Error(1)
}

// WizardService is a testify mock of services.WizardService.
type WizardService struct{ mock.Mock }

var _ services.WizardService = (*WizardService)(nil)

func (m *WizardService) Start(ctx context.Context, userID uuid.UUID, req *dto.StartWizardRequest) (*dto.WizardResponse, error) {
	args := m.Called(ctx, userID, req)
	return ptrResult[dto.WizardResponse](args, 0), args.Error(1)
}

func (m *WizardService) Get(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error) {
	args := m.Called(ctx, userID)
	return ptrResult[dto.WizardResponse](args, 0), args.Error(1)
}

func (m *WizardService) UpdateForm(ctx context.Context, userID uuid.UUID, req *dto.UpdateWizardFormRequest) (*dto.WizardResponse, error) {
	args := m.Called(ctx, userID, req)
	return ptrResult[dto.WizardResponse](args, 0), args.Error(1)
}

func (m *WizardService) Next(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error) {
	args := m.Called(ctx, userID)
	return ptrResult[dto.WizardResponse](args, 0), args.Error(1)
}

func (m *WizardService) Back(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error) {
	args := m.Called(ctx, userID)
	return ptrResult[dto.WizardResponse](args, 0), args.Error(1)
}

func (m *WizardService) Submit(ctx context.Context, userID uuid.UUID) (*dto.SubmitWizardResponse, error) {
	args := m.Called(ctx, userID)
	return ptrResult[dto.SubmitWizardResponse](args, 0), args.Error(1)
}

func (m *WizardService) UploadImage(ctx context.Context, userID uuid.UUID, data io.Reader) (*dto.WizardResponse, error) {
	args := m.Called(ctx, userID, data)
	return ptrResult[dto.WizardResponse](args, 0), args.Error(1)
}

func (m *WizardService) Validate(req *dto.ValidateJobRequest) ([]string, validation.JobFormErrors) {
	args := m.Called(req)
	msgs, _ := args.Get(0).([]string)
	fields, _ := args.Get(1).(validation.JobFormErrors)
	return msgs, fields
}

// BidService is a testify mock of services.BidService.
type BidService struct{ mock.Mock }

var _ services.BidService = (*BidService)(nil)

func (m *BidService) PlaceBid(ctx context.Context, req *dto.PlaceBidRequest) (*models.Bid, error) {
	args := m.Called(ctx, req)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *BidService) AcceptBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error) {
	args := m.Called(ctx, req)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *BidService) RejectBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error) {
	args := m.Called(ctx, req)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *BidService) CompleteBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error) {
	args := m.Called(ctx, req)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *BidService) CompleteJob(ctx context.Context, req *dto.CompleteJobRequest) (*dto.CompleteJobResponse, error) {
	args := m.Called(ctx, req)
	return ptrResult[dto.CompleteJobResponse](args, 0), args.Error(1)
}

func (m *BidService) SubmitReview(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, req)
	return ptrResult[models.Review](args, 0), args.Error(1)
}

func (m *BidService) BidAction(ctx context.Context, req *dto.BidActionRequest) (*dto.BidActionResponse, error) {
	args := m.Called(ctx, req)
	return ptrResult[dto.BidActionResponse](args, 0), args.Error(1)
}

// SearchService is a testify mock of services.SearchService.
type SearchService struct{ mock.Mock }

var _ services.SearchService = (*SearchService)(nil)

func (m *SearchService) Search(ctx context.Context, userID uuid.UUID, kind search.Kind, filters search.Filters) (*dto.SearchResponse, error) {
	args := m.Called(ctx, userID, kind, filters)
	return ptrResult[dto.SearchResponse](args, 0), args.Error(1)
}

func (m *SearchService) Geocode(ctx context.Context, address string) ([]models.Address, error) {
	args := m.Called(ctx, address)
	addrs, _ := args.Get(0).([]models.Address)
	return addrs, args.Error(1)
}

// ProfileService is a testify mock of services.ProfileService.
type ProfileService struct{ mock.Mock }

var _ services.ProfileService = (*ProfileService)(nil)

func (m *ProfileService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	return ptrResult[models.User](args, 0), args.Error(1)
}

func (m *ProfileService) UpdateSection(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, req)
	return ptrResult[dto.ProfileResponse](args, 0), args.Error(1)
}

func (m *ProfileService) Skills(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	skills, _ := args.Get(0).([]models.Skill)
	return skills, args.Error(1)
}

// NotificationService is a testify mock of services.NotificationService.
type NotificationService struct{ mock.Mock }

var _ services.NotificationService = (*NotificationService)(nil)

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, page int) (*models.Page[models.Notification], error) {
	args := m.Called(ctx, userID, page)
	return ptrResult[models.Page[models.Notification]](args, 0), args.Error(1)
}

func (m *NotificationService) Mark(ctx context.Context, userID, id uuid.UUID, req *dto.MarkNotificationRequest) (*models.Notification, error) {
	args := m.Called(ctx, userID, id, req)
	return ptrResult[models.Notification](args, 0), args.Error(1)
}
