// Package mocks holds testify mocks of the service gateways and of the services themselves.
package mocks

import (
	"context"

	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Gateway mocks every gateway interface so one value can be passed to any service.
type Gateway struct {
	mock.Mock
}

var (
	_ services.UserGateway         = (*Gateway)(nil)
	_ services.JobGateway          = (*Gateway)(nil)
	_ services.BidGateway          = (*Gateway)(nil)
	_ services.SearchGateway       = (*Gateway)(nil)
	_ services.GeoGateway          = (*Gateway)(nil)
	_ services.NotificationGateway = (*Gateway)(nil)
)

func ptrResult[T any](args mock.Arguments, i int) *T {
	if v := args.Get(i); v != nil {
		return v.(*T)
	}
	return nil
}

func (m *Gateway) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	return ptrResult[dto.LoginResponse](args, 0), args.Error(1)
}

func (m *Gateway) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	return ptrResult[models.User](args, 0), args.Error(1)
}

func (m *Gateway) UpdateUser(ctx context.Context, id uuid.UUID, input dto.UpdateUserInput) (*models.User, error) {
	args := m.Called(ctx, id, input)
	return ptrResult[models.User](args, 0), args.Error(1)
}

func (m *Gateway) UpdateContractor(ctx context.Context, userID uuid.UUID, input dto.UpdateContractorInput) (*models.Contractor, error) {
	args := m.Called(ctx, userID, input)
	return ptrResult[models.Contractor](args, 0), args.Error(1)
}

func (m *Gateway) Skills(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	skills, _ := args.Get(0).([]models.Skill)
	return skills, args.Error(1)
}

func (m *Gateway) Job(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	return ptrResult[models.Job](args, 0), args.Error(1)
}

func (m *Gateway) CreateJob(ctx context.Context, input dto.JobInput) (*models.Job, error) {
	args := m.Called(ctx, input)
	return ptrResult[models.Job](args, 0), args.Error(1)
}

func (m *Gateway) UpdateJob(ctx context.Context, id uuid.UUID, input dto.JobInput) (*models.Job, error) {
	args := m.Called(ctx, id, input)
	return ptrResult[models.Job](args, 0), args.Error(1)
}

func (m *Gateway) CompleteJob(ctx context.Context, jobID, bidID uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, jobID, bidID)
	return ptrResult[models.Job](args, 0), args.Error(1)
}

func (m *Gateway) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, req)
	return ptrResult[models.Review](args, 0), args.Error(1)
}

func (m *Gateway) PlaceBid(ctx context.Context, input dto.BidInput) (*models.Bid, error) {
	args := m.Called(ctx, input)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *Gateway) Bid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	args := m.Called(ctx, id)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *Gateway) MyBid(ctx context.Context, jobID uuid.UUID) (*models.Bid, error) {
	args := m.Called(ctx, jobID)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *Gateway) AcceptBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	args := m.Called(ctx, id)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *Gateway) RejectBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	args := m.Called(ctx, id)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *Gateway) CompleteBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	args := m.Called(ctx, id)
	return ptrResult[models.Bid](args, 0), args.Error(1)
}

func (m *Gateway) ContractorsByLocation(ctx context.Context, q graphql.LocationQuery) (*models.Page[models.Contractor], error) {
	args := m.Called(ctx, q)
	return ptrResult[models.Page[models.Contractor]](args, 0), args.Error(1)
}

func (m *Gateway) ContractorsByText(ctx context.Context, q graphql.TextQuery) (*models.Page[models.Contractor], error) {
	args := m.Called(ctx, q)
	return ptrResult[models.Page[models.Contractor]](args, 0), args.Error(1)
}

func (m *Gateway) JobsByLocation(ctx context.Context, q graphql.LocationQuery) (*models.Page[models.Job], error) {
	args := m.Called(ctx, q)
	return ptrResult[models.Page[models.Job]](args, 0), args.Error(1)
}

func (m *Gateway) JobsByText(ctx context.Context, q graphql.TextQuery) (*models.Page[models.Job], error) {
	args := m.Called(ctx, q)
	return ptrResult[models.Page[models.Job]](args, 0), args.Error(1)
}

func (m *Gateway) Geocode(ctx context.Context, address string) ([]models.Address, error) {
	args := m.Called(ctx, address)
	addrs, _ := args.Get(0).([]models.Address)
	return addrs, args.Error(1)
}

func (m *Gateway) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Address, error) {
	args := m.Called(ctx, lat, lng)
	return ptrResult[models.Address](args, 0), args.Error(1)
}

func (m *Gateway) Notifications(ctx context.Context, page, pageSize int) (*models.Page[models.Notification], error) {
	args := m.Called(ctx, page, pageSize)
	return ptrResult[models.Page[models.Notification]](args, 0), args.Error(1)
}

func (m *Gateway) MarkNotification(ctx context.Context, id uuid.UUID, read bool) (*models.Notification, error) {
	args := m.Called(ctx, id, read)
	return ptrResult[models.Notification](args, 0), args.Error(1)
}
