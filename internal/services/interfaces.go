package services

import (
	"context"
	"io"

	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/theme"
	"marketplace-bff/internal/transport/dto"
	"marketplace-bff/internal/validation"

	"github.com/google/uuid"
)

// --- Gateways to the marketplace API. *graphql.Client implements all of them. ---

// UserGateway covers account and profile operations.
type UserGateway interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	User(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input dto.UpdateUserInput) (*models.User, error)
	UpdateContractor(ctx context.Context, userID uuid.UUID, input dto.UpdateContractorInput) (*models.Contractor, error)
	Skills(ctx context.Context) ([]models.Skill, error)
}

// JobGateway covers job creation and closing.
type JobGateway interface {
	Job(ctx context.Context, id uuid.UUID) (*models.Job, error)
	CreateJob(ctx context.Context, input dto.JobInput) (*models.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, input dto.JobInput) (*models.Job, error)
	CompleteJob(ctx context.Context, jobID, bidID uuid.UUID) (*models.Job, error)
	CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error)
}

// BidGateway covers bid placement and transitions.
type BidGateway interface {
	PlaceBid(ctx context.Context, input dto.BidInput) (*models.Bid, error)
	Bid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	MyBid(ctx context.Context, jobID uuid.UUID) (*models.Bid, error)
	AcceptBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	RejectBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	CompleteBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
}

// SearchGateway covers the nearby and text list queries.
type SearchGateway interface {
	ContractorsByLocation(ctx context.Context, q graphql.LocationQuery) (*models.Page[models.Contractor], error)
	ContractorsByText(ctx context.Context, q graphql.TextQuery) (*models.Page[models.Contractor], error)
	JobsByLocation(ctx context.Context, q graphql.LocationQuery) (*models.Page[models.Job], error)
	JobsByText(ctx context.Context, q graphql.TextQuery) (*models.Page[models.Job], error)
}

// GeoGateway resolves addresses.
type GeoGateway interface {
	Geocode(ctx context.Context, address string) ([]models.Address, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Address, error)
}

// NotificationGateway lists and marks notifications.
type NotificationGateway interface {
	Notifications(ctx context.Context, page, pageSize int) (*models.Page[models.Notification], error)
	MarkNotification(ctx context.Context, id uuid.UUID, read bool) (*models.Notification, error)
}

var (
	_ UserGateway         = (*graphql.Client)(nil)
	_ JobGateway          = (*graphql.Client)(nil)
	_ BidGateway          = (*graphql.Client)(nil)
	_ SearchGateway       = (*graphql.Client)(nil)
	_ GeoGateway          = (*graphql.Client)(nil)
	_ NotificationGateway = (*graphql.Client)(nil)
)

// SessionStore is implemented by *session.Store.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (session.State, error)
	Dispatch(ctx context.Context, sessionID string, a session.Action) (session.State, error)
}

var _ SessionStore = (*session.Store)(nil)

// --- Services ---

// SessionService handles login, logout and the client preferences kept in the session.
type SessionService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) (*session.State, error)
	SetView(ctx context.Context, userID uuid.UUID, req *dto.SetViewRequest) (*session.State, error)
	SetTheme(ctx context.Context, userID uuid.UUID, req *dto.SetThemeRequest) (*theme.Theme, error)
	Theme(ctx context.Context, userID uuid.UUID) (*theme.Theme, error)
	SetLocation(ctx context.Context, userID uuid.UUID, req *dto.SetLocationRequest) (*dto.SetLocationResponse, error)
	Location(ctx context.Context, userID uuid.UUID) (*location.State, error)
}

// WizardService drives the job posting wizard.
type WizardService interface {
	Start(ctx context.Context, userID uuid.UUID, req *dto.StartWizardRequest) (*dto.WizardResponse, error)
	Get(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error)
	UpdateForm(ctx context.Context, userID uuid.UUID, req *dto.UpdateWizardFormRequest) (*dto.WizardResponse, error)
	Next(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error)
	Back(ctx context.Context, userID uuid.UUID) (*dto.WizardResponse, error)
	Submit(ctx context.Context, userID uuid.UUID) (*dto.SubmitWizardResponse, error)
	UploadImage(ctx context.Context, userID uuid.UUID, data io.Reader) (*dto.WizardResponse, error)
	Validate(req *dto.ValidateJobRequest) ([]string, validation.JobFormErrors)
}

// BidService handles the bid lifecycle.
type BidService interface {
	PlaceBid(ctx context.Context, req *dto.PlaceBidRequest) (*models.Bid, error)
	AcceptBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error)
	RejectBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error)
	CompleteBid(ctx context.Context, req *dto.BidTransitionRequest) (*models.Bid, error)
	CompleteJob(ctx context.Context, req *dto.CompleteJobRequest) (*dto.CompleteJobResponse, error)
	SubmitReview(ctx context.Context, req *dto.CreateReviewRequest) (*models.Review, error)
	BidAction(ctx context.Context, req *dto.BidActionRequest) (*dto.BidActionResponse, error)
}

// SearchService runs the nearby contractor and job lists.
type SearchService interface {
	Search(ctx context.Context, userID uuid.UUID, kind search.Kind, filters search.Filters) (*dto.SearchResponse, error)
	Geocode(ctx context.Context, address string) ([]models.Address, error)
}

// ProfileService edits profile sections.
type ProfileService interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateSection(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Skills(ctx context.Context) ([]models.Skill, error)
}

// NotificationService lists and marks notifications.
type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, page int) (*models.Page[models.Notification], error)
	Mark(ctx context.Context, userID, id uuid.UUID, req *dto.MarkNotificationRequest) (*models.Notification, error)
}
