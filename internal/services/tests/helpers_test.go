package services_test

import (
	"context"
	"testing"
	"time"

	"marketplace-bff/config"
	"marketplace-bff/internal/mocks"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/storage/memory"
	"marketplace-bff/internal/storage/secure"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type mockGateway = mocks.Gateway

type fixture struct {
	ctx      context.Context
	gw       *mockGateway
	kv       *memory.KV
	sessions *session.Store
	validate *validator.Validate
	rules    config.RulesConfig
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := memory.NewKV()
	box, err := secure.NewBox("services-test")
	require.NoError(t, err)
	gw := &mockGateway{}
	t.Cleanup(func() { gw.AssertExpectations(t) })
	return &fixture{
		ctx:      context.Background(),
		gw:       gw,
		kv:       kv,
		sessions: session.NewStore(kv, secure.NewStore(kv, box), time.Hour),
		validate: validator.New(),
		rules:    config.DefaultRules(),
	}
}

// loginAs seeds the session cache so services do not need to fetch the user.
func (f *fixture) loginAs(t *testing.T, u models.User) {
	t.Helper()
	_, err := f.sessions.Dispatch(f.ctx, u.ID.String(), session.Login{User: u, Tokens: session.Tokens{Access: "tok"}})
	require.NoError(t, err)
}

func clientUser() models.User {
	return models.User{ID: uuid.New(), Name: "Client", Email: "client@example.com", UserTypes: []models.UserType{models.UserTypeClient}}
}

func contractorUser() models.User {
	return models.User{ID: uuid.New(), Name: "Contractor", Email: "pro@example.com", UserTypes: []models.UserType{models.UserTypeContractor}}
}

func openJob(owner uuid.UUID) *models.Job {
	return &models.Job{ID: uuid.New(), UserID: owner, Title: "Paint the fence", Status: models.JobStatusOpen}
}

func ptrTime(t time.Time) *time.Time { return &t }
