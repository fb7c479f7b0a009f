package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/theme"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	expired, err := generateTestToken(userID, testSecret, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := generateTestToken(userID, "another-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{name: "Missing header", header: "", wantMsg: "Authorization header required"},
		{name: "Wrong scheme", header: "Token abc", wantMsg: "Invalid Authorization header format"},
		{name: "Expired", header: "Bearer " + expired, wantMsg: "Token has expired"},
		{name: "Wrong key", header: "Bearer " + wrongKey, wantMsg: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.wantMsg, decode(t, w)["error"])
		})
	}
}

func TestAuthMiddleware_ForwardsToken(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)

	api.sessions.On("Get", mock.MatchedBy(func(ctx context.Context) bool {
		return graphql.TokenFromContext(ctx) == token
	}), userID).Return(&session.State{View: models.UserViewClient}, nil).Once()

	w := api.do(t, http.MethodGet, "/api/v1/session", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		mockSetup  func(m *testAPI)
		wantStatus int
	}{
		{
			name: "Success",
			body: dto.LoginRequest{Email: "a@example.com", Password: "pw"},
			mockSetup: func(m *testAPI) {
				m.sessions.On("Login", mock.Anything, &dto.LoginRequest{Email: "a@example.com", Password: "pw"}).
					Return(&dto.LoginResponse{AccessToken: "tok"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Invalid email",
			body:       dto.LoginRequest{Email: "nope", Password: "pw"},
			mockSetup:  func(m *testAPI) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Upstream rejects",
			body: dto.LoginRequest{Email: "a@example.com", Password: "bad"},
			mockSetup: func(m *testAPI) {
				m.sessions.On("Login", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: invalid credentials", services.ErrUpstream)).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t)
			tt.mockSetup(api)

			w := api.do(t, http.MethodPost, "/api/v1/session/login", "", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestSetView_ForbiddenForClient(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)
	api.sessions.On("SetView", mock.Anything, userID, &dto.SetViewRequest{View: models.UserViewContractor}).
		Return(nil, fmt.Errorf("%w: user has no contractor profile", services.ErrForbidden)).Once()

	w := api.do(t, http.MethodPut, "/api/v1/session/view", token, dto.SetViewRequest{View: models.UserViewContractor})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetTheme_AnonymousAndLoggedIn(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)
	light, dark := theme.Light, theme.Dark
	api.sessions.On("Theme", mock.Anything, uuid.Nil).Return(&light, nil).Once()
	api.sessions.On("Theme", mock.Anything, userID).Return(&dark, nil).Once()

	w := api.do(t, http.MethodGet, "/api/v1/theme", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "light", decode(t, w)["name"])

	w = api.do(t, http.MethodGet, "/api/v1/theme", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dark", decode(t, w)["name"])
}

func TestSetLocation_DeniedReturnsRecovery(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)
	api.sessions.On("SetLocation", mock.Anything, userID, &dto.SetLocationRequest{Permission: "denied"}).
		Return(&dto.SetLocationResponse{Permission: "denied", Recovery: []string{string(location.OptionOpenSettings), string(location.OptionSkip)}}, nil).Once()

	w := api.do(t, http.MethodPut, "/api/v1/session/location", token, dto.SetLocationRequest{Permission: "denied"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"openSettings", "skip"}, decode(t, w)["recovery"])
}

func TestLogout(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)
	api.sessions.On("Logout", mock.Anything, userID).Return(nil).Once()

	w := api.do(t, http.MethodPost, "/api/v1/session/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestResolveDeepLink(t *testing.T) {
	api := setupTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/links/resolve?url=app%3A%2F%2Freset-password%3Ftoken%3Dabc", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "user/resetPassword", body["route"])
	assert.Equal(t, "abc", body["token"])

	w = api.do(t, http.MethodGet, "/api/v1/links/resolve?url=https%3A%2F%2Fexample.com%2Fverify-email", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/links/resolve?url=https%3A%2F%2Fexample.com%2Fpricing", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
