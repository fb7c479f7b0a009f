package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-bff/internal/api/handlers"
	"marketplace-bff/internal/api/middleware"
	"marketplace-bff/internal/api/routes"
	"marketplace-bff/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "handlers-test-secret"

func generateTestToken(userID uuid.UUID, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// testAPI wires the real handlers, routes and auth middleware over mocked services.
type testAPI struct {
	router        *gin.Engine
	sessions      *mocks.SessionService
	wizard        *mocks.WizardService
	bids          *mocks.BidService
	search        *mocks.SearchService
	profile       *mocks.ProfileService
	notifications *mocks.NotificationService
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := &testAPI{
		router:        gin.New(),
		sessions:      new(mocks.SessionService),
		wizard:        new(mocks.WizardService),
		bids:          new(mocks.BidService),
		search:        new(mocks.SearchService),
		profile:       new(mocks.ProfileService),
		notifications: new(mocks.NotificationService),
	}
	t.Cleanup(func() {
		api.sessions.AssertExpectations(t)
		api.wizard.AssertExpectations(t)
		api.bids.AssertExpectations(t)
		api.search.AssertExpectations(t)
		api.profile.AssertExpectations(t)
		api.notifications.AssertExpectations(t)
	})

	validate := validator.New()
	auth := middleware.JWTAuthMiddleware(testSecret)
	optional := middleware.OptionalJWTAuthMiddleware(testSecret)
	rg := api.router.Group("/api/v1")

	routes.RegisterSessionRoutes(rg, handlers.NewSessionHandler(api.sessions, validate), auth, optional)
	routes.RegisterWizardRoutes(rg, handlers.NewWizardHandler(api.wizard, validate), auth)
	routes.RegisterBidRoutes(rg, handlers.NewBidHandler(api.bids, validate), auth)
	routes.RegisterSearchRoutes(rg, handlers.NewSearchHandler(api.search, validate), auth)
	routes.RegisterProfileRoutes(rg, handlers.NewProfileHandler(api.profile), auth)
	routes.RegisterNotificationRoutes(rg, handlers.NewNotificationHandler(api.notifications), auth)
	return api
}

// do sends body as JSON. token may be empty for anonymous calls.
func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func loggedIn(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	token, err := generateTestToken(userID, testSecret, time.Hour)
	require.NoError(t, err)
	return userID, token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}
