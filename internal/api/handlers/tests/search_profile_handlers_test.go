package handlers_test

import (
	"net/http"
	"testing"

	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchJobs(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)
	filters := search.Filters{Radius: 10, Lat: 40.7, Lng: -74, ProjectType: models.BudgetTypeHourly}
	api.search.On("Search", mock.Anything, userID, search.KindJobs, filters).Return(&dto.SearchResponse{
		Plan: search.QueryPlan{Path: search.PathLocation, Page: 1, Filters: filters},
		Jobs: &models.Page[models.Job]{Page: 1},
	}, nil).Once()

	w := api.do(t, http.MethodPost, "/api/v1/search/jobs", token, filters)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	plan := decode(t, w)["plan"].(map[string]interface{})
	assert.Equal(t, "location", plan["path"])
}

func TestSearchContractors_NoLocation(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)
	api.search.On("Search", mock.Anything, userID, search.KindContractors, mock.Anything).
		Return(nil, services.ErrLocationDenied).Once()

	w := api.do(t, http.MethodPost, "/api/v1/search/contractors", token, search.Filters{Radius: 5})
	require.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Equal(t, []interface{}{"openSettings", "skip"}, decode(t, w)["recovery"])
}

func TestGeocode(t *testing.T) {
	api := setupTestAPI(t)
	_, token := loggedIn(t)
	api.search.On("Geocode", mock.Anything, "10 Downing St").
		Return([]models.Address{{Formatted: "10 Downing St, London"}}, nil).Once()

	w := api.do(t, http.MethodGet, "/api/v1/search/geocode?address=10+Downing+St", token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/v1/search/geocode?address=x", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileSection(t *testing.T) {
	tests := []struct {
		name       string
		section    string
		err        error
		wantStatus int
	}{
		{name: "Saved", section: "bio", wantStatus: http.StatusOK},
		{name: "Unknown section", section: "avatar", err: services.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "Client editing skills", section: "skills", err: services.ErrForbidden, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t)
			userID, token := loggedIn(t)
			call := api.profile.On("UpdateSection", mock.Anything, mock.MatchedBy(func(r *dto.UpdateProfileRequest) bool {
				return r.UserID == userID && r.Section == tt.section
			}))
			if tt.err != nil {
				call.Return(nil, tt.err).Once()
			} else {
				call.Return(&dto.ProfileResponse{User: &models.User{ID: userID}}, nil).Once()
			}

			w := api.do(t, http.MethodPut, "/api/v1/profile/"+tt.section, token, map[string]string{"bio": "Twenty years of carpentry."})
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestNotifications(t *testing.T) {
	api := setupTestAPI(t)
	userID, token := loggedIn(t)
	id := uuid.New()
	api.notifications.On("List", mock.Anything, userID, 2).Return(&models.Page[models.Notification]{Page: 2}, nil).Once()
	api.notifications.On("Mark", mock.Anything, userID, id, &dto.MarkNotificationRequest{Read: true}).
		Return(&models.Notification{ID: id, Read: true}, nil).Once()

	w := api.do(t, http.MethodGet, "/api/v1/notifications?page=2", token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/v1/notifications?page=0", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPatch, "/api/v1/notifications/"+id.String(), token, dto.MarkNotificationRequest{Read: true})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
