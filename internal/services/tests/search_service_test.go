package services_test

import (
	"testing"

	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSearchTest(t *testing.T) (*fixture, services.SearchService, models.User) {
	t.Helper()
	f := newFixture(t)
	svc := services.NewSearchService(f.gw, f.gw, f.sessions, f.validate)
	user := clientUser()
	f.loginAs(t, user)
	return f, svc, user
}

func TestSearchService_LocationThenLoadMoreThenNoop(t *testing.T) {
	f, svc, user := setupSearchTest(t)
	filters := search.Filters{Radius: 10, Lat: 40.1, Lng: -74.2}

	f.gw.On("ContractorsByLocation", mock.Anything, mock.MatchedBy(func(q graphql.LocationQuery) bool {
		return q.Page == 1 && q.Radius == 10 && q.PageSize == search.PageSize
	})).Return(&models.Page[models.Contractor]{Page: 1, HasMore: true, Items: []models.Contractor{{}}}, nil).Once()
	f.gw.On("ContractorsByLocation", mock.Anything, mock.MatchedBy(func(q graphql.LocationQuery) bool {
		return q.Page == 2
	})).Return(&models.Page[models.Contractor]{Page: 2}, nil).Once()

	resp, err := svc.Search(f.ctx, user.ID, search.KindContractors, filters)
	require.NoError(t, err)
	assert.Equal(t, search.PathLocation, resp.Plan.Path)
	require.NotNil(t, resp.Contractors)
	assert.True(t, resp.Contractors.HasMore)

	filters.Page = 2
	resp, err = svc.Search(f.ctx, user.ID, search.KindContractors, filters)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Plan.Page)

	// same snapshot again: nothing to fetch
	resp, err = svc.Search(f.ctx, user.ID, search.KindContractors, filters)
	require.NoError(t, err)
	assert.Equal(t, search.PathNone, resp.Plan.Path)
	assert.Nil(t, resp.Contractors)
}

func TestSearchService_TextPathWins(t *testing.T) {
	f, svc, user := setupSearchTest(t)
	f.gw.On("JobsByText", mock.Anything, graphql.TextQuery{Text: "roof", Page: 1, PageSize: search.PageSize}).
		Return(&models.Page[models.Job]{Page: 1}, nil).Once()

	resp, err := svc.Search(f.ctx, user.ID, search.KindJobs, search.Filters{Radius: 5, Lat: 1, Lng: 1, SearchText: "  roof "})
	require.NoError(t, err)
	assert.Equal(t, search.PathText, resp.Plan.Path)
	assert.NotNil(t, resp.Jobs)
	f.gw.AssertNotCalled(t, "JobsByLocation", mock.Anything, mock.Anything)
}

func TestSearchService_JobFilterChangeResetsPage(t *testing.T) {
	f, svc, user := setupSearchTest(t)
	prev := search.Filters{Radius: 5, Lat: 1, Lng: 1, Page: 3}
	_, err := f.sessions.Dispatch(f.ctx, user.ID.String(), session.SetFilters{Kind: search.KindJobs, Filters: prev})
	require.NoError(t, err)

	f.gw.On("JobsByLocation", mock.Anything, mock.MatchedBy(func(q graphql.LocationQuery) bool {
		return q.Page == 1 && q.ProjectType == models.BudgetTypeHourly && q.PostedAfter != nil
	})).Return(&models.Page[models.Job]{Page: 1}, nil).Once()

	next := prev
	next.ProjectType = models.BudgetTypeHourly
	next.DatePosted = models.DatePosted7Days
	resp, err := svc.Search(f.ctx, user.ID, search.KindJobs, next)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Plan.Page)

	st, err := f.sessions.Load(f.ctx, user.ID.String())
	require.NoError(t, err)
	require.NotNil(t, st.JobFilters)
	assert.Equal(t, 1, st.JobFilters.Page)
	assert.Equal(t, models.BudgetTypeHourly, st.JobFilters.ProjectType)
}

func TestSearchService_UsesDeviceLocation(t *testing.T) {
	f, svc, user := setupSearchTest(t)

	_, err := svc.Search(f.ctx, user.ID, search.KindContractors, search.Filters{Radius: 5})
	assert.ErrorIs(t, err, services.ErrLocationDenied)

	_, err = f.sessions.Dispatch(f.ctx, user.ID.String(), session.SetLocation{Location: location.State{
		Permission: location.PermissionGranted, Lat: 51.5, Lng: -0.1, Address: "London",
	}})
	require.NoError(t, err)

	f.gw.On("ContractorsByLocation", mock.Anything, mock.MatchedBy(func(q graphql.LocationQuery) bool {
		return q.Lat == 51.5 && q.Lng == -0.1 && q.Radius == 5
	})).Return(&models.Page[models.Contractor]{Page: 1}, nil).Once()

	resp, err := svc.Search(f.ctx, user.ID, search.KindContractors, search.Filters{Radius: 5})
	require.NoError(t, err)
	assert.Equal(t, "London", resp.Plan.Filters.Address)
}

func TestSearchService_FailedQueryIsNotRemembered(t *testing.T) {
	f, svc, user := setupSearchTest(t)
	filters := search.Filters{Radius: 10, Lat: 1, Lng: 1}

	f.gw.On("ContractorsByLocation", mock.Anything, mock.Anything).Return(nil, graphql.ErrUpstream).Once()
	_, err := svc.Search(f.ctx, user.ID, search.KindContractors, filters)
	require.ErrorIs(t, err, services.ErrUpstream)

	st, err := f.sessions.Load(f.ctx, user.ID.String())
	require.NoError(t, err)
	assert.Nil(t, st.ContractorFilters)
}

func TestSearchService_RejectsBadFilters(t *testing.T) {
	f, svc, user := setupSearchTest(t)

	_, err := svc.Search(f.ctx, user.ID, search.KindJobs, search.Filters{Lat: 200, Lng: 1})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Search(f.ctx, user.ID, search.Kind("bids"), search.Filters{})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSearchService_Geocode(t *testing.T) {
	f, svc, _ := setupSearchTest(t)
	f.gw.On("Geocode", mock.Anything, "nowhere").Return(nil, nil).Once()

	addrs, err := svc.Geocode(f.ctx, "nowhere")
	require.NoError(t, err)
	assert.NotNil(t, addrs)
	assert.Empty(t, addrs)
}
