package session_test

import (
	"testing"

	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/session"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractor() models.User {
	return models.User{ID: uuid.New(), Name: "Sam", UserTypes: []models.UserType{models.UserTypeContractor}}
}

func client() models.User {
	return models.User{ID: uuid.New(), Name: "Cal", UserTypes: []models.UserType{models.UserTypeClient}}
}

func TestReduce_LoginPicksDefaultView(t *testing.T) {
	s := session.Reduce(session.State{Theme: "dark"}, session.Login{User: contractor(), Tokens: session.Tokens{Access: "a"}})
	require.NotNil(t, s.User)
	assert.Equal(t, models.UserViewContractor, s.View)
	assert.Equal(t, "dark", s.Theme)
	assert.True(t, s.LoggedIn())

	s = session.Reduce(session.State{}, session.Login{User: client(), Tokens: session.Tokens{Access: "a"}})
	assert.Equal(t, models.UserViewClient, s.View)
}

func TestReduce_LogoutKeepsOnlyTheme(t *testing.T) {
	f := search.Filters{Radius: 10}
	s := session.State{Theme: "dark", JobFilters: &f}
	s = session.Reduce(s, session.Login{User: client(), Tokens: session.Tokens{Access: "a"}})

	out := session.Reduce(s, session.Logout{})
	assert.Equal(t, session.State{Theme: "dark"}, out)
	assert.False(t, out.LoggedIn())
}

func TestReduce_SetViewRequiresContractorType(t *testing.T) {
	s := session.Reduce(session.State{}, session.Login{User: client(), Tokens: session.Tokens{Access: "a"}})

	out := session.Reduce(s, session.SetView{View: models.UserViewContractor})
	assert.Equal(t, models.UserViewClient, out.View)

	both := client()
	both.UserTypes = append(both.UserTypes, models.UserTypeContractor)
	s = session.Reduce(session.State{}, session.Login{User: both, Tokens: session.Tokens{Access: "a"}})
	out = session.Reduce(s, session.SetView{View: models.UserViewContractor})
	assert.Equal(t, models.UserViewContractor, out.View)
}

func TestReduce_UserUpdatedDropsContractorView(t *testing.T) {
	s := session.Reduce(session.State{}, session.Login{User: contractor(), Tokens: session.Tokens{Access: "a"}})
	out := session.Reduce(s, session.UserUpdated{User: client()})
	assert.Equal(t, models.UserViewClient, out.View)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := session.State{Theme: "light"}
	_ = session.Reduce(before, session.SetTheme{Theme: "dark"})
	assert.Equal(t, "light", before.Theme)
}

func TestReduce_LocationPermission(t *testing.T) {
	s := session.Reduce(session.State{}, session.SetLocation{Location: location.State{
		Permission: location.PermissionGranted, Lat: 1, Lng: 2, Address: "Main St",
	}})
	assert.True(t, s.Location.Known())

	s = session.Reduce(s, session.SetLocationPermission{Permission: location.PermissionDenied})
	assert.False(t, s.Location.Known())
	assert.Empty(t, s.Location.Address)
}

func TestReduce_SetFiltersByKind(t *testing.T) {
	s := session.Reduce(session.State{}, session.SetFilters{Kind: search.KindJobs, Filters: search.Filters{Radius: 5}})
	require.NotNil(t, s.Filters(search.KindJobs))
	assert.Nil(t, s.Filters(search.KindContractors))
	assert.Equal(t, 5.0, s.Filters(search.KindJobs).Radius)
}
