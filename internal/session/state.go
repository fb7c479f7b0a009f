// Package session is the per-user client state container: who is logged in, which side
// of the marketplace they are browsing, their location and their last search filters.
package session

import (
	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
)

// Tokens are the API credentials issued at login.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// State is everything the clients keep between screens.
type State struct {
	User              *models.User    `json:"user,omitempty"`
	Tokens            Tokens          `json:"-"`
	View              models.UserView `json:"view,omitempty"`
	Theme             string          `json:"theme,omitempty"`
	Location          location.State  `json:"location"`
	ContractorFilters *search.Filters `json:"contractorFilters,omitempty"`
	JobFilters        *search.Filters `json:"jobFilters,omitempty"`
}

// LoggedIn reports whether a user is present.
func (s State) LoggedIn() bool {
	return s.User != nil && s.Tokens.Access != ""
}

// Filters returns the stored snapshot for kind, or nil.
func (s State) Filters(kind search.Kind) *search.Filters {
	if kind == search.KindJobs {
		return s.JobFilters
	}
	return s.ContractorFilters
}

// Action is a state update. Reduce is the only place actions are interpreted.
type Action interface {
	actionName() string
}

type Login struct {
	User   models.User
	Tokens Tokens
}

type Logout struct{}

type UserUpdated struct {
	User models.User
}

type SetView struct {
	View models.UserView
}

type SetTheme struct {
	Theme string
}

type SetLocation struct {
	Location location.State
}

type SetLocationPermission struct {
	Permission location.Permission
}

type SetFilters struct {
	Kind    search.Kind
	Filters search.Filters
}

func (Login) actionName() string                 { return "login" }
func (Logout) actionName() string                { return "logout" }
func (UserUpdated) actionName() string           { return "userUpdated" }
func (SetView) actionName() string               { return "setView" }
func (SetTheme) actionName() string              { return "setTheme" }
func (SetLocation) actionName() string           { return "setLocation" }
func (SetLocationPermission) actionName() string { return "setLocationPermission" }
func (SetFilters) actionName() string            { return "setFilters" }

// Reduce returns the state after applying a. It never mutates s.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case Login:
		u := act.User
		return State{
			User:     &u,
			Tokens:   act.Tokens,
			View:     defaultView(&u),
			Theme:    s.Theme,
			Location: s.Location,
		}
	case Logout:
		// theme is a device preference and survives logout
		return State{Theme: s.Theme}
	case UserUpdated:
		u := act.User
		s.User = &u
		if s.View == models.UserViewContractor && !u.HasType(models.UserTypeContractor) {
			s.View = models.UserViewClient
		}
		return s
	case SetView:
		if !act.View.Valid() {
			return s
		}
		if act.View == models.UserViewContractor && !s.User.HasType(models.UserTypeContractor) {
			return s
		}
		s.View = act.View
		return s
	case SetTheme:
		s.Theme = act.Theme
		return s
	case SetLocation:
		s.Location = act.Location
		if act.Location.Permission != location.PermissionGranted {
			s.Location.Lat, s.Location.Lng = 0, 0
		}
		return s
	case SetLocationPermission:
		s.Location.Permission = act.Permission
		if act.Permission != location.PermissionGranted {
			s.Location.Lat, s.Location.Lng, s.Location.Address = 0, 0, ""
		}
		return s
	case SetFilters:
		f := act.Filters
		switch act.Kind {
		case search.KindJobs:
			s.JobFilters = &f
		case search.KindContractors:
			s.ContractorFilters = &f
		}
		return s
	default:
		return s
	}
}

func defaultView(u *models.User) models.UserView {
	if u.HasType(models.UserTypeContractor) && !u.HasType(models.UserTypeClient) {
		return models.UserViewContractor
	}
	return models.UserViewClient
}
