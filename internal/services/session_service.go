package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/theme"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
)

type sessionService struct {
	users        UserGateway
	geo          GeoGateway
	sessions     SessionStore
	defaultTheme string
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(users UserGateway, geo GeoGateway, sessions SessionStore, defaultTheme string) SessionService {
	return &sessionService{users: users, geo: geo, sessions: sessions, defaultTheme: defaultTheme}
}

func (s *sessionService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	resp, err := s.users.Login(ctx, *req)
	if err != nil {
		log.Printf("Login attempt failed for email %s: %v", req.Email, err)
		return nil, MapGatewayError(err, "logging in")
	}
	if resp.User.ID == uuid.Nil || resp.AccessToken == "" {
		return nil, fmt.Errorf("%w: login returned no user", ErrUpstream)
	}

	_, err = s.sessions.Dispatch(ctx, sessionID(resp.User.ID), session.Login{
		User:   resp.User,
		Tokens: session.Tokens{Access: resp.AccessToken, Refresh: resp.RefreshToken},
	})
	if err != nil {
		return nil, fmt.Errorf("internal error starting session: %w", err)
	}
	return resp, nil
}

func (s *sessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.sessions.Dispatch(ctx, sessionID(userID), session.Logout{}); err != nil {
		return fmt.Errorf("internal error ending session: %w", err)
	}
	return nil
}

func (s *sessionService) Get(ctx context.Context, userID uuid.UUID) (*session.State, error) {
	st, err := s.sessions.Load(ctx, sessionID(userID))
	if err != nil {
		return nil, fmt.Errorf("internal error loading session: %w", err)
	}
	if !st.LoggedIn() {
		return nil, ErrUnauthorized
	}
	if st.Theme == "" {
		st.Theme = s.defaultTheme
	}
	return &st, nil
}

func (s *sessionService) SetView(ctx context.Context, userID uuid.UUID, req *dto.SetViewRequest) (*session.State, error) {
	user, _, err := currentUser(ctx, s.sessions, s.users, userID)
	if err != nil {
		return nil, err
	}
	if req.View == models.UserViewContractor && !user.HasType(models.UserTypeContractor) {
		return nil, fmt.Errorf("%w: user has no contractor profile", ErrForbidden)
	}
	st, err := s.sessions.Dispatch(ctx, sessionID(userID), session.SetView{View: req.View})
	if err != nil {
		return nil, fmt.Errorf("internal error saving view: %w", err)
	}
	return &st, nil
}

func (s *sessionService) SetTheme(ctx context.Context, userID uuid.UUID, req *dto.SetThemeRequest) (*theme.Theme, error) {
	t, err := theme.Resolve(req.Theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.sessions.Dispatch(ctx, sessionID(userID), session.SetTheme{Theme: t.Name}); err != nil {
		return nil, fmt.Errorf("internal error saving theme: %w", err)
	}
	return &t, nil
}

func (s *sessionService) Theme(ctx context.Context, userID uuid.UUID) (*theme.Theme, error) {
	name := s.defaultTheme
	if userID != uuid.Nil {
		st, err := s.sessions.Load(ctx, sessionID(userID))
		if err != nil {
			return nil, fmt.Errorf("internal error loading session: %w", err)
		}
		if st.Theme != "" {
			name = st.Theme
		}
	}
	t, err := theme.Resolve(name)
	if err != nil {
		log.Printf("SessionService: stored theme %q is unknown, using light: %v", name, err)
		t = theme.Light
	}
	return &t, nil
}

func (s *sessionService) SetLocation(ctx context.Context, userID uuid.UUID, req *dto.SetLocationRequest) (*dto.SetLocationResponse, error) {
	perm, err := location.ParsePermission(req.Permission)
	if err != nil {
		return nil, newValidationError([]string{err.Error()}, map[string][]string{"permission": {err.Error()}})
	}
	sid := sessionID(userID)

	if perm != location.PermissionGranted {
		if _, err := s.sessions.Dispatch(ctx, sid, session.SetLocationPermission{Permission: perm}); err != nil {
			return nil, fmt.Errorf("internal error saving location: %w", err)
		}
		return &dto.SetLocationResponse{Permission: string(perm), Recovery: recoveryOptions(perm)}, nil
	}

	if req.Lat == 0 && req.Lng == 0 {
		msg := "Coordinates are required when location is granted"
		return nil, newValidationError([]string{msg}, map[string][]string{"lat": {msg}, "lng": {msg}})
	}

	st := location.State{Permission: perm, Lat: req.Lat, Lng: req.Lng}
	addr, err := s.geo.ReverseGeocode(ctx, req.Lat, req.Lng)
	switch {
	case err == nil:
		st.Address = addr.Formatted
	case errors.Is(err, context.Canceled):
		return nil, MapGatewayError(err, "reverse geocoding")
	default:
		// coordinates alone are enough for nearby queries
		log.Printf("SessionService: reverse geocode failed for %s: %v", userID, err)
	}

	if _, err := s.sessions.Dispatch(ctx, sid, session.SetLocation{Location: st}); err != nil {
		return nil, fmt.Errorf("internal error saving location: %w", err)
	}
	return &dto.SetLocationResponse{Permission: string(perm), Address: st.Address}, nil
}

func (s *sessionService) Location(ctx context.Context, userID uuid.UUID) (*location.State, error) {
	st, err := s.sessions.Load(ctx, sessionID(userID))
	if err != nil {
		return nil, fmt.Errorf("internal error loading session: %w", err)
	}
	return &st.Location, nil
}

func recoveryOptions(p location.Permission) []string {
	opts := location.Recovery(p)
	if len(opts) == 0 {
		return nil
	}
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = string(o)
	}
	return out
}
