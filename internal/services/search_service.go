package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/transport/dto"
	"marketplace-bff/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type searchService struct {
	gateway  SearchGateway
	geo      GeoGateway
	sessions SessionStore
	validate *validator.Validate
	now      func() time.Time
}

// NewSearchService creates a new instance of SearchService.
func NewSearchService(gateway SearchGateway, geo GeoGateway, sessions SessionStore, v *validator.Validate) SearchService {
	return &searchService{gateway: gateway, geo: geo, sessions: sessions, validate: v, now: time.Now}
}

func (s *searchService) Search(ctx context.Context, userID uuid.UUID, kind search.Kind, next search.Filters) (*dto.SearchResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown list %q", ErrNotFound, kind)
	}
	if err := s.validate.Struct(next); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := validation.FormatValidationErrors(verrs)
			return nil, newValidationError(sortedMessages(fields), singleFields(fields))
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	sid := sessionID(userID)
	st, err := s.sessions.Load(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("internal error loading session: %w", err)
	}

	if next.Radius == 0 {
		next.Radius = search.DefaultRadius
	}
	if !next.HasText() && next.Lat == 0 && next.Lng == 0 {
		// the drawer has no address of its own, fall back to the device location
		if !st.Location.Known() {
			return nil, ErrLocationDenied
		}
		next.Lat, next.Lng = st.Location.Lat, st.Location.Lng
		if next.Address == "" {
			next.Address = st.Location.Address
		}
	}

	plan := search.Plan(kind, st.Filters(kind), next)
	resp := &dto.SearchResponse{Plan: plan}

	switch plan.Path {
	case search.PathText:
		q := graphql.TextQuery{Text: strings.TrimSpace(plan.Filters.SearchText), Page: plan.Page, PageSize: search.PageSize}
		if kind == search.KindJobs {
			resp.Jobs, err = s.gateway.JobsByText(ctx, q)
		} else {
			resp.Contractors, err = s.gateway.ContractorsByText(ctx, q)
		}
	case search.PathLocation:
		q := locationQuery(plan, s.now())
		if kind == search.KindJobs {
			resp.Jobs, err = s.gateway.JobsByLocation(ctx, q)
		} else {
			resp.Contractors, err = s.gateway.ContractorsByLocation(ctx, q)
		}
	}
	if err != nil {
		return nil, MapGatewayError(err, "searching "+string(kind))
	}

	// only remember filters that were actually queried, so a failed query is retried
	if _, err := s.sessions.Dispatch(ctx, sid, session.SetFilters{Kind: kind, Filters: plan.Filters}); err != nil {
		return nil, fmt.Errorf("internal error saving filters: %w", err)
	}
	return resp, nil
}

func locationQuery(plan search.QueryPlan, now time.Time) graphql.LocationQuery {
	f := plan.Filters
	return graphql.LocationQuery{
		Lat:         f.Lat,
		Lng:         f.Lng,
		Radius:      f.Radius,
		Page:        plan.Page,
		PageSize:    search.PageSize,
		BudgetFrom:  f.BudgetFrom,
		BudgetTo:    f.BudgetTo,
		ProjectType: f.ProjectType,
		PostedAfter: f.PostedAfter(now),
	}
}

func (s *searchService) Geocode(ctx context.Context, address string) ([]models.Address, error) {
	addresses, err := s.geo.Geocode(ctx, address)
	if err != nil {
		return nil, MapGatewayError(err, "geocoding address")
	}
	if addresses == nil {
		addresses = []models.Address{}
	}
	return addresses, nil
}
