package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"marketplace-bff/config"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/transport/dto"
	"marketplace-bff/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileService struct {
	users    UserGateway
	sessions SessionStore
	validate *validator.Validate
	rules    config.RulesConfig
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(users UserGateway, sessions SessionStore, v *validator.Validate, rules config.RulesConfig) ProfileService {
	return &profileService{users: users, sessions: sessions, validate: v, rules: rules}
}

// Me refetches the user and refreshes the cached copy.
func (s *profileService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.User(ctx, userID)
	if err != nil {
		return nil, MapGatewayError(err, "fetching user")
	}
	if _, err := s.sessions.Dispatch(ctx, sessionID(userID), session.UserUpdated{User: *user}); err != nil {
		return nil, fmt.Errorf("internal error caching user: %w", err)
	}
	return user, nil
}

func (s *profileService) UpdateSection(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	msgs, fields, err := validation.ValidateProfile(s.rules, s.validate, *req)
	if err != nil {
		if errors.Is(err, validation.ErrUnknownSection) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if len(msgs) > 0 {
		return nil, newValidationError(msgs, singleFields(fields))
	}

	user, _, err := currentUser(ctx, s.sessions, s.users, req.UserID)
	if err != nil {
		return nil, err
	}

	switch req.Section {
	case validation.SectionBio, validation.SectionBasic:
		input := dto.UpdateUserInput{}
		if req.Section == validation.SectionBio {
			input.Bio = &req.Bio
		} else {
			input.Name = &req.Basic.Name
			input.Email = &req.Basic.Email
			input.Phone = &req.Basic.Phone
			input.Address = req.Basic.Address
		}
		updated, err := s.users.UpdateUser(ctx, user.ID, input)
		if err != nil {
			// the cached user stays as it was
			return nil, MapGatewayError(err, "updating "+req.Section)
		}
		if _, err := s.sessions.Dispatch(ctx, sessionID(user.ID), session.UserUpdated{User: *updated}); err != nil {
			log.Printf("ProfileService: Error caching user %s: %v", user.ID, err)
		}
		return &dto.ProfileResponse{User: updated}, nil

	default:
		if !user.HasType(models.UserTypeContractor) {
			return nil, fmt.Errorf("%w: %s is only available on contractor profiles", ErrForbidden, req.Section)
		}
		input := dto.UpdateContractorInput{}
		switch req.Section {
		case validation.SectionSkills:
			skills := nonNil(req.Skills)
			input.Skills = &skills
		case validation.SectionLicenses:
			licenses := nonNil(req.Licenses)
			input.Licenses = &licenses
		case validation.SectionPortfolio:
			portfolios := nonNil(req.Portfolios)
			input.Portfolios = &portfolios
		}
		contractor, err := s.users.UpdateContractor(ctx, user.ID, input)
		if err != nil {
			return nil, MapGatewayError(err, "updating "+req.Section)
		}
		return &dto.ProfileResponse{Contractor: contractor}, nil
	}
}

func (s *profileService) Skills(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.users.Skills(ctx)
	if err != nil {
		return nil, MapGatewayError(err, "listing skills")
	}
	return nonNil(skills), nil
}

// nonNil keeps an emptied list distinct from an omitted one.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
