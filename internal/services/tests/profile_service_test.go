package services_test

import (
	"testing"

	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupProfileTest(t *testing.T) (*fixture, services.ProfileService) {
	t.Helper()
	f := newFixture(t)
	return f, services.NewProfileService(f.gw, f.sessions, f.validate, f.rules)
}

func TestProfileService_UpdateBioRefreshesCache(t *testing.T) {
	f, svc := setupProfileTest(t)
	user := clientUser()
	f.loginAs(t, user)

	bio := "Homeowner renovating an old farmhouse."
	updated := user
	updated.Bio = bio
	f.gw.On("UpdateUser", mock.Anything, user.ID, dto.UpdateUserInput{Bio: &bio}).Return(&updated, nil).Once()

	resp, err := svc.UpdateSection(f.ctx, &dto.UpdateProfileRequest{UserID: user.ID, Section: "bio", Bio: bio})
	require.NoError(t, err)
	assert.Equal(t, bio, resp.User.Bio)

	st, err := f.sessions.Load(f.ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, bio, st.User.Bio)
}

func TestProfileService_FailureKeepsCache(t *testing.T) {
	f, svc := setupProfileTest(t)
	user := clientUser()
	user.Bio = "The original bio stays in place."
	f.loginAs(t, user)

	f.gw.On("UpdateUser", mock.Anything, user.ID, mock.Anything).Return(nil, graphql.ErrUpstream).Once()

	_, err := svc.UpdateSection(f.ctx, &dto.UpdateProfileRequest{UserID: user.ID, Section: "bio", Bio: "A replacement bio that is long enough."})
	require.ErrorIs(t, err, services.ErrUpstream)

	st, err := f.sessions.Load(f.ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "The original bio stays in place.", st.User.Bio)
}

func TestProfileService_Validation(t *testing.T) {
	f, svc := setupProfileTest(t)
	user := clientUser()

	tests := []struct {
		name    string
		req     dto.UpdateProfileRequest
		wantErr error
	}{
		{name: "Short bio", req: dto.UpdateProfileRequest{Section: "bio", Bio: "hi"}, wantErr: services.ErrValidation},
		{name: "Bad email", req: dto.UpdateProfileRequest{Section: "basic", Basic: &dto.BasicInfoForm{
			Name: "A", Email: "nope", Address: &models.Address{Formatted: "x"},
		}}, wantErr: services.ErrValidation},
		{name: "Unknown section", req: dto.UpdateProfileRequest{Section: "avatar"}, wantErr: services.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.UserID = user.ID
			_, err := svc.UpdateSection(f.ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_ContractorSections(t *testing.T) {
	f, svc := setupProfileTest(t)
	client := clientUser()
	pro := contractorUser()
	f.loginAs(t, client)
	f.loginAs(t, pro)

	skills := []models.Skill{{Label: "Plumbing"}}
	_, err := svc.UpdateSection(f.ctx, &dto.UpdateProfileRequest{UserID: client.ID, Section: "skills", Skills: skills})
	assert.ErrorIs(t, err, services.ErrForbidden)

	f.gw.On("UpdateContractor", mock.Anything, pro.ID, mock.MatchedBy(func(in dto.UpdateContractorInput) bool {
		return in.Skills != nil && len(*in.Skills) == 1 && in.Licenses == nil
	})).Return(&models.Contractor{UserID: pro.ID, Skills: skills}, nil).Once()

	resp, err := svc.UpdateSection(f.ctx, &dto.UpdateProfileRequest{UserID: pro.ID, Section: "skills", Skills: skills})
	require.NoError(t, err)
	assert.Equal(t, skills, resp.Contractor.Skills)

	f.gw.On("UpdateContractor", mock.Anything, pro.ID, mock.MatchedBy(func(in dto.UpdateContractorInput) bool {
		return in.Licenses != nil && len(*in.Licenses) == 0
	})).Return(&models.Contractor{UserID: pro.ID}, nil).Once()

	_, err = svc.UpdateSection(f.ctx, &dto.UpdateProfileRequest{UserID: pro.ID, Section: "licenses"})
	require.NoError(t, err, "an empty license list clears the section")
}
