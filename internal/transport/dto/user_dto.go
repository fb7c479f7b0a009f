package dto

import (
	"marketplace-bff/internal/models"

	"github.com/google/uuid"
)

// LoginRequest defines the structure for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by the login mutation.
type LoginResponse struct {
	User         models.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// BasicInfoForm edits name, contact details and address.
type BasicInfoForm struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Email   string          `json:"email" validate:"required,email"`
	Phone   string          `json:"phone" validate:"omitempty,e164"`
	Address *models.Address `json:"address" validate:"required"`
}

// UpdateUserInput is what gets sent to the updateUser mutation. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name    *string         `json:"name,omitempty"`
	Email   *string         `json:"email,omitempty"`
	Phone   *string         `json:"phone,omitempty"`
	Bio     *string         `json:"bio,omitempty"`
	Address *models.Address `json:"address,omitempty"`
}

// UpdateContractorInput is what gets sent to the updateContractor mutation.
// Nil sections are left unchanged; a pointer to an empty list clears one.
type UpdateContractorInput struct {
	Skills     *[]models.Skill     `json:"skills,omitempty"`
	Licenses   *[]models.License   `json:"licenses,omitempty"`
	Portfolios *[]models.Portfolio `json:"portfolios,omitempty"`
}

// UpdateProfileRequest carries one profile section edit. Only the field matching Section is read.
type UpdateProfileRequest struct {
	UserID     uuid.UUID          `json:"-"`
	Section    string             `json:"-"` // From path
	Bio        string             `json:"bio,omitempty"`
	Skills     []models.Skill     `json:"skills,omitempty"`
	Licenses   []models.License   `json:"licenses,omitempty"`
	Portfolios []models.Portfolio `json:"portfolios,omitempty"`
	Basic      *BasicInfoForm     `json:"basic,omitempty"`
}

// ProfileResponse is returned after a section update.
type ProfileResponse struct {
	User       *models.User       `json:"user,omitempty"`
	Contractor *models.Contractor `json:"contractor,omitempty"`
}
