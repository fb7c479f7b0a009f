package graphql

import (
	"context"

	"marketplace-bff/internal/models"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
)

const userFields = `
	id name email phone bio image userTypes averageRating
	address { formatted lat lng }`

const contractorFields = `
	id userId distance
	skills { label }
	licenses { name number expiryDate }
	portfolios { title description images }
	user {` + userFields + `}`

const loginMutation = `
mutation Login($email: String!, $password: String!) {
	login(email: $email, password: $password) {
		accessToken
		refreshToken
		user {` + userFields + `}
	}
}`

// Login exchanges credentials for tokens.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp struct {
		Login *dto.LoginResponse `json:"login"`
	}
	err := c.run(ctx, "login", loginMutation, map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Login == nil {
		return nil, notFound("login")
	}
	return resp.Login, nil
}

const userQuery = `
query User($id: ID!) {
	user(id: $id) {` + userFields + `}
}`

// User fetches one user.
func (c *Client) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.run(ctx, "user", userQuery, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, notFound("user")
	}
	return resp.User, nil
}

const updateUserMutation = `
mutation UpdateUser($id: ID!, $input: UpdateUserInput!) {
	updateUser(id: $id, input: $input) {` + userFields + `}
}`

// UpdateUser patches the non-nil fields of input.
func (c *Client) UpdateUser(ctx context.Context, id uuid.UUID, input dto.UpdateUserInput) (*models.User, error) {
	var resp struct {
		UpdateUser *models.User `json:"updateUser"`
	}
	err := c.run(ctx, "updateUser", updateUserMutation, map[string]interface{}{"id": id, "input": input}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.UpdateUser == nil {
		return nil, notFound("updateUser")
	}
	return resp.UpdateUser, nil
}

const updateContractorMutation = `
mutation UpdateContractor($userId: ID!, $input: UpdateContractorInput!) {
	updateContractor(userId: $userId, input: $input) {` + contractorFields + `}
}`

// UpdateContractor replaces the contractor sections present in input.
func (c *Client) UpdateContractor(ctx context.Context, userID uuid.UUID, input dto.UpdateContractorInput) (*models.Contractor, error) {
	var resp struct {
		UpdateContractor *models.Contractor `json:"updateContractor"`
	}
	err := c.run(ctx, "updateContractor", updateContractorMutation, map[string]interface{}{"userId": userID, "input": input}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.UpdateContractor == nil {
		return nil, notFound("updateContractor")
	}
	return resp.UpdateContractor, nil
}

const skillsQuery = `
query Skills {
	skills { label }
}`

// Skills lists the selectable skill tags.
func (c *Client) Skills(ctx context.Context) ([]models.Skill, error) {
	var resp struct {
		Skills []models.Skill `json:"skills"`
	}
	if err := c.run(ctx, "skills", skillsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Skills, nil
}
