package graphql

import (
	"context"

	"marketplace-bff/internal/models"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
)

const jobFields = `
	id userId title description images isDraft status draftExpiry startDate endDate createdAt updatedAt
	skills { label }
	budget { type from to maxHours }
	address { formatted lat lng }`

const jobQuery = `
query Job($id: ID!) {
	job(id: $id) {` + jobFields + `}
}`

// Job fetches one job, drafts included.
func (c *Client) Job(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var resp struct {
		Job *models.Job `json:"job"`
	}
	if err := c.run(ctx, "job", jobQuery, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Job == nil {
		return nil, notFound("job")
	}
	return resp.Job, nil
}

const createJobMutation = `
mutation CreateJob($input: JobInput!) {
	createJob(input: $input) {` + jobFields + `}
}`

// CreateJob creates a job, or a draft when input.IsDraft is set.
func (c *Client) CreateJob(ctx context.Context, input dto.JobInput) (*models.Job, error) {
	var resp struct {
		CreateJob *models.Job `json:"createJob"`
	}
	if err := c.run(ctx, "createJob", createJobMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if resp.CreateJob == nil {
		return nil, notFound("createJob")
	}
	return resp.CreateJob, nil
}

const updateJobMutation = `
mutation UpdateJob($id: ID!, $input: JobInput!) {
	updateJob(id: $id, input: $input) {` + jobFields + `}
}`

// UpdateJob overwrites a job. Publishing a draft is an update with IsDraft false.
func (c *Client) UpdateJob(ctx context.Context, id uuid.UUID, input dto.JobInput) (*models.Job, error) {
	var resp struct {
		UpdateJob *models.Job `json:"updateJob"`
	}
	err := c.run(ctx, "updateJob", updateJobMutation, map[string]interface{}{"id": id, "input": input}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.UpdateJob == nil {
		return nil, notFound("updateJob")
	}
	return resp.UpdateJob, nil
}

const completeJobMutation = `
mutation CompleteJob($id: ID!, $bidId: ID!) {
	completeJob(id: $id, bidId: $bidId) {` + jobFields + `}
}`

// CompleteJob closes a job after its accepted bid was completed.
func (c *Client) CompleteJob(ctx context.Context, jobID, bidID uuid.UUID) (*models.Job, error) {
	var resp struct {
		CompleteJob *models.Job `json:"completeJob"`
	}
	err := c.run(ctx, "completeJob", completeJobMutation, map[string]interface{}{"id": jobID, "bidId": bidID}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.CompleteJob == nil {
		return nil, notFound("completeJob")
	}
	return resp.CompleteJob, nil
}

const createReviewMutation = `
mutation CreateReview($input: ReviewInput!) {
	createReview(input: $input) {
		id reviewerId reviewedId jobId rating comment createdAt updatedAt
	}
}`

// CreateReview records a rating for the other party of a completed job.
func (c *Client) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error) {
	var resp struct {
		CreateReview *models.Review `json:"createReview"`
	}
	err := c.run(ctx, "createReview", createReviewMutation, map[string]interface{}{
		"input": map[string]interface{}{
			"jobId":      req.JobID,
			"reviewedId": req.ReviewedID,
			"rating":     req.Rating,
			"comment":    req.Comment,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.CreateReview == nil {
		return nil, notFound("createReview")
	}
	return resp.CreateReview, nil
}
