package graphql

import (
	"context"

	"marketplace-bff/internal/models"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
)

const bidFields = `
	id jobId contractorId quote startDate endDate proposal agreementAccepted status createdAt updatedAt`

const placeBidMutation = `
mutation PlaceBid($input: BidInput!) {
	placeBid(input: $input) {` + bidFields + `}
}`

// PlaceBid submits a bid for the logged-in contractor.
func (c *Client) PlaceBid(ctx context.Context, input dto.BidInput) (*models.Bid, error) {
	var resp struct {
		PlaceBid *models.Bid `json:"placeBid"`
	}
	if err := c.run(ctx, "placeBid", placeBidMutation, map[string]interface{}{"input": input}, &resp); err != nil {
		return nil, err
	}
	if resp.PlaceBid == nil {
		return nil, notFound("placeBid")
	}
	return resp.PlaceBid, nil
}

const bidQuery = `
query Bid($id: ID!) {
	bid(id: $id) {` + bidFields + `}
}`

// Bid fetches one bid.
func (c *Client) Bid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	var resp struct {
		Bid *models.Bid `json:"bid"`
	}
	if err := c.run(ctx, "bid", bidQuery, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp.Bid == nil {
		return nil, notFound("bid")
	}
	return resp.Bid, nil
}

const myBidQuery = `
query MyBid($jobId: ID!) {
	myBid(jobId: $jobId) {` + bidFields + `}
}`

// MyBid returns the caller's bid on a job, or nil when there is none.
func (c *Client) MyBid(ctx context.Context, jobID uuid.UUID) (*models.Bid, error) {
	var resp struct {
		MyBid *models.Bid `json:"myBid"`
	}
	if err := c.run(ctx, "myBid", myBidQuery, map[string]interface{}{"jobId": jobID}, &resp); err != nil {
		return nil, err
	}
	return resp.MyBid, nil
}

func (c *Client) transitionBid(ctx context.Context, op string, id uuid.UUID) (*models.Bid, error) {
	query := `
mutation ` + op + `($id: ID!) {
	` + op + `(id: $id) {` + bidFields + `}
}`
	var resp map[string]*models.Bid
	if err := c.run(ctx, op, query, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, err
	}
	if resp[op] == nil {
		return nil, notFound(op)
	}
	return resp[op], nil
}

// AcceptBid moves an Open bid to Accepted.
func (c *Client) AcceptBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	return c.transitionBid(ctx, "acceptBid", id)
}

// RejectBid moves an Open bid to Rejected.
func (c *Client) RejectBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	return c.transitionBid(ctx, "rejectBid", id)
}

// CompleteBid is called by the contractor once the work is done.
func (c *Client) CompleteBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	return c.transitionBid(ctx, "completeBid", id)
}
