package graphql

import (
	"context"
	"time"

	"marketplace-bff/internal/models"
)

// LocationQuery is a nearby query around a point.
type LocationQuery struct {
	Lat         float64
	Lng         float64
	Radius      float64
	Page        int
	PageSize    int
	BudgetFrom  float64
	BudgetTo    float64
	ProjectType models.BudgetType
	PostedAfter *time.Time
}

func (q LocationQuery) vars() map[string]interface{} {
	v := map[string]interface{}{
		"lat":    q.Lat,
		"lng":    q.Lng,
		"radius": q.Radius,
		"page":   q.Page,
		"limit":  q.PageSize,
	}
	if q.BudgetFrom > 0 {
		v["budgetFrom"] = q.BudgetFrom
	}
	if q.BudgetTo > 0 {
		v["budgetTo"] = q.BudgetTo
	}
	if q.ProjectType != "" {
		v["projectType"] = q.ProjectType
	}
	if q.PostedAfter != nil {
		v["postedAfter"] = q.PostedAfter.UTC().Format(time.RFC3339)
	}
	return v
}

// TextQuery is a free-text search.
type TextQuery struct {
	Text     string
	Page     int
	PageSize int
}

func (q TextQuery) vars() map[string]interface{} {
	return map[string]interface{}{"text": q.Text, "page": q.Page, "limit": q.PageSize}
}

const contractorsByLocationQuery = `
query ContractorsByLocation($lat: Float!, $lng: Float!, $radius: Float!, $page: Int!, $limit: Int!) {
	contractorsByLocation(lat: $lat, lng: $lng, radius: $radius, page: $page, limit: $limit) {
		page hasMore
		items {` + contractorFields + `}
	}
}`

// ContractorsByLocation lists contractors within Radius of a point.
func (c *Client) ContractorsByLocation(ctx context.Context, q LocationQuery) (*models.Page[models.Contractor], error) {
	var resp struct {
		Page *models.Page[models.Contractor] `json:"contractorsByLocation"`
	}
	if err := c.run(ctx, "contractorsByLocation", contractorsByLocationQuery, q.vars(), &resp); err != nil {
		return nil, err
	}
	return pageOrEmpty(resp.Page, q.Page), nil
}

const contractorsByTextQuery = `
query ContractorsByText($text: String!, $page: Int!, $limit: Int!) {
	contractorsByText(text: $text, page: $page, limit: $limit) {
		page hasMore
		items {` + contractorFields + `}
	}
}`

// ContractorsByText searches contractors by name and skill.
func (c *Client) ContractorsByText(ctx context.Context, q TextQuery) (*models.Page[models.Contractor], error) {
	var resp struct {
		Page *models.Page[models.Contractor] `json:"contractorsByText"`
	}
	if err := c.run(ctx, "contractorsByText", contractorsByTextQuery, q.vars(), &resp); err != nil {
		return nil, err
	}
	return pageOrEmpty(resp.Page, q.Page), nil
}

const jobsByLocationQuery = `
query JobsByLocation($lat: Float!, $lng: Float!, $radius: Float!, $page: Int!, $limit: Int!,
	$budgetFrom: Float, $budgetTo: Float, $projectType: BudgetType, $postedAfter: DateTime) {
	jobsByLocation(lat: $lat, lng: $lng, radius: $radius, page: $page, limit: $limit,
		budgetFrom: $budgetFrom, budgetTo: $budgetTo, projectType: $projectType, postedAfter: $postedAfter) {
		page hasMore
		items {` + jobFields + `}
	}
}`

// JobsByLocation lists open jobs within Radius of a point.
func (c *Client) JobsByLocation(ctx context.Context, q LocationQuery) (*models.Page[models.Job], error) {
	var resp struct {
		Page *models.Page[models.Job] `json:"jobsByLocation"`
	}
	if err := c.run(ctx, "jobsByLocation", jobsByLocationQuery, q.vars(), &resp); err != nil {
		return nil, err
	}
	return pageOrEmpty(resp.Page, q.Page), nil
}

const jobsByTextQuery = `
query JobsByText($text: String!, $page: Int!, $limit: Int!) {
	jobsByText(text: $text, page: $page, limit: $limit) {
		page hasMore
		items {` + jobFields + `}
	}
}`

// JobsByText searches open jobs by title and description.
func (c *Client) JobsByText(ctx context.Context, q TextQuery) (*models.Page[models.Job], error) {
	var resp struct {
		Page *models.Page[models.Job] `json:"jobsByText"`
	}
	if err := c.run(ctx, "jobsByText", jobsByTextQuery, q.vars(), &resp); err != nil {
		return nil, err
	}
	return pageOrEmpty(resp.Page, q.Page), nil
}

func pageOrEmpty[T any](p *models.Page[T], page int) *models.Page[T] {
	if p == nil {
		return &models.Page[T]{Items: []T{}, Page: page}
	}
	if p.Items == nil {
		p.Items = []T{}
	}
	return p
}
