package dto

import (
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
)

// SearchResponse carries the query decision and, unless the path is none, one page of results.
type SearchResponse struct {
	Plan        search.QueryPlan                `json:"plan"`
	Contractors *models.Page[models.Contractor] `json:"contractors,omitempty"`
	Jobs        *models.Page[models.Job]        `json:"jobs,omitempty"`
}

// GeocodeRequest looks up an address typed into the filter drawer.
type GeocodeRequest struct {
	Address string `form:"address" validate:"required,min=3"`
}
