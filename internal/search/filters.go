// Package search decides how the nearby-contractor and nearby-job lists are re-queried
// when the filter drawer changes.
package search

import (
	"strings"
	"time"

	"marketplace-bff/internal/models"
)

// PageSize is the fixed number of results per page.
const PageSize = 20

// DefaultRadius applies when the drawer has not set one, in kilometres.
const DefaultRadius = 50.0

// Kind selects which list a filter set belongs to.
type Kind string

const (
	KindContractors Kind = "contractors"
	KindJobs        Kind = "jobs"
)

func (k Kind) Valid() bool {
	return k == KindContractors || k == KindJobs
}

// Filters is the state of one filter drawer.
type Filters struct {
	Radius      float64                 `json:"radius" validate:"omitempty,gt=0"`
	Address     string                  `json:"address,omitempty"`
	Lat         float64                 `json:"lat" validate:"omitempty,latitude"`
	Lng         float64                 `json:"lng" validate:"omitempty,longitude"`
	BudgetFrom  float64                 `json:"budgetFrom,omitempty" validate:"omitempty,gte=0"`
	BudgetTo    float64                 `json:"budgetTo,omitempty" validate:"omitempty,gte=0"`
	ProjectType models.BudgetType       `json:"projectType,omitempty" validate:"omitempty,oneof=Project Hourly"`
	DatePosted  models.DatePostedBucket `json:"datePosted,omitempty" validate:"omitempty,oneof=24h 3d 7d 30d"`
	SearchText  string                  `json:"searchText,omitempty"`
	Page        int                     `json:"page,omitempty" validate:"omitempty,gte=1"`
}

// HasText reports whether the free-text box is in use.
func (f Filters) HasText() bool {
	return strings.TrimSpace(f.SearchText) != ""
}

// IsFiltersChanged compares the fields that drive a contractor location query.
func IsFiltersChanged(prev, next Filters) bool {
	return prev.Radius != next.Radius || prev.Lat != next.Lat || prev.Lng != next.Lng
}

// IsProjectFiltersChanged compares the fields that drive a job location query.
func IsProjectFiltersChanged(prev, next Filters) bool {
	return IsFiltersChanged(prev, next) ||
		prev.DatePosted != next.DatePosted ||
		prev.ProjectType != next.ProjectType ||
		prev.BudgetFrom != next.BudgetFrom ||
		prev.BudgetTo != next.BudgetTo
}

// Changed dispatches to the comparison for kind.
func Changed(kind Kind, prev, next Filters) bool {
	if kind == KindJobs {
		return IsProjectFiltersChanged(prev, next)
	}
	return IsFiltersChanged(prev, next)
}

// Path is the query a filter update resolves to.
type Path string

const (
	PathNone     Path = "none"
	PathText     Path = "text"
	PathLocation Path = "location"
)

// QueryPlan is the outcome of comparing two filter snapshots.
type QueryPlan struct {
	Path    Path    `json:"path"`
	Page    int     `json:"page"`
	Filters Filters `json:"filters"`
}

// Plan decides whether and how to re-query. Free text always takes the text path
// and only keeps the requested page while the text is unchanged.
// A changed location filter set restarts at page 1; an unchanged one only
// refetches when the requested page moved (load more).
func Plan(kind Kind, prev *Filters, next Filters) QueryPlan {
	page := next.Page
	if page < 1 {
		page = 1
	}

	if next.HasText() {
		if prev == nil || !prev.HasText() || strings.TrimSpace(prev.SearchText) != strings.TrimSpace(next.SearchText) {
			page = 1
		}
		next.Page = page
		return QueryPlan{Path: PathText, Page: page, Filters: next}
	}

	// first load, or the user just cleared the search box
	if prev == nil || prev.HasText() || Changed(kind, *prev, next) {
		next.Page = 1
		return QueryPlan{Path: PathLocation, Page: 1, Filters: next}
	}

	prevPage := prev.Page
	if prevPage < 1 {
		prevPage = 1
	}
	if page != prevPage {
		next.Page = page
		return QueryPlan{Path: PathLocation, Page: page, Filters: next}
	}

	next.Page = prevPage
	return QueryPlan{Path: PathNone, Page: prevPage, Filters: next}
}

// PostedAfter converts the date bucket to a lower bound on creation time.
func (f Filters) PostedAfter(now time.Time) *time.Time {
	since := f.DatePosted.Since(now)
	if since.IsZero() {
		return nil
	}
	return &since
}
