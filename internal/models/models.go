package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- User Type / View Enums ---
type UserType string

const (
	UserTypeClient     UserType = "client"
	UserTypeContractor UserType = "contractor"
)

// UserView is the side of the marketplace the user is currently browsing as.
type UserView string

const (
	UserViewClient     UserView = "client"
	UserViewContractor UserView = "contractor"
)

func (v UserView) Valid() bool {
	return v == UserViewClient || v == UserViewContractor
}

// Scan implements the sql.Scanner interface for UserView
func (v *UserView) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan UserView: value is not string or []byte")
		}
	}
	uv := UserView(strVal)
	if !uv.Valid() {
		return fmt.Errorf("invalid UserView value: %s", strVal)
	}
	*v = uv
	return nil
}

// Value implements the driver.Valuer interface for UserView
func (v UserView) Value() (driver.Value, error) {
	return string(v), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusDraft      JobStatus = "Draft"
	JobStatusOpen       JobStatus = "Open"
	JobStatusInProgress JobStatus = "InProgress"
	JobStatusCompleted  JobStatus = "Completed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusOpen, JobStatusInProgress, JobStatusCompleted:
		return true
	default:
		return false
	}
}

// --- Bid Status Enum ---
type BidStatus string

const (
	BidStatusOpen      BidStatus = "Open"
	BidStatusAccepted  BidStatus = "Accepted"
	BidStatusRejected  BidStatus = "Rejected"
	BidStatusCompleted BidStatus = "Completed"
)

func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusOpen, BidStatusAccepted, BidStatusRejected, BidStatusCompleted:
		return true
	default:
		return false
	}
}

// --- Budget Type Enum ---
type BudgetType string

const (
	BudgetTypeProject BudgetType = "Project"
	BudgetTypeHourly  BudgetType = "Hourly"
)

func (t BudgetType) Valid() bool {
	return t == BudgetTypeProject || t == BudgetTypeHourly
}

// --- Notification Type Enum ---
type NotificationType string

const (
	NotificationBidPlaced    NotificationType = "BidPlaced"
	NotificationBidAccepted  NotificationType = "BidAccepted"
	NotificationBidRejected  NotificationType = "BidRejected"
	NotificationBidCompleted NotificationType = "BidCompleted"
	NotificationJobCompleted NotificationType = "JobCompleted"
	NotificationNewReview    NotificationType = "NewReview"
)

// --- Date Posted Bucket Enum ---
type DatePostedBucket string

const (
	DatePostedAny     DatePostedBucket = ""
	DatePosted24Hours DatePostedBucket = "24h"
	DatePosted3Days   DatePostedBucket = "3d"
	DatePosted7Days   DatePostedBucket = "7d"
	DatePosted30Days  DatePostedBucket = "30d"
)

// Since returns the earliest creation time matched by the bucket, or the zero time for "any".
func (b DatePostedBucket) Since(now time.Time) time.Time {
	switch b {
	case DatePosted24Hours:
		return now.Add(-24 * time.Hour)
	case DatePosted3Days:
		return now.AddDate(0, 0, -3)
	case DatePosted7Days:
		return now.AddDate(0, 0, -7)
	case DatePosted30Days:
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}

func (b DatePostedBucket) Valid() bool {
	switch b {
	case DatePostedAny, DatePosted24Hours, DatePosted3Days, DatePosted7Days, DatePosted30Days:
		return true
	default:
		return false
	}
}

// Address is a geocoded location picked by the user.
type Address struct {
	Formatted string  `json:"formatted"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// Skill is a selectable skill tag.
type Skill struct {
	Label string `json:"label"`
}

// User represents a marketplace account as returned by the API.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	Address       *Address   `json:"address,omitempty"`
	Image         string     `json:"image,omitempty"`
	UserTypes     []UserType `json:"userTypes"`
	AverageRating float64    `json:"averageRating"`
}

// HasType reports whether the user has opted into the given role.
func (u *User) HasType(t UserType) bool {
	if u == nil {
		return false
	}
	for _, ut := range u.UserTypes {
		if ut == t {
			return true
		}
	}
	return false
}

// Budget describes what the client is willing to pay.
type Budget struct {
	Type     BudgetType `json:"type"`
	From     float64    `json:"from"`
	To       float64    `json:"to"`
	MaxHours int        `json:"maxHours,omitempty"`
}

// Job is a posted task created by a client.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Skills      []Skill    `json:"skills"`
	Budget      Budget     `json:"budget"`
	Images      []string   `json:"images"`
	Address     *Address   `json:"address,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsDraft     bool       `json:"isDraft"`
	Status      JobStatus  `json:"status"`
	DraftExpiry *time.Time `json:"draftExpiry,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Bid is a contractor's proposal against a Job.
type Bid struct {
	ID                uuid.UUID  `json:"id"`
	JobID             uuid.UUID  `json:"jobId"`
	ContractorID      uuid.UUID  `json:"contractorId"`
	Quote             float64    `json:"quote"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	Proposal          string     `json:"proposal"`
	AgreementAccepted bool       `json:"agreementAccepted"`
	Status            BidStatus  `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// License is a trade license held by a contractor.
type License struct {
	Name       string     `json:"name"`
	Number     string     `json:"number"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
}

// Portfolio is a showcase entry on a contractor profile.
type Portfolio struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Contractor extends a User that has the contractor role.
type Contractor struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"userId"`
	User       *User       `json:"user,omitempty"`
	Skills     []Skill     `json:"skills"`
	Licenses   []License   `json:"licenses"`
	Portfolios []Portfolio `json:"portfolios"`
	Distance   float64     `json:"distance,omitempty"`
}

// Review is left by one party after a bid reaches Completed.
type Review struct {
	ID         uuid.UUID `json:"id"`
	ReviewerID uuid.UUID `json:"reviewerId"`
	ReviewedID uuid.UUID `json:"reviewedId"`
	JobID      uuid.UUID `json:"jobId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Notification is a bid or job lifecycle event addressed to the user.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	JobID     *uuid.UUID       `json:"jobId,omitempty"`
	BidID     *uuid.UUID       `json:"bidId,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Page is one page of a paginated list query.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Page    int  `json:"page"`
	HasMore bool `json:"hasMore"`
}
