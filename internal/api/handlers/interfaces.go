// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// SessionHandlerInterface defines the methods needed by the session routes.
type SessionHandlerInterface interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	GetSession(c *gin.Context)
	SetView(c *gin.Context)
	GetTheme(c *gin.Context)
	SetTheme(c *gin.Context)
	GetLocation(c *gin.Context)
	SetLocation(c *gin.Context)
	ResolveDeepLink(c *gin.Context)
	ListRoutes(c *gin.Context)
}

// WizardHandlerInterface defines the methods needed by the job posting routes.
type WizardHandlerInterface interface {
	Start(c *gin.Context)
	Get(c *gin.Context)
	UpdateForm(c *gin.Context)
	Next(c *gin.Context)
	Back(c *gin.Context)
	Submit(c *gin.Context)
	UploadImage(c *gin.Context)
	Validate(c *gin.Context)
}

// BidHandlerInterface defines the methods needed by the bid routes.
type BidHandlerInterface interface {
	PlaceBid(c *gin.Context)
	AcceptBid(c *gin.Context)
	RejectBid(c *gin.Context)
	CompleteBid(c *gin.Context)
	CompleteJob(c *gin.Context)
	SubmitReview(c *gin.Context)
	BidAction(c *gin.Context)
}

// SearchHandlerInterface defines the methods needed by the nearby search routes.
type SearchHandlerInterface interface {
	SearchContractors(c *gin.Context)
	SearchJobs(c *gin.Context)
	Geocode(c *gin.Context)
}

// ProfileHandlerInterface defines the methods needed by the profile routes.
type ProfileHandlerInterface interface {
	Me(c *gin.Context)
	UpdateSection(c *gin.Context)
	Skills(c *gin.Context)
}

// NotificationHandlerInterface defines the methods needed by the notification routes.
type NotificationHandlerInterface interface {
	List(c *gin.Context)
	Mark(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ SessionHandlerInterface      = (*SessionHandler)(nil)
	_ WizardHandlerInterface       = (*WizardHandler)(nil)
	_ BidHandlerInterface          = (*BidHandler)(nil)
	_ SearchHandlerInterface       = (*SearchHandler)(nil)
	_ ProfileHandlerInterface      = (*ProfileHandler)(nil)
	_ NotificationHandlerInterface = (*NotificationHandler)(nil)
)
