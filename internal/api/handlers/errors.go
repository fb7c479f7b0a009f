package handlers

import (
	"errors"
	"log"
	"net/http"

	"marketplace-bff/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. fallback is the message used for unexpected errors.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "Validation failed",
			"messages": verr.Messages,
			"fields":   verr.Fields,
		})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState), errors.Is(err, services.ErrRequestInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrLocationDenied):
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"error":    err.Error(),
			"recovery": []string{"openSettings", "skip"},
		})
	case errors.Is(err, services.ErrUpstream):
		// the API's message is shown as is
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.Printf("Handler: %s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
