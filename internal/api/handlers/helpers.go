package handlers

import (
	"errors"
	"log"
	"net/http"

	"marketplace-bff/internal/api/middleware"
	"marketplace-bff/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// userIDOrAbort reads the authenticated user and writes a 401 when there is none.
func userIDOrAbort(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// optionalUserID returns uuid.Nil for anonymous requests.
func optionalUserID(c *gin.Context) uuid.UUID {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		return uuid.Nil
	}
	return userID
}

// uuidParam parses a path parameter and writes a 400 on failure.
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the body into req and, when v is set, validates it.
func bindJSON(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return validateRequest(c, v, req)
}

// bindQuery decodes query parameters into req and validates it.
func bindQuery(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return validateRequest(c, v, req)
}

func validateRequest(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if v == nil {
		return true
	}
	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validation.FormatValidationErrors(verrs)})
		return false
	}
	return true
}
