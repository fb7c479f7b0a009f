package services

import (
	"errors"
	"strings"

	"marketplace-bff/internal/graphql"
)

// Define common service errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthorized    = errors.New("not logged in")
	ErrValidation      = errors.New("validation failed")
	ErrInvalidState    = errors.New("invalid state for operation")
	ErrRequestInFlight = errors.New("a request is already in progress")
	ErrLocationDenied  = errors.New("location permission not granted")
	// ErrUpstream is shared with the GraphQL client so API errors pass through unchanged.
	ErrUpstream = graphql.ErrUpstream
)

// ValidationError carries the inline field errors and the aggregated toast messages.
type ValidationError struct {
	Messages []string            `json:"messages"`
	Fields   map[string][]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func newValidationError(msgs []string, fields map[string][]string) *ValidationError {
	return &ValidationError{Messages: msgs, Fields: fields}
}

// singleFields adapts one-message-per-field maps.
func singleFields(in map[string]string) map[string][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = []string{v}
	}
	return out
}
