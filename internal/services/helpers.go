package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"marketplace-bff/internal/graphql"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/session"

	"github.com/google/uuid"
)

// MapGatewayError maps GraphQL client errors to service errors
func MapGatewayError(err error, operation string) error {
	if errors.Is(err, graphql.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, ErrUpstream) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %v", ErrUpstream, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected gateway error during %s: %v", operation, err)
	return fmt.Errorf("%w: %s: %v", ErrUpstream, operation, err)
}

func sessionID(userID uuid.UUID) string {
	return userID.String()
}

// currentUser returns the cached user, refreshing the cache from the API on a miss.
func currentUser(ctx context.Context, store SessionStore, users UserGateway, userID uuid.UUID) (*models.User, session.State, error) {
	if userID == uuid.Nil {
		return nil, session.State{}, ErrUnauthorized
	}
	st, err := store.Load(ctx, sessionID(userID))
	if err != nil {
		log.Printf("Session: failed to load %s: %v", userID, err)
		return nil, session.State{}, fmt.Errorf("internal error loading session: %w", err)
	}
	if st.User != nil && st.User.ID == userID {
		return st.User, st, nil
	}

	user, err := users.User(ctx, userID)
	if err != nil {
		return nil, session.State{}, MapGatewayError(err, "fetching user")
	}
	st, err = store.Dispatch(ctx, sessionID(userID), session.UserUpdated{User: *user})
	if err != nil {
		return nil, session.State{}, fmt.Errorf("internal error caching user: %w", err)
	}
	return st.User, st, nil
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }

func sortedMessages(fields map[string]string) []string {
	msgs := make([]string, 0, len(fields))
	for _, msg := range fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return msgs
}
