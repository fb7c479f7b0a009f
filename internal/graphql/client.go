// Package graphql is the typed client for the marketplace GraphQL API. There is one method per
// operation the apps use; request and response shapes follow the API's schema.
package graphql

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	gql "github.com/machinebox/graphql"
)

var (
	// ErrUpstream wraps any failure reported by the API or the transport.
	ErrUpstream = errors.New("marketplace api error")
	// ErrNotFound is returned when a query resolves to null.
	ErrNotFound = errors.New("not found")
)

type tokenKey struct{}

// WithToken attaches the caller's bearer token to ctx. Every request run with ctx forwards it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token set by WithToken.
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// Client runs operations against one endpoint.
type Client struct {
	gql     *gql.Client
	timeout time.Duration
}

// NewClient creates a client. A zero timeout leaves deadlines to the caller's context.
func NewClient(endpoint string, timeout time.Duration, httpClient *http.Client) *Client {
	opts := []gql.ClientOption{}
	if httpClient != nil {
		opts = append(opts, gql.WithHTTPClient(httpClient))
	}
	return &Client{gql: gql.NewClient(endpoint, opts...), timeout: timeout}
}

func (c *Client) run(ctx context.Context, op, query string, vars map[string]interface{}, resp interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := gql.NewRequest(query)
	for k, v := range vars {
		req.Var(k, v)
	}
	if tok := TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	if err := c.gql.Run(ctx, req, resp); err != nil {
		log.Printf("GraphQL %s: %v", op, err)
		// the raw message is shown to the user as is
		return fmt.Errorf("%w: %s", ErrUpstream, strings.TrimPrefix(err.Error(), "graphql: "))
	}
	return nil
}

func notFound(op string) error {
	return fmt.Errorf("%w: %s returned null", ErrNotFound, op)
}
