// Package navigation holds the flat route table shared by the clients and resolves deep links into routes.
package navigation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Route is a screen name understood by the client routers.
type Route string

const (
	RouteSignUp         Route = "user/signUp"
	RouteLogIn          Route = "user/logIn"
	RouteDashboard      Route = "user/dashboard"
	RouteVerifyEmail    Route = "user/verifyEmail"
	RouteResetPassword  Route = "user/resetPassword"
	RouteProfile        Route = "user/profile"
	RouteNotifications  Route = "user/notifications"
	RouteJobPost        Route = "job/post"
	RouteJobDetails     Route = "job/details"
	RouteJobBids        Route = "job/bids"
	RouteContractorHome Route = "contractor/home"
	RouteClientHome     Route = "client/home"
)

// Routes lists every known route.
var Routes = []Route{
	RouteSignUp, RouteLogIn, RouteDashboard, RouteVerifyEmail, RouteResetPassword,
	RouteProfile, RouteNotifications, RouteJobPost, RouteJobDetails, RouteJobBids,
	RouteContractorHome, RouteClientHome,
}

// Known reports whether r is in the route table.
func Known(r Route) bool {
	for _, known := range Routes {
		if known == r {
			return true
		}
	}
	return false
}

var (
	ErrUnsupportedLink = errors.New("unsupported deep link")
	ErrMissingToken    = errors.New("deep link has no token")
)

// DeepLink is an incoming URL resolved to a route.
type DeepLink struct {
	Route Route             `json:"route"`
	Token string            `json:"token,omitempty"`
	Email string            `json:"email,omitempty"`
	Query map[string]string `json:"query,omitempty"`
}

// path suffix -> route for links that carry a one-time token
var tokenLinks = map[string]Route{
	"verify-email":   RouteVerifyEmail,
	"verifyemail":    RouteVerifyEmail,
	"reset-password": RouteResetPassword,
	"resetpassword":  RouteResetPassword,
}

// ParseDeepLink reads an email-verification or password-reset link. Both
// https://host/verify-email?token=... and app-scheme links (app://reset-password?token=...) are accepted.
func ParseDeepLink(raw string) (DeepLink, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return DeepLink{}, fmt.Errorf("%w: %v", ErrUnsupportedLink, err)
	}

	// for scheme://verify-email the action lands in Host, for https it is the last path segment
	segment := strings.Trim(u.Path, "/")
	if segment == "" {
		segment = u.Host
	}
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}

	route, ok := tokenLinks[strings.ToLower(segment)]
	if !ok {
		return DeepLink{}, fmt.Errorf("%w: %s", ErrUnsupportedLink, segment)
	}

	q := u.Query()
	token := strings.TrimSpace(q.Get("token"))
	if token == "" {
		return DeepLink{}, ErrMissingToken
	}

	link := DeepLink{Route: route, Token: token, Email: q.Get("email")}
	for k := range q {
		if k == "token" || k == "email" {
			continue
		}
		if link.Query == nil {
			link.Query = make(map[string]string)
		}
		link.Query[k] = q.Get(k)
	}
	return link, nil
}
