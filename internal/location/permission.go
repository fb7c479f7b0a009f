// Package location tracks the device location permission and what to offer when it is denied.
package location

import "fmt"

// Permission is the outcome of the OS location prompt.
type Permission string

const (
	PermissionUndetermined Permission = ""
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
	PermissionSkipped      Permission = "skipped"
)

// ParsePermission validates a permission string sent by a client.
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(s); p {
	case PermissionGranted, PermissionDenied, PermissionSkipped:
		return p, nil
	default:
		return PermissionUndetermined, fmt.Errorf("invalid location permission %q", s)
	}
}

// Option is a recovery choice offered on the denied screen.
type Option string

const (
	OptionOpenSettings Option = "openSettings"
	OptionSkip         Option = "skip"
	OptionRetry        Option = "retry"
)

// Recovery lists what the permission screen offers for p. Granted and skipped need nothing.
func Recovery(p Permission) []Option {
	switch p {
	case PermissionDenied:
		return []Option{OptionOpenSettings, OptionSkip}
	case PermissionUndetermined:
		return []Option{OptionRetry, OptionSkip}
	default:
		return nil
	}
}

// State is the last known location of the device.
type State struct {
	Permission Permission `json:"permission"`
	Lat        float64    `json:"lat,omitempty"`
	Lng        float64    `json:"lng,omitempty"`
	Address    string     `json:"address,omitempty"`
}

// Known reports whether coordinates can be used for a nearby query.
func (s State) Known() bool {
	return s.Permission == PermissionGranted && (s.Lat != 0 || s.Lng != 0)
}
