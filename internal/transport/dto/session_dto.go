package dto

import "marketplace-bff/internal/models"

// SetViewRequest switches between client and contractor views.
type SetViewRequest struct {
	View models.UserView `json:"view" validate:"required,oneof=client contractor"`
}

// SetThemeRequest selects a theme by name.
type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// SetLocationRequest reports the device location, or the outcome of the permission prompt.
type SetLocationRequest struct {
	Permission string  `json:"permission" validate:"required,oneof=granted denied skipped"`
	Lat        float64 `json:"lat" validate:"omitempty,latitude"`
	Lng        float64 `json:"lng" validate:"omitempty,longitude"`
}

// SetLocationResponse tells the client what to render next.
type SetLocationResponse struct {
	Permission string   `json:"permission"`
	Address    string   `json:"address,omitempty"`
	Recovery   []string `json:"recovery,omitempty"`
}

// ResolveDeepLinkRequest carries an incoming URL.
type ResolveDeepLinkRequest struct {
	URL string `form:"url" validate:"required,url"`
}

// MarkNotificationRequest toggles the read flag.
type MarkNotificationRequest struct {
	Read bool `json:"read"`
}
