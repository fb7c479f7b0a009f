package handlers

import (
	"errors"
	"net/http"

	"marketplace-bff/internal/navigation"
	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SessionHandler serves login, the cached session and the device preferences kept with it.
type SessionHandler struct {
	service   services.SessionService
	validator *validator.Validate
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service services.SessionService, validate *validator.Validate) *SessionHandler {
	return &SessionHandler{service: service, validator: validate}
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates against the marketplace API and starts a session. The returned access token is the bearer for every other call.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Login credentials"
// @Success      200 {object}  dto.LoginResponse
// @Failure      400 {object}  map[string]string "Invalid input"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Log out
// @Description  Clears every value stored for the session. The theme preference is kept.
// @Tags         session
// @Success      204 "Logged out"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /session/logout [post]
// @Security     BearerAuth
func (h *SessionHandler) Logout(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSession godoc
// @Summary      Get the session
// @Description  Returns the cached user, the selected view, theme, location and last used filters.
// @Tags         session
// @Produce      json
// @Success      200 {object}  session.State
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /session [get]
// @Security     BearerAuth
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	st, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, st)
}

// SetView godoc
// @Summary      Switch view
// @Description  Switches between the client and contractor side. Contractor view needs a contractor profile.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        view body      dto.SetViewRequest true  "View"
// @Success      200 {object}  session.State
// @Failure      400 {object}  map[string]string "Invalid input"
// @Failure      403 {object}  map[string]string "Not a contractor"
// @Router       /session/view [put]
// @Security     BearerAuth
func (h *SessionHandler) SetView(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.SetViewRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	st, err := h.service.SetView(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to switch view")
		return
	}
	c.JSON(http.StatusOK, st)
}

// GetTheme godoc
// @Summary      Get the theme
// @Description  Returns the typed theme for the session, or the configured default for anonymous callers.
// @Tags         session
// @Produce      json
// @Success      200 {object}  theme.Theme
// @Router       /theme [get]
func (h *SessionHandler) GetTheme(c *gin.Context) {
	t, err := h.service.Theme(c.Request.Context(), optionalUserID(c))
	if err != nil {
		respondError(c, err, "Failed to load theme")
		return
	}
	c.JSON(http.StatusOK, t)
}

// SetTheme godoc
// @Summary      Select a theme
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        theme body      dto.SetThemeRequest true  "Theme name"
// @Success      200 {object}  theme.Theme
// @Failure      400 {object}  map[string]string "Invalid input"
// @Router       /session/theme [put]
// @Security     BearerAuth
func (h *SessionHandler) SetTheme(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.SetThemeRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	t, err := h.service.SetTheme(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to save theme")
		return
	}
	c.JSON(http.StatusOK, t)
}

// GetLocation godoc
// @Summary      Get the device location
// @Tags         session
// @Produce      json
// @Success      200 {object}  location.State
// @Router       /session/location [get]
// @Security     BearerAuth
func (h *SessionHandler) GetLocation(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	loc, err := h.service.Location(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load location")
		return
	}
	c.JSON(http.StatusOK, loc)
}

// SetLocation godoc
// @Summary      Report the device location
// @Description  Stores the outcome of the permission prompt. When denied, the response lists the recovery options to render.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        location body      dto.SetLocationRequest true  "Permission and coordinates"
// @Success      200 {object}  dto.SetLocationResponse
// @Failure      400 {object}  map[string]string "Invalid input"
// @Failure      422 {object}  map[string]interface{} "Coordinates missing"
// @Router       /session/location [put]
// @Security     BearerAuth
func (h *SessionHandler) SetLocation(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.SetLocationRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	resp, err := h.service.SetLocation(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "Failed to save location")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResolveDeepLink godoc
// @Summary      Resolve a deep link
// @Description  Maps an email verification or password reset link to a route and its token.
// @Tags         navigation
// @Produce      json
// @Param        url query     string true  "Incoming link"
// @Success      200 {object}  navigation.DeepLink
// @Failure      400 {object}  map[string]string "Unsupported link"
// @Router       /links/resolve [get]
func (h *SessionHandler) ResolveDeepLink(c *gin.Context) {
	var req dto.ResolveDeepLinkRequest
	if !bindQuery(c, nil, &req) {
		return
	}
	link, err := navigation.ParseDeepLink(req.URL)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, navigation.ErrMissingToken) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, link)
}

// ListRoutes godoc
// @Summary      List client routes
// @Tags         navigation
// @Produce      json
// @Success      200 {array}  string
// @Router       /links/routes [get]
func (h *SessionHandler) ListRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, navigation.Routes)
}
