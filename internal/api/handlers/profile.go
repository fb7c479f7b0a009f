package handlers

import (
	"net/http"

	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the profile screen and its section editors.
type ProfileHandler struct {
	service services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me godoc
// @Summary      Get the current user
// @Description  Fetches the user from the marketplace API and refreshes the session copy.
// @Tags         profile
// @Produce      json
// @Success      200 {object}  models.User
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateSection godoc
// @Summary      Save a profile section
// @Description  Sections are bio, basic, skills, licenses and portfolio. The last three need a contractor profile.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        section path      string                   true "Section" Enums(bio, basic, skills, licenses, portfolio)
// @Param        request body      dto.UpdateProfileRequest true "Section content"
// @Success      200 {object}  dto.ProfileResponse
// @Failure      403 {object}  map[string]string "Section needs a contractor profile"
// @Failure      404 {object}  map[string]string "Unknown section"
// @Failure      422 {object}  map[string]interface{} "Section is invalid"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /profile/{section} [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateSection(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !bindJSON(c, nil, &req) {
		return
	}
	req.UserID = userID
	req.Section = c.Param("section")

	resp, err := h.service.UpdateSection(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to save profile")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Skills godoc
// @Summary      List skills
// @Description  The skill catalogue used by the job form and contractor profiles.
// @Tags         profile
// @Produce      json
// @Success      200 {array}   models.Skill
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /skills [get]
// @Security     BearerAuth
func (h *ProfileHandler) Skills(c *gin.Context) {
	skills, err := h.service.Skills(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}
