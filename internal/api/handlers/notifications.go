package handlers

import (
	"net/http"
	"strconv"

	"marketplace-bff/internal/services"
	"marketplace-bff/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification list.
type NotificationHandler struct {
	service services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service services.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Param        page query int false "Page, starting at 1" default(1)
// @Success      200 {object}  map[string]interface{} "One page of notifications"
// @Failure      400 {object}  map[string]string "Invalid page"
// @Failure      502 {object}  map[string]string "Marketplace API error"
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	page := 1
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		page = p
	}
	list, err := h.service.List(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err, "Failed to load notifications")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Mark godoc
// @Summary      Mark a notification read or unread
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        id      path      string                      true "Notification ID" Format(uuid)
// @Param        request body      dto.MarkNotificationRequest true "Read flag"
// @Success      200 {object}  models.Notification
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Notification not found"
// @Router       /notifications/{id} [patch]
// @Security     BearerAuth
func (h *NotificationHandler) Mark(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "notification")
	if !ok {
		return
	}
	var req dto.MarkNotificationRequest
	if !bindJSON(c, nil, &req) {
		return
	}
	n, err := h.service.Mark(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update notification")
		return
	}
	c.JSON(http.StatusOK, n)
}
