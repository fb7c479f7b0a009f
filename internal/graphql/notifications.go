package graphql

import (
	"context"

	"marketplace-bff/internal/models"

	"github.com/google/uuid"
)

const notificationFields = `id type read jobId bidId createdAt`

const notificationsQuery = `
query Notifications($page: Int!, $limit: Int!) {
	notifications(page: $page, limit: $limit) {
		page hasMore
		items {` + notificationFields + `}
	}
}`

// Notifications lists the caller's notifications, newest first.
func (c *Client) Notifications(ctx context.Context, page, pageSize int) (*models.Page[models.Notification], error) {
	var resp struct {
		Page *models.Page[models.Notification] `json:"notifications"`
	}
	err := c.run(ctx, "notifications", notificationsQuery, map[string]interface{}{"page": page, "limit": pageSize}, &resp)
	if err != nil {
		return nil, err
	}
	return pageOrEmpty(resp.Page, page), nil
}

const markNotificationMutation = `
mutation MarkNotification($id: ID!, $read: Boolean!) {
	markNotification(id: $id, read: $read) {` + notificationFields + `}
}`

// MarkNotification sets the read flag.
func (c *Client) MarkNotification(ctx context.Context, id uuid.UUID, read bool) (*models.Notification, error) {
	var resp struct {
		MarkNotification *models.Notification `json:"markNotification"`
	}
	err := c.run(ctx, "markNotification", markNotificationMutation, map[string]interface{}{"id": id, "read": read}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.MarkNotification == nil {
		return nil, notFound("markNotification")
	}
	return resp.MarkNotification, nil
}
