package services

import (
	"context"

	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/transport/dto"

	"github.com/google/uuid"
)

type notificationService struct {
	gateway NotificationGateway
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(gateway NotificationGateway) NotificationService {
	return &notificationService{gateway: gateway}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, page int) (*models.Page[models.Notification], error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if page < 1 {
		page = 1
	}
	list, err := s.gateway.Notifications(ctx, page, search.PageSize)
	if err != nil {
		return nil, MapGatewayError(err, "listing notifications")
	}
	return list, nil
}

func (s *notificationService) Mark(ctx context.Context, userID, id uuid.UUID, req *dto.MarkNotificationRequest) (*models.Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	n, err := s.gateway.MarkNotification(ctx, id, req.Read)
	if err != nil {
		return nil, MapGatewayError(err, "marking notification")
	}
	return n, nil
}
