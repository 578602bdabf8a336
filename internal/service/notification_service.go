package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"lagtalk/internal/model"
	"lagtalk/internal/repository"
)

// NotificationService stores and reads per-user notifications. Delivery is
// pull-based; there is no push channel here.
type NotificationService interface {
	Notify(ctx context.Context, userID string, kind model.NotificationType, payload map[string]interface{}) error
	List(ctx context.Context, userID string, skip, limit int) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	notifications repository.NotificationRepository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

// Notify records a notification for the user. Self-notifications are the
// caller's responsibility to avoid.
func (s *notificationService) Notify(ctx context.Context, userID string, kind model.NotificationType, payload map[string]interface{}) error {
	content, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	notification := &model.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Type:    kind,
		Content: string(content),
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, userID string, skip, limit int) ([]model.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, skip, limit)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.notifications.MarkRead(ctx, userID, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notifications.MarkAllRead(ctx, userID)
}
