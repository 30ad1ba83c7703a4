package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/officedesk/officeops-backend-go/internal/domain/notification"
	"github.com/officedesk/officeops-backend-go/internal/domain/user"
)

type NotificationServiceImpl struct {
	notificationRepository notification.Repository
	userRepository         user.Repository
}

func NewNotificationService(notificationRepository notification.Repository, userRepository user.Repository) notification.Service {
	return &NotificationServiceImpl{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
	}
}

// Notify implements notification.Service.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID string, typ notification.Type, title, message, relatedID string) error {
	n := notification.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		RelatedID: relatedID,
		CreatedAt: time.Now(),
	}
	if _, err := s.notificationRepository.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// NotifyAdmins implements notification.Service.
func (s *NotificationServiceImpl) NotifyAdmins(ctx context.Context, title, message string) error {
	admins, err := s.userRepository.ListByRole(ctx, user.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	for _, admin := range admins {
		if err := s.Notify(ctx, admin.ID, notification.TypeSystem, title, message, ""); err != nil {
			return err
		}
	}
	return nil
}

// ListByUser implements notification.Service.
func (s *NotificationServiceImpl) ListByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	return s.notificationRepository.ListByUser(ctx, userID)
}

// MarkAllRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllRead(ctx, userID)
}
