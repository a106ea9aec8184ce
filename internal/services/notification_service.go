package services

import (
	"context"
	"time"

	"github.com/you/remindersvc/domain"
)

// NotificationServiceImpl implements domain.NotificationService
type NotificationServiceImpl struct {
	notificationRepo domain.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo domain.NotificationRepository) domain.NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

// Create implements domain.NotificationService. A Success outcome completes
// the parent reminder; the repository performs both writes in one
// transaction.
func (s *NotificationServiceImpl) Create(ctx context.Context, userID uint, notification *domain.Notification) error {
	if notification.SentAt.IsZero() {
		notification.SentAt = time.Now()
	}
	if err := notification.Validate(); err != nil {
		return err
	}
	return s.notificationRepo.Create(ctx, notification, userID)
}

// ListByReminder implements domain.NotificationService
func (s *NotificationServiceImpl) ListByReminder(ctx context.Context, userID, reminderID uint) ([]domain.Notification, error) {
	return s.notificationRepo.ListByReminder(ctx, reminderID, userID)
}

// Update implements domain.NotificationService
func (s *NotificationServiceImpl) Update(ctx context.Context, userID, id uint, upd *domain.NotificationUpdate) (*domain.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	notification.Apply(upd)
	if err := notification.Validate(); err != nil {
		return nil, err
	}
	if err := s.notificationRepo.Update(ctx, notification, userID); err != nil {
		return nil, err
	}
	return notification, nil
}

// Delete implements domain.NotificationService
func (s *NotificationServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	return s.notificationRepo.Delete(ctx, id, userID)
}
