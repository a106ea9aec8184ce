package mocks

import (
	"context"

	"github.com/you/remindersvc/domain"
)

// MockNotificationRepository implements domain.NotificationRepository for testing
type MockNotificationRepository struct {
	CreateFunc         func(ctx context.Context, notification *domain.Notification, userID uint) error
	FindByIDFunc       func(ctx context.Context, id, userID uint) (*domain.Notification, error)
	ListByReminderFunc func(ctx context.Context, reminderID, userID uint) ([]domain.Notification, error)
	UpdateFunc         func(ctx context.Context, notification *domain.Notification, userID uint) error
	DeleteFunc         func(ctx context.Context, id, userID uint) error
}

// NewMockNotificationRepository creates a new MockNotificationRepository with default behaviors
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification, userID uint) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notification, userID)
	}
	return nil
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id, userID uint) (*domain.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, userID)
	}
	return nil, domain.ErrNotificationNotFound
}

func (m *MockNotificationRepository) ListByReminder(ctx context.Context, reminderID, userID uint) ([]domain.Notification, error) {
	if m.ListByReminderFunc != nil {
		return m.ListByReminderFunc(ctx, reminderID, userID)
	}
	return nil, nil
}

func (m *MockNotificationRepository) Update(ctx context.Context, notification *domain.Notification, userID uint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, notification, userID)
	}
	return nil
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

var _ domain.NotificationRepository = (*MockNotificationRepository)(nil)
