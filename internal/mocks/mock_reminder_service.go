package mocks

import (
	"context"

	"github.com/you/remindersvc/domain"
)

// MockReminderService implements domain.ReminderService for testing
type MockReminderService struct {
	CreateFunc func(ctx context.Context, userID uint, reminder *domain.Reminder) error
	ListFunc   func(ctx context.Context, userID uint, filter *domain.ReminderFilter) (*domain.ReminderList, error)
	UpdateFunc func(ctx context.Context, userID, id uint, upd *domain.ReminderUpdate) (*domain.Reminder, error)
	DeleteFunc func(ctx context.Context, userID, id uint) error
}

func (m *MockReminderService) Create(ctx context.Context, userID uint, reminder *domain.Reminder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, reminder)
	}
	return nil
}

func (m *MockReminderService) List(ctx context.Context, userID uint, filter *domain.ReminderFilter) (*domain.ReminderList, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return &domain.ReminderList{}, nil
}

func (m *MockReminderService) Update(ctx context.Context, userID, id uint, upd *domain.ReminderUpdate) (*domain.Reminder, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, upd)
	}
	return nil, domain.ErrReminderNotFound
}

func (m *MockReminderService) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

var _ domain.ReminderService = (*MockReminderService)(nil)
