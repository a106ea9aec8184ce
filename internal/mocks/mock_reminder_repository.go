package mocks

import (
	"context"

	"github.com/you/remindersvc/domain"
)

// MockReminderRepository implements domain.ReminderRepository for testing
type MockReminderRepository struct {
	CreateFunc   func(ctx context.Context, reminder *domain.Reminder) error
	FindByIDFunc func(ctx context.Context, id, userID uint) (*domain.Reminder, error)
	ListFunc     func(ctx context.Context, userID uint, filter *domain.ReminderFilter) ([]domain.Reminder, error)
	CountsFunc   func(ctx context.Context, userID uint, filter *domain.ReminderFilter) (*domain.ReminderCounts, error)
	UpdateFunc   func(ctx context.Context, reminder *domain.Reminder) error
	DeleteFunc   func(ctx context.Context, id, userID uint) error
}

// NewMockReminderRepository creates a new MockReminderRepository with default behaviors
func NewMockReminderRepository() *MockReminderRepository {
	return &MockReminderRepository{}
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reminder)
	}
	return nil
}

func (m *MockReminderRepository) FindByID(ctx context.Context, id, userID uint) (*domain.Reminder, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, userID)
	}
	return nil, domain.ErrReminderNotFound
}

func (m *MockReminderRepository) List(ctx context.Context, userID uint, filter *domain.ReminderFilter) ([]domain.Reminder, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return nil, nil
}

func (m *MockReminderRepository) Counts(ctx context.Context, userID uint, filter *domain.ReminderFilter) (*domain.ReminderCounts, error) {
	if m.CountsFunc != nil {
		return m.CountsFunc(ctx, userID, filter)
	}
	return &domain.ReminderCounts{
		ByCategory:  map[string]int64{},
		ByStatus:    map[string]int64{},
		ByFrequency: map[string]int64{},
	}, nil
}

func (m *MockReminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, reminder)
	}
	return nil
}

func (m *MockReminderRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

var _ domain.ReminderRepository = (*MockReminderRepository)(nil)
