package mocks

import (
	"context"

	"github.com/you/remindersvc/domain"
)

// MockTagRepository implements domain.TagRepository for testing
type MockTagRepository struct {
	CreateFunc              func(ctx context.Context, tag *domain.Tag) error
	FindByIDFunc            func(ctx context.Context, id, userID uint) (*domain.Tag, error)
	ListFunc                func(ctx context.Context, userID uint) ([]domain.Tag, error)
	UpdateFunc              func(ctx context.Context, tag *domain.Tag) error
	DeleteFunc              func(ctx context.Context, id, userID uint) error
	ReplaceAssociationsFunc func(ctx context.Context, reminderID uint, tagIDs []uint, userID uint) error
	ListByReminderFunc      func(ctx context.Context, reminderID, userID uint) ([]domain.Tag, error)
}

// NewMockTagRepository creates a new MockTagRepository with default behaviors
func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{}
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) FindByID(ctx context.Context, id, userID uint) (*domain.Tag, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, userID)
	}
	return nil, domain.ErrTagNotFound
}

func (m *MockTagRepository) List(ctx context.Context, userID uint) ([]domain.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}

func (m *MockTagRepository) ReplaceAssociations(ctx context.Context, reminderID uint, tagIDs []uint, userID uint) error {
	if m.ReplaceAssociationsFunc != nil {
		return m.ReplaceAssociationsFunc(ctx, reminderID, tagIDs, userID)
	}
	return nil
}

func (m *MockTagRepository) ListByReminder(ctx context.Context, reminderID, userID uint) ([]domain.Tag, error) {
	if m.ListByReminderFunc != nil {
		return m.ListByReminderFunc(ctx, reminderID, userID)
	}
	return nil, nil
}

var _ domain.TagRepository = (*MockTagRepository)(nil)
