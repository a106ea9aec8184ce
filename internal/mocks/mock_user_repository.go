package mocks

import (
	"context"

	"github.com/you/remindersvc/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc       func(ctx context.Context, user *domain.User) error
	FindByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc  func(ctx context.Context, phone string) (*domain.User, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.User, error)
	FindByAPIKeyFunc func(ctx context.Context, key string) (*domain.User, error)
	UpdateFunc       func(ctx context.Context, user *domain.User) error
	RotateAPIKeyFunc func(ctx context.Context, id uint, key string) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByAPIKey(ctx context.Context, key string) (*domain.User, error) {
	if m.FindByAPIKeyFunc != nil {
		return m.FindByAPIKeyFunc(ctx, key)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) RotateAPIKey(ctx context.Context, id uint, key string) error {
	if m.RotateAPIKeyFunc != nil {
		return m.RotateAPIKeyFunc(ctx, id, key)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ domain.UserRepository = (*MockUserRepository)(nil)
