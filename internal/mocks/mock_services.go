package mocks

import (
	"context"
	"time"

	"github.com/you/remindersvc/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, sessionID string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func (m *MockTokenService) Generate(userID uint, sessionID string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, sessionID)
	}
	return "token", nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockKeyService implements domain.KeyService for testing
type MockKeyService struct {
	NewKeyFunc func() string
}

func (m *MockKeyService) NewKey() string {
	if m.NewKeyFunc != nil {
		return m.NewKeyFunc()
	}
	return "test-api-key"
}

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *domain.Session) error
	FindByIDFunc func(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteFunc   func(ctx context.Context, sessionID string) error
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	return &domain.Session{ID: sessionID, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

// MockMessagingGateway implements domain.MessagingGateway for testing
type MockMessagingGateway struct {
	SendTextFunc      func(ctx context.Context, phone, message string, delayMs int) error
	VerifyNumbersFunc func(ctx context.Context, numbers []string) ([]domain.NumberCheck, error)
	SendContactFunc   func(ctx context.Context, phone string, card domain.ContactCard) error
}

func (m *MockMessagingGateway) SendText(ctx context.Context, phone, message string, delayMs int) error {
	if m.SendTextFunc != nil {
		return m.SendTextFunc(ctx, phone, message, delayMs)
	}
	return nil
}

func (m *MockMessagingGateway) VerifyNumbers(ctx context.Context, numbers []string) ([]domain.NumberCheck, error) {
	if m.VerifyNumbersFunc != nil {
		return m.VerifyNumbersFunc(ctx, numbers)
	}
	return nil, nil
}

func (m *MockMessagingGateway) SendContact(ctx context.Context, phone string, card domain.ContactCard) error {
	if m.SendContactFunc != nil {
		return m.SendContactFunc(ctx, phone, card)
	}
	return nil
}

var (
	_ domain.PasswordService   = (*MockPasswordService)(nil)
	_ domain.TokenService      = (*MockTokenService)(nil)
	_ domain.KeyService        = (*MockKeyService)(nil)
	_ domain.SessionRepository = (*MockSessionRepository)(nil)
	_ domain.MessagingGateway  = (*MockMessagingGateway)(nil)
)
