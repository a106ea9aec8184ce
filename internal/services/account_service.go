package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you/remindersvc/domain"
)

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	keySvc      domain.KeyService
	sessionTTL  time.Duration
	tokenTTL    time.Duration
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	keySvc domain.KeyService,
	sessionTTL, tokenTTL time.Duration,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		keySvc:      keySvc,
		sessionTTL:  sessionTTL,
		tokenTTL:    tokenTTL,
	}
}

// Register implements domain.AccountService
func (s *AccountServiceImpl) Register(ctx context.Context, name, email, password, phone string) (*domain.User, error) {
	if name == "" {
		return nil, domain.NewValidationError("nome", "is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("senha", "is required")
	}
	if phone == "" {
		return nil, domain.NewValidationError("telefone", "is required")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}
	if _, err := s.userRepo.FindByPhone(ctx, phone); err == nil {
		return nil, domain.ErrPhoneTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		Status:       domain.UserActive,
		APIKey:       s.keySvc.NewKey(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login implements domain.AccountService. The identifier is an email when
// it contains an @, a phone number otherwise.
func (s *AccountServiceImpl) Login(ctx context.Context, identifier, password string) (*domain.AuthResult, error) {
	var user *domain.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByPhone(ctx, identifier)
	}
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status != domain.UserActive {
		return nil, domain.ErrUserInactive
	}
	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		APIKey:    user.APIKey,
		SessionID: session.ID,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// Profile implements domain.AccountService
func (s *AccountServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AccountService
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, userID uint, upd *domain.UserUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil && *upd.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, *upd.Email); err == nil {
			return nil, domain.ErrEmailTaken
		}
	}
	if upd.Phone != nil && *upd.Phone != user.Phone {
		if _, err := s.userRepo.FindByPhone(ctx, *upd.Phone); err == nil {
			return nil, domain.ErrPhoneTaken
		}
	}

	user.Apply(upd)
	if user.Name == "" {
		return nil, domain.NewValidationError("nome", "is required")
	}
	if user.Email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if user.Phone == "" {
		return nil, domain.NewValidationError("telefone", "is required")
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegenerateAPIKey implements domain.AccountService. The previous key stops
// matching immediately.
func (s *AccountServiceImpl) RegenerateAPIKey(ctx context.Context, userID uint) (string, error) {
	key := s.keySvc.NewKey()
	if err := s.userRepo.RotateAPIKey(ctx, userID, key); err != nil {
		return "", err
	}
	return key, nil
}

// Logout implements domain.AccountService
func (s *AccountServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// DeleteAccount implements domain.AccountService
func (s *AccountServiceImpl) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}
