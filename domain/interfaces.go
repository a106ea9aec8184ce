package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByAPIKey(ctx context.Context, key string) (*User, error)
	Update(ctx context.Context, user *User) error
	RotateAPIKey(ctx context.Context, id uint, key string) error
	Delete(ctx context.Context, id uint) error
}

// ReminderRepository defines reminder data access operations. Every lookup
// is scoped by the owning user; an ownership miss is ErrReminderNotFound.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, id, userID uint) (*Reminder, error)
	List(ctx context.Context, userID uint, filter *ReminderFilter) ([]Reminder, error)
	Counts(ctx context.Context, userID uint, filter *ReminderFilter) (*ReminderCounts, error)
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id, userID uint) error
}

// TagRepository defines tag data access operations plus the replace-all
// association protocol between reminders and tags.
type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	FindByID(ctx context.Context, id, userID uint) (*Tag, error)
	List(ctx context.Context, userID uint) ([]Tag, error)
	Update(ctx context.Context, tag *Tag) error
	Delete(ctx context.Context, id, userID uint) error
	// ReplaceAssociations atomically swaps the full tag set of a reminder.
	// Any missing or foreign row fails the whole call and leaves the prior
	// associations untouched.
	ReplaceAssociations(ctx context.Context, reminderID uint, tagIDs []uint, userID uint) error
	ListByReminder(ctx context.Context, reminderID, userID uint) ([]Tag, error)
}

// NotificationRepository defines notification data access operations, all
// ownership-scoped through the parent reminder. Creating a Success
// notification completes the parent reminder in the same transaction.
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification, userID uint) error
	FindByID(ctx context.Context, id, userID uint) (*Notification, error)
	ListByReminder(ctx context.Context, reminderID, userID uint) ([]Notification, error)
	Update(ctx context.Context, notification *Notification, userID uint) error
	Delete(ctx context.Context, id, userID uint) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint, sessionID string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// KeyService generates long-lived API keys
type KeyService interface {
	NewKey() string
}

// TokenClaims represents the claims embedded in a session token
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// MessagingGateway is the outbound WhatsApp provider contract. Calls are
// synchronous and failures surface immediately; there is no retry policy.
type MessagingGateway interface {
	SendText(ctx context.Context, phone, message string, delayMs int) error
	VerifyNumbers(ctx context.Context, numbers []string) ([]NumberCheck, error)
	SendContact(ctx context.Context, phone string, card ContactCard) error
}

// AccountService defines registration, authentication and profile logic
type AccountService interface {
	Register(ctx context.Context, name, email, password, phone string) (*User, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, upd *UserUpdate) (*User, error)
	RegenerateAPIKey(ctx context.Context, userID uint) (string, error)
	Logout(ctx context.Context, sessionID string) error
	DeleteAccount(ctx context.Context, userID uint) error
}

// ReminderWithNext pairs a reminder with its derived next occurrence
type ReminderWithNext struct {
	Reminder
	NextOccurrence *time.Time
}

// ReminderList is a reminder listing plus its group-by metadata
type ReminderList struct {
	Items  []ReminderWithNext
	Counts *ReminderCounts
}

// ReminderService defines reminder business logic
type ReminderService interface {
	Create(ctx context.Context, userID uint, reminder *Reminder) error
	List(ctx context.Context, userID uint, filter *ReminderFilter) (*ReminderList, error)
	Update(ctx context.Context, userID, id uint, upd *ReminderUpdate) (*Reminder, error)
	Delete(ctx context.Context, userID, id uint) error
}

// TagService defines tag business logic and association management
type TagService interface {
	Create(ctx context.Context, userID uint, tag *Tag) error
	List(ctx context.Context, userID uint) ([]Tag, error)
	Update(ctx context.Context, userID, id uint, upd *TagUpdate) (*Tag, error)
	Delete(ctx context.Context, userID, id uint) error
	ReplaceAssociations(ctx context.Context, userID, reminderID uint, tagIDs []uint) error
	ListByReminder(ctx context.Context, userID, reminderID uint) ([]Tag, error)
}

// NotificationService defines notification log business logic
type NotificationService interface {
	Create(ctx context.Context, userID uint, notification *Notification) error
	ListByReminder(ctx context.Context, userID, reminderID uint) ([]Notification, error)
	Update(ctx context.Context, userID, id uint, upd *NotificationUpdate) (*Notification, error)
	Delete(ctx context.Context, userID, id uint) error
}

// MessageService defines outbound messaging operations
type MessageService interface {
	SendWhatsApp(ctx context.Context, phone, message string, delayMs int) error
	VerifyNumbers(ctx context.Context, numbers []string) ([]NumberCheck, error)
	SendContact(ctx context.Context, phone string, card ContactCard) error
}
