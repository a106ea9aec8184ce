package domain

import "time"

// User statuses
const (
	UserActive   = "Active"
	UserInactive = "Inactive"
)

// Reminder categories
const (
	CategoryBills  = "Bills"
	CategoryHealth = "Health"
	CategoryNormal = "Normal"
)

// Reminder lifecycle statuses
const (
	ReminderActive    = "Active"
	ReminderCompleted = "Completed"
	ReminderCancelled = "Cancelled"
)

// Recurrence frequencies
const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
	FrequencyYearly  = "Yearly"
)

// Notification channels
const (
	ChannelWhatsApp = "WhatsApp"
	ChannelSMS      = "SMS"
)

// Notification outcomes
const (
	OutcomeSuccess = "Success"
	OutcomeFailure = "Failure"
)

// DefaultTagColor is applied when a tag is created without a color.
const DefaultTagColor = "#FFFFFF"

// User represents an account in the system
type User struct {
	ID           uint
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Status       string
	APIKey       string
	PhotoURL     string
	Onboarded    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reminder belongs to exactly one user. A reminder is either one-off
// (DateTime, possibly unset for a plain to-do) or recurring, in which case
// Frequency and its dependent fields describe the schedule.
type Reminder struct {
	ID          uint
	UserID      uint
	Title       string
	Description string
	Category    string
	Status      string
	Recurring   bool
	Frequency   string
	DayOfMonth  int
	Weekday     string
	Month       string
	TimeOfDay   string // "HH:MM"
	DateTime    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag is a user-owned label for reminders
type Tag struct {
	ID        uint
	UserID    uint
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Notification records one delivery attempt against a reminder
type Notification struct {
	ID         uint
	ReminderID uint
	Channel    string
	SentAt     time.Time
	Outcome    string
	Message    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Session represents a login session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	APIKey    string
	SessionID string
	ExpiresIn int64
}

// UserUpdate carries the changed fields of a profile update. Nil means
// "leave untouched".
type UserUpdate struct {
	Name      *string
	Email     *string
	Phone     *string
	PhotoURL  *string
	Onboarded *bool
}

// ReminderUpdate carries the changed fields of a reminder update. The
// updated reminder is re-validated as a whole before persisting.
type ReminderUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Status      *string
	Recurring   *bool
	Frequency   *string
	DayOfMonth  *int
	Weekday     *string
	Month       *string
	TimeOfDay   *string
	DateTime    *time.Time
}

// TagUpdate carries the changed fields of a tag update
type TagUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// NotificationUpdate carries the changed fields of a notification update
type NotificationUpdate struct {
	Channel *string
	SentAt  *time.Time
	Outcome *string
	Message *string
}

// NumberCheck is the gateway's answer for one verified phone number
type NumberCheck struct {
	Number string
	Exists bool
	JID    string
}

// ContactCard is the payload of a contact-card send
type ContactCard struct {
	Name   string
	Number string
}

// ReminderFilter narrows a reminder listing. Nil means "no filter".
type ReminderFilter struct {
	Category  *string
	Status    *string
	Recurring *bool
	Frequency *string
}

// ReminderCounts is the group-by metadata attached to list responses
type ReminderCounts struct {
	ByCategory  map[string]int64
	ByStatus    map[string]int64
	ByFrequency map[string]int64
}

// Apply copies the set fields of an update onto the reminder
func (r *Reminder) Apply(upd *ReminderUpdate) {
	if upd.Title != nil {
		r.Title = *upd.Title
	}
	if upd.Description != nil {
		r.Description = *upd.Description
	}
	if upd.Category != nil {
		r.Category = *upd.Category
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.Recurring != nil {
		r.Recurring = *upd.Recurring
	}
	if upd.Frequency != nil {
		r.Frequency = *upd.Frequency
	}
	if upd.DayOfMonth != nil {
		r.DayOfMonth = *upd.DayOfMonth
	}
	if upd.Weekday != nil {
		r.Weekday = *upd.Weekday
	}
	if upd.Month != nil {
		r.Month = *upd.Month
	}
	if upd.TimeOfDay != nil {
		r.TimeOfDay = *upd.TimeOfDay
	}
	if upd.DateTime != nil {
		r.DateTime = upd.DateTime
	}
	if r.Recurring {
		// a recurring reminder carries no absolute instant
		r.DateTime = nil
	}
}

// Apply copies the set fields of an update onto the user
func (u *User) Apply(upd *UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.PhotoURL != nil {
		u.PhotoURL = *upd.PhotoURL
	}
	if upd.Onboarded != nil {
		u.Onboarded = *upd.Onboarded
	}
}

// Apply copies the set fields of an update onto the tag
func (t *Tag) Apply(upd *TagUpdate) {
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Color != nil {
		t.Color = *upd.Color
	}
	if upd.Icon != nil {
		t.Icon = *upd.Icon
	}
}

// Apply copies the set fields of an update onto the notification
func (n *Notification) Apply(upd *NotificationUpdate) {
	if upd.Channel != nil {
		n.Channel = *upd.Channel
	}
	if upd.SentAt != nil {
		n.SentAt = *upd.SentAt
	}
	if upd.Outcome != nil {
		n.Outcome = *upd.Outcome
	}
	if upd.Message != nil {
		n.Message = *upd.Message
	}
}
