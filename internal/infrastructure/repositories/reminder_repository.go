package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/remindersvc/domain"
)

// ReminderRepositoryImpl implements domain.ReminderRepository using GORM
type ReminderRepositoryImpl struct {
	db *gorm.DB
}

// DBReminder represents the database model for Reminder
type DBReminder struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	User        DBUser `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:16;index;not null"`
	Status      string `gorm:"size:16;index;not null"`
	Recurring   bool   `gorm:"index"`
	Frequency   string `gorm:"size:16;index"`
	DayOfMonth  int
	Weekday     string `gorm:"size:16"`
	Month       string `gorm:"size:16"`
	TimeOfDay   string `gorm:"size:8"`
	DateTime    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBReminder) TableName() string {
	return "lembretes"
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &ReminderRepositoryImpl{db: db}
}

// Create implements domain.ReminderRepository
func (r *ReminderRepositoryImpl) Create(ctx context.Context, reminder *domain.Reminder) error {
	dbReminder := reminderToDB(reminder)
	if err := r.db.WithContext(ctx).Create(dbReminder).Error; err != nil {
		return err
	}
	reminder.ID = dbReminder.ID
	return nil
}

// FindByID implements domain.ReminderRepository. A wrong owner and a
// missing id are indistinguishable to the caller.
func (r *ReminderRepositoryImpl) FindByID(ctx context.Context, id, userID uint) (*domain.Reminder, error) {
	var dbReminder DBReminder
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&dbReminder).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrReminderNotFound
		}
		return nil, err
	}
	return reminderToDomain(&dbReminder), nil
}

// List implements domain.ReminderRepository
func (r *ReminderRepositoryImpl) List(ctx context.Context, userID uint, filter *domain.ReminderFilter) ([]domain.Reminder, error) {
	var dbReminders []DBReminder
	q := applyReminderFilter(r.db.WithContext(ctx).Where("user_id = ?", userID), filter)
	if err := q.Order("id").Find(&dbReminders).Error; err != nil {
		return nil, err
	}

	reminders := make([]domain.Reminder, 0, len(dbReminders))
	for i := range dbReminders {
		reminders = append(reminders, *reminderToDomain(&dbReminders[i]))
	}
	return reminders, nil
}

// Counts implements domain.ReminderRepository
func (r *ReminderRepositoryImpl) Counts(ctx context.Context, userID uint, filter *domain.ReminderFilter) (*domain.ReminderCounts, error) {
	counts := &domain.ReminderCounts{
		ByCategory:  map[string]int64{},
		ByStatus:    map[string]int64{},
		ByFrequency: map[string]int64{},
	}

	groups := []struct {
		column string
		dest   map[string]int64
	}{
		{"category", counts.ByCategory},
		{"status", counts.ByStatus},
		{"frequency", counts.ByFrequency},
	}

	for _, g := range groups {
		var rows []struct {
			Key   string
			Total int64
		}
		q := applyReminderFilter(r.db.WithContext(ctx).Model(&DBReminder{}).Where("user_id = ?", userID), filter)
		err := q.Select(g.column + " as key, count(*) as total").
			Where(g.column + " <> ''").
			Group(g.column).
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			g.dest[row.Key] = row.Total
		}
	}
	return counts, nil
}

// Update implements domain.ReminderRepository. The whole row is written in
// one parametrized update; callers apply partial changes beforehand.
func (r *ReminderRepositoryImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	res := r.db.WithContext(ctx).Model(&DBReminder{}).
		Where("id = ? AND user_id = ?", reminder.ID, reminder.UserID).
		Updates(map[string]interface{}{
			"title":        reminder.Title,
			"description":  reminder.Description,
			"category":     reminder.Category,
			"status":       reminder.Status,
			"recurring":    reminder.Recurring,
			"frequency":    reminder.Frequency,
			"day_of_month": reminder.DayOfMonth,
			"weekday":      reminder.Weekday,
			"month":        reminder.Month,
			"time_of_day":  reminder.TimeOfDay,
			"date_time":    reminder.DateTime,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

// Delete implements domain.ReminderRepository
func (r *ReminderRepositoryImpl) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBReminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func applyReminderFilter(q *gorm.DB, filter *domain.ReminderFilter) *gorm.DB {
	if filter == nil {
		return q
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Recurring != nil {
		q = q.Where("recurring = ?", *filter.Recurring)
	}
	if filter.Frequency != nil {
		q = q.Where("frequency = ?", *filter.Frequency)
	}
	return q
}

func reminderToDB(reminder *domain.Reminder) *DBReminder {
	return &DBReminder{
		ID:          reminder.ID,
		UserID:      reminder.UserID,
		Title:       reminder.Title,
		Description: reminder.Description,
		Category:    reminder.Category,
		Status:      reminder.Status,
		Recurring:   reminder.Recurring,
		Frequency:   reminder.Frequency,
		DayOfMonth:  reminder.DayOfMonth,
		Weekday:     reminder.Weekday,
		Month:       reminder.Month,
		TimeOfDay:   reminder.TimeOfDay,
		DateTime:    reminder.DateTime,
	}
}

func reminderToDomain(dbReminder *DBReminder) *domain.Reminder {
	return &domain.Reminder{
		ID:          dbReminder.ID,
		UserID:      dbReminder.UserID,
		Title:       dbReminder.Title,
		Description: dbReminder.Description,
		Category:    dbReminder.Category,
		Status:      dbReminder.Status,
		Recurring:   dbReminder.Recurring,
		Frequency:   dbReminder.Frequency,
		DayOfMonth:  dbReminder.DayOfMonth,
		Weekday:     dbReminder.Weekday,
		Month:       dbReminder.Month,
		TimeOfDay:   dbReminder.TimeOfDay,
		DateTime:    dbReminder.DateTime,
		CreatedAt:   dbReminder.CreatedAt,
		UpdatedAt:   dbReminder.UpdatedAt,
	}
}
