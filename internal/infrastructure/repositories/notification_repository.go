package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/remindersvc/domain"
)

// NotificationRepositoryImpl implements domain.NotificationRepository using
// GORM. Every operation is ownership-scoped through the parent reminder.
type NotificationRepositoryImpl struct {
	db *gorm.DB
}

// DBNotification represents the database model for Notification
type DBNotification struct {
	ID         uint       `gorm:"primaryKey"`
	ReminderID uint       `gorm:"index;not null"`
	Reminder   DBReminder `gorm:"foreignKey:ReminderID;constraint:OnDelete:CASCADE"`
	Channel    string     `gorm:"size:16;not null"`
	SentAt     time.Time
	Outcome    string `gorm:"size:16;not null"`
	Message    string `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM
func (DBNotification) TableName() string {
	return "notificacoes"
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

// Create implements domain.NotificationRepository. The insert and, for a
// Success outcome, the parent reminder's transition to Completed commit in
// the same transaction. This mirrors the database-trigger formulation of
// the rule: the two writes are never observable apart.
func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *domain.Notification, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&DBReminder{}).
			Where("id = ? AND user_id = ?", notification.ReminderID, userID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned == 0 {
			return domain.ErrReminderNotFound
		}

		dbNotification := notificationToDB(notification)
		if err := tx.Create(dbNotification).Error; err != nil {
			return err
		}
		notification.ID = dbNotification.ID

		if notification.Outcome == domain.OutcomeSuccess {
			if err := tx.Model(&DBReminder{}).
				Where("id = ?", notification.ReminderID).
				Update("status", domain.ReminderCompleted).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) FindByID(ctx context.Context, id, userID uint) (*domain.Notification, error) {
	var dbNotification DBNotification
	err := r.db.WithContext(ctx).
		Joins("JOIN lembretes ON lembretes.id = notificacoes.reminder_id").
		Where("notificacoes.id = ? AND lembretes.user_id = ?", id, userID).
		First(&dbNotification).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return notificationToDomain(&dbNotification), nil
}

// ListByReminder implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) ListByReminder(ctx context.Context, reminderID, userID uint) ([]domain.Notification, error) {
	var owned int64
	if err := r.db.WithContext(ctx).Model(&DBReminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Count(&owned).Error; err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, domain.ErrReminderNotFound
	}

	var dbNotifications []DBNotification
	err := r.db.WithContext(ctx).
		Where("reminder_id = ?", reminderID).
		Order("id").
		Find(&dbNotifications).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(dbNotifications))
	for i := range dbNotifications {
		notifications = append(notifications, *notificationToDomain(&dbNotifications[i]))
	}
	return notifications, nil
}

// Update implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) Update(ctx context.Context, notification *domain.Notification, userID uint) error {
	if _, err := r.FindByID(ctx, notification.ID, userID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&DBNotification{}).
		Where("id = ?", notification.ID).
		Updates(map[string]interface{}{
			"channel": notification.Channel,
			"sent_at": notification.SentAt,
			"outcome": notification.Outcome,
			"message": notification.Message,
		}).Error
}

// Delete implements domain.NotificationRepository
func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id, userID uint) error {
	if _, err := r.FindByID(ctx, id, userID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&DBNotification{}, id).Error
}

func notificationToDB(notification *domain.Notification) *DBNotification {
	return &DBNotification{
		ID:         notification.ID,
		ReminderID: notification.ReminderID,
		Channel:    notification.Channel,
		SentAt:     notification.SentAt,
		Outcome:    notification.Outcome,
		Message:    notification.Message,
	}
}

func notificationToDomain(dbNotification *DBNotification) *domain.Notification {
	return &domain.Notification{
		ID:         dbNotification.ID,
		ReminderID: dbNotification.ReminderID,
		Channel:    dbNotification.Channel,
		SentAt:     dbNotification.SentAt,
		Outcome:    dbNotification.Outcome,
		Message:    dbNotification.Message,
		CreatedAt:  dbNotification.CreatedAt,
		UpdatedAt:  dbNotification.UpdatedAt,
	}
}
