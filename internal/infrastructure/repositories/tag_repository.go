package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/remindersvc/domain"
)

// TagRepositoryImpl implements domain.TagRepository using GORM
type TagRepositoryImpl struct {
	db *gorm.DB
}

// DBTag represents the database model for Tag
type DBTag struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	User      DBUser `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name      string `gorm:"size:64;not null"`
	Color     string `gorm:"size:7;default:#FFFFFF"`
	Icon      string `gorm:"size:16"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBTag) TableName() string {
	return "tags"
}

// DBReminderTag is the reminder-tag association row
type DBReminderTag struct {
	ReminderID uint       `gorm:"primaryKey"`
	Reminder   DBReminder `gorm:"foreignKey:ReminderID;constraint:OnDelete:CASCADE"`
	TagID      uint       `gorm:"primaryKey"`
	Tag        DBTag      `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (DBReminderTag) TableName() string {
	return "lembrete_tags"
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) domain.TagRepository {
	return &TagRepositoryImpl{db: db}
}

// Create implements domain.TagRepository
func (r *TagRepositoryImpl) Create(ctx context.Context, tag *domain.Tag) error {
	dbTag := tagToDB(tag)
	if err := r.db.WithContext(ctx).Create(dbTag).Error; err != nil {
		return err
	}
	tag.ID = dbTag.ID
	tag.Color = dbTag.Color
	return nil
}

// FindByID implements domain.TagRepository
func (r *TagRepositoryImpl) FindByID(ctx context.Context, id, userID uint) (*domain.Tag, error) {
	var dbTag DBTag
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&dbTag).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return tagToDomain(&dbTag), nil
}

// List implements domain.TagRepository
func (r *TagRepositoryImpl) List(ctx context.Context, userID uint) ([]domain.Tag, error) {
	var dbTags []DBTag
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&dbTags).Error; err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, 0, len(dbTags))
	for i := range dbTags {
		tags = append(tags, *tagToDomain(&dbTags[i]))
	}
	return tags, nil
}

// Update implements domain.TagRepository
func (r *TagRepositoryImpl) Update(ctx context.Context, tag *domain.Tag) error {
	res := r.db.WithContext(ctx).Model(&DBTag{}).
		Where("id = ? AND user_id = ?", tag.ID, tag.UserID).
		Updates(map[string]interface{}{
			"name":  tag.Name,
			"color": tag.Color,
			"icon":  tag.Icon,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

// Delete implements domain.TagRepository
func (r *TagRepositoryImpl) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBTag{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

// ReplaceAssociations implements domain.TagRepository. The whole protocol
// runs inside one transaction: ownership checks, delete-all, insert-all.
// A failure at any step rolls back and leaves the prior links untouched.
// Duplicate ids in the input are deduplicated.
func (r *TagRepositoryImpl) ReplaceAssociations(ctx context.Context, reminderID uint, tagIDs []uint, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&DBReminder{}).
			Where("id = ? AND user_id = ?", reminderID, userID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned == 0 {
			return domain.ErrReminderNotFound
		}

		ids := dedupe(tagIDs)
		if len(ids) > 0 {
			var found int64
			if err := tx.Model(&DBTag{}).
				Where("id IN ? AND user_id = ?", ids, userID).
				Count(&found).Error; err != nil {
				return err
			}
			if found != int64(len(ids)) {
				return domain.NewValidationError("tags", "contains an unknown tag")
			}
		}

		if err := tx.Where("reminder_id = ?", reminderID).Delete(&DBReminderTag{}).Error; err != nil {
			return err
		}
		for _, tagID := range ids {
			link := DBReminderTag{ReminderID: reminderID, TagID: tagID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByReminder implements domain.TagRepository, ownership-scoped through
// the parent reminder.
func (r *TagRepositoryImpl) ListByReminder(ctx context.Context, reminderID, userID uint) ([]domain.Tag, error) {
	var owned int64
	if err := r.db.WithContext(ctx).Model(&DBReminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		Count(&owned).Error; err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, domain.ErrReminderNotFound
	}

	var dbTags []DBTag
	err := r.db.WithContext(ctx).
		Joins("JOIN lembrete_tags ON lembrete_tags.tag_id = tags.id").
		Where("lembrete_tags.reminder_id = ?", reminderID).
		Order("tags.id").
		Find(&dbTags).Error
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, 0, len(dbTags))
	for i := range dbTags {
		tags = append(tags, *tagToDomain(&dbTags[i]))
	}
	return tags, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func tagToDB(tag *domain.Tag) *DBTag {
	return &DBTag{
		ID:     tag.ID,
		UserID: tag.UserID,
		Name:   tag.Name,
		Color:  tag.Color,
		Icon:   tag.Icon,
	}
}

func tagToDomain(dbTag *DBTag) *domain.Tag {
	return &domain.Tag{
		ID:        dbTag.ID,
		UserID:    dbTag.UserID,
		Name:      dbTag.Name,
		Color:     dbTag.Color,
		Icon:      dbTag.Icon,
		CreatedAt: dbTag.CreatedAt,
		UpdatedAt: dbTag.UpdatedAt,
	}
}
