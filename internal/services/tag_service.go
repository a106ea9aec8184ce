package services

import (
	"context"

	"github.com/you/remindersvc/domain"
)

// TagServiceImpl implements domain.TagService
type TagServiceImpl struct {
	tagRepo domain.TagRepository
}

// NewTagService creates a new tag service
func NewTagService(tagRepo domain.TagRepository) domain.TagService {
	return &TagServiceImpl{tagRepo: tagRepo}
}

// Create implements domain.TagService
func (s *TagServiceImpl) Create(ctx context.Context, userID uint, tag *domain.Tag) error {
	tag.UserID = userID
	if tag.Color == "" {
		tag.Color = domain.DefaultTagColor
	}
	if err := tag.Validate(); err != nil {
		return err
	}
	return s.tagRepo.Create(ctx, tag)
}

// List implements domain.TagService
func (s *TagServiceImpl) List(ctx context.Context, userID uint) ([]domain.Tag, error) {
	return s.tagRepo.List(ctx, userID)
}

// Update implements domain.TagService
func (s *TagServiceImpl) Update(ctx context.Context, userID, id uint, upd *domain.TagUpdate) (*domain.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	tag.Apply(upd)
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete implements domain.TagService
func (s *TagServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	return s.tagRepo.Delete(ctx, id, userID)
}

// ReplaceAssociations implements domain.TagService. The repository runs the
// replace-all protocol atomically.
func (s *TagServiceImpl) ReplaceAssociations(ctx context.Context, userID, reminderID uint, tagIDs []uint) error {
	return s.tagRepo.ReplaceAssociations(ctx, reminderID, tagIDs, userID)
}

// ListByReminder implements domain.TagService
func (s *TagServiceImpl) ListByReminder(ctx context.Context, userID, reminderID uint) ([]domain.Tag, error) {
	return s.tagRepo.ListByReminder(ctx, reminderID, userID)
}
