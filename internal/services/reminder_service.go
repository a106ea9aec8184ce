package services

import (
	"context"
	"time"

	"github.com/you/remindersvc/domain"
)

// ReminderServiceImpl implements domain.ReminderService
type ReminderServiceImpl struct {
	reminderRepo domain.ReminderRepository
	now          func() time.Time
}

// NewReminderService creates a new reminder service
func NewReminderService(reminderRepo domain.ReminderRepository) domain.ReminderService {
	return &ReminderServiceImpl{
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

// Create implements domain.ReminderService. Validation happens before any
// persistence; an invalid reminder is never written.
func (s *ReminderServiceImpl) Create(ctx context.Context, userID uint, reminder *domain.Reminder) error {
	reminder.UserID = userID
	if reminder.Status == "" {
		reminder.Status = domain.ReminderActive
	}
	if reminder.Recurring {
		reminder.DateTime = nil
	}
	if err := reminder.Validate(); err != nil {
		return err
	}
	return s.reminderRepo.Create(ctx, reminder)
}

// List implements domain.ReminderService. Each row is augmented with its
// derived next occurrence; the metadata carries the group-by counts.
func (s *ReminderServiceImpl) List(ctx context.Context, userID uint, filter *domain.ReminderFilter) (*domain.ReminderList, error) {
	reminders, err := s.reminderRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	counts, err := s.reminderRepo.Counts(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]domain.ReminderWithNext, 0, len(reminders))
	for _, reminder := range reminders {
		items = append(items, domain.ReminderWithNext{
			Reminder:       reminder,
			NextOccurrence: reminder.NextOccurrence(now),
		})
	}
	return &domain.ReminderList{Items: items, Counts: counts}, nil
}

// Update implements domain.ReminderService. The partial update is applied
// to the stored row and the result re-validated exactly as a create.
func (s *ReminderServiceImpl) Update(ctx context.Context, userID, id uint, upd *domain.ReminderUpdate) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	reminder.Apply(upd)
	if err := reminder.Validate(); err != nil {
		return nil, err
	}
	if err := s.reminderRepo.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

// Delete implements domain.ReminderService
func (s *ReminderServiceImpl) Delete(ctx context.Context, userID, id uint) error {
	return s.reminderRepo.Delete(ctx, id, userID)
}
