package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/you/remindersvc/domain"
)

func TestNotificationRepositoryImpl_Create_SuccessCompletesReminder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	userID := createTestUser(t, db, "notifica@example.com", "5511999990030")
	reminderID := seedReminder(t, db, userID, "Boleto", domain.CategoryBills, domain.ReminderActive, false, "")

	notification := &domain.Notification{
		ReminderID: reminderID,
		Channel:    domain.ChannelWhatsApp,
		SentAt:     time.Now(),
		Outcome:    domain.OutcomeSuccess,
		Message:    "Lembrete: Boleto",
	}
	if err := repo.Create(context.Background(), notification, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notification.ID == 0 {
		t.Error("expected id to be backfilled")
	}

	var reminder DBReminder
	if err := db.First(&reminder, reminderID).Error; err != nil {
		t.Fatalf("failed to reload reminder: %v", err)
	}
	if reminder.Status != domain.ReminderCompleted {
		t.Errorf("expected reminder status %s after Success, got %s", domain.ReminderCompleted, reminder.Status)
	}
}

func TestNotificationRepositoryImpl_Create_FailureKeepsReminderActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	userID := createTestUser(t, db, "falha@example.com", "5511999990031")
	reminderID := seedReminder(t, db, userID, "Consulta", domain.CategoryHealth, domain.ReminderActive, false, "")

	notification := &domain.Notification{
		ReminderID: reminderID,
		Channel:    domain.ChannelSMS,
		SentAt:     time.Now(),
		Outcome:    domain.OutcomeFailure,
		Message:    "número fora de área",
	}
	if err := repo.Create(context.Background(), notification, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reminder DBReminder
	if err := db.First(&reminder, reminderID).Error; err != nil {
		t.Fatalf("failed to reload reminder: %v", err)
	}
	if reminder.Status != domain.ReminderActive {
		t.Errorf("expected reminder to stay %s after Failure, got %s", domain.ReminderActive, reminder.Status)
	}
}

func TestNotificationRepositoryImpl_Create_ForeignReminder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	owner := createTestUser(t, db, "alvo@example.com", "5511999990032")
	other := createTestUser(t, db, "estranho@example.com", "5511999990033")
	reminderID := seedReminder(t, db, owner, "Segredo", domain.CategoryNormal, domain.ReminderActive, false, "")

	notification := &domain.Notification{
		ReminderID: reminderID,
		Channel:    domain.ChannelWhatsApp,
		Outcome:    domain.OutcomeSuccess,
	}
	err := repo.Create(context.Background(), notification, other)
	if err != domain.ErrReminderNotFound {
		t.Fatalf("expected ErrReminderNotFound, got %v", err)
	}

	// The rollback must leave both tables untouched.
	var count int64
	db.Model(&DBNotification{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no notification rows, got %d", count)
	}
	var reminder DBReminder
	if err := db.First(&reminder, reminderID).Error; err != nil {
		t.Fatalf("failed to reload reminder: %v", err)
	}
	if reminder.Status != domain.ReminderActive {
		t.Errorf("expected reminder to stay %s, got %s", domain.ReminderActive, reminder.Status)
	}
}

func TestNotificationRepositoryImpl_ListByReminder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	owner := createTestUser(t, db, "historico@example.com", "5511999990034")
	other := createTestUser(t, db, "fora@example.com", "5511999990035")
	reminderID := seedReminder(t, db, owner, "Remédio", domain.CategoryHealth, domain.ReminderActive, true, domain.FrequencyDaily)

	for _, outcome := range []string{domain.OutcomeFailure, domain.OutcomeSuccess} {
		n := &domain.Notification{
			ReminderID: reminderID,
			Channel:    domain.ChannelWhatsApp,
			SentAt:     time.Now(),
			Outcome:    outcome,
		}
		if err := repo.Create(context.Background(), n, owner); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	notifications, err := repo.ListByReminder(context.Background(), reminderID, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications))
	}
	if notifications[0].Outcome != domain.OutcomeFailure || notifications[1].Outcome != domain.OutcomeSuccess {
		t.Error("expected notifications in insertion order")
	}

	if _, err := repo.ListByReminder(context.Background(), reminderID, other); err != domain.ErrReminderNotFound {
		t.Errorf("expected ErrReminderNotFound for foreign owner, got %v", err)
	}
}

func TestNotificationRepositoryImpl_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	owner := createTestUser(t, db, "gestao@example.com", "5511999990036")
	other := createTestUser(t, db, "terceiro@example.com", "5511999990037")
	reminderID := seedReminder(t, db, owner, "Conta", domain.CategoryBills, domain.ReminderActive, false, "")

	notification := &domain.Notification{
		ReminderID: reminderID,
		Channel:    domain.ChannelWhatsApp,
		SentAt:     time.Now(),
		Outcome:    domain.OutcomeFailure,
		Message:    "primeira tentativa",
	}
	if err := repo.Create(context.Background(), notification, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notification.Message = "reenviada"
	if err := repo.Update(context.Background(), notification, other); err != domain.ErrNotificationNotFound {
		t.Errorf("expected ErrNotificationNotFound for foreign owner, got %v", err)
	}
	if err := repo.Update(context.Background(), notification, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := repo.FindByID(context.Background(), notification.ID, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.Message != "reenviada" {
		t.Errorf("expected updated message, got %s", reloaded.Message)
	}

	if err := repo.Delete(context.Background(), notification.ID, other); err != domain.ErrNotificationNotFound {
		t.Errorf("expected ErrNotificationNotFound for foreign owner, got %v", err)
	}
	if err := repo.Delete(context.Background(), notification.ID, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), notification.ID, owner); err != domain.ErrNotificationNotFound {
		t.Errorf("expected ErrNotificationNotFound after delete, got %v", err)
	}
}
