package repositories

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/you/remindersvc/domain"
)

func seedReminder(t *testing.T, db *gorm.DB, userID uint, title, category, status string, recurring bool, frequency string) uint {
	t.Helper()

	row := &DBReminder{
		UserID:    userID,
		Title:     title,
		Category:  category,
		Status:    status,
		Recurring: recurring,
		Frequency: frequency,
		TimeOfDay: "09:00",
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to seed reminder: %v", err)
	}
	return row.ID
}

func TestReminderRepositoryImpl_FindByID_OwnershipScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)

	owner := createTestUser(t, db, "dona@example.com", "5511999990010")
	other := createTestUser(t, db, "outro@example.com", "5511999990011")
	id := seedReminder(t, db, owner, "Consulta", domain.CategoryHealth, domain.ReminderActive, false, "")

	found, err := repo.FindByID(context.Background(), id, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != "Consulta" {
		t.Errorf("expected title Consulta, got %s", found.Title)
	}

	// Another user's lookup must be indistinguishable from a missing row.
	if _, err := repo.FindByID(context.Background(), id, other); err != domain.ErrReminderNotFound {
		t.Errorf("expected ErrReminderNotFound for foreign owner, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), 999, owner); err != domain.ErrReminderNotFound {
		t.Errorf("expected ErrReminderNotFound for missing id, got %v", err)
	}
}

func TestReminderRepositoryImpl_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)

	userID := createTestUser(t, db, "lista@example.com", "5511999990012")
	other := createTestUser(t, db, "vizinho@example.com", "5511999990013")

	seedReminder(t, db, userID, "Aluguel", domain.CategoryBills, domain.ReminderActive, true, domain.FrequencyMonthly)
	seedReminder(t, db, userID, "Remédio", domain.CategoryHealth, domain.ReminderActive, true, domain.FrequencyDaily)
	seedReminder(t, db, userID, "Reunião", domain.CategoryNormal, domain.ReminderCompleted, false, "")
	seedReminder(t, db, other, "Alheio", domain.CategoryBills, domain.ReminderActive, true, domain.FrequencyMonthly)

	str := func(s string) *string { return &s }
	boolp := func(b bool) *bool { return &b }

	tests := []struct {
		name     string
		filter   *domain.ReminderFilter
		expected []string
	}{
		{
			name:     "no filter returns all owned",
			filter:   nil,
			expected: []string{"Aluguel", "Remédio", "Reunião"},
		},
		{
			name:     "by category",
			filter:   &domain.ReminderFilter{Category: str(domain.CategoryBills)},
			expected: []string{"Aluguel"},
		},
		{
			name:     "by status",
			filter:   &domain.ReminderFilter{Status: str(domain.ReminderActive)},
			expected: []string{"Aluguel", "Remédio"},
		},
		{
			name:     "by recurring flag",
			filter:   &domain.ReminderFilter{Recurring: boolp(false)},
			expected: []string{"Reunião"},
		},
		{
			name:     "by frequency",
			filter:   &domain.ReminderFilter{Frequency: str(domain.FrequencyDaily)},
			expected: []string{"Remédio"},
		},
		{
			name:     "combined filters",
			filter:   &domain.ReminderFilter{Category: str(domain.CategoryHealth), Recurring: boolp(true)},
			expected: []string{"Remédio"},
		},
		{
			name:     "no match returns empty list",
			filter:   &domain.ReminderFilter{Frequency: str(domain.FrequencyYearly)},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminders, err := repo.List(context.Background(), userID, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(reminders) != len(tt.expected) {
				t.Fatalf("expected %d reminders, got %d", len(tt.expected), len(reminders))
			}
			for i, title := range tt.expected {
				if reminders[i].Title != title {
					t.Errorf("position %d: expected %s, got %s", i, title, reminders[i].Title)
				}
			}
		})
	}
}

func TestReminderRepositoryImpl_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)

	userID := createTestUser(t, db, "contagem@example.com", "5511999990014")

	seedReminder(t, db, userID, "A", domain.CategoryBills, domain.ReminderActive, true, domain.FrequencyMonthly)
	seedReminder(t, db, userID, "B", domain.CategoryBills, domain.ReminderCompleted, true, domain.FrequencyMonthly)
	seedReminder(t, db, userID, "C", domain.CategoryHealth, domain.ReminderActive, false, "")

	counts, err := repo.Counts(context.Background(), userID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counts.ByCategory[domain.CategoryBills] != 2 {
		t.Errorf("expected 2 Bills, got %d", counts.ByCategory[domain.CategoryBills])
	}
	if counts.ByCategory[domain.CategoryHealth] != 1 {
		t.Errorf("expected 1 Health, got %d", counts.ByCategory[domain.CategoryHealth])
	}
	if counts.ByStatus[domain.ReminderActive] != 2 {
		t.Errorf("expected 2 Active, got %d", counts.ByStatus[domain.ReminderActive])
	}
	if counts.ByStatus[domain.ReminderCompleted] != 1 {
		t.Errorf("expected 1 Completed, got %d", counts.ByStatus[domain.ReminderCompleted])
	}
	if counts.ByFrequency[domain.FrequencyMonthly] != 2 {
		t.Errorf("expected 2 Monthly, got %d", counts.ByFrequency[domain.FrequencyMonthly])
	}
	// The one-shot reminder's empty frequency must not become a bucket.
	if _, ok := counts.ByFrequency[""]; ok {
		t.Error("empty frequency must not appear in the counts")
	}
}

func TestReminderRepositoryImpl_Counts_HonorsFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)

	userID := createTestUser(t, db, "filtrada@example.com", "5511999990015")

	seedReminder(t, db, userID, "A", domain.CategoryBills, domain.ReminderActive, true, domain.FrequencyMonthly)
	seedReminder(t, db, userID, "B", domain.CategoryHealth, domain.ReminderCancelled, true, domain.FrequencyDaily)

	status := domain.ReminderActive
	counts, err := repo.Counts(context.Background(), userID, &domain.ReminderFilter{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.ByCategory[domain.CategoryBills] != 1 {
		t.Errorf("expected 1 Bills, got %d", counts.ByCategory[domain.CategoryBills])
	}
	if _, ok := counts.ByCategory[domain.CategoryHealth]; ok {
		t.Error("cancelled reminder should be excluded by the status filter")
	}
}

func TestReminderRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)

	owner := createTestUser(t, db, "edita@example.com", "5511999990016")
	other := createTestUser(t, db, "intruso@example.com", "5511999990017")
	id := seedReminder(t, db, owner, "Antes", domain.CategoryNormal, domain.ReminderActive, true, domain.FrequencyWeekly)

	err := repo.Update(context.Background(), &domain.Reminder{
		ID:        id,
		UserID:    owner,
		Title:     "Depois",
		Category:  domain.CategoryBills,
		Status:    domain.ReminderActive,
		Recurring: true,
		Frequency: domain.FrequencyWeekly,
		Weekday:   "Monday",
		TimeOfDay: "10:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var row DBReminder
	if err := db.First(&row, id).Error; err != nil {
		t.Fatalf("failed to reload reminder: %v", err)
	}
	if row.Title != "Depois" || row.Category != domain.CategoryBills || row.TimeOfDay != "10:30" {
		t.Errorf("row not fully updated: %+v", row)
	}

	err = repo.Update(context.Background(), &domain.Reminder{ID: id, UserID: other, Title: "Hack"})
	if err != domain.ErrReminderNotFound {
		t.Errorf("expected ErrReminderNotFound for foreign owner, got %v", err)
	}
}

func TestReminderRepositoryImpl_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReminderRepository(db)

	owner := createTestUser(t, db, "apaga@example.com", "5511999990018")
	other := createTestUser(t, db, "nao@example.com", "5511999990019")
	id := seedReminder(t, db, owner, "Descartável", domain.CategoryNormal, domain.ReminderActive, false, "")

	if err := repo.Delete(context.Background(), id, other); err != domain.ErrReminderNotFound {
		t.Errorf("expected ErrReminderNotFound for foreign owner, got %v", err)
	}
	if err := repo.Delete(context.Background(), id, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(context.Background(), id, owner); err != domain.ErrReminderNotFound {
		t.Errorf("expected ErrReminderNotFound on second delete, got %v", err)
	}
}
