package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/remindersvc/domain"
	"github.com/you/remindersvc/internal/mocks"
)

// newReminderRouter wires the handlers behind a stub auth layer that always
// resolves user 7
func newReminderRouter(svc domain.ReminderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReminderHandlers(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", uint(7)) })
	r.POST("/lembretes", h.Create)
	r.GET("/lembretes", h.List)
	r.PUT("/lembretes/:id", h.Update)
	r.DELETE("/lembretes/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReminderHandlers_Create(t *testing.T) {
	svc := &mocks.MockReminderService{}
	var gotUserID uint
	svc.CreateFunc = func(ctx context.Context, userID uint, reminder *domain.Reminder) error {
		gotUserID = userID
		reminder.ID = 42
		reminder.Status = domain.ReminderActive
		return nil
	}
	r := newReminderRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/lembretes", gin.H{
		"titulo":     "Pagar aluguel",
		"categoria":  "Bills",
		"recorrente": true,
		"frequencia": "Monthly",
		"dia":        5,
		"hora":       "09:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), gotUserID)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			ID                uint       `json:"id"`
			Titulo            string     `json:"titulo"`
			Status            string     `json:"status"`
			ProximaOcorrencia *time.Time `json:"proxima_ocorrencia"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, uint(42), resp.Data.ID)
	assert.Equal(t, "Pagar aluguel", resp.Data.Titulo)
	assert.NotNil(t, resp.Data.ProximaOcorrencia, "a monthly reminder must expose its next occurrence")
}

func TestReminderHandlers_Create_ValidationError(t *testing.T) {
	svc := &mocks.MockReminderService{}
	svc.CreateFunc = func(ctx context.Context, userID uint, reminder *domain.Reminder) error {
		return domain.NewValidationError("titulo", "is required")
	}
	r := newReminderRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/lembretes", gin.H{"categoria": "Bills"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status string `json:"status"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "titulo", resp.Errors[0].Field)
}

func TestReminderHandlers_List(t *testing.T) {
	svc := &mocks.MockReminderService{}
	var gotFilter *domain.ReminderFilter
	svc.ListFunc = func(ctx context.Context, userID uint, filter *domain.ReminderFilter) (*domain.ReminderList, error) {
		gotFilter = filter
		next := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)
		return &domain.ReminderList{
			Items: []domain.ReminderWithNext{
				{
					Reminder: domain.Reminder{
						ID:        1,
						Title:     "Pagar aluguel",
						Category:  domain.CategoryBills,
						Status:    domain.ReminderActive,
						Recurring: true,
						Frequency: domain.FrequencyMonthly,
					},
					NextOccurrence: &next,
				},
			},
			Counts: &domain.ReminderCounts{
				ByCategory:  map[string]int64{domain.CategoryBills: 1},
				ByStatus:    map[string]int64{domain.ReminderActive: 1},
				ByFrequency: map[string]int64{domain.FrequencyMonthly: 1},
			},
		}, nil
	}
	r := newReminderRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/lembretes?categoria=Bills&recorrente=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotFilter)
	require.NotNil(t, gotFilter.Category)
	assert.Equal(t, domain.CategoryBills, *gotFilter.Category)
	require.NotNil(t, gotFilter.Recurring)
	assert.True(t, *gotFilter.Recurring)
	assert.Nil(t, gotFilter.Status)

	var resp struct {
		Data struct {
			Lembretes []map[string]interface{} `json:"lembretes"`
			Contagens struct {
				PorCategoria  map[string]int64 `json:"por_categoria"`
				PorStatus     map[string]int64 `json:"por_status"`
				PorFrequencia map[string]int64 `json:"por_frequencia"`
			} `json:"contagens"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Lembretes, 1)
	assert.Equal(t, "Pagar aluguel", resp.Data.Lembretes[0]["titulo"])
	assert.NotEmpty(t, resp.Data.Lembretes[0]["proxima_ocorrencia"])
	assert.Equal(t, int64(1), resp.Data.Contagens.PorCategoria[domain.CategoryBills])
}

func TestReminderHandlers_List_BadRecurringFlag(t *testing.T) {
	r := newReminderRouter(&mocks.MockReminderService{})

	w := doJSON(t, r, http.MethodGet, "/lembretes?recorrente=talvez", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderHandlers_Update_NotFound(t *testing.T) {
	svc := &mocks.MockReminderService{}
	svc.UpdateFunc = func(ctx context.Context, userID, id uint, upd *domain.ReminderUpdate) (*domain.Reminder, error) {
		return nil, domain.ErrReminderNotFound
	}
	r := newReminderRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/lembretes/99", gin.H{"titulo": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReminderHandlers_Update_MalformedID(t *testing.T) {
	svc := &mocks.MockReminderService{}
	called := false
	svc.UpdateFunc = func(ctx context.Context, userID, id uint, upd *domain.ReminderUpdate) (*domain.Reminder, error) {
		called = true
		return nil, domain.ErrReminderNotFound
	}
	r := newReminderRouter(svc)

	// A garbage id must look exactly like a missing row.
	w := doJSON(t, r, http.MethodPut, "/lembretes/abc", gin.H{"titulo": "x"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, called, "the service must not be reached for a malformed id")
}

func TestReminderHandlers_Delete(t *testing.T) {
	svc := &mocks.MockReminderService{}
	var deletedID uint
	svc.DeleteFunc = func(ctx context.Context, userID, id uint) error {
		deletedID = id
		return nil
	}
	r := newReminderRouter(svc)

	w := doJSON(t, r, http.MethodDelete, "/lembretes/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), deletedID)
}
