package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/domain"
	"github.com/you/remindersvc/internal/http/middleware"
	"github.com/you/remindersvc/internal/http/respond"
)

// ReminderHandlers handles reminder CRUD HTTP requests
type ReminderHandlers struct {
	reminderSvc domain.ReminderService
}

// NewReminderHandlers creates new reminder handlers
func NewReminderHandlers(reminderSvc domain.ReminderService) *ReminderHandlers {
	return &ReminderHandlers{reminderSvc: reminderSvc}
}

// ReminderRequest represents a reminder create request
type ReminderRequest struct {
	Titulo     string     `json:"titulo"`
	Descricao  string     `json:"descricao"`
	Categoria  string     `json:"categoria"`
	Status     string     `json:"status"`
	Recorrente bool       `json:"recorrente"`
	Frequencia string     `json:"frequencia"`
	Dia        int        `json:"dia"`
	DiaSemana  string     `json:"dia_semana"`
	Mes        string     `json:"mes"`
	Hora       string     `json:"hora"`
	DataHora   *time.Time `json:"data_hora"`
}

// ReminderUpdateRequest represents a partial reminder update
type ReminderUpdateRequest struct {
	Titulo     *string    `json:"titulo"`
	Descricao  *string    `json:"descricao"`
	Categoria  *string    `json:"categoria"`
	Status     *string    `json:"status"`
	Recorrente *bool      `json:"recorrente"`
	Frequencia *string    `json:"frequencia"`
	Dia        *int       `json:"dia"`
	DiaSemana  *string    `json:"dia_semana"`
	Mes        *string    `json:"mes"`
	Hora       *string    `json:"hora"`
	DataHora   *time.Time `json:"data_hora"`
}

// Create handles POST /lembretes
func (h *ReminderHandlers) Create(c *gin.Context) {
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	reminder := &domain.Reminder{
		Title:       req.Titulo,
		Description: req.Descricao,
		Category:    req.Categoria,
		Status:      req.Status,
		Recurring:   req.Recorrente,
		Frequency:   req.Frequencia,
		DayOfMonth:  req.Dia,
		Weekday:     req.DiaSemana,
		Month:       req.Mes,
		TimeOfDay:   req.Hora,
		DateTime:    req.DataHora,
	}
	if err := h.reminderSvc.Create(c.Request.Context(), middleware.UserID(c), reminder); err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "reminder created",
		toReminderView(reminder, reminder.NextOccurrence(time.Now())))
}

// List handles GET /lembretes with optional categoria, status, recorrente
// and frequencia query filters
func (h *ReminderHandlers) List(c *gin.Context) {
	filter := &domain.ReminderFilter{}
	if v := c.Query("categoria"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("recorrente"); v != "" {
		recurring, err := strconv.ParseBool(v)
		if err != nil {
			respond.Error(c, domain.NewValidationError("recorrente", "must be true or false"))
			return
		}
		filter.Recurring = &recurring
	}
	if v := c.Query("frequencia"); v != "" {
		filter.Frequency = &v
	}

	list, err := h.reminderSvc.List(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		respond.Error(c, err)
		return
	}

	views := make([]reminderView, 0, len(list.Items))
	for i := range list.Items {
		views = append(views, toReminderView(&list.Items[i].Reminder, list.Items[i].NextOccurrence))
	}
	respond.Success(c, http.StatusOK, "reminders", gin.H{
		"lembretes": views,
		"contagens": gin.H{
			"por_categoria":  list.Counts.ByCategory,
			"por_status":     list.Counts.ByStatus,
			"por_frequencia": list.Counts.ByFrequency,
		},
	})
}

// Update handles PUT /lembretes/:id
func (h *ReminderHandlers) Update(c *gin.Context) {
	id, ok := pathID(c, "id", domain.ErrReminderNotFound)
	if !ok {
		return
	}
	var req ReminderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	upd := &domain.ReminderUpdate{
		Title:       req.Titulo,
		Description: req.Descricao,
		Category:    req.Categoria,
		Status:      req.Status,
		Recurring:   req.Recorrente,
		Frequency:   req.Frequencia,
		DayOfMonth:  req.Dia,
		Weekday:     req.DiaSemana,
		Month:       req.Mes,
		TimeOfDay:   req.Hora,
		DateTime:    req.DataHora,
	}
	reminder, err := h.reminderSvc.Update(c.Request.Context(), middleware.UserID(c), id, upd)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "reminder updated",
		toReminderView(reminder, reminder.NextOccurrence(time.Now())))
}

// Delete handles DELETE /lembretes/:id
func (h *ReminderHandlers) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", domain.ErrReminderNotFound)
	if !ok {
		return
	}
	if err := h.reminderSvc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "reminder deleted", nil)
}

// pathID parses a numeric path parameter, answering 404 on garbage so that
// malformed ids and missing rows are indistinguishable
func pathID(c *gin.Context, name string, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respond.Error(c, notFound)
		return 0, false
	}
	return uint(id), true
}
