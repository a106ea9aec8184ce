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

// NotificationHandlers handles notification log HTTP requests
type NotificationHandlers struct {
	notificationSvc domain.NotificationService
}

// NewNotificationHandlers creates new notification handlers
func NewNotificationHandlers(notificationSvc domain.NotificationService) *NotificationHandlers {
	return &NotificationHandlers{notificationSvc: notificationSvc}
}

// NotificationRequest represents a notification create request
type NotificationRequest struct {
	LembreteID uint       `json:"lembrete_id"`
	Canal      string     `json:"canal"`
	EnviadoEm  *time.Time `json:"enviado_em"`
	Resultado  string     `json:"resultado"`
	Mensagem   string     `json:"mensagem"`
}

// NotificationUpdateRequest represents a partial notification update
type NotificationUpdateRequest struct {
	Canal     *string    `json:"canal"`
	EnviadoEm *time.Time `json:"enviado_em"`
	Resultado *string    `json:"resultado"`
	Mensagem  *string    `json:"mensagem"`
}

// Create handles POST /notificacoes. A Success outcome completes the
// parent reminder in the same transaction as the insert.
func (h *NotificationHandlers) Create(c *gin.Context) {
	var req NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	notification := &domain.Notification{
		ReminderID: req.LembreteID,
		Channel:    req.Canal,
		Outcome:    req.Resultado,
		Message:    req.Mensagem,
	}
	if req.EnviadoEm != nil {
		notification.SentAt = *req.EnviadoEm
	}
	if err := h.notificationSvc.Create(c.Request.Context(), middleware.UserID(c), notification); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusCreated, "notification recorded", toNotificationView(notification))
}

// List handles GET /notificacoes?lembrete_id=
func (h *NotificationHandlers) List(c *gin.Context) {
	raw := c.Query("lembrete_id")
	if raw == "" {
		respond.Error(c, domain.NewValidationError("lembrete_id", "is required"))
		return
	}
	reminderID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respond.Error(c, domain.ErrReminderNotFound)
		return
	}

	notifications, err := h.notificationSvc.ListByReminder(c.Request.Context(), middleware.UserID(c), uint(reminderID))
	if err != nil {
		respond.Error(c, err)
		return
	}

	views := make([]notificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, toNotificationView(&notifications[i]))
	}
	respond.Success(c, http.StatusOK, "notifications", views)
}

// Update handles PUT /notificacoes/:id
func (h *NotificationHandlers) Update(c *gin.Context) {
	id, ok := pathID(c, "id", domain.ErrNotificationNotFound)
	if !ok {
		return
	}
	var req NotificationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	upd := &domain.NotificationUpdate{
		Channel: req.Canal,
		SentAt:  req.EnviadoEm,
		Outcome: req.Resultado,
		Message: req.Mensagem,
	}
	notification, err := h.notificationSvc.Update(c.Request.Context(), middleware.UserID(c), id, upd)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "notification updated", toNotificationView(notification))
}

// Delete handles DELETE /notificacoes/:id
func (h *NotificationHandlers) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", domain.ErrNotificationNotFound)
	if !ok {
		return
	}
	if err := h.notificationSvc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "notification deleted", nil)
}
