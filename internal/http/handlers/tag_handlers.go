package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/domain"
	"github.com/you/remindersvc/internal/http/middleware"
	"github.com/you/remindersvc/internal/http/respond"
)

// TagHandlers handles tag CRUD and reminder-tag association HTTP requests
type TagHandlers struct {
	tagSvc domain.TagService
}

// NewTagHandlers creates new tag handlers
func NewTagHandlers(tagSvc domain.TagService) *TagHandlers {
	return &TagHandlers{tagSvc: tagSvc}
}

// TagRequest represents a tag create request
type TagRequest struct {
	Nome  string `json:"nome"`
	Cor   string `json:"cor"`
	Icone string `json:"icone"`
}

// TagUpdateRequest represents a partial tag update
type TagUpdateRequest struct {
	Nome  *string `json:"nome"`
	Cor   *string `json:"cor"`
	Icone *string `json:"icone"`
}

// AssociateRequest carries the full replacement tag set for a reminder
type AssociateRequest struct {
	Tags []uint `json:"tags"`
}

// Create handles POST /tags
func (h *TagHandlers) Create(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	tag := &domain.Tag{Name: req.Nome, Color: req.Cor, Icon: req.Icone}
	if err := h.tagSvc.Create(c.Request.Context(), middleware.UserID(c), tag); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusCreated, "tag created", toTagView(tag))
}

// List handles GET /tags
func (h *TagHandlers) List(c *gin.Context) {
	tags, err := h.tagSvc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "tags", toTagViews(tags))
}

// Update handles PUT /tags/:id
func (h *TagHandlers) Update(c *gin.Context) {
	id, ok := pathID(c, "id", domain.ErrTagNotFound)
	if !ok {
		return
	}
	var req TagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	upd := &domain.TagUpdate{Name: req.Nome, Color: req.Cor, Icon: req.Icone}
	tag, err := h.tagSvc.Update(c.Request.Context(), middleware.UserID(c), id, upd)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "tag updated", toTagView(tag))
}

// Delete handles DELETE /tags/:id
func (h *TagHandlers) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", domain.ErrTagNotFound)
	if !ok {
		return
	}
	if err := h.tagSvc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "tag deleted", nil)
}

// Associate handles POST /tags/lembrete/:lembreteId. The input set fully
// replaces the reminder's associations, atomically.
func (h *TagHandlers) Associate(c *gin.Context) {
	reminderID, ok := pathID(c, "lembreteId", domain.ErrReminderNotFound)
	if !ok {
		return
	}
	var req AssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	if err := h.tagSvc.ReplaceAssociations(c.Request.Context(), middleware.UserID(c), reminderID, req.Tags); err != nil {
		respond.Error(c, err)
		return
	}

	tags, err := h.tagSvc.ListByReminder(c.Request.Context(), middleware.UserID(c), reminderID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "associations replaced", toTagViews(tags))
}

// ListByReminder handles GET /tags/lembrete/:lembreteId
func (h *TagHandlers) ListByReminder(c *gin.Context) {
	reminderID, ok := pathID(c, "lembreteId", domain.ErrReminderNotFound)
	if !ok {
		return
	}
	tags, err := h.tagSvc.ListByReminder(c.Request.Context(), middleware.UserID(c), reminderID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "reminder tags", toTagViews(tags))
}
