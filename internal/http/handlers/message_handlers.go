package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/domain"
	"github.com/you/remindersvc/internal/http/respond"
)

// MessageHandlers handles outbound messaging HTTP requests
type MessageHandlers struct {
	messageSvc domain.MessageService
}

// NewMessageHandlers creates new message handlers
func NewMessageHandlers(messageSvc domain.MessageService) *MessageHandlers {
	return &MessageHandlers{messageSvc: messageSvc}
}

// SendRequest represents a WhatsApp text send request
type SendRequest struct {
	Telefone string `json:"telefone"`
	Mensagem string `json:"mensagem"`
	Delay    int    `json:"delay"`
}

// ContactRequest represents a contact-card send request
type ContactRequest struct {
	Telefone string `json:"telefone"`
	Nome     string `json:"nome"`
	Numero   string `json:"numero"`
}

// VerifyRequest represents a number verification request
type VerifyRequest struct {
	Numeros []string `json:"numeros"`
}

type numberCheckView struct {
	Numero string `json:"numero"`
	Existe bool   `json:"existe"`
	JID    string `json:"jid,omitempty"`
}

// SendWhatsApp handles POST /mensagens/whatsapp
func (h *MessageHandlers) SendWhatsApp(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}
	if err := h.messageSvc.SendWhatsApp(c.Request.Context(), req.Telefone, req.Mensagem, req.Delay); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "message sent", nil)
}

// SendContact handles POST /mensagens/contato
func (h *MessageHandlers) SendContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}
	card := domain.ContactCard{Name: req.Nome, Number: req.Numero}
	if err := h.messageSvc.SendContact(c.Request.Context(), req.Telefone, card); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "contact sent", nil)
}

// VerifyNumbers handles POST /verificacao/whatsapp
func (h *MessageHandlers) VerifyNumbers(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}
	checks, err := h.messageSvc.VerifyNumbers(c.Request.Context(), req.Numeros)
	if err != nil {
		respond.Error(c, err)
		return
	}
	views := make([]numberCheckView, 0, len(checks))
	for _, chk := range checks {
		views = append(views, numberCheckView{Numero: chk.Number, Existe: chk.Exists, JID: chk.JID})
	}
	respond.Success(c, http.StatusOK, "numbers verified", views)
}
