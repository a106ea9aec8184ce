package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/domain"
	"github.com/you/remindersvc/internal/http/middleware"
	"github.com/you/remindersvc/internal/http/respond"
)

// UserHandlers handles registration, login and profile HTTP requests
type UserHandlers struct {
	accountSvc domain.AccountService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(accountSvc domain.AccountService) *UserHandlers {
	return &UserHandlers{accountSvc: accountSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Telefone string `json:"telefone"`
}

// LoginRequest represents a login request; either email or phone identifies
// the account
type LoginRequest struct {
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha"`
}

// ProfileUpdateRequest represents a partial profile update
type ProfileUpdateRequest struct {
	Nome       *string `json:"nome"`
	Email      *string `json:"email"`
	Telefone   *string `json:"telefone"`
	FotoURL    *string `json:"foto_url"`
	Onboarding *bool   `json:"onboarding"`
}

// Register handles POST /usuarios/registro
func (h *UserHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.accountSvc.Register(c.Request.Context(), req.Nome, req.Email, req.Senha, req.Telefone)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, "user registered", gin.H{
		"id":      user.ID,
		"api_key": user.APIKey,
	})
}

// Login handles POST /usuarios/login
func (h *UserHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Telefone
	}
	if identifier == "" || req.Senha == "" {
		respond.Error(c, domain.ErrInvalidCredentials)
		return
	}

	result, err := h.accountSvc.Login(c.Request.Context(), identifier, req.Senha)
	if err != nil {
		respond.Error(c, err)
		return
	}

	respond.Success(c, http.StatusOK, "login successful", gin.H{
		"token":      result.Token,
		"api_key":    result.APIKey,
		"expires_in": result.ExpiresIn,
		"usuario":    toUserView(result.User),
	})
}

// Me handles GET /usuarios
func (h *UserHandlers) Me(c *gin.Context) {
	user, err := h.accountSvc.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "profile", toUserView(user))
}

// Update handles PUT /usuarios
func (h *UserHandlers) Update(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid request body")
		return
	}

	upd := &domain.UserUpdate{
		Name:      req.Nome,
		Email:     req.Email,
		Phone:     req.Telefone,
		PhotoURL:  req.FotoURL,
		Onboarded: req.Onboarding,
	}
	user, err := h.accountSvc.UpdateProfile(c.Request.Context(), middleware.UserID(c), upd)
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "profile updated", toUserView(user))
}

// RegenerateAPIKey handles POST /usuarios/regenerar-api-key
func (h *UserHandlers) RegenerateAPIKey(c *gin.Context) {
	key, err := h.accountSvc.RegenerateAPIKey(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "api key regenerated", gin.H{"api_key": key})
}

// Logout handles POST /usuarios/logout
func (h *UserHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		// api-key credentials have no session to revoke
		respond.Success(c, http.StatusOK, "logged out", nil)
		return
	}
	if err := h.accountSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "logged out", nil)
}

// Delete handles DELETE /usuarios. Owned reminders, tags, links and
// notifications cascade with the account.
func (h *UserHandlers) Delete(c *gin.Context) {
	if err := h.accountSvc.DeleteAccount(c.Request.Context(), middleware.UserID(c)); err != nil {
		respond.Error(c, err)
		return
	}
	respond.Success(c, http.StatusOK, "account deleted", nil)
}
