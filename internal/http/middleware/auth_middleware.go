package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/domain"
	"github.com/you/remindersvc/internal/http/respond"
)

// AuthMW resolves the bearer credential of every gated request. The
// credential is either a signed session token or a long-lived API key; both
// require the referenced user to be Active.
type AuthMW struct {
	tokenSvc    domain.TokenService
	sessionRepo domain.SessionRepository
	userRepo    domain.UserRepository
}

// NewAuthMW creates the authentication middleware
func NewAuthMW(tokenSvc domain.TokenService, sessionRepo domain.SessionRepository, userRepo domain.UserRepository) *AuthMW {
	return &AuthMW{
		tokenSvc:    tokenSvc,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

// WithAuth returns the gin handler enforcing the gate
func (m *AuthMW) WithAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respond.Error(c, domain.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			respond.Error(c, domain.ErrUnauthorized)
			c.Abort()
			return
		}
		credential := parts[1]

		user, sessionID, err := m.resolve(c.Request.Context(), credential)
		if err != nil {
			respond.Error(c, err)
			c.Abort()
			return
		}
		if user.Status != domain.UserActive {
			respond.Error(c, domain.ErrUserInactive)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		if sessionID != "" {
			c.Set("session_id", sessionID)
		}
		c.Next()
	}
}

// resolve tries the credential as a session token first, then as an API key
func (m *AuthMW) resolve(ctx context.Context, credential string) (*domain.User, string, error) {
	claims, err := m.tokenSvc.Validate(credential)
	if err == nil {
		if claims.SessionID != "" {
			session, err := m.sessionRepo.FindByID(ctx, claims.SessionID)
			if err != nil {
				return nil, "", err
			}
			if session.UserID != claims.UserID {
				return nil, "", domain.ErrUnauthorized
			}
		}
		user, err := m.userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return nil, "", domain.ErrUnauthorized
		}
		return user, claims.SessionID, nil
	}

	user, err := m.userRepo.FindByAPIKey(ctx, credential)
	if err != nil {
		return nil, "", domain.ErrUnauthorized
	}
	return user, "", nil
}

// UserID reads the authenticated user id from the gin context
func UserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// WithTimeout bounds every request's context
func WithTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
