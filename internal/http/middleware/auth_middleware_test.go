package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/domain"
	"github.com/you/remindersvc/internal/mocks"
)

func newGatedRouter(mw *AuthMW) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw.WithAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func gateUser() *domain.User {
	return &domain.User{
		ID:     1,
		Email:  "maria@example.com",
		Status: domain.UserActive,
		APIKey: "valid-api-key",
	}
}

func TestAuthMW_WithAuth(t *testing.T) {
	tests := []struct {
		name           string
		authorization  string
		setupMocks     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name:           "missing header",
			authorization:  "",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authorization:  "Token abc",
			setupMocks:     func(*mocks.MockTokenService, *mocks.MockSessionRepository, *mocks.MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "valid session token",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 1, SessionID: "sess-1"}, nil
				}
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return &domain.Session{ID: sessionID, UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return gateUser(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "token with revoked session",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 1, SessionID: "sess-1"}, nil
				}
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return nil, domain.ErrSessionNotFound
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "token whose session belongs to another user",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 1, SessionID: "sess-1"}, nil
				}
				sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
					return &domain.Session{ID: sessionID, UserID: 2, ExpiresAt: time.Now().Add(time.Hour)}, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "api key fallback",
			authorization: "Bearer valid-api-key",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.FindByAPIKeyFunc = func(ctx context.Context, key string) (*domain.User, error) {
					if key == "valid-api-key" {
						return gateUser(), nil
					}
					return nil, domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "unknown credential",
			authorization: "Bearer garbage",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "inactive user is rejected",
			authorization: "Bearer valid-api-key",
			setupMocks: func(tokenSvc *mocks.MockTokenService, sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.FindByAPIKeyFunc = func(ctx context.Context, key string) (*domain.User, error) {
					user := gateUser()
					user.Status = domain.UserInactive
					return user, nil
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := &mocks.MockTokenService{}
			sessionRepo := &mocks.MockSessionRepository{}
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(tokenSvc, sessionRepo, userRepo)

			mw := NewAuthMW(tokenSvc, sessionRepo, userRepo)
			w := get(newGatedRouter(mw), tt.authorization)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
