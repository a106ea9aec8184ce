// Package respond serializes the API's single response envelope. Every
// response, success or failure, has the shape {status, code, message,
// data|errors} so callers never branch on undocumented shapes.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/remindersvc/domain"
)

// Development controls whether internal error detail leaks into responses.
// Set once at startup.
var Development bool

type envelope struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success writes a success envelope
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, envelope{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Error maps a domain error onto the failure envelope. Errors reach this
// single boundary unmodified from their point of detection.
func Error(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fail(c, http.StatusBadRequest, "validation failed", []fieldError{
			{Field: verr.Field, Message: verr.Message},
		})
		return
	}

	var gerr *domain.GatewayError
	if errors.As(err, &gerr) {
		detail := gerr.Detail
		if gerr.Err != nil {
			detail = gerr.Detail + ": " + gerr.Err.Error()
		}
		fail(c, http.StatusBadRequest, "messaging gateway error", []string{detail})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrPhoneTaken):
		fail(c, http.StatusConflict, err.Error(), nil)

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, err.Error(), nil)

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReminderNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		fail(c, http.StatusNotFound, err.Error(), nil)

	default:
		var detail interface{}
		if Development {
			detail = []string{err.Error()}
		}
		fail(c, http.StatusInternalServerError, "internal server error", detail)
	}
}

// BadRequest writes a 400 envelope for malformed request bodies
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message, nil)
}

func fail(c *gin.Context, code int, message string, errs interface{}) {
	c.JSON(code, envelope{
		Status:  "error",
		Code:    code,
		Message: message,
		Errors:  errs,
	})
}
