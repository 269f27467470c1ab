package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-platform/internal/apperr"
)

type HTTPError struct {
	Code            string `json:"error_code"`
	Message         string `json:"message"`
	UpgradeRequired bool   `json:"upgrade_required,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From maps an engine error to its HTTP shape. Quota errors come out as 403
// with the upgrade flag set, never as a plain 400.
func From(c *gin.Context, err error) {
	e, ok := apperr.As(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch e.Kind {
	case apperr.KindAuthentication:
		Unauthorized(c, e.Code, e.Message)
	case apperr.KindAuthorization:
		Forbidden(c, e.Code, e.Message)
	case apperr.KindNotFound:
		NotFound(c, e.Code, e.Message)
	case apperr.KindValidation:
		BadRequest(c, e.Code, e.Message)
	case apperr.KindConflict:
		Conflict(c, e.Code, e.Message)
	case apperr.KindQuotaExceeded:
		c.JSON(http.StatusForbidden, HTTPError{
			Code:            e.Code,
			Message:         e.Message,
			UpgradeRequired: true,
		})
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
