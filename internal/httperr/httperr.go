package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the JSON error envelope for every handler-level failure.
// Message is the localized user-facing text; Code is a stable snake_case
// identifier for clients. Server-side detail goes to the log, never here.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

// PreconditionFailed reports an operation attempted before its required
// state was in place (e.g. SMS send without a schedule). Wire status is
// 400 like any other client error.
func PreconditionFailed(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
