package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the error envelope every endpoint returns. Error carries the
// raw cause, Message the human-readable context for the operation.
type HTTPError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, err, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Error:   err,
		Message: message,
	})
}

func BadRequest(c *gin.Context, err, message string) {
	Write(c, http.StatusBadRequest, err, message)
}

func Internal(c *gin.Context, err, message string) {
	Write(c, http.StatusInternalServerError, err, message)
}

func Unauthorized(c *gin.Context, err, message string) {
	Write(c, http.StatusUnauthorized, err, message)
}
