package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/salon-cloud/salon-api/internal/httperr"
)

// writeRepoError maps repository failures to the error envelope: business
// rule failures (validation, conflict, not-found) are 400s at the storage
// surface, everything else is a transport failure and becomes 500.
func writeRepoError(c *gin.Context, err error, message string) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Message, message)
		return
	}

	httperr.Internal(c, err.Error(), message)
}
