package handlers

import (
	"errors"
	"log"
	"net/http"

	"bid-ledger-api/internal/services"

	"github.com/gin-gonic/gin"
)

// respondLedgerError writes the HTTP response for an error returned by the
// ledger. action completes "Failed to ..." for unexpected errors.
func respondLedgerError(c *gin.Context, action string, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErr.Fields})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"error": "You have already applied to this job"})
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrShortlistFull):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrQuotaExceeded):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Submission quota reached, try again later"})
	default:
		log.Printf("Handler: Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
