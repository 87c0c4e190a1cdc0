package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"bid-ledger-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles the health check endpoint. The store is read once so a
// broken backend reports 503.
//
//	@Summary		Health check
//	@Description	Check if the service and its application store are reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Failure		503	{object}	map[string]string	"Store unavailable"
//	@Router			/health [get]
func HealthCheck(store storage.ApplicationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if _, err := store.Load(ctx); err != nil {
			log.Printf("HealthCheck: Store unavailable: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "application store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
