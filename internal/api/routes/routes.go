package routes

import (
	"log"
	"time"

	"bid-ledger-api/internal/api/handlers"
	"bid-ledger-api/internal/api/middleware"
	"bid-ledger-api/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	apiV1 := router.Group("/api/v1")

	jobAppHandler := handlers.NewJobApplicationHandler(app.Ledger, app.Config.Ledger.ShortlistLimit)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	limiter := middleware.NewKeyedLimiter(app.Config.RateLimit.RPS, app.Config.RateLimit.Burst, 10*time.Minute)
	if limiter == nil {
		log.Println("Submission rate limiting disabled")
	}
	submitLimiter := middleware.RateLimitPerUser(limiter)

	RegisterJobApplicationRoutes(apiV1, jobAppHandler, authMiddleware, submitLimiter)

	router.GET("/health", handlers.HealthCheck(app.Store))

	// Spec is served from the docs package registered by main
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if app.Config.Metrics.Enabled {
		log.Println("Exposing prometheus metrics on /metrics")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
