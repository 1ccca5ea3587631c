// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wealth-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/wealth-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	predictionController  *controller.PredictionController
	transactionController *controller.TransactionController
	dismissRateLimiter    *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	predictionController *controller.PredictionController,
	transactionController *controller.TransactionController,
	dismissRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		predictionController:  predictionController,
		transactionController: transactionController,
		dismissRateLimiter:    dismissRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Prediction routes (require authentication)
		if r.predictionController != nil && r.authMiddleware != nil {
			predictions := v1.Group("/predictions")
			predictions.Use(r.authMiddleware.Authenticate())
			{
				// The dismiss route must register before the :month wildcard.
				if r.dismissRateLimiter != nil {
					predictions.POST("/dismiss", r.dismissRateLimiter.Middleware(), r.predictionController.DismissPrediction)
				} else {
					predictions.POST("/dismiss", r.predictionController.DismissPrediction)
				}
				predictions.GET("/:month", r.predictionController.GetPredictions)
				predictions.GET("/:month/patterns", r.predictionController.GetPatterns)
				predictions.GET("/:month/average-essential", r.predictionController.GetAverageEssential)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.ListTransactions)
				transactions.POST("", r.transactionController.CreateTransaction)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
