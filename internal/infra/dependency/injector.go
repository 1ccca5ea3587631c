// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wealth-tracker/backend/config"
	"github.com/wealth-tracker/backend/internal/application/adapter"
	"github.com/wealth-tracker/backend/internal/application/usecase/prediction"
	"github.com/wealth-tracker/backend/internal/application/usecase/transaction"
	"github.com/wealth-tracker/backend/internal/infra/server/router"
	"github.com/wealth-tracker/backend/internal/integration/adapters"
	"github.com/wealth-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/wealth-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/wealth-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	dismissalRepo := persistence.NewPredictionDismissalRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	patternCache := adapters.NewRedisPatternCache(redisClient, cfg.Prediction.PatternCacheTTL)
	clock := adapter.SystemClock{}

	// Create prediction use cases
	detectPatternsUseCase := prediction.NewDetectPatternsUseCase(transactionRepo, patternCache)
	generatePredictionsUseCase := prediction.NewGeneratePredictionsUseCase(detectPatternsUseCase, transactionRepo, dismissalRepo, clock)
	dismissPredictionUseCase := prediction.NewDismissPredictionUseCase(dismissalRepo, patternCache, clock)
	averageEssentialUseCase := prediction.NewAverageEssentialUseCase(transactionRepo, categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, patternCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	predictionController := controller.NewPredictionController(
		generatePredictionsUseCase,
		detectPatternsUseCase,
		dismissPredictionUseCase,
		averageEssentialUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var dismissRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		dismissRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		dismissRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Prediction.DismissRateLimit, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, predictionController, transactionController, dismissRateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
