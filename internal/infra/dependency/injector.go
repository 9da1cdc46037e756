// Package dependency provides dependency injection for the application.
package dependency

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-chat/backend/config"
	"github.com/expense-chat/backend/internal/application/adapter"
	"github.com/expense-chat/backend/internal/application/usecase/analytics"
	"github.com/expense-chat/backend/internal/application/usecase/auth"
	"github.com/expense-chat/backend/internal/application/usecase/budget"
	"github.com/expense-chat/backend/internal/application/usecase/message"
	"github.com/expense-chat/backend/internal/infra/cache"
	"github.com/expense-chat/backend/internal/infra/server/router"
	"github.com/expense-chat/backend/internal/integration/adapters"
	"github.com/expense-chat/backend/internal/integration/email"
	"github.com/expense-chat/backend/internal/integration/entrypoint/controller"
	"github.com/expense-chat/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-chat/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// Options allows swapping external integrations, mainly for tests.
type Options struct {
	// Parser overrides the Gemini-backed transaction parser.
	Parser adapter.TransactionParser
	// EmailSender overrides the Resend-backed sender. Nil with no
	// override disables the welcome email.
	EmailSender adapter.EmailSender
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts Options) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	messageRepo := persistence.NewMessageRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Adapters
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry, redisClient)

	parser := opts.Parser
	if parser == nil {
		parser = adapters.NewGeminiParser(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}

	emailSender := opts.EmailSender
	if emailSender == nil && cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailSender)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)

	// Message use cases
	createMessageUseCase := message.NewCreateMessageUseCase(messageRepo, parser)
	listMessagesUseCase := message.NewListMessagesUseCase(messageRepo)
	updateMessageUseCase := message.NewUpdateMessageUseCase(messageRepo)
	deleteMessageUseCase := message.NewDeleteMessageUseCase(messageRepo)

	// Analytics and budget use cases
	getAnalyticsUseCase := analytics.NewGetAnalyticsUseCase(analyticsRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)

	// Controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			return cache.HealthCheck(redisClient)
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		logoutUseCase,
		getCurrentUserUseCase,
	)

	messageController := controller.NewMessageController(
		createMessageUseCase,
		listMessagesUseCase,
		updateMessageUseCase,
		deleteMessageUseCase,
	)

	analyticsController := controller.NewAnalyticsController(getAnalyticsUseCase)
	budgetController := controller.NewBudgetController(getBudgetUseCase, updateBudgetUseCase)

	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if os.Getenv("E2E_MODE") == "true" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		messageController,
		analyticsController,
		budgetController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
