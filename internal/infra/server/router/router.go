// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-chat/backend/internal/integration/entrypoint/controller"
	"github.com/expense-chat/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	messageController   *controller.MessageController
	analyticsController *controller.AnalyticsController
	budgetController    *controller.BudgetController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	messageController *controller.MessageController,
	analyticsController *controller.AnalyticsController,
	budgetController *controller.BudgetController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		messageController:   messageController,
		analyticsController: analyticsController,
		budgetController:    budgetController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
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
	api := r.engine.Group("/api")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := api.Group("/auth")
			{
				auth.POST("/signup", r.authController.Signup)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/logout", r.authController.Logout)
			}

			if r.authMiddleware != nil {
				auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			}
		}

		if r.messageController != nil && r.authMiddleware != nil {
			messages := api.Group("/messages")
			messages.Use(r.authMiddleware.Authenticate())
			{
				messages.GET("", r.messageController.List)
				messages.POST("", r.messageController.Create)
				messages.PATCH("/:id", r.messageController.Update)
				messages.DELETE("/:id", r.messageController.Delete)
			}
		}

		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := api.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("", r.analyticsController.Get)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budget := api.Group("/budget")
			budget.Use(r.authMiddleware.Authenticate())
			{
				budget.GET("", r.budgetController.Get)
				budget.PATCH("", r.budgetController.Update)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
