// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/personal-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                    *gin.Engine
	healthController          *controller.HealthController
	authController            *controller.AuthController
	categoryController        *controller.CategoryController
	costCenterController      *controller.CostCenterController
	paymentTypeController     *controller.PaymentTypeController
	entryController           *controller.EntryController
	recurringEntryController  *controller.RecurringEntryController
	dashboardController       *controller.DashboardController
	jobController             *controller.JobController
	loginRateLimiter          *middleware.RateLimiter
	authMiddleware            *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	costCenterController *controller.CostCenterController,
	paymentTypeController *controller.PaymentTypeController,
	entryController *controller.EntryController,
	recurringEntryController *controller.RecurringEntryController,
	dashboardController *controller.DashboardController,
	jobController *controller.JobController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		authController:           authController,
		categoryController:       categoryController,
		costCenterController:     costCenterController,
		paymentTypeController:    paymentTypeController,
		entryController:          entryController,
		recurringEntryController: recurringEntryController,
		dashboardController:      dashboardController,
		jobController:            jobController,
		loginRateLimiter:         loginRateLimiter,
		authMiddleware:           authMiddleware,
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

	// Setup routes
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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.GET("/:id", r.categoryController.Get)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Cost center routes (require authentication)
		if r.costCenterController != nil && r.authMiddleware != nil {
			costCenters := v1.Group("/cost-centers")
			costCenters.Use(r.authMiddleware.Authenticate())
			{
				costCenters.GET("", r.costCenterController.List)
				costCenters.POST("", r.costCenterController.Create)
				costCenters.GET("/:id", r.costCenterController.Get)
				costCenters.PUT("/:id", r.costCenterController.Update)
				costCenters.DELETE("/:id", r.costCenterController.Delete)
			}
		}

		// Payment type routes (require authentication)
		if r.paymentTypeController != nil && r.authMiddleware != nil {
			paymentTypes := v1.Group("/payment-types")
			paymentTypes.Use(r.authMiddleware.Authenticate())
			{
				paymentTypes.GET("", r.paymentTypeController.List)
				paymentTypes.POST("", r.paymentTypeController.Create)
				paymentTypes.GET("/:id", r.paymentTypeController.Get)
				paymentTypes.PUT("/:id", r.paymentTypeController.Update)
				paymentTypes.DELETE("/:id", r.paymentTypeController.Delete)
			}
		}

		// Entry routes (require authentication)
		if r.entryController != nil && r.authMiddleware != nil {
			entries := v1.Group("/entries")
			entries.Use(r.authMiddleware.Authenticate())
			{
				entries.GET("", r.entryController.List)
				entries.POST("", r.entryController.Create)
				entries.GET("/:id", r.entryController.Get)
				entries.PUT("/:id", r.entryController.Update)
				entries.DELETE("/:id", r.entryController.Delete)
			}
		}

		// Recurring entry routes (require authentication)
		if r.recurringEntryController != nil && r.authMiddleware != nil {
			recurringEntries := v1.Group("/recurring-entries")
			recurringEntries.Use(r.authMiddleware.Authenticate())
			{
				recurringEntries.GET("", r.recurringEntryController.List)
				recurringEntries.POST("", r.recurringEntryController.Create)
				recurringEntries.GET("/:id", r.recurringEntryController.Get)
				recurringEntries.PUT("/:id", r.recurringEntryController.Update)
				recurringEntries.DELETE("/:id", r.recurringEntryController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/yearly-balance", r.dashboardController.YearlyBalance)
				dashboard.GET("/category-totals", r.dashboardController.CategoryTotals)
				dashboard.GET("/monthly-balance", r.dashboardController.MonthlyBalance)
				dashboard.GET("/category-comparison", r.dashboardController.CategoryComparison)
				dashboard.GET("/income-expense-ratio", r.dashboardController.IncomeExpenseRatio)
				dashboard.GET("/survival-time", r.dashboardController.SurvivalTime)
				dashboard.GET("/total-balance", r.dashboardController.TotalBalance)
				dashboard.GET("/payment-type-totals", r.dashboardController.PaymentTypeTotals)
			}
		}

		// Job trigger routes (require authentication)
		if r.jobController != nil && r.authMiddleware != nil {
			jobs := v1.Group("/jobs")
			jobs.Use(r.authMiddleware.Authenticate())
			{
				jobs.POST("/process-recurring-entries", r.jobController.ProcessRecurringEntries)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
