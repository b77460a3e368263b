// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/personal-ledger/backend/config"
	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/application/usecase/auth"
	"github.com/personal-ledger/backend/internal/application/usecase/category"
	"github.com/personal-ledger/backend/internal/application/usecase/costcenter"
	"github.com/personal-ledger/backend/internal/application/usecase/dashboard"
	"github.com/personal-ledger/backend/internal/application/usecase/entry"
	"github.com/personal-ledger/backend/internal/application/usecase/paymenttype"
	"github.com/personal-ledger/backend/internal/application/usecase/recurring"
	"github.com/personal-ledger/backend/internal/infra/scheduler"
	"github.com/personal-ledger/backend/internal/infra/server/router"
	"github.com/personal-ledger/backend/internal/integration/adapters"
	"github.com/personal-ledger/backend/internal/integration/cache"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/personal-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	DB        *gorm.DB
	Router    *router.Router
	Scheduler *scheduler.Scheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client is optional; without it the dashboard responses are
// computed on every request.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	costCenterRepo := persistence.NewCostCenterRepository(db)
	paymentTypeRepo := persistence.NewPaymentTypeRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	recurringEntryRepo := persistence.NewRecurringEntryRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	clock := adapter.SystemClock{}

	var dashboardCache *cache.DashboardCache
	if redisClient != nil {
		dashboardCache = cache.NewDashboardCache(redisClient, cache.DefaultTTL)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, costCenterRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, costCenterRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, entryRepo)

	// Create cost center use cases
	createCostCenterUseCase := costcenter.NewCreateCostCenterUseCase(costCenterRepo)
	listCostCentersUseCase := costcenter.NewListCostCentersUseCase(costCenterRepo)
	getCostCenterUseCase := costcenter.NewGetCostCenterUseCase(costCenterRepo)
	updateCostCenterUseCase := costcenter.NewUpdateCostCenterUseCase(costCenterRepo)
	deleteCostCenterUseCase := costcenter.NewDeleteCostCenterUseCase(costCenterRepo, categoryRepo)

	// Create payment type use cases
	createPaymentTypeUseCase := paymenttype.NewCreatePaymentTypeUseCase(paymentTypeRepo)
	listPaymentTypesUseCase := paymenttype.NewListPaymentTypesUseCase(paymentTypeRepo)
	getPaymentTypeUseCase := paymenttype.NewGetPaymentTypeUseCase(paymentTypeRepo)
	updatePaymentTypeUseCase := paymenttype.NewUpdatePaymentTypeUseCase(paymentTypeRepo)
	deletePaymentTypeUseCase := paymenttype.NewDeletePaymentTypeUseCase(paymentTypeRepo)

	// Create entry use cases
	createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo, categoryRepo, paymentTypeRepo)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	getEntryUseCase := entry.NewGetEntryUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo, categoryRepo, paymentTypeRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo)

	// Create recurring entry use cases
	createRecurringEntryUseCase := recurring.NewCreateRecurringEntryUseCase(recurringEntryRepo, categoryRepo, paymentTypeRepo)
	listRecurringEntriesUseCase := recurring.NewListRecurringEntriesUseCase(recurringEntryRepo)
	getRecurringEntryUseCase := recurring.NewGetRecurringEntryUseCase(recurringEntryRepo)
	updateRecurringEntryUseCase := recurring.NewUpdateRecurringEntryUseCase(recurringEntryRepo, categoryRepo, paymentTypeRepo)
	deleteRecurringEntryUseCase := recurring.NewDeleteRecurringEntryUseCase(recurringEntryRepo)
	processDueUseCase := recurring.NewProcessDueUseCase(recurringEntryRepo, entryRepo, clock)

	// Create dashboard use cases
	yearlyBalanceUseCase := dashboard.NewGetYearlyBalanceUseCase(dashboardRepo)
	categoryTotalsUseCase := dashboard.NewGetCategoryTotalsUseCase(dashboardRepo, categoryRepo)
	monthlyBalanceUseCase := dashboard.NewGetMonthlyBalanceUseCase(dashboardRepo)
	categoryComparisonUseCase := dashboard.NewGetCategoryComparisonUseCase(dashboardRepo)
	incomeExpenseRatioUseCase := dashboard.NewGetIncomeExpenseRatioUseCase(dashboardRepo)
	survivalTimeUseCase := dashboard.NewGetSurvivalTimeUseCase(dashboardRepo, clock)
	totalBalanceUseCase := dashboard.NewGetTotalBalanceUseCase(dashboardRepo)
	paymentTypeTotalsUseCase := dashboard.NewGetPaymentTypeTotalsUseCase(dashboardRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(registerUseCase, loginUseCase)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	costCenterController := controller.NewCostCenterController(
		createCostCenterUseCase,
		listCostCentersUseCase,
		getCostCenterUseCase,
		updateCostCenterUseCase,
		deleteCostCenterUseCase,
	)

	paymentTypeController := controller.NewPaymentTypeController(
		createPaymentTypeUseCase,
		listPaymentTypesUseCase,
		getPaymentTypeUseCase,
		updatePaymentTypeUseCase,
		deletePaymentTypeUseCase,
	)

	entryController := controller.NewEntryController(
		createEntryUseCase,
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		dashboardCache,
	)

	recurringEntryController := controller.NewRecurringEntryController(
		createRecurringEntryUseCase,
		listRecurringEntriesUseCase,
		getRecurringEntryUseCase,
		updateRecurringEntryUseCase,
		deleteRecurringEntryUseCase,
	)

	dashboardController := controller.NewDashboardController(
		yearlyBalanceUseCase,
		categoryTotalsUseCase,
		monthlyBalanceUseCase,
		categoryComparisonUseCase,
		incomeExpenseRatioUseCase,
		survivalTimeUseCase,
		totalBalanceUseCase,
		paymentTypeTotalsUseCase,
		dashboardCache,
	)

	jobController := controller.NewJobController(processDueUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		costCenterController,
		paymentTypeController,
		entryController,
		recurringEntryController,
		dashboardController,
		jobController,
		loginRateLimiter,
		authMiddleware,
	)

	// Create scheduler
	materializer := scheduler.NewScheduler(processDueUseCase, clock, scheduler.Config{
		RunAt: cfg.Scheduler.RunAt,
	})

	return &Injector{
		Config:    cfg,
		DB:        db,
		Router:    r,
		Scheduler: materializer,
	}
}
