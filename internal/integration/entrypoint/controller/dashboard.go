// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/cache"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints. Responses are
// cached per user and window; entry writes invalidate the cache.
type DashboardController struct {
	yearlyBalanceUseCase      *dashboard.GetYearlyBalanceUseCase
	categoryTotalsUseCase     *dashboard.GetCategoryTotalsUseCase
	monthlyBalanceUseCase     *dashboard.GetMonthlyBalanceUseCase
	categoryComparisonUseCase *dashboard.GetCategoryComparisonUseCase
	incomeExpenseRatioUseCase *dashboard.GetIncomeExpenseRatioUseCase
	survivalTimeUseCase       *dashboard.GetSurvivalTimeUseCase
	totalBalanceUseCase       *dashboard.GetTotalBalanceUseCase
	paymentTypeTotalsUseCase  *dashboard.GetPaymentTypeTotalsUseCase
	dashboardCache            *cache.DashboardCache
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	yearlyBalanceUseCase *dashboard.GetYearlyBalanceUseCase,
	categoryTotalsUseCase *dashboard.GetCategoryTotalsUseCase,
	monthlyBalanceUseCase *dashboard.GetMonthlyBalanceUseCase,
	categoryComparisonUseCase *dashboard.GetCategoryComparisonUseCase,
	incomeExpenseRatioUseCase *dashboard.GetIncomeExpenseRatioUseCase,
	survivalTimeUseCase *dashboard.GetSurvivalTimeUseCase,
	totalBalanceUseCase *dashboard.GetTotalBalanceUseCase,
	paymentTypeTotalsUseCase *dashboard.GetPaymentTypeTotalsUseCase,
	dashboardCache *cache.DashboardCache,
) *DashboardController {
	return &DashboardController{
		yearlyBalanceUseCase:      yearlyBalanceUseCase,
		categoryTotalsUseCase:     categoryTotalsUseCase,
		monthlyBalanceUseCase:     monthlyBalanceUseCase,
		categoryComparisonUseCase: categoryComparisonUseCase,
		incomeExpenseRatioUseCase: incomeExpenseRatioUseCase,
		survivalTimeUseCase:       survivalTimeUseCase,
		totalBalanceUseCase:       totalBalanceUseCase,
		paymentTypeTotalsUseCase:  paymentTypeTotalsUseCase,
		dashboardCache:            dashboardCache,
	}
}

// YearlyBalance handles GET /dashboard/yearly-balance requests.
func (c *DashboardController) YearlyBalance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year := parseIntQuery(ctx, "year", time.Now().UTC().Year())
	window := fmt.Sprintf("%04d", year)

	var cached dto.YearlyBalanceResponse
	if c.cacheGet(ctx, userID, "yearly-balance", window, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.yearlyBalanceUseCase.Execute(ctx.Request.Context(), dashboard.GetYearlyBalanceInput{
		UserID: userID,
		Year:   year,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.YearlyBalanceResponse{Months: output.Months}
	c.cacheSet(ctx, userID, "yearly-balance", window, response)
	ctx.JSON(http.StatusOK, response)
}

// CategoryTotals handles GET /dashboard/category-totals requests.
func (c *DashboardController) CategoryTotals(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month := c.yearMonthParams(ctx)
	window := monthWindow(year, month)

	var cached dto.CategoryTotalsResponse
	if c.cacheGet(ctx, userID, "category-totals", window, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.categoryTotalsUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryTotalsInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.CategoryTotalsResponse{Totals: output.Totals}
	c.cacheSet(ctx, userID, "category-totals", window, response)
	ctx.JSON(http.StatusOK, response)
}

// MonthlyBalance handles GET /dashboard/monthly-balance requests.
func (c *DashboardController) MonthlyBalance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month := c.yearMonthParams(ctx)
	window := monthWindow(year, month)

	var cached dto.MonthlyBalanceResponse
	if c.cacheGet(ctx, userID, "monthly-balance", window, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.monthlyBalanceUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlyBalanceInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.MonthlyBalanceResponse{
		CurrentBalance:   output.CurrentBalance,
		PreviousBalance:  output.PreviousBalance,
		PercentageChange: output.PercentageChange,
	}
	c.cacheSet(ctx, userID, "monthly-balance", window, response)
	ctx.JSON(http.StatusOK, response)
}

// CategoryComparison handles GET /dashboard/category-comparison requests.
func (c *DashboardController) CategoryComparison(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month := c.yearMonthParams(ctx)
	window := monthWindow(year, month)

	var cached dto.CategoryComparisonResponse
	if c.cacheGet(ctx, userID, "category-comparison", window, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.categoryComparisonUseCase.Execute(ctx.Request.Context(), dashboard.GetCategoryComparisonInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.CategoryComparisonResponse{
		HighestIncome:  output.HighestIncome,
		HighestExpense: output.HighestExpense,
	}
	c.cacheSet(ctx, userID, "category-comparison", window, response)
	ctx.JSON(http.StatusOK, response)
}

// IncomeExpenseRatio handles GET /dashboard/income-expense-ratio requests.
func (c *DashboardController) IncomeExpenseRatio(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month := c.yearMonthParams(ctx)
	window := monthWindow(year, month)

	var cached dto.IncomeExpenseRatioResponse
	if c.cacheGet(ctx, userID, "income-expense-ratio", window, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.incomeExpenseRatioUseCase.Execute(ctx.Request.Context(), dashboard.GetIncomeExpenseRatioInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.ToIncomeExpenseRatioResponse(output)
	c.cacheSet(ctx, userID, "income-expense-ratio", window, response)
	ctx.JSON(http.StatusOK, response)
}

// SurvivalTime handles GET /dashboard/survival-time requests.
func (c *DashboardController) SurvivalTime(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var cached dto.SurvivalTimeResponse
	if c.cacheGet(ctx, userID, "survival-time", "all", &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.survivalTimeUseCase.Execute(ctx.Request.Context(), dashboard.GetSurvivalTimeInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.ToSurvivalTimeResponse(output)
	c.cacheSet(ctx, userID, "survival-time", "all", response)
	ctx.JSON(http.StatusOK, response)
}

// TotalBalance handles GET /dashboard/total-balance requests.
func (c *DashboardController) TotalBalance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var cached dto.TotalBalanceResponse
	if c.cacheGet(ctx, userID, "total-balance", "all", &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.totalBalanceUseCase.Execute(ctx.Request.Context(), dashboard.GetTotalBalanceInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.TotalBalanceResponse{Balance: output.Balance}
	c.cacheSet(ctx, userID, "total-balance", "all", response)
	ctx.JSON(http.StatusOK, response)
}

// PaymentTypeTotals handles GET /dashboard/payment-type-totals requests.
func (c *DashboardController) PaymentTypeTotals(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month := c.yearMonthParams(ctx)
	window := monthWindow(year, month)

	var cached dto.PaymentTypeTotalsResponse
	if c.cacheGet(ctx, userID, "payment-type-totals", window, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.paymentTypeTotalsUseCase.Execute(ctx.Request.Context(), dashboard.GetPaymentTypeTotalsInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	response := dto.PaymentTypeTotalsResponse{Totals: output.Totals}
	c.cacheSet(ctx, userID, "payment-type-totals", window, response)
	ctx.JSON(http.StatusOK, response)
}

// yearMonthParams reads the year and month query parameters, defaulting to
// the current UTC month.
func (c *DashboardController) yearMonthParams(ctx *gin.Context) (int, int) {
	now := time.Now().UTC()
	year := parseIntQuery(ctx, "year", now.Year())
	month := parseIntQuery(ctx, "month", int(now.Month()))
	return year, month
}

// monthWindow formats a cache window for a single month.
func monthWindow(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// cacheGet loads a cached dashboard response. It reports false on a miss or
// any cache failure, so callers fall through to the use case.
func (c *DashboardController) cacheGet(ctx *gin.Context, userID uuid.UUID, endpoint, window string, dest any) bool {
	if c.dashboardCache == nil {
		return false
	}
	key := c.dashboardCache.Key(userID, endpoint, window)
	err := c.dashboardCache.Get(ctx.Request.Context(), key, dest)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("dashboard cache read failed", "endpoint", endpoint, "error", err)
		}
		return false
	}
	return true
}

// cacheSet stores a dashboard response. Failures are logged and ignored.
func (c *DashboardController) cacheSet(ctx *gin.Context, userID uuid.UUID, endpoint, window string, value any) {
	if c.dashboardCache == nil {
		return
	}
	key := c.dashboardCache.Key(userID, endpoint, window)
	if err := c.dashboardCache.Set(ctx.Request.Context(), key, value); err != nil {
		slog.Warn("dashboard cache write failed", "endpoint", endpoint, "error", err)
	}
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := http.StatusInternalServerError
		if dashErr.Code == domainerror.ErrCodeInvalidYear || dashErr.Code == domainerror.ErrCodeInvalidMonth {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
