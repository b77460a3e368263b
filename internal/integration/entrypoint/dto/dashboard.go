// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/application/usecase/dashboard"
)

// YearlyBalanceResponse represents twelve monthly income/expense buckets.
type YearlyBalanceResponse struct {
	Months []dashboard.MonthBucket `json:"months"`
}

// CategoryTotalsResponse represents per-category totals for one month.
type CategoryTotalsResponse struct {
	Totals []dashboard.CategoryTotal `json:"totals"`
}

// MonthlyBalanceResponse represents a month's balance against the previous month.
type MonthlyBalanceResponse struct {
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	PreviousBalance  decimal.Decimal `json:"previous_balance"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}

// CategoryComparisonResponse represents the highest income and expense categories.
type CategoryComparisonResponse struct {
	HighestIncome  dashboard.HighestCategory `json:"highest_income"`
	HighestExpense dashboard.HighestCategory `json:"highest_expense"`
}

// IncomeExpenseRatioResponse represents income divided by expense for one
// month. Ratio is null when the month has no expenses.
type IncomeExpenseRatioResponse struct {
	Ratio *float64 `json:"ratio"`
}

// SurvivalTimeResponse represents how many months the balance would last at
// the recent spending rate. Months is null when there is no spending.
type SurvivalTimeResponse struct {
	Months *float64 `json:"months"`
}

// TotalBalanceResponse represents the user's all-time balance.
type TotalBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// PaymentTypeTotalsResponse represents per-payment-type totals for one month.
type PaymentTypeTotalsResponse struct {
	Totals map[string]decimal.Decimal `json:"totals"`
}

// finiteOrNil maps non-finite values to nil so they serialize as JSON null.
func finiteOrNil(value float64) *float64 {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return nil
	}
	return &value
}

// ToIncomeExpenseRatioResponse converts a ratio output to its response DTO.
func ToIncomeExpenseRatioResponse(output *dashboard.GetIncomeExpenseRatioOutput) IncomeExpenseRatioResponse {
	return IncomeExpenseRatioResponse{Ratio: finiteOrNil(output.Ratio)}
}

// ToSurvivalTimeResponse converts a survival time output to its response DTO.
func ToSurvivalTimeResponse(output *dashboard.GetSurvivalTimeOutput) SurvivalTimeResponse {
	return SurvivalTimeResponse{Months: finiteOrNil(output.Months)}
}
