// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/personal-ledger/backend/internal/application/usecase/dashboard"
	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
// The aggregates group on the period string column, which keeps every query
// portable between postgres and the sqlite test database.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// TypeTotalsForPeriod returns the summed income and expense amounts for one
// accounting month.
func (r *dashboardRepository) TypeTotalsForPeriod(
	ctx context.Context,
	userID uuid.UUID,
	period valueobject.Period,
) (*dashboard.TypeTotals, error) {
	var result struct {
		Income  decimal.Decimal `gorm:"column:income"`
		Expense decimal.Decimal `gorm:"column:expense"`
	}

	err := r.db.WithContext(ctx).
		Table("entries").
		Select(`
			COALESCE(SUM(CASE WHEN categories.type = ? THEN entries.amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN categories.type = ? THEN entries.amount ELSE 0 END), 0) as expense`,
			string(entity.CategoryTypeIncome), string(entity.CategoryTypeExpense)).
		Joins("JOIN categories ON categories.id = entries.category_id").
		Where("entries.user_id = ? AND entries.period = ?", userID, period.String()).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum period totals: %w", err)
	}

	return &dashboard.TypeTotals{
		Income:  result.Income,
		Expense: result.Expense,
	}, nil
}

// TypeTotalsByMonth returns per-month income and expense sums for every
// period of the given year that has entries.
func (r *dashboardRepository) TypeTotalsByMonth(
	ctx context.Context,
	userID uuid.UUID,
	year int,
) ([]dashboard.MonthTypeTotals, error) {
	var results []struct {
		Period  string          `gorm:"column:period"`
		Income  decimal.Decimal `gorm:"column:income"`
		Expense decimal.Decimal `gorm:"column:expense"`
	}

	err := r.db.WithContext(ctx).
		Table("entries").
		Select(`
			entries.period as period,
			COALESCE(SUM(CASE WHEN categories.type = ? THEN entries.amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN categories.type = ? THEN entries.amount ELSE 0 END), 0) as expense`,
			string(entity.CategoryTypeIncome), string(entity.CategoryTypeExpense)).
		Joins("JOIN categories ON categories.id = entries.category_id").
		Where("entries.user_id = ? AND entries.period LIKE ?", userID, fmt.Sprintf("%04d-%%", year)).
		Group("entries.period").
		Order("entries.period ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly totals: %w", err)
	}

	rows := make([]dashboard.MonthTypeTotals, len(results))
	for i, res := range results {
		rows[i] = dashboard.MonthTypeTotals{
			Period:  valueobject.Period(res.Period),
			Income:  res.Income,
			Expense: res.Expense,
		}
	}
	return rows, nil
}

// TypeTotalsAllTime returns the summed income and expense amounts over the
// user's whole history.
func (r *dashboardRepository) TypeTotalsAllTime(
	ctx context.Context,
	userID uuid.UUID,
) (*dashboard.TypeTotals, error) {
	var result struct {
		Income  decimal.Decimal `gorm:"column:income"`
		Expense decimal.Decimal `gorm:"column:expense"`
	}

	err := r.db.WithContext(ctx).
		Table("entries").
		Select(`
			COALESCE(SUM(CASE WHEN categories.type = ? THEN entries.amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN categories.type = ? THEN entries.amount ELSE 0 END), 0) as expense`,
			string(entity.CategoryTypeIncome), string(entity.CategoryTypeExpense)).
		Joins("JOIN categories ON categories.id = entries.category_id").
		Where("entries.user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum all-time totals: %w", err)
	}

	return &dashboard.TypeTotals{
		Income:  result.Income,
		Expense: result.Expense,
	}, nil
}

// CategoryTotalsForPeriod returns per-category sums for one accounting month.
func (r *dashboardRepository) CategoryTotalsForPeriod(
	ctx context.Context,
	userID uuid.UUID,
	period valueobject.Period,
) ([]dashboard.RawCategoryTotal, error) {
	var results []struct {
		CategoryID   uuid.UUID       `gorm:"column:category_id"`
		CategoryName string          `gorm:"column:category_name"`
		Type         string          `gorm:"column:type"`
		Total        decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("entries").
		Select(`
			categories.id as category_id,
			categories.name as category_name,
			categories.type as type,
			COALESCE(SUM(entries.amount), 0) as total`).
		Joins("JOIN categories ON categories.id = entries.category_id").
		Where("entries.user_id = ? AND entries.period = ?", userID, period.String()).
		Group("categories.id, categories.name, categories.type").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum category totals: %w", err)
	}

	rows := make([]dashboard.RawCategoryTotal, len(results))
	for i, res := range results {
		rows[i] = dashboard.RawCategoryTotal{
			CategoryID:   res.CategoryID,
			CategoryName: res.CategoryName,
			Type:         entity.CategoryType(res.Type),
			Total:        res.Total,
		}
	}
	return rows, nil
}

// ExpenseTotalsByPeriod returns per-month expense sums for every period on
// or after from that has expense entries. Periods sort lexicographically, so
// a plain string comparison covers the range filter.
func (r *dashboardRepository) ExpenseTotalsByPeriod(
	ctx context.Context,
	userID uuid.UUID,
	from valueobject.Period,
) ([]dashboard.PeriodTotal, error) {
	var results []struct {
		Period string          `gorm:"column:period"`
		Total  decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("entries").
		Select("entries.period as period, COALESCE(SUM(entries.amount), 0) as total").
		Joins("JOIN categories ON categories.id = entries.category_id").
		Where("entries.user_id = ? AND categories.type = ? AND entries.period >= ?",
			userID, string(entity.CategoryTypeExpense), from.String()).
		Group("entries.period").
		Order("entries.period ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum trailing expense totals: %w", err)
	}

	rows := make([]dashboard.PeriodTotal, len(results))
	for i, res := range results {
		rows[i] = dashboard.PeriodTotal{
			Period: valueobject.Period(res.Period),
			Total:  res.Total,
		}
	}
	return rows, nil
}

// PaymentTypeTotalsForPeriod returns per-payment-type sums for one accounting
// month. The left join keeps entries without a payment type, which come back
// with a null name.
func (r *dashboardRepository) PaymentTypeTotalsForPeriod(
	ctx context.Context,
	userID uuid.UUID,
	period valueobject.Period,
) ([]dashboard.RawPaymentTypeTotal, error) {
	var results []struct {
		PaymentTypeName *string         `gorm:"column:payment_type_name"`
		Total           decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Table("entries").
		Select("payment_types.name as payment_type_name, COALESCE(SUM(entries.amount), 0) as total").
		Joins("LEFT JOIN payment_types ON payment_types.id = entries.payment_type_id").
		Where("entries.user_id = ? AND entries.period = ?", userID, period.String()).
		Group("payment_types.name").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum payment type totals: %w", err)
	}

	rows := make([]dashboard.RawPaymentTypeTotal, len(results))
	for i, res := range results {
		rows[i] = dashboard.RawPaymentTypeTotal{
			PaymentTypeName: res.PaymentTypeName,
			Total:           res.Total,
		}
	}
	return rows, nil
}
