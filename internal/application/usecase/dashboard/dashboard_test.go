// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// fakeDashboardRepo serves canned aggregate rows keyed by period.
type fakeDashboardRepo struct {
	typeTotals        map[valueobject.Period]TypeTotals
	monthRows         []MonthTypeTotals
	allTime           TypeTotals
	categoryRows      map[valueobject.Period][]RawCategoryTotal
	expenseByPeriod   []PeriodTotal
	paymentTypeRows   []RawPaymentTypeTotal
}

func (f *fakeDashboardRepo) TypeTotalsForPeriod(ctx context.Context, userID uuid.UUID, period valueobject.Period) (*TypeTotals, error) {
	totals := f.typeTotals[period]
	return &totals, nil
}

func (f *fakeDashboardRepo) TypeTotalsByMonth(ctx context.Context, userID uuid.UUID, year int) ([]MonthTypeTotals, error) {
	return f.monthRows, nil
}

func (f *fakeDashboardRepo) TypeTotalsAllTime(ctx context.Context, userID uuid.UUID) (*TypeTotals, error) {
	totals := f.allTime
	return &totals, nil
}

func (f *fakeDashboardRepo) CategoryTotalsForPeriod(ctx context.Context, userID uuid.UUID, period valueobject.Period) ([]RawCategoryTotal, error) {
	return f.categoryRows[period], nil
}

func (f *fakeDashboardRepo) ExpenseTotalsByPeriod(ctx context.Context, userID uuid.UUID, from valueobject.Period) ([]PeriodTotal, error) {
	return f.expenseByPeriod, nil
}

func (f *fakeDashboardRepo) PaymentTypeTotalsForPeriod(ctx context.Context, userID uuid.UUID, period valueobject.Period) ([]RawPaymentTypeTotal, error) {
	return f.paymentTypeRows, nil
}

type fakeCategoryLister struct {
	adapter.CategoryRepository
	categories []*entity.Category
}

func (f *fakeCategoryLister) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return f.categories, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type testClock struct {
	now time.Time
}

func (c testClock) Now() time.Time { return c.now }

func TestGetYearlyBalance_FillsEmptyMonths(t *testing.T) {
	repo := &fakeDashboardRepo{
		monthRows: []MonthTypeTotals{
			{Period: "2024-03", Income: dec("1500.555"), Expense: dec("200")},
			{Period: "2024-11", Income: dec("10"), Expense: dec("99.999")},
		},
	}
	uc := NewGetYearlyBalanceUseCase(repo)

	output, err := uc.Execute(context.Background(), GetYearlyBalanceInput{UserID: uuid.New(), Year: 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Months) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(output.Months))
	}

	march := output.Months[2]
	if march.Month != "2024-03" {
		t.Fatalf("expected third bucket 2024-03, got %s", march.Month)
	}
	if !march.Income.Equal(dec("1500.56")) {
		t.Errorf("expected march income rounded to 1500.56, got %s", march.Income)
	}
	if !output.Months[10].Expense.Equal(dec("100")) {
		t.Errorf("expected november expense rounded to 100, got %s", output.Months[10].Expense)
	}

	// months without entries are zero buckets, not gaps
	if !output.Months[0].Income.IsZero() || !output.Months[0].Expense.IsZero() {
		t.Errorf("expected empty january bucket, got %+v", output.Months[0])
	}
}

func TestGetYearlyBalance_RejectsInvalidYear(t *testing.T) {
	uc := NewGetYearlyBalanceUseCase(&fakeDashboardRepo{})

	_, err := uc.Execute(context.Background(), GetYearlyBalanceInput{UserID: uuid.New(), Year: -3})
	if !errors.Is(err, domainerror.ErrInvalidYear) {
		t.Fatalf("expected invalid year error, got %v", err)
	}
}

func TestGetCategoryTotals_IncludesZeroActivityCategories(t *testing.T) {
	groceries := &entity.Category{ID: uuid.New(), Name: "groceries", Type: entity.CategoryTypeExpense}
	salary := &entity.Category{ID: uuid.New(), Name: "salary", Type: entity.CategoryTypeIncome}

	repo := &fakeDashboardRepo{
		categoryRows: map[valueobject.Period][]RawCategoryTotal{
			"2024-05": {
				{CategoryID: groceries.ID, CategoryName: "groceries", Type: entity.CategoryTypeExpense, Total: dec("321.50")},
			},
		},
	}
	uc := NewGetCategoryTotalsUseCase(repo, &fakeCategoryLister{categories: []*entity.Category{groceries, salary}})

	output, err := uc.Execute(context.Background(), GetCategoryTotalsInput{UserID: uuid.New(), Year: 2024, Month: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Totals) != 2 {
		t.Fatalf("expected a row per category, got %d", len(output.Totals))
	}

	byName := make(map[string]CategoryTotal)
	for _, total := range output.Totals {
		byName[total.CategoryName] = total
	}

	if !byName["groceries"].Total.Equal(dec("321.50")) {
		t.Errorf("expected groceries total 321.50, got %s", byName["groceries"].Total)
	}
	if !byName["salary"].Total.IsZero() {
		t.Errorf("expected zero total for inactive category, got %s", byName["salary"].Total)
	}
}

func TestGetMonthlyBalance(t *testing.T) {
	tests := []struct {
		name       string
		current    TypeTotals
		previous   TypeTotals
		wantPct    string
	}{
		{
			name:     "positive growth",
			current:  TypeTotals{Income: dec("3000"), Expense: dec("1000")},
			previous: TypeTotals{Income: dec("2000"), Expense: dec("1000")},
			wantPct:  "100",
		},
		{
			name:     "decline against negative previous uses absolute base",
			current:  TypeTotals{Income: dec("100"), Expense: dec("0")},
			previous: TypeTotals{Income: dec("0"), Expense: dec("200")},
			wantPct:  "150",
		},
		{
			name:     "zero previous balance reports zero change",
			current:  TypeTotals{Income: dec("500"), Expense: dec("0")},
			previous: TypeTotals{},
			wantPct:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeDashboardRepo{
				typeTotals: map[valueobject.Period]TypeTotals{
					"2024-01": tt.current,
					"2023-12": tt.previous,
				},
			}
			uc := NewGetMonthlyBalanceUseCase(repo)

			output, err := uc.Execute(context.Background(), GetMonthlyBalanceInput{UserID: uuid.New(), Year: 2024, Month: 1})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !output.PercentageChange.Equal(dec(tt.wantPct)) {
				t.Errorf("expected change %s, got %s", tt.wantPct, output.PercentageChange)
			}
		})
	}
}

func TestGetMonthlyBalance_WrapsToPreviousYear(t *testing.T) {
	repo := &fakeDashboardRepo{
		typeTotals: map[valueobject.Period]TypeTotals{
			"2024-01": {Income: dec("100")},
			"2023-12": {Income: dec("50")},
		},
	}
	uc := NewGetMonthlyBalanceUseCase(repo)

	output, err := uc.Execute(context.Background(), GetMonthlyBalanceInput{UserID: uuid.New(), Year: 2024, Month: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.PreviousBalance.Equal(dec("50")) {
		t.Errorf("expected previous balance from december 2023, got %s", output.PreviousBalance)
	}
}

func TestGetCategoryComparison(t *testing.T) {
	salaryID, foodID := uuid.New(), uuid.New()
	repo := &fakeDashboardRepo{
		categoryRows: map[valueobject.Period][]RawCategoryTotal{
			"2024-06": {
				{CategoryID: salaryID, CategoryName: "salary", Type: entity.CategoryTypeIncome, Total: dec("4000")},
				{CategoryID: foodID, CategoryName: "food", Type: entity.CategoryTypeExpense, Total: dec("600")},
			},
			"2024-05": {
				{CategoryID: foodID, CategoryName: "food", Type: entity.CategoryTypeExpense, Total: dec("400")},
			},
		},
	}
	uc := NewGetCategoryComparisonUseCase(repo)

	output, err := uc.Execute(context.Background(), GetCategoryComparisonInput{UserID: uuid.New(), Year: 2024, Month: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.HighestExpense.Category != "food" {
		t.Errorf("expected highest expense food, got %q", output.HighestExpense.Category)
	}
	if !output.HighestExpense.PercentageChange.Equal(dec("50")) {
		t.Errorf("expected expense change 50, got %s", output.HighestExpense.PercentageChange)
	}

	// no income last month: a fresh amount counts as a 100 percent increase
	if !output.HighestIncome.PercentageChange.Equal(dec("100")) {
		t.Errorf("expected income change 100, got %s", output.HighestIncome.PercentageChange)
	}
}

func TestGetCategoryComparison_EmptyMonths(t *testing.T) {
	uc := NewGetCategoryComparisonUseCase(&fakeDashboardRepo{})

	output, err := uc.Execute(context.Background(), GetCategoryComparisonInput{UserID: uuid.New(), Year: 2024, Month: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.HighestIncome.Category != "" || !output.HighestIncome.Amount.IsZero() {
		t.Errorf("expected empty highest income, got %+v", output.HighestIncome)
	}
	if !output.HighestIncome.PercentageChange.IsZero() {
		t.Errorf("expected zero change for empty months, got %s", output.HighestIncome.PercentageChange)
	}
}

func TestGetIncomeExpenseRatio(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		repo := &fakeDashboardRepo{
			typeTotals: map[valueobject.Period]TypeTotals{
				"2024-03": {Income: dec("3000"), Expense: dec("1500")},
			},
		}
		uc := NewGetIncomeExpenseRatioUseCase(repo)

		output, err := uc.Execute(context.Background(), GetIncomeExpenseRatioInput{UserID: uuid.New(), Year: 2024, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Ratio != 2 {
			t.Errorf("expected ratio 2, got %v", output.Ratio)
		}
	})

	t.Run("no expenses yields infinity", func(t *testing.T) {
		repo := &fakeDashboardRepo{
			typeTotals: map[valueobject.Period]TypeTotals{
				"2024-03": {Income: dec("3000")},
			},
		}
		uc := NewGetIncomeExpenseRatioUseCase(repo)

		output, err := uc.Execute(context.Background(), GetIncomeExpenseRatioInput{UserID: uuid.New(), Year: 2024, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsInf(output.Ratio, 1) {
			t.Errorf("expected +Inf, got %v", output.Ratio)
		}
	})

	t.Run("invalid month rejected", func(t *testing.T) {
		uc := NewGetIncomeExpenseRatioUseCase(&fakeDashboardRepo{})

		_, err := uc.Execute(context.Background(), GetIncomeExpenseRatioInput{UserID: uuid.New(), Year: 2024, Month: 13})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Fatalf("expected invalid month error, got %v", err)
		}
	})
}

func TestGetSurvivalTime(t *testing.T) {
	clock := testClock{now: time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)}

	t.Run("averages only months with expenses", func(t *testing.T) {
		repo := &fakeDashboardRepo{
			allTime: TypeTotals{Income: dec("10000"), Expense: dec("4000")},
			expenseByPeriod: []PeriodTotal{
				{Period: "2024-05", Total: dec("1000")},
				{Period: "2024-06", Total: dec("2000")},
			},
		}
		uc := NewGetSurvivalTimeUseCase(repo, clock)

		output, err := uc.Execute(context.Background(), GetSurvivalTimeInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// balance 6000, average monthly expense 1500
		if output.Months != 4 {
			t.Errorf("expected 4 months, got %v", output.Months)
		}
	})

	t.Run("no recent expenses yields infinity", func(t *testing.T) {
		repo := &fakeDashboardRepo{
			allTime: TypeTotals{Income: dec("10000")},
		}
		uc := NewGetSurvivalTimeUseCase(repo, clock)

		output, err := uc.Execute(context.Background(), GetSurvivalTimeInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !math.IsInf(output.Months, 1) {
			t.Errorf("expected +Inf, got %v", output.Months)
		}
	})
}

func TestGetTotalBalance(t *testing.T) {
	repo := &fakeDashboardRepo{
		allTime: TypeTotals{Income: dec("8250.75"), Expense: dec("3100.25")},
	}
	uc := NewGetTotalBalanceUseCase(repo)

	output, err := uc.Execute(context.Background(), GetTotalBalanceInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Balance.Equal(dec("5150.50")) {
		t.Errorf("expected balance 5150.50, got %s", output.Balance)
	}
}

func TestGetPaymentTypeTotals_GroupsMissingTypeUnderSentinel(t *testing.T) {
	card := "credit card"
	repo := &fakeDashboardRepo{
		paymentTypeRows: []RawPaymentTypeTotal{
			{PaymentTypeName: &card, Total: dec("300")},
			{PaymentTypeName: nil, Total: dec("45.10")},
			{PaymentTypeName: &card, Total: dec("120")},
		},
	}
	uc := NewGetPaymentTypeTotalsUseCase(repo)

	output, err := uc.Execute(context.Background(), GetPaymentTypeTotalsInput{UserID: uuid.New(), Year: 2024, Month: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Totals["credit card"].Equal(dec("420")) {
		t.Errorf("expected credit card total 420, got %s", output.Totals["credit card"])
	}
	if !output.Totals[entity.NoPaymentTypeLabel].Equal(dec("45.10")) {
		t.Errorf("expected sentinel bucket 45.10, got %s", output.Totals[entity.NoPaymentTypeLabel])
	}
}
