// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category classifies entries as income or expense. Names are unique per
// (name, type, user). Expense categories belong to a cost center; income
// categories must not reference one.
type Category struct {
	ID           uuid.UUID
	Name         string
	Type         CategoryType
	CostCenterID *uuid.UUID
	UserID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, costCenterID *uuid.UUID, userID uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:           uuid.New(),
		Name:         name,
		Type:         categoryType,
		CostCenterID: costCenterID,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
