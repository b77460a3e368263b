// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CreateRecurringEntryRequest represents the request body for recurring entry creation.
type CreateRecurringEntryRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required,min=1,max=255"`
	Frequency     string          `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	CategoryID    string          `json:"category_id" binding:"required,uuid"`
	PaymentTypeID *string         `json:"payment_type_id" binding:"omitempty,uuid"`
	NextRun       time.Time       `json:"next_run" binding:"required"`
}

// UpdateRecurringEntryRequest represents the request body for recurring entry update.
type UpdateRecurringEntryRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required,min=1,max=255"`
	Frequency     string          `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	CategoryID    string          `json:"category_id" binding:"required,uuid"`
	PaymentTypeID *string         `json:"payment_type_id" binding:"omitempty,uuid"`
	NextRun       time.Time       `json:"next_run" binding:"required"`
}

// RecurringEntryResponse represents a single recurring entry in API responses.
type RecurringEntryResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Frequency     string          `json:"frequency"`
	CategoryID    string          `json:"category_id"`
	PaymentTypeID *string         `json:"payment_type_id,omitempty"`
	NextRun       time.Time       `json:"next_run"`
	LastRun       *time.Time      `json:"last_run,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// RecurringEntryListResponse represents the response for listing recurring entries.
type RecurringEntryListResponse struct {
	RecurringEntries []RecurringEntryResponse `json:"recurring_entries"`
	Pagination       PaginationResponse       `json:"pagination"`
}

// ProcessRecurringEntriesResponse reports the outcome of a materialization run.
type ProcessRecurringEntriesResponse struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// ToRecurringEntryResponse converts a domain RecurringEntry entity to a RecurringEntryResponse DTO.
func ToRecurringEntryResponse(recurringEntry *entity.RecurringEntry) RecurringEntryResponse {
	response := RecurringEntryResponse{
		ID:          recurringEntry.ID.String(),
		Amount:      recurringEntry.Amount,
		Description: recurringEntry.Description,
		Frequency:   string(recurringEntry.Frequency),
		CategoryID:  recurringEntry.CategoryID.String(),
		NextRun:     recurringEntry.NextRun,
		LastRun:     recurringEntry.LastRun,
		CreatedAt:   recurringEntry.CreatedAt,
		UpdatedAt:   recurringEntry.UpdatedAt,
	}
	if recurringEntry.PaymentTypeID != nil {
		id := recurringEntry.PaymentTypeID.String()
		response.PaymentTypeID = &id
	}
	return response
}

// ToRecurringEntryListResponse converts recurring entries and paging info to a list response.
func ToRecurringEntryListResponse(recurringEntries []*entity.RecurringEntry, total int64, page, limit int) RecurringEntryListResponse {
	responses := make([]RecurringEntryResponse, len(recurringEntries))
	for i, recurringEntry := range recurringEntries {
		responses[i] = ToRecurringEntryResponse(recurringEntry)
	}
	return RecurringEntryListResponse{
		RecurringEntries: responses,
		Pagination:       PaginationResponse{Total: total, Page: page, Limit: limit},
	}
}
