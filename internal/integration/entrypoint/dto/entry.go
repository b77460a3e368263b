// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for entry creation.
type CreateEntryRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required,min=1,max=255"`
	CategoryID    string          `json:"category_id" binding:"required,uuid"`
	PaymentTypeID *string         `json:"payment_type_id" binding:"omitempty,uuid"`
	Period        string          `json:"period" binding:"required"`
}

// UpdateEntryRequest represents the request body for entry update.
type UpdateEntryRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required,min=1,max=255"`
	CategoryID    string          `json:"category_id" binding:"required,uuid"`
	PaymentTypeID *string         `json:"payment_type_id" binding:"omitempty,uuid"`
	Period        string          `json:"period" binding:"required"`
}

// EntryResponse represents a single entry in API responses.
type EntryResponse struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	CategoryID       string          `json:"category_id"`
	CategoryName     string          `json:"category_name,omitempty"`
	CategoryType     string          `json:"category_type,omitempty"`
	PaymentTypeID    *string         `json:"payment_type_id,omitempty"`
	RecurringEntryID *string         `json:"recurring_entry_id,omitempty"`
	Period           string          `json:"period"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// EntryListResponse represents the response for listing entries.
type EntryListResponse struct {
	Entries    []EntryResponse    `json:"entries"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToEntryResponse converts a domain Entry entity to an EntryResponse DTO.
func ToEntryResponse(entry *entity.Entry) EntryResponse {
	response := EntryResponse{
		ID:          entry.ID.String(),
		Amount:      entry.Amount,
		Description: entry.Description,
		CategoryID:  entry.CategoryID.String(),
		Period:      entry.Period.String(),
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.PaymentTypeID != nil {
		id := entry.PaymentTypeID.String()
		response.PaymentTypeID = &id
	}
	if entry.RecurringEntryID != nil {
		id := entry.RecurringEntryID.String()
		response.RecurringEntryID = &id
	}
	return response
}

// ToEntryWithCategoryResponse converts an entry and its category to an EntryResponse DTO.
func ToEntryWithCategoryResponse(entryWithCategory *entity.EntryWithCategory) EntryResponse {
	response := ToEntryResponse(entryWithCategory.Entry)
	if entryWithCategory.Category != nil {
		response.CategoryName = entryWithCategory.Category.Name
		response.CategoryType = string(entryWithCategory.Category.Type)
	}
	return response
}

// ToEntryListResponse converts entries with categories and paging info to an EntryListResponse.
func ToEntryListResponse(entries []*entity.EntryWithCategory, total int64, page, limit int) EntryListResponse {
	responses := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToEntryWithCategoryResponse(entry)
	}
	return EntryListResponse{
		Entries:    responses,
		Pagination: PaginationResponse{Total: total, Page: page, Limit: limit},
	}
}
