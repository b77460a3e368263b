// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Type         string  `json:"type" binding:"required,oneof=expense income"`
	CostCenterID *string `json:"cost_center_id,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Type         string  `json:"type" binding:"required,oneof=expense income"`
	CostCenterID *string `json:"cost_center_id,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	CostCenterID *string   `json:"cost_center_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	var costCenterID *string
	if category.CostCenterID != nil {
		id := category.CostCenterID.String()
		costCenterID = &id
	}

	return CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Type:         string(category.Type),
		CostCenterID: costCenterID,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories and paging info to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category, total int64, page, limit int) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
		Pagination: PaginationResponse{Total: total, Page: page, Limit: limit},
	}
}
