// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CreateCostCenterRequest represents the request body for cost center creation.
type CreateCostCenterRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateCostCenterRequest represents the request body for cost center update.
type UpdateCostCenterRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CostCenterResponse represents a single cost center in API responses.
type CostCenterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CostCenterListResponse represents the response for listing cost centers.
type CostCenterListResponse struct {
	CostCenters []CostCenterResponse `json:"cost_centers"`
	Pagination  PaginationResponse   `json:"pagination"`
}

// ToCostCenterResponse converts a domain CostCenter entity to a CostCenterResponse DTO.
func ToCostCenterResponse(costCenter *entity.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		ID:        costCenter.ID.String(),
		Name:      costCenter.Name,
		CreatedAt: costCenter.CreatedAt,
		UpdatedAt: costCenter.UpdatedAt,
	}
}

// ToCostCenterListResponse converts cost centers and paging info to a CostCenterListResponse.
func ToCostCenterListResponse(costCenters []*entity.CostCenter, total int64, page, limit int) CostCenterListResponse {
	responses := make([]CostCenterResponse, len(costCenters))
	for i, costCenter := range costCenters {
		responses[i] = ToCostCenterResponse(costCenter)
	}
	return CostCenterListResponse{
		CostCenters: responses,
		Pagination:  PaginationResponse{Total: total, Page: page, Limit: limit},
	}
}
