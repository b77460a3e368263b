// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CreatePaymentTypeRequest represents the request body for payment type creation.
type CreatePaymentTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdatePaymentTypeRequest represents the request body for payment type update.
type UpdatePaymentTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// PaymentTypeResponse represents a single payment type in API responses.
type PaymentTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentTypeListResponse represents the response for listing payment types.
type PaymentTypeListResponse struct {
	PaymentTypes []PaymentTypeResponse `json:"payment_types"`
}

// ToPaymentTypeResponse converts a domain PaymentType entity to a PaymentTypeResponse DTO.
func ToPaymentTypeResponse(paymentType *entity.PaymentType) PaymentTypeResponse {
	return PaymentTypeResponse{
		ID:        paymentType.ID.String(),
		Name:      paymentType.Name,
		CreatedAt: paymentType.CreatedAt,
		UpdatedAt: paymentType.UpdatedAt,
	}
}

// ToPaymentTypeListResponse converts domain payment types to a PaymentTypeListResponse.
func ToPaymentTypeListResponse(paymentTypes []*entity.PaymentType) PaymentTypeListResponse {
	responses := make([]PaymentTypeResponse, len(paymentTypes))
	for i, paymentType := range paymentTypes {
		responses[i] = ToPaymentTypeResponse(paymentType)
	}
	return PaymentTypeListResponse{PaymentTypes: responses}
}
