// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/usecase/paymenttype"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
)

// PaymentTypeController handles payment type endpoints.
type PaymentTypeController struct {
	createUseCase *paymenttype.CreatePaymentTypeUseCase
	listUseCase   *paymenttype.ListPaymentTypesUseCase
	getUseCase    *paymenttype.GetPaymentTypeUseCase
	updateUseCase *paymenttype.UpdatePaymentTypeUseCase
	deleteUseCase *paymenttype.DeletePaymentTypeUseCase
}

// NewPaymentTypeController creates a new payment type controller instance.
func NewPaymentTypeController(
	createUseCase *paymenttype.CreatePaymentTypeUseCase,
	listUseCase *paymenttype.ListPaymentTypesUseCase,
	getUseCase *paymenttype.GetPaymentTypeUseCase,
	updateUseCase *paymenttype.UpdatePaymentTypeUseCase,
	deleteUseCase *paymenttype.DeletePaymentTypeUseCase,
) *PaymentTypeController {
	return &PaymentTypeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /payment-types requests.
func (c *PaymentTypeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreatePaymentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPaymentTypeName),
		})
		return
	}

	input := paymenttype.CreatePaymentTypeInput{
		Name:   req.Name,
		UserID: userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentTypeResponse(output.PaymentType))
}

// List handles GET /payment-types requests.
func (c *PaymentTypeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := paymenttype.ListPaymentTypesInput{UserID: userID}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentTypeListResponse(output.PaymentTypes))
}

// Get handles GET /payment-types/:id requests.
func (c *PaymentTypeController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	paymentTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment type ID format",
		})
		return
	}

	input := paymenttype.GetPaymentTypeInput{
		PaymentTypeID: paymentTypeID,
		UserID:        userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentTypeResponse(output.PaymentType))
}

// Update handles PUT /payment-types/:id requests.
func (c *PaymentTypeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	paymentTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment type ID format",
		})
		return
	}

	var req dto.UpdatePaymentTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingPaymentTypeName),
		})
		return
	}

	input := paymenttype.UpdatePaymentTypeInput{
		PaymentTypeID: paymentTypeID,
		Name:          req.Name,
		UserID:        userID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentTypeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentTypeResponse(output.PaymentType))
}

// Delete handles DELETE /payment-types/:id requests.
func (c *PaymentTypeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	paymentTypeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment type ID format",
		})
		return
	}

	input := paymenttype.DeletePaymentTypeInput{
		PaymentTypeID: paymentTypeID,
		UserID:        userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handlePaymentTypeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePaymentTypeError handles payment type errors and returns appropriate HTTP responses.
func (c *PaymentTypeController) handlePaymentTypeError(ctx *gin.Context, err error) {
	var ptErr *domainerror.PaymentTypeError
	if errors.As(err, &ptErr) {
		statusCode := c.getStatusCodeForPaymentTypeError(ptErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ptErr.Message,
			Code:  string(ptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPaymentTypeError maps payment type error codes to HTTP status codes.
func (c *PaymentTypeController) getStatusCodeForPaymentTypeError(code domainerror.PaymentTypeErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentTypeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedPaymentType:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingPaymentTypeName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
