// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/usecase/recurring"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
)

// RecurringEntryController handles recurring entry endpoints.
type RecurringEntryController struct {
	createUseCase *recurring.CreateRecurringEntryUseCase
	listUseCase   *recurring.ListRecurringEntriesUseCase
	getUseCase    *recurring.GetRecurringEntryUseCase
	updateUseCase *recurring.UpdateRecurringEntryUseCase
	deleteUseCase *recurring.DeleteRecurringEntryUseCase
}

// NewRecurringEntryController creates a new recurring entry controller instance.
func NewRecurringEntryController(
	createUseCase *recurring.CreateRecurringEntryUseCase,
	listUseCase *recurring.ListRecurringEntriesUseCase,
	getUseCase *recurring.GetRecurringEntryUseCase,
	updateUseCase *recurring.UpdateRecurringEntryUseCase,
	deleteUseCase *recurring.DeleteRecurringEntryUseCase,
) *RecurringEntryController {
	return &RecurringEntryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /recurring-entries requests.
func (c *RecurringEntryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateRecurringEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecurringFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	paymentTypeID, err := parseOptionalUUID(req.PaymentTypeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment type ID format",
		})
		return
	}

	input := recurring.CreateRecurringEntryInput{
		Amount:        req.Amount,
		Description:   req.Description,
		Frequency:     req.Frequency,
		CategoryID:    categoryID,
		PaymentTypeID: paymentTypeID,
		NextRun:       req.NextRun,
		UserID:        userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringEntryResponse(output.RecurringEntry))
}

// List handles GET /recurring-entries requests.
func (c *RecurringEntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := recurring.ListRecurringEntriesInput{
		UserID: userID,
		Search: ctx.Query("search"),
		Page:   parseIntQuery(ctx, "page", 1),
		Limit:  parseIntQuery(ctx, "limit", 10),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringEntryListResponse(
		output.RecurringEntries, output.Total, output.Page, output.Limit))
}

// Get handles GET /recurring-entries/:id requests.
func (c *RecurringEntryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recurringEntryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring entry ID format",
		})
		return
	}

	input := recurring.GetRecurringEntryInput{
		RecurringEntryID: recurringEntryID,
		UserID:           userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringEntryResponse(output.RecurringEntry))
}

// Update handles PUT /recurring-entries/:id requests.
func (c *RecurringEntryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recurringEntryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring entry ID format",
		})
		return
	}

	var req dto.UpdateRecurringEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecurringFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	paymentTypeID, err := parseOptionalUUID(req.PaymentTypeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment type ID format",
		})
		return
	}

	input := recurring.UpdateRecurringEntryInput{
		RecurringEntryID: recurringEntryID,
		Amount:           req.Amount,
		Description:      req.Description,
		Frequency:        req.Frequency,
		CategoryID:       categoryID,
		PaymentTypeID:    paymentTypeID,
		NextRun:          req.NextRun,
		UserID:           userID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringEntryResponse(output.RecurringEntry))
}

// Delete handles DELETE /recurring-entries/:id requests.
func (c *RecurringEntryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recurringEntryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring entry ID format",
		})
		return
	}

	input := recurring.DeleteRecurringEntryInput{
		RecurringEntryID: recurringEntryID,
		UserID:           userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleRecurringEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRecurringEntryError handles recurring entry errors and returns appropriate HTTP responses.
func (c *RecurringEntryController) handleRecurringEntryError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringEntryError
	if errors.As(err, &recErr) {
		statusCode := c.getStatusCodeForRecurringEntryError(recErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecurringEntryError maps recurring entry error codes to HTTP status codes.
func (c *RecurringEntryController) getStatusCodeForRecurringEntryError(code domainerror.RecurringEntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringEntryNotFound,
		domainerror.ErrCodeRecurringCategoryNotFound,
		domainerror.ErrCodeRecurringPaymentTypeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedRecurringEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodePaymentTypeRequired,
		domainerror.ErrCodeMissingRecurringFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
