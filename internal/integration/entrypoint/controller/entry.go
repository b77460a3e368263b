// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/application/usecase/entry"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/cache"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
)

// EntryController handles entry endpoints.
type EntryController struct {
	createUseCase  *entry.CreateEntryUseCase
	listUseCase    *entry.ListEntriesUseCase
	getUseCase     *entry.GetEntryUseCase
	updateUseCase  *entry.UpdateEntryUseCase
	deleteUseCase  *entry.DeleteEntryUseCase
	dashboardCache *cache.DashboardCache
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	createUseCase *entry.CreateEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
	getUseCase *entry.GetEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
	dashboardCache *cache.DashboardCache,
) *EntryController {
	return &EntryController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		dashboardCache: dashboardCache,
	}
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
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

	input := entry.CreateEntryInput{
		Amount:        req.Amount,
		Description:   req.Description,
		CategoryID:    categoryID,
		PaymentTypeID: paymentTypeID,
		Period:        req.Period,
		UserID:        userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	c.invalidateDashboard(ctx, userID)
	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := entry.ListEntriesInput{
		UserID: userID,
		Search: ctx.Query("search"),
		Period: ctx.Query("period"),
		Sorts:  parseSortQuery(ctx.Query("sort")),
		Page:   parseIntQuery(ctx, "page", 1),
		Limit:  parseIntQuery(ctx, "limit", 10),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries, output.Total, output.Page, output.Limit))
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	input := entry.GetEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryWithCategoryResponse(output.Entry))
}

// Update handles PUT /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
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

	input := entry.UpdateEntryInput{
		EntryID:       entryID,
		Amount:        req.Amount,
		Description:   req.Description,
		CategoryID:    categoryID,
		PaymentTypeID: paymentTypeID,
		Period:        req.Period,
		UserID:        userID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	c.invalidateDashboard(ctx, userID)
	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID format",
		})
		return
	}

	input := entry.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	c.invalidateDashboard(ctx, userID)
	ctx.Status(http.StatusNoContent)
}

// invalidateDashboard drops the user's cached dashboard aggregates after a
// write. A cache failure is logged but never fails the request.
func (c *EntryController) invalidateDashboard(ctx *gin.Context, userID uuid.UUID) {
	if c.dashboardCache == nil {
		return
	}
	if err := c.dashboardCache.InvalidateUser(ctx.Request.Context(), userID); err != nil {
		slog.Warn("failed to invalidate dashboard cache",
			"user_id", userID,
			"error", err,
		)
	}
}

// handleEntryError handles entry errors and returns appropriate HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entErr *domainerror.EntryError
	if errors.As(err, &entErr) {
		statusCode := c.getStatusCodeForEntryError(entErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: entErr.Message,
			Code:  string(entErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound,
		domainerror.ErrCodeEntryCategoryNotFound,
		domainerror.ErrCodeEntryPaymentTypeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEntry:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidPeriod, domainerror.ErrCodeMissingEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseSortQuery parses a comma-separated "field:direction" sort parameter.
// Direction defaults to ascending when omitted.
func parseSortQuery(raw string) []adapter.Sort {
	if raw == "" {
		return nil
	}

	var sorts []adapter.Sort
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, direction, _ := strings.Cut(part, ":")
		order := adapter.SortAsc
		if strings.EqualFold(direction, string(adapter.SortDesc)) {
			order = adapter.SortDesc
		}
		sorts = append(sorts, adapter.Sort{Field: field, Order: order})
	}
	return sorts
}
