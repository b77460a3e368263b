// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/usecase/costcenter"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
)

// CostCenterController handles cost center endpoints.
type CostCenterController struct {
	createUseCase *costcenter.CreateCostCenterUseCase
	listUseCase   *costcenter.ListCostCentersUseCase
	getUseCase    *costcenter.GetCostCenterUseCase
	updateUseCase *costcenter.UpdateCostCenterUseCase
	deleteUseCase *costcenter.DeleteCostCenterUseCase
}

// NewCostCenterController creates a new cost center controller instance.
func NewCostCenterController(
	createUseCase *costcenter.CreateCostCenterUseCase,
	listUseCase *costcenter.ListCostCentersUseCase,
	getUseCase *costcenter.GetCostCenterUseCase,
	updateUseCase *costcenter.UpdateCostCenterUseCase,
	deleteUseCase *costcenter.DeleteCostCenterUseCase,
) *CostCenterController {
	return &CostCenterController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /cost-centers requests.
func (c *CostCenterController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCostCenterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCostCenterName),
		})
		return
	}

	input := costcenter.CreateCostCenterInput{
		Name:   req.Name,
		UserID: userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCostCenterError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCostCenterResponse(output.CostCenter))
}

// List handles GET /cost-centers requests.
func (c *CostCenterController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := costcenter.ListCostCentersInput{
		UserID: userID,
		Search: ctx.Query("search"),
		Page:   parseIntQuery(ctx, "page", 1),
		Limit:  parseIntQuery(ctx, "limit", 10),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCostCenterError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostCenterListResponse(output.CostCenters, output.Total, output.Page, output.Limit))
}

// Get handles GET /cost-centers/:id requests.
func (c *CostCenterController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	costCenterID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cost center ID format",
		})
		return
	}

	input := costcenter.GetCostCenterInput{
		CostCenterID: costCenterID,
		UserID:       userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCostCenterError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostCenterResponse(output.CostCenter))
}

// Update handles PUT /cost-centers/:id requests.
func (c *CostCenterController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	costCenterID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cost center ID format",
		})
		return
	}

	var req dto.UpdateCostCenterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCostCenterName),
		})
		return
	}

	input := costcenter.UpdateCostCenterInput{
		CostCenterID: costCenterID,
		Name:         req.Name,
		UserID:       userID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCostCenterError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostCenterResponse(output.CostCenter))
}

// Delete handles DELETE /cost-centers/:id requests.
func (c *CostCenterController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	costCenterID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid cost center ID format",
		})
		return
	}

	input := costcenter.DeleteCostCenterInput{
		CostCenterID: costCenterID,
		UserID:       userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCostCenterError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCostCenterError handles cost center errors and returns appropriate HTTP responses.
func (c *CostCenterController) handleCostCenterError(ctx *gin.Context, err error) {
	var ccErr *domainerror.CostCenterError
	if errors.As(err, &ccErr) {
		statusCode := c.getStatusCodeForCostCenterError(ccErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ccErr.Message,
			Code:  string(ccErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCostCenterError maps cost center error codes to HTTP status codes.
func (c *CostCenterController) getStatusCodeForCostCenterError(code domainerror.CostCenterErrorCode) int {
	switch code {
	case domainerror.ErrCodeCostCenterNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCostCenterHasCategories:
		return http.StatusConflict
	case domainerror.ErrCodeNotAuthorizedCostCenter:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingCostCenterName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
