// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personal-ledger/backend/internal/application/usecase/recurring"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/personal-ledger/backend/internal/integration/entrypoint/middleware"
)

// JobController exposes manual triggers for background jobs.
type JobController struct {
	processDueUseCase *recurring.ProcessDueUseCase
}

// NewJobController creates a new job controller instance.
func NewJobController(processDueUseCase *recurring.ProcessDueUseCase) *JobController {
	return &JobController{
		processDueUseCase: processDueUseCase,
	}
}

// ProcessRecurringEntries handles POST /jobs/process-recurring-entries
// requests. It runs the same materialization pass the scheduler runs daily
// and reports the per-record outcome counts.
func (c *JobController) ProcessRecurringEntries(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.processDueUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process recurring entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ProcessRecurringEntriesResponse{
		Processed: output.Processed,
		Created:   output.Created,
		Skipped:   output.Skipped,
		Failed:    output.Failed,
	})
}
