package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/dto"
	"github.com/lunebudget/true_cost_app/internal/middleware"
)

// depreciationHandler handles HTTP requests related to the depreciation batch.
type depreciationHandler struct {
	depreciationService portssvc.DepreciationService
}

// newDepreciationHandler creates a new depreciationHandler.
func newDepreciationHandler(ds portssvc.DepreciationService) *depreciationHandler {
	return &depreciationHandler{
		depreciationService: ds,
	}
}

// registerDepreciationRoutes registers routes related to depreciation.
func registerDepreciationRoutes(rg *gin.RouterGroup, depreciationService portssvc.DepreciationService) {
	h := newDepreciationHandler(depreciationService)

	depreciation := rg.Group("/depreciation")
	{
		depreciation.POST("/run", h.runDepreciation)
	}
}

// runDepreciation godoc
// @Summary Run the monthly depreciation batch
// @Description Posts the period's straight-line depreciation for every eligible asset. Idempotent: re-running a period posts zero.
// @Tags depreciation
// @Produce  json
// @Param   period query string false "Period (YYYY-MM)" default(current month)
// @Success 200 {object} dto.DepreciationRunResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to run depreciation"
// @Router /depreciation/run [post]
func (h *depreciationHandler) runDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RunDepreciationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid depreciation period", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period format. Use YYYY-MM"})
		return
	}

	logger = logger.With(slog.String("period", req.Period))
	logger.Info("Received request to run depreciation batch")

	result, err := h.depreciationService.Run(c.Request.Context(), req.Period)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid depreciation period", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to run depreciation batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run depreciation"})
		}
		return
	}

	logger.Info("Depreciation batch completed",
		slog.String("period", result.Period),
		slog.Int("posted", result.PostedCount),
		slog.Int("failed", result.FailedCount))
	c.JSON(http.StatusOK, dto.ToDepreciationRunResponse(result))
}
