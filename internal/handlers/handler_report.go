package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/dto"
	"github.com/lunebudget/true_cost_app/internal/middleware"
	"github.com/lunebudget/true_cost_app/internal/utils/dates"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/cash-flow", h.getCashFlow)
		reportingGroup.GET("/accrual", h.getAccrual)
		reportingGroup.GET("/compare", h.getComparison)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/daily-cost", h.getDailyCost)
	}
}

// parsePeriodQuery reads the optional "period" query parameter, defaulting to
// the current month.
func parsePeriodQuery(c *gin.Context) (int, time.Month, error) {
	periodStr := c.DefaultQuery("period", dates.PeriodOf(time.Now()))
	return dates.ParsePeriod(periodStr)
}

// getCashFlow godoc
// @Summary Generate cash flow report
// @Description Sums raw cash movements in a date range. Capital purchases appear at their full cash amount in the month paid.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now()

	// Default from date is first day of current month
	firstDayOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	fromStr := c.DefaultQuery("fromDate", firstDayOfMonth.Format("2006-01-02"))
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		logger.Warn("Invalid from date format", slog.String("fromDate", fromStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
		return
	}

	// Default to date is today
	toStr := c.DefaultQuery("toDate", now.Format("2006-01-02"))
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		logger.Warn("Invalid to date format", slog.String("toDate", toStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("fromDate", fromStr), slog.String("toDate", toStr))
	logger.Info("Received request to generate cash flow report")

	report, err := h.reportingService.CashFlow(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid date range for cash flow report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate cash flow report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate cash flow report"})
		}
		return
	}

	logger.Info("Cash flow report generated successfully", slog.Int("transaction_count", report.TransactionCount))
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}

// getAccrual godoc
// @Summary Generate accrual report
// @Description Reports the month's true living cost: operating expenses plus the month's depreciation. Runs the depreciation batch for the period first.
// @Tags reports
// @Produce json
// @Param period query string false "Period (YYYY-MM)" default(current month)
// @Success 200 {object} dto.AccrualResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/accrual [get]
func (h *reportingHandler) getAccrual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, err := parsePeriodQuery(c)
	if err != nil {
		logger.Warn("Invalid period format", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period format. Use YYYY-MM"})
		return
	}

	logger = logger.With(slog.String("period", dates.FormatPeriod(year, month)))
	logger.Info("Received request to generate accrual report")

	report, err := h.reportingService.Accrual(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to generate accrual report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate accrual report"})
		return
	}

	logger.Info("Accrual report generated successfully", slog.Int("depreciation_count", report.DepreciationCount))
	c.JSON(http.StatusOK, dto.ToAccrualResponse(report))
}

// getComparison godoc
// @Summary Compare cash flow against true cost
// @Description Reconciles the cash and accrual views of the same month and explains the difference
// @Tags reports
// @Produce json
// @Param period query string false "Period (YYYY-MM)" default(current month)
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/compare [get]
func (h *reportingHandler) getComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, err := parsePeriodQuery(c)
	if err != nil {
		logger.Warn("Invalid period format", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period format. Use YYYY-MM"})
		return
	}

	logger = logger.With(slog.String("period", dates.FormatPeriod(year, month)))
	logger.Info("Received request to generate reconciliation report")

	report, err := h.reportingService.Compare(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to generate reconciliation report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate reconciliation report"})
		return
	}

	logger.Info("Reconciliation report generated successfully")
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Reports the book value of all non-disposed assets, grouped by category
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to generate balance sheet report")

	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate balance sheet report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet report"})
		return
	}

	logger.Info("Balance sheet report generated successfully", slog.Int("asset_count", report.AssetCount))
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getDailyCost godoc
// @Summary Estimate daily cost of living
// @Description Estimates the true daily cost of living over a trailing window: average operating spend plus a daily slice of depreciation
// @Tags reports
// @Produce json
// @Param days query int false "Window length in days" default(30)
// @Success 200 {object} dto.DailyCostResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/daily-cost [get]
func (h *reportingHandler) getDailyCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	daysStr := c.DefaultQuery("days", "30")
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		logger.Warn("Invalid days parameter", slog.String("days", daysStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
		return
	}

	logger = logger.With(slog.Int("days", days))
	logger.Info("Received request to generate daily cost report")

	report, err := h.reportingService.DailyCost(c.Request.Context(), days)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid daily cost window", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate daily cost report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate daily cost report"})
		}
		return
	}

	logger.Info("Daily cost report generated successfully")
	c.JSON(http.StatusOK, dto.ToDailyCostResponse(report))
}
