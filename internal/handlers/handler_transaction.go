package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/dto"
	"github.com/lunebudget/true_cost_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to recording and
// correcting transactions.
type transactionHandler struct {
	recordingService portssvc.RecordingService
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(rs portssvc.RecordingService) *transactionHandler {
	return &transactionHandler{
		recordingService: rs,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, recordingService portssvc.RecordingService) {
	h := newTransactionHandler(recordingService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/expense", h.recordExpense)
		transactions.POST("/income", h.recordIncome)
		transactions.POST("/capital", h.recordCapitalExpense)
		transactions.GET("", h.listTransactions)
		transactions.PUT("/:transaction_id", h.updateTransaction)
		transactions.DELETE("/:transaction_id", h.retractTransaction)
	}
}

// recordExpense godoc
// @Summary Record an expense
// @Description Books an expense. The classifier decides whether to capitalize it into an asset; set useClassifier to false to book a plain operating expense.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   expense body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} dto.RecordingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /transactions/expense [post]
func (h *transactionHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record expense", slog.String("description", req.Description))

	result, err := h.recordingService.RecordExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		}
		return
	}

	logger.Info("Expense recorded successfully",
		slog.String("transaction_id", result.Transaction.TransactionID),
		slog.Bool("capitalized", result.Asset != nil))
	c.JSON(http.StatusCreated, dto.ToRecordingResponse(result, time.Now()))
}

// recordIncome godoc
// @Summary Record income
// @Description Books an income transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   income body dto.RecordIncomeRequest true "Income details"
// @Success 201 {object} dto.RecordingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record income"
// @Router /transactions/income [post]
func (h *transactionHandler) recordIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record income", slog.String("description", req.Description))

	result, err := h.recordingService.RecordIncome(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording income", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record income in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record income"})
		}
		return
	}

	logger.Info("Income recorded successfully", slog.String("transaction_id", result.Transaction.TransactionID))
	c.JSON(http.StatusCreated, dto.ToRecordingResponse(result, time.Now()))
}

// recordCapitalExpense godoc
// @Summary Record a capital expenditure
// @Description Books a capital expenditure with an explicit useful life, bypassing the classifier. Creates the asset and its linked capital transaction.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   capital body dto.RecordCapitalExpenseRequest true "Capital expenditure details"
// @Success 201 {object} dto.RecordingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record capital expense"
// @Router /transactions/capital [post]
func (h *transactionHandler) recordCapitalExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordCapitalExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordCapitalExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record capital expense", slog.String("description", req.Description))

	result, err := h.recordingService.RecordCapitalExpense(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording capital expense", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record capital expense in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record capital expense"})
		}
		return
	}

	logger.Info("Capital expense recorded successfully",
		slog.String("transaction_id", result.Transaction.TransactionID))
	c.JSON(http.StatusCreated, dto.ToRecordingResponse(result, time.Now()))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves transactions, optionally filtered by date range and type
// @Tags transactions
// @Produce  json
// @Param   fromDate query string false "Start date (YYYY-MM-DD), inclusive"
// @Param   toDate query string false "End date (YYYY-MM-DD), inclusive"
// @Param   type query string false "Transaction type (income, expense or capital)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter portsrepo.TransactionFilter
	if fromStr := c.Query("fromDate"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			logger.Warn("Invalid fromDate format", slog.String("fromDate", fromStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fromDate format. Use YYYY-MM-DD"})
			return
		}
		filter.StartDate = &from
	}
	if toStr := c.Query("toDate"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			logger.Warn("Invalid toDate format", slog.String("toDate", toStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toDate format. Use YYYY-MM-DD"})
			return
		}
		filter.EndDate = &to
	}
	if typeStr := c.Query("type"); typeStr != "" {
		txnType := domain.TransactionType(typeStr)
		switch txnType {
		case domain.Income, domain.Expense, domain.Capital:
			filter.Type = &txnType
		default:
			logger.Warn("Invalid transaction type filter", slog.String("type", typeStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type. Use income, expense or capital"})
			return
		}
	}

	logger.Info("Received request to list transactions")

	transactions, err := h.recordingService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(transactions)))
	c.JSON(http.StatusOK, dto.ToTransactionResponses(transactions))
}

// updateTransaction godoc
// @Summary Correct a transaction
// @Description Updates the description, amount and/or category of a booked transaction. Type and asset linkage are immutable.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction_id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transaction_id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to update transaction")

	updated, err := h.recordingService.UpdateTransaction(c.Request.Context(), transactionID, req.Description, req.Amount, req.Category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// retractTransaction godoc
// @Summary Retract a transaction
// @Description Deletes a transaction. Capital transactions take their linked asset and its depreciation records with them.
// @Tags transactions
// @Produce  json
// @Param   transaction_id path string true "Transaction ID"
// @Success 204 "Transaction retracted"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retract transaction"
// @Router /transactions/{transaction_id} [delete]
func (h *transactionHandler) retractTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transaction_id")

	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to retract transaction")

	if err := h.recordingService.RetractTransaction(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to retract transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retract transaction"})
		}
		return
	}

	logger.Info("Transaction retracted successfully")
	c.Status(http.StatusNoContent)
}
