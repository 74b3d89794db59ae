package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// RecordExpenseRequest defines the data needed to record an expense.
// Date is "YYYY-MM-DD"; nil defaults to today. UseClassifier nil defaults to
// true; when false the expense is booked as a plain operating expense.
type RecordExpenseRequest struct {
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          *string         `json:"date"`
	UseClassifier *bool           `json:"useClassifier"`
}

// RecordIncomeRequest defines the data needed to record income.
type RecordIncomeRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"` // defaults to "Income"
	Date        *string         `json:"date"`
}

// RecordCapitalExpenseRequest records a capital expenditure with an explicit
// useful life, bypassing the classifier.
type RecordCapitalExpenseRequest struct {
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	UsefulLifeYears float64         `json:"usefulLifeYears" binding:"required,gt=0"`
	Category        string          `json:"category"` // defaults to "Other"
	Date            *string         `json:"date"`
}

// UpdateTransactionRequest corrects a booked transaction. Pointers
// distinguish "not provided" from zero values. Type and asset linkage are
// not updatable.
type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	TransactionDate string          `json:"transactionDate"` // "YYYY-MM-DD"
	CreatedAt       time.Time       `json:"createdAt"`
	AssetID         *string         `json:"assetID,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
// Amounts are rounded to 2 decimal places here, at presentation time only.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		Description:     txn.Description,
		Amount:          txn.Amount.Round(2),
		Type:            string(txn.Type),
		Category:        txn.Category,
		TransactionDate: txn.TransactionDate.Format("2006-01-02"),
		CreatedAt:       txn.CreatedAt,
		AssetID:         txn.AssetID,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
