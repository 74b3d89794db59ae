package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies how a money movement is recognized.
type TransactionType string

const (
	// Income is money coming in.
	Income TransactionType = "income"
	// Expense is an operating expense, recognized fully in the period incurred.
	Expense TransactionType = "expense"
	// Capital is a capital expenditure, capitalized as an Asset and
	// recognized over its useful life via depreciation.
	Capital TransactionType = "capital"
)

// Transaction records a single actual money movement.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`   // Primary Key (UUID)
	Description     string          `json:"description"`     // e.g. "bought a wok"
	Amount          decimal.Decimal `json:"amount"`          // Positive value
	Type            TransactionType `json:"type"`            // income, expense or capital
	Category        string          `json:"category"`        // Classifier-assigned or user-provided
	TransactionDate time.Time       `json:"transactionDate"` // Date the money moved
	CreatedAt       time.Time       `json:"createdAt"`
	AssetID         *string         `json:"assetID"` // Set iff Type == Capital
}
