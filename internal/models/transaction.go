package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for persistence.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
	Capital TransactionType = "capital"
)

// Transaction is the database row shape for a money movement.
type Transaction struct {
	TransactionID   string
	Description     string
	Amount          decimal.Decimal
	Type            TransactionType
	Category        string
	TransactionDate time.Time
	CreatedAt       time.Time
	AssetID         *string
}
