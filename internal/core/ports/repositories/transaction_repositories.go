package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// TransactionFilter narrows transaction queries. Nil fields mean "no filter".
// Date bounds are inclusive.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *domain.TransactionType
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter,
	// ordered by (transaction_date desc, id desc).
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionFields corrects description, amount and/or category.
	// Nil fields are left untouched. Type and asset linkage are immutable.
	UpdateTransactionFields(ctx context.Context, transactionID string, description *string, amount *decimal.Decimal, category *string) error

	// DeleteTransactionCascade deletes a transaction; if it is linked to an
	// asset, the asset and that asset's depreciation records are deleted in
	// the same database transaction.
	DeleteTransactionCascade(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
