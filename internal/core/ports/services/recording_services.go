package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	"github.com/lunebudget/true_cost_app/internal/dto"
)

// RecordingService books money movements. The classifier decides whether an
// expense is capitalized; classifier failure falls back to local rules and
// never fails the recording.
type RecordingService interface {
	// RecordExpense books an expense, capitalizing it into an asset plus a
	// linked capital transaction when the classifier says so.
	RecordExpense(ctx context.Context, req dto.RecordExpenseRequest) (*domain.RecordingResult, error)

	// RecordIncome books an income transaction.
	RecordIncome(ctx context.Context, req dto.RecordIncomeRequest) (*domain.RecordingResult, error)

	// RecordCapitalExpense books a capital expenditure with an explicitly
	// given useful life, bypassing the classifier.
	RecordCapitalExpense(ctx context.Context, req dto.RecordCapitalExpenseRequest) (*domain.RecordingResult, error)

	// ListTransactions retrieves transactions matching the filter.
	ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)

	// UpdateTransaction corrects description, amount and/or category.
	UpdateTransaction(ctx context.Context, transactionID string, description *string, amount *decimal.Decimal, category *string) (*domain.Transaction, error)

	// RetractTransaction deletes a transaction; for capital transactions the
	// linked asset and its depreciation records are deleted as well.
	RetractTransaction(ctx context.Context, transactionID string) error
}
