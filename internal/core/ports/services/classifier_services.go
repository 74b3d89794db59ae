package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// Classifier maps a free-text expense description and amount to a
// capitalization decision. Implementations may call a remote model or apply
// local rules; remote failure is reported as apperrors.ErrClassifier.
type Classifier interface {
	Classify(ctx context.Context, description string, amount decimal.Decimal) (*domain.Classification, error)
}
