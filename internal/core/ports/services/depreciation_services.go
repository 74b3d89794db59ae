package services

import (
	"context"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// DepreciationService posts straight-line monthly depreciation.
type DepreciationService interface {
	// Run posts the period's depreciation for every non-disposed asset that
	// has not been posted yet. Idempotent: re-running a period posts zero.
	Run(ctx context.Context, period string) (*domain.DepreciationRunResult, error)
}
