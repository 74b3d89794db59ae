package repositories

import (
	"context"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// DepreciationReader defines read operations for depreciation records
type DepreciationReader interface {
	// ListDepreciationRecords retrieves records filtered by asset and/or
	// period, ordered by (period desc, id desc). Nil filters match all.
	ListDepreciationRecords(ctx context.Context, assetID *string, period *string) ([]domain.DepreciationRecord, error)

	// DepreciationExists reports whether a record exists for (asset, period).
	DepreciationExists(ctx context.Context, assetID string, period string) (bool, error)
}

// DepreciationWriter defines write operations for depreciation records
type DepreciationWriter interface {
	// PostDepreciation inserts the record and updates the asset's
	// accumulated depreciation to record.Accumulated as one atomic unit of
	// work. A crash cannot leave one without the other. Returns
	// apperrors.ErrDuplicate if the (asset, period) pair is already posted.
	PostDepreciation(ctx context.Context, record domain.DepreciationRecord) error
}

// DepreciationRepositoryFacade combines all depreciation repository interfaces
type DepreciationRepositoryFacade interface {
	DepreciationReader
	DepreciationWriter
}
