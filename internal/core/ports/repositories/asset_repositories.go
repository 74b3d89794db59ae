package repositories

import (
	"context"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a specific asset by its unique identifier.
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves assets ordered by purchase_date desc, optionally
	// including disposed ones.
	ListAssets(ctx context.Context, includeDisposed bool) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAssetWithTransaction persists a new asset and its linked capital
	// transaction atomically.
	SaveAssetWithTransaction(ctx context.Context, asset domain.Asset, txn domain.Transaction) error

	// DisposeAsset marks an asset as disposed. Accumulated depreciation is
	// frozen at its current value; no postings are reversed.
	DisposeAsset(ctx context.Context, assetID string) error

	// DeleteAssetCascade deletes an asset together with its depreciation
	// records and linked transactions in one database transaction.
	DeleteAssetCascade(ctx context.Context, assetID string) error
}

// AssetRepositoryFacade combines all asset repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
