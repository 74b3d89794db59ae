package services

import (
	"context"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// AssetService exposes asset lookups and lifecycle actions.
type AssetService interface {
	// GetAsset retrieves a single asset.
	GetAsset(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves assets, optionally including disposed ones.
	ListAssets(ctx context.Context, includeDisposed bool) ([]domain.Asset, error)

	// DisposeAsset marks an asset disposed, freezing its accumulated
	// depreciation and excluding it from future batch runs.
	DisposeAsset(ctx context.Context, assetID string) error

	// DeleteAsset deletes an asset with its depreciation records and linked
	// transactions.
	DeleteAsset(ctx context.Context, assetID string) error
}
