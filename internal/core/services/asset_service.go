package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/middleware"
)

type AssetService struct {
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates the asset lookup and lifecycle service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade) *AssetService {
	return &AssetService{assetRepo: assetRepo}
}

// Ensure AssetService implements portssvc.AssetService
var _ portssvc.AssetService = (*AssetService)(nil)

// GetAsset retrieves a single asset.
func (s *AssetService) GetAsset(ctx context.Context, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", assetID, err)
	}
	return asset, nil
}

// ListAssets retrieves assets, optionally including disposed ones.
func (s *AssetService) ListAssets(ctx context.Context, includeDisposed bool) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx, includeDisposed)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.Asset{}, nil
	}
	return assets, nil
}

// DisposeAsset marks an asset disposed. Its accumulated depreciation is
// frozen and it is excluded from future batch runs; posted history stays.
func (s *AssetService) DisposeAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.DisposeAsset(ctx, assetID); err != nil {
		return fmt.Errorf("failed to dispose asset %s: %w", assetID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Asset disposed", slog.String("asset_id", assetID))
	return nil
}

// DeleteAsset deletes an asset with its depreciation records and linked
// transactions.
func (s *AssetService) DeleteAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.DeleteAssetCascade(ctx, assetID); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Asset deleted", slog.String("asset_id", assetID))
	return nil
}
