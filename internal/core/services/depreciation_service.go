package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/middleware"
	"github.com/lunebudget/true_cost_app/internal/utils/dates"
)

type DepreciationService struct {
	assetRepo portsrepo.AssetRepositoryFacade
	depRepo   portsrepo.DepreciationRepositoryFacade
	now       func() time.Time
}

// NewDepreciationService creates the monthly depreciation batch processor.
func NewDepreciationService(assetRepo portsrepo.AssetRepositoryFacade, depRepo portsrepo.DepreciationRepositoryFacade) *DepreciationService {
	return &DepreciationService{
		assetRepo: assetRepo,
		depRepo:   depRepo,
		now:       time.Now,
	}
}

// Ensure DepreciationService implements portssvc.DepreciationService
var _ portssvc.DepreciationService = (*DepreciationService)(nil)

// WithClock overrides the service clock, for deterministic tests.
func (s *DepreciationService) WithClock(now func() time.Time) *DepreciationService {
	s.now = now
	return s
}

// Run posts the period's straight-line depreciation for every non-disposed
// asset that has not been posted yet. Idempotent: the (asset_id, period)
// unique key makes a replayed posting a no-op, so re-running a period posts
// zero. A store failure on one asset is logged and the run continues with
// the rest.
func (s *DepreciationService) Run(ctx context.Context, period string) (*domain.DepreciationRunResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if period == "" {
		period = dates.PeriodOf(s.now())
	}
	year, month, err := dates.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	periodStart, _ := dates.MonthBounds(year, month)

	assets, err := s.assetRepo.ListAssets(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for depreciation run: %w", err)
	}

	result := &domain.DepreciationRunResult{
		Period:      period,
		TotalPosted: decimal.Zero,
	}

	for _, asset := range assets {
		// A period earlier than the purchase month never accrues a charge.
		if dates.MonthsBetween(asset.PurchaseDate, periodStart) < 0 {
			result.SkippedExhausted++
			continue
		}
		if asset.RemainingMonths(periodStart) <= 0 || asset.FullyDepreciated() {
			result.SkippedExhausted++
			continue
		}

		exists, err := s.depRepo.DepreciationExists(ctx, asset.AssetID, period)
		if err != nil {
			logger.Error("Failed to check existing depreciation record",
				slog.String("asset_id", asset.AssetID),
				slog.String("period", period),
				slog.String("error", err.Error()),
			)
			result.FailedCount++
			continue
		}
		if exists {
			result.SkippedIdempotent++
			continue
		}

		// Clamp the final posting so accumulated never exceeds the
		// depreciable amount.
		amount := asset.MonthlyDepreciation
		newAccumulated := asset.AccumulatedDepreciation.Add(amount)
		if depreciable := asset.DepreciableAmount(); newAccumulated.GreaterThan(depreciable) {
			newAccumulated = depreciable
			amount = depreciable.Sub(asset.AccumulatedDepreciation)
		}
		if !amount.IsPositive() {
			result.SkippedExhausted++
			continue
		}

		record := domain.DepreciationRecord{
			RecordID:    uuid.NewString(),
			AssetID:     asset.AssetID,
			Period:      period,
			Amount:      amount,
			Accumulated: newAccumulated,
			CreatedAt:   s.now(),
		}
		if err := s.depRepo.PostDepreciation(ctx, record); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Concurrent run won the insert; the period is still covered.
				result.SkippedIdempotent++
				continue
			}
			logger.Error("Failed to post depreciation",
				slog.String("asset_id", asset.AssetID),
				slog.String("period", period),
				slog.String("error", err.Error()),
			)
			result.FailedCount++
			continue
		}

		result.PostedCount++
		result.TotalPosted = result.TotalPosted.Add(amount)
	}

	logger.Info("Depreciation run completed",
		slog.String("period", period),
		slog.String("total_posted", result.TotalPosted.String()),
		slog.Int("posted", result.PostedCount),
		slog.Int("skipped_idempotent", result.SkippedIdempotent),
		slog.Int("skipped_exhausted", result.SkippedExhausted),
		slog.Int("failed", result.FailedCount),
	)

	return result, nil
}
