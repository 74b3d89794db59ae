package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	"github.com/lunebudget/true_cost_app/internal/core/services"
)

// fakeDepreciationStore keeps one asset and its posted records in memory so a
// test can run the batch over successive periods and watch accumulation
// carry over between runs, which stateless mocks cannot express.
type fakeDepreciationStore struct {
	asset   domain.Asset
	records map[string]domain.DepreciationRecord
}

var _ portsrepo.AssetRepositoryFacade = (*fakeDepreciationStore)(nil)
var _ portsrepo.DepreciationRepositoryFacade = (*fakeDepreciationStore)(nil)

func (f *fakeDepreciationStore) FindAssetByID(_ context.Context, _ string) (*domain.Asset, error) {
	a := f.asset
	return &a, nil
}

func (f *fakeDepreciationStore) ListAssets(_ context.Context, _ bool) ([]domain.Asset, error) {
	return []domain.Asset{f.asset}, nil
}

func (f *fakeDepreciationStore) SaveAssetWithTransaction(_ context.Context, _ domain.Asset, _ domain.Transaction) error {
	return nil
}

func (f *fakeDepreciationStore) DisposeAsset(_ context.Context, _ string) error { return nil }

func (f *fakeDepreciationStore) DeleteAssetCascade(_ context.Context, _ string) error { return nil }

func (f *fakeDepreciationStore) ListDepreciationRecords(_ context.Context, _ *string, _ *string) ([]domain.DepreciationRecord, error) {
	out := make([]domain.DepreciationRecord, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeDepreciationStore) DepreciationExists(_ context.Context, _ string, period string) (bool, error) {
	_, ok := f.records[period]
	return ok, nil
}

func (f *fakeDepreciationStore) PostDepreciation(_ context.Context, record domain.DepreciationRecord) error {
	if _, ok := f.records[record.Period]; ok {
		return apperrors.ErrDuplicate
	}
	f.records[record.Period] = record
	f.asset.AccumulatedDepreciation = record.Accumulated
	return nil
}

type DepreciationServiceTestSuite struct {
	suite.Suite
	mockAssetRepo *MockAssetRepository
	mockDepRepo   *MockDepreciationRepository
	service       *services.DepreciationService
	fixedNow      time.Time
}

func (suite *DepreciationServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockDepRepo = new(MockDepreciationRepository)
	suite.fixedNow = time.Date(2024, time.April, 10, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewDepreciationService(suite.mockAssetRepo, suite.mockDepRepo).
		WithClock(func() time.Time { return suite.fixedNow })
}

func (suite *DepreciationServiceTestSuite) newAsset(cost int64, months int, accumulated decimal.Decimal) domain.Asset {
	c := decimal.NewFromInt(cost)
	return domain.Asset{
		AssetID:                 "asset-1",
		Name:                    "laptop",
		OriginalCost:            c,
		UsefulLifeMonths:        months,
		PurchaseDate:            time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		ResidualValue:           decimal.Zero,
		Category:                "Computer",
		MonthlyDepreciation:     domain.ComputeMonthlyDepreciation(c, decimal.Zero, months),
		AccumulatedDepreciation: accumulated,
	}
}

func (suite *DepreciationServiceTestSuite) TestRun_PostsMonthlyCharge() {
	ctx := context.Background()
	asset := suite.newAsset(2400, 24, decimal.NewFromInt(200))

	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{asset}, nil).Once()
	suite.mockDepRepo.On("DepreciationExists", ctx, "asset-1", "2024-03").Return(false, nil).Once()
	suite.mockDepRepo.On("PostDepreciation", ctx, mock.MatchedBy(func(r domain.DepreciationRecord) bool {
		return r.AssetID == "asset-1" &&
			r.Period == "2024-03" &&
			r.Amount.Equal(decimal.NewFromInt(100)) &&
			r.Accumulated.Equal(decimal.NewFromInt(300))
	})).Return(nil).Once()

	result, err := suite.service.Run(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Equal(1, result.PostedCount)
	suite.True(result.TotalPosted.Equal(decimal.NewFromInt(100)))
	suite.Zero(result.FailedCount)
	suite.mockDepRepo.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_IdempotentSkip() {
	ctx := context.Background()
	asset := suite.newAsset(2400, 24, decimal.NewFromInt(300))

	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{asset}, nil).Once()
	suite.mockDepRepo.On("DepreciationExists", ctx, "asset-1", "2024-03").Return(true, nil).Once()

	result, err := suite.service.Run(ctx, "2024-03")

	suite.Require().NoError(err)
	suite.Zero(result.PostedCount)
	suite.True(result.TotalPosted.IsZero())
	suite.Equal(1, result.SkippedIdempotent)
	suite.mockDepRepo.AssertNotCalled(suite.T(), "PostDepreciation")
}

func (suite *DepreciationServiceTestSuite) TestRun_ConcurrentDuplicateCountsAsIdempotent() {
	ctx := context.Background()
	asset := suite.newAsset(2400, 24, decimal.Zero)

	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{asset}, nil).Once()
	suite.mockDepRepo.On("DepreciationExists", ctx, "asset-1", "2024-02").Return(false, nil).Once()
	suite.mockDepRepo.On("PostDepreciation", ctx, mock.AnythingOfType("domain.DepreciationRecord")).Return(apperrors.ErrDuplicate).Once()

	result, err := suite.service.Run(ctx, "2024-02")

	suite.Require().NoError(err)
	suite.Zero(result.PostedCount)
	suite.Equal(1, result.SkippedIdempotent)
	suite.Zero(result.FailedCount)
}

func (suite *DepreciationServiceTestSuite) TestRun_ClampsFinalPosting() {
	ctx := context.Background()
	// 2350 already accumulated on a 2400 asset: final charge is 50, not 100.
	asset := suite.newAsset(2400, 24, decimal.NewFromInt(2350))

	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{asset}, nil).Once()
	suite.mockDepRepo.On("DepreciationExists", ctx, "asset-1", "2024-04").Return(false, nil).Once()
	suite.mockDepRepo.On("PostDepreciation", ctx, mock.MatchedBy(func(r domain.DepreciationRecord) bool {
		return r.Amount.Equal(decimal.NewFromInt(50)) &&
			r.Accumulated.Equal(decimal.NewFromInt(2400))
	})).Return(nil).Once()

	result, err := suite.service.Run(ctx, "2024-04")

	suite.Require().NoError(err)
	suite.Equal(1, result.PostedCount)
	suite.True(result.TotalPosted.Equal(decimal.NewFromInt(50)))
	suite.mockDepRepo.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_SkipsExhaustedAsset() {
	ctx := context.Background()
	asset := suite.newAsset(2400, 24, decimal.NewFromInt(2400))

	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{asset}, nil).Once()

	result, err := suite.service.Run(ctx, "2024-04")

	suite.Require().NoError(err)
	suite.Zero(result.PostedCount)
	suite.Equal(1, result.SkippedExhausted)
	suite.mockDepRepo.AssertNotCalled(suite.T(), "DepreciationExists")
}

func (suite *DepreciationServiceTestSuite) TestRun_SkipsPeriodBeforePurchase() {
	ctx := context.Background()
	asset := suite.newAsset(2400, 24, decimal.Zero)

	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{asset}, nil).Once()

	result, err := suite.service.Run(ctx, "2023-12")

	suite.Require().NoError(err)
	suite.Zero(result.PostedCount)
	suite.Equal(1, result.SkippedExhausted)
	suite.mockDepRepo.AssertNotCalled(suite.T(), "PostDepreciation")
}

func (suite *DepreciationServiceTestSuite) TestRun_FailureOnOneAssetContinues() {
	ctx := context.Background()
	bad := suite.newAsset(2400, 24, decimal.Zero)
	good := suite.newAsset(1200, 12, decimal.Zero)
	good.AssetID = "asset-2"

	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{bad, good}, nil).Once()
	suite.mockDepRepo.On("DepreciationExists", ctx, "asset-1", "2024-02").Return(false, nil).Once()
	suite.mockDepRepo.On("DepreciationExists", ctx, "asset-2", "2024-02").Return(false, nil).Once()
	suite.mockDepRepo.On("PostDepreciation", ctx, mock.MatchedBy(func(r domain.DepreciationRecord) bool {
		return r.AssetID == "asset-1"
	})).Return(apperrors.NewAppError(500, "store down", apperrors.ErrInternal)).Once()
	suite.mockDepRepo.On("PostDepreciation", ctx, mock.MatchedBy(func(r domain.DepreciationRecord) bool {
		return r.AssetID == "asset-2" && r.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	result, err := suite.service.Run(ctx, "2024-02")

	suite.Require().NoError(err)
	suite.Equal(1, result.PostedCount)
	suite.Equal(1, result.FailedCount)
	suite.True(result.TotalPosted.Equal(decimal.NewFromInt(100)))
	suite.mockDepRepo.AssertExpectations(suite.T())
}

func (suite *DepreciationServiceTestSuite) TestRun_InvalidPeriod() {
	ctx := context.Background()

	_, err := suite.service.Run(ctx, "2024/03")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "ListAssets")
}

func (suite *DepreciationServiceTestSuite) TestRun_DefaultsToCurrentMonth() {
	ctx := context.Background()
	suite.mockAssetRepo.On("ListAssets", ctx, false).Return([]domain.Asset{}, nil).Once()

	result, err := suite.service.Run(ctx, "")

	suite.Require().NoError(err)
	suite.Equal("2024-04", result.Period)
}

// Over an asset's full life the posted amounts must add back up to the
// depreciable amount: no month double-charged, nothing posted past the life,
// and a non-terminating monthly charge (100/3) still rounding back to the
// full cost.
func (suite *DepreciationServiceTestSuite) TestRun_FullLifeConservesCost() {
	ctx := context.Background()
	cost := decimal.NewFromInt(100)
	store := &fakeDepreciationStore{
		asset: domain.Asset{
			AssetID:             "asset-1",
			Name:                "blender",
			OriginalCost:        cost,
			UsefulLifeMonths:    3,
			PurchaseDate:        time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			ResidualValue:       decimal.Zero,
			Category:            "Kitchen",
			MonthlyDepreciation: domain.ComputeMonthlyDepreciation(cost, decimal.Zero, 3),
		},
		records: map[string]domain.DepreciationRecord{},
	}
	service := services.NewDepreciationService(store, store)

	steps := []struct {
		period     string
		wantPosted int
	}{
		{"2024-01", 1},
		{"2024-01", 0}, // replay posts nothing
		{"2024-02", 1},
		{"2024-03", 1},
		{"2024-03", 0}, // replay posts nothing
		{"2024-04", 0}, // past the useful life
	}
	for _, step := range steps {
		result, err := service.Run(ctx, step.period)
		suite.Require().NoError(err, step.period)
		suite.Equal(step.wantPosted, result.PostedCount, step.period)
		suite.Zero(result.FailedCount, step.period)
		suite.True(store.asset.AccumulatedDepreciation.LessThanOrEqual(store.asset.DepreciableAmount()),
			"accumulated %s exceeds depreciable amount after %s", store.asset.AccumulatedDepreciation, step.period)
	}

	suite.Require().Len(store.records, 3)
	total := decimal.Zero
	for period, record := range store.records {
		suite.Equal(period, record.Period)
		suite.True(record.Amount.IsPositive(), period)
		total = total.Add(record.Amount)
	}
	suite.True(total.Round(2).Equal(cost),
		"lifetime depreciation %s should round back to the original cost", total)
}

func TestDepreciationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationServiceTestSuite))
}
