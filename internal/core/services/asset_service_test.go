package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	"github.com/lunebudget/true_cost_app/internal/core/services"
)

type AssetServiceTestSuite struct {
	suite.Suite
	mockAssetRepo *MockAssetRepository
	service       *services.AssetService
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.service = services.NewAssetService(suite.mockAssetRepo)
}

func (suite *AssetServiceTestSuite) TestGetAsset() {
	ctx := context.Background()
	expected := &domain.Asset{AssetID: "a1", Name: "wok", OriginalCost: decimal.NewFromInt(300)}
	suite.mockAssetRepo.On("FindAssetByID", ctx, "a1").Return(expected, nil).Once()

	asset, err := suite.service.GetAsset(ctx, "a1")

	suite.Require().NoError(err)
	suite.Equal(expected, asset)
}

func (suite *AssetServiceTestSuite) TestGetAsset_NotFound() {
	ctx := context.Background()
	suite.mockAssetRepo.On("FindAssetByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAsset(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AssetServiceTestSuite) TestListAssets_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockAssetRepo.On("ListAssets", ctx, true).Return(nil, nil).Once()

	assets, err := suite.service.ListAssets(ctx, true)

	suite.Require().NoError(err)
	suite.NotNil(assets)
	suite.Empty(assets)
}

func (suite *AssetServiceTestSuite) TestDisposeAsset() {
	ctx := context.Background()
	suite.mockAssetRepo.On("DisposeAsset", ctx, "a1").Return(nil).Once()

	suite.Require().NoError(suite.service.DisposeAsset(ctx, "a1"))
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestDeleteAsset() {
	ctx := context.Background()
	suite.mockAssetRepo.On("DeleteAssetCascade", ctx, "a1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteAsset(ctx, "a1"))
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
