package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	"github.com/lunebudget/true_cost_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockAssetRepo *MockAssetRepository
	mockDepRepo   *MockDepreciationRepository
	mockDepSvc    *MockDepreciationService
	service       *services.ReportingService
	fixedNow      time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockDepRepo = new(MockDepreciationRepository)
	suite.mockDepSvc = new(MockDepreciationService)
	suite.fixedNow = time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockAssetRepo, suite.mockDepRepo, suite.mockDepSvc).
		WithClock(func() time.Time { return suite.fixedNow })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) TestCashFlow_CapitalAtFullCashAmount() {
	ctx := context.Background()
	start, end := date(2024, time.March, 1), date(2024, time.March, 31)
	wokAsset := "asset-wok"

	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Income, Category: "Income", Amount: decimal.NewFromInt(15000)},
		{TransactionID: "t2", Type: domain.Expense, Category: "Daily Expense", Amount: decimal.NewFromInt(28)},
		{TransactionID: "t3", Type: domain.Capital, Category: "Wok", Amount: decimal.NewFromInt(300), AssetID: &wokAsset},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{StartDate: &start, EndDate: &end}).Return(txns, nil).Once()

	report, err := suite.service.CashFlow(ctx, start, end)

	suite.Require().NoError(err)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(15000)))
	suite.True(report.TotalExpense.Equal(decimal.NewFromInt(28)))
	suite.True(report.TotalCapital.Equal(decimal.NewFromInt(300)))
	suite.True(report.TotalOutflow.Equal(decimal.NewFromInt(328)))
	suite.True(report.NetCashFlow.Equal(decimal.NewFromInt(14672)))
	// Capital folds into the expense buckets.
	suite.True(report.ExpenseByCategory["Wok"].Equal(decimal.NewFromInt(300)))
	suite.Equal(3, report.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestCashFlow_EndBeforeStart() {
	ctx := context.Background()

	_, err := suite.service.CashFlow(ctx, date(2024, time.March, 31), date(2024, time.March, 1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestAccrual_RunsBatchAndSmoothsCapital() {
	ctx := context.Background()
	period := "2024-03"
	start, end := date(2024, time.March, 1), date(2024, time.March, 31)
	wokAsset := "asset-wok"

	suite.mockDepSvc.On("Run", ctx, period).Return(&domain.DepreciationRunResult{Period: period}, nil).Once()

	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Income, Category: "Income", Amount: decimal.NewFromInt(15000)},
		{TransactionID: "t2", Type: domain.Expense, Category: "Daily Expense", Amount: decimal.NewFromInt(900)},
		// The capital purchase itself must not inflate the accrual expense.
		{TransactionID: "t3", Type: domain.Capital, Category: "Wok", Amount: decimal.NewFromInt(300), AssetID: &wokAsset},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{StartDate: &start, EndDate: &end}).Return(txns, nil).Once()

	records := []domain.DepreciationRecord{
		{RecordID: "r1", AssetID: wokAsset, Period: period, Amount: decimal.NewFromFloat(2.5)},
	}
	suite.mockDepRepo.On("ListDepreciationRecords", ctx, (*string)(nil), &period).Return(records, nil).Once()
	suite.mockAssetRepo.On("ListAssets", ctx, true).Return([]domain.Asset{
		{AssetID: wokAsset, Category: "Wok"},
	}, nil).Once()

	report, err := suite.service.Accrual(ctx, 2024, time.March)

	suite.Require().NoError(err)
	suite.True(report.TotalExpense.Equal(decimal.NewFromInt(900)))
	suite.True(report.TotalDepreciation.Equal(decimal.NewFromFloat(2.5)))
	suite.True(report.TrueLivingCost.Equal(decimal.NewFromFloat(902.5)))
	suite.True(report.NetResult.Equal(decimal.NewFromFloat(14097.5)))
	suite.True(report.DepreciationByCategory["Wok"].Equal(decimal.NewFromFloat(2.5)))
	suite.Equal(1, report.DepreciationCount)
	// 31 days in March.
	suite.True(report.DailyCost.Equal(decimal.NewFromFloat(902.5).Div(decimal.NewFromInt(31))))
	suite.mockDepSvc.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCompare_CapitalMonthExplainedByDeferral() {
	ctx := context.Background()
	period := "2024-03"
	start, end := date(2024, time.March, 1), date(2024, time.March, 31)
	wokAsset := "asset-wok"

	txns := []domain.Transaction{
		{TransactionID: "t2", Type: domain.Expense, Category: "Daily Expense", Amount: decimal.NewFromInt(900)},
		{TransactionID: "t3", Type: domain.Capital, Category: "Wok", Amount: decimal.NewFromInt(300), AssetID: &wokAsset},
	}
	// CashFlow and Accrual both list the month's transactions.
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{StartDate: &start, EndDate: &end}).Return(txns, nil).Twice()

	suite.mockDepSvc.On("Run", ctx, period).Return(&domain.DepreciationRunResult{Period: period}, nil).Once()
	records := []domain.DepreciationRecord{
		{RecordID: "r1", AssetID: wokAsset, Period: period, Amount: decimal.NewFromFloat(2.5)},
	}
	suite.mockDepRepo.On("ListDepreciationRecords", ctx, (*string)(nil), &period).Return(records, nil).Once()
	suite.mockAssetRepo.On("ListAssets", ctx, true).Return([]domain.Asset{
		{AssetID: wokAsset, Category: "Wok"},
	}, nil).Once()

	report, err := suite.service.Compare(ctx, 2024, time.March)

	suite.Require().NoError(err)
	suite.True(report.CashOutflow.Equal(decimal.NewFromInt(1200)))
	suite.True(report.TrueLivingCost.Equal(decimal.NewFromFloat(902.5)))
	suite.True(report.Difference.Equal(decimal.NewFromFloat(297.5)))
	suite.Contains(report.Explanation, "big purchases")
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet() {
	ctx := context.Background()
	assets := []domain.Asset{
		{
			AssetID:                 "a1",
			Name:                    "wok",
			Category:                "Wok",
			OriginalCost:            decimal.NewFromInt(300),
			UsefulLifeMonths:        120,
			PurchaseDate:            date(2024, time.January, 10),
			AccumulatedDepreciation: decimal.NewFromInt(5),
		},
		{
			AssetID:                 "a2",
			Name:                    "laptop",
			Category:                "Computer",
			OriginalCost:            decimal.NewFromInt(2400),
			UsefulLifeMonths:        24,
			PurchaseDate:            date(2024, time.February, 1),
			AccumulatedDepreciation: decimal.NewFromInt(200),
		},
	}
	suite.mockAssetRepo.On("ListAssets", ctx, false).Return(assets, nil).Once()

	sheet, err := suite.service.BalanceSheet(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, sheet.AssetCount)
	suite.True(sheet.TotalOriginalCost.Equal(decimal.NewFromInt(2700)))
	suite.True(sheet.TotalAccumulatedDepreciation.Equal(decimal.NewFromInt(205)))
	suite.True(sheet.TotalCurrentValue.Equal(decimal.NewFromInt(2495)))
	suite.Len(sheet.Assets["Wok"], 1)
	suite.Equal(1, sheet.ByCategory["Computer"].ItemCount)
	suite.True(sheet.ByCategory["Computer"].CurrentValue.Equal(decimal.NewFromInt(2200)))
	// Purchased Jan 2024, 120 months, as of Mar 2024: two boundaries crossed.
	suite.Equal(118, sheet.Assets["Wok"][0].RemainingMonths)
}

func (suite *ReportingServiceTestSuite) TestDailyCost() {
	ctx := context.Background()
	days := 30
	end := date(2024, time.March, 31)
	start := end.AddDate(0, 0, -29)
	expenseType := domain.Expense

	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Expense, Amount: decimal.NewFromInt(600)},
		{TransactionID: "t2", Type: domain.Expense, Amount: decimal.NewFromInt(300)},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, portsrepo.TransactionFilter{StartDate: &start, EndDate: &end, Type: &expenseType}).Return(txns, nil).Once()

	assets := []domain.Asset{
		{AssetID: "a1", OriginalCost: decimal.NewFromInt(300), UsefulLifeMonths: 120, MonthlyDepreciation: decimal.NewFromInt(3)},
	}
	suite.mockAssetRepo.On("ListAssets", ctx, false).Return(assets, nil).Once()

	report, err := suite.service.DailyCost(ctx, days)

	suite.Require().NoError(err)
	suite.True(report.DailyExpense.Equal(decimal.NewFromInt(30)))
	// 3 per month / 30 days.
	suite.True(report.DailyDepreciation.Equal(decimal.NewFromFloat(0.1)))
	suite.True(report.TrueDailyCost.Equal(decimal.NewFromFloat(30.1)))
	suite.True(report.MonthlyEstimate.Equal(decimal.NewFromInt(903)))
	suite.Equal(days, report.Days)
}

func (suite *ReportingServiceTestSuite) TestDailyCost_InvalidDays() {
	ctx := context.Background()

	_, err := suite.service.DailyCost(ctx, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
