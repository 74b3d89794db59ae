package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	portssvc "github.com/lunebudget/true_cost_app/internal/core/ports/services"
	"github.com/lunebudget/true_cost_app/internal/utils/dates"
)

type ReportingService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	assetRepo    portsrepo.AssetRepositoryFacade
	depRepo      portsrepo.DepreciationRepositoryFacade
	depreciation portssvc.DepreciationService
	now          func() time.Time
}

// NewReportingService creates the cash-basis / accrual-basis report engine.
func NewReportingService(txnRepo portsrepo.TransactionRepositoryFacade, assetRepo portsrepo.AssetRepositoryFacade, depRepo portsrepo.DepreciationRepositoryFacade, depreciation portssvc.DepreciationService) *ReportingService {
	return &ReportingService{
		txnRepo:      txnRepo,
		assetRepo:    assetRepo,
		depRepo:      depRepo,
		depreciation: depreciation,
		now:          time.Now,
	}
}

// Ensure ReportingService implements portssvc.ReportingService
var _ portssvc.ReportingService = (*ReportingService)(nil)

// WithClock overrides the service clock, for deterministic tests.
func (s *ReportingService) WithClock(now func() time.Time) *ReportingService {
	s.now = now
	return s
}

// CashFlow sums raw cash movements with transaction dates in [start, end]
// inclusive. Capital purchases count at their full cash amount in the period
// they were paid; depreciation is never consulted.
func (s *ReportingService) CashFlow(ctx context.Context, start, end time.Time) (*domain.CashFlowReport, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for cash flow report: %w", err)
	}

	report := &domain.CashFlowReport{
		StartDate:         start,
		EndDate:           end,
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		TotalCapital:      decimal.Zero,
		IncomeByCategory:  map[string]decimal.Decimal{},
		ExpenseByCategory: map[string]decimal.Decimal{},
		TransactionCount:  len(txns),
	}

	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			report.TotalIncome = report.TotalIncome.Add(t.Amount)
			report.IncomeByCategory[t.Category] = report.IncomeByCategory[t.Category].Add(t.Amount)
		case domain.Expense:
			report.TotalExpense = report.TotalExpense.Add(t.Amount)
			report.ExpenseByCategory[t.Category] = report.ExpenseByCategory[t.Category].Add(t.Amount)
		case domain.Capital:
			// Cash went out in full; it folds into the expense buckets.
			report.TotalCapital = report.TotalCapital.Add(t.Amount)
			report.ExpenseByCategory[t.Category] = report.ExpenseByCategory[t.Category].Add(t.Amount)
		}
	}

	report.TotalOutflow = report.TotalExpense.Add(report.TotalCapital)
	report.NetCashFlow = report.TotalIncome.Sub(report.TotalOutflow)
	return report, nil
}

// Accrual reports the month's true living cost: operating expenses plus the
// month's depreciation. The depreciation batch runs first so the period's
// postings are present.
func (s *ReportingService) Accrual(ctx context.Context, year int, month time.Month) (*domain.AccrualReport, error) {
	period := dates.FormatPeriod(year, month)

	if _, err := s.depreciation.Run(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to run depreciation for accrual report: %w", err)
	}

	start, end := dates.MonthBounds(year, month)
	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for accrual report: %w", err)
	}

	report := &domain.AccrualReport{
		Period:                 period,
		TotalIncome:            decimal.Zero,
		TotalExpense:           decimal.Zero,
		TotalDepreciation:      decimal.Zero,
		ExpenseByCategory:      map[string]decimal.Decimal{},
		DepreciationByCategory: map[string]decimal.Decimal{},
	}

	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			report.TotalIncome = report.TotalIncome.Add(t.Amount)
		case domain.Expense:
			report.TotalExpense = report.TotalExpense.Add(t.Amount)
			report.ExpenseByCategory[t.Category] = report.ExpenseByCategory[t.Category].Add(t.Amount)
		}
		// Capital transactions are deliberately ignored here: they surface
		// through depreciation instead.
	}

	records, err := s.depRepo.ListDepreciationRecords(ctx, nil, &period)
	if err != nil {
		return nil, fmt.Errorf("failed to list depreciation records for accrual report: %w", err)
	}

	assets, err := s.assetRepo.ListAssets(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for accrual report: %w", err)
	}
	categoryByAsset := make(map[string]string, len(assets))
	for _, a := range assets {
		categoryByAsset[a.AssetID] = a.Category
	}

	for _, r := range records {
		report.TotalDepreciation = report.TotalDepreciation.Add(r.Amount)
		if category, ok := categoryByAsset[r.AssetID]; ok {
			report.DepreciationByCategory[category] = report.DepreciationByCategory[category].Add(r.Amount)
		}
	}
	report.DepreciationCount = len(records)

	report.TrueLivingCost = report.TotalExpense.Add(report.TotalDepreciation)
	report.DailyCost = report.TrueLivingCost.Div(decimal.NewFromInt(int64(dates.DaysInMonth(year, month))))
	report.NetResult = report.TotalIncome.Sub(report.TrueLivingCost)
	return report, nil
}

// Compare reconciles the cash and accrual views of the same month. A
// positive difference means cash left faster than cost was recognized, i.e.
// capital purchases were deferred forward.
func (s *ReportingService) Compare(ctx context.Context, year int, month time.Month) (*domain.ReconciliationReport, error) {
	start, end := dates.MonthBounds(year, month)

	cash, err := s.CashFlow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	accrual, err := s.Accrual(ctx, year, month)
	if err != nil {
		return nil, err
	}

	difference := cash.TotalOutflow.Sub(accrual.TrueLivingCost)

	var explanation string
	if difference.IsPositive() {
		explanation = fmt.Sprintf(
			"This month's actual spending is $%s more than true cost. This is because you made big purchases this month, and their cost will be spread over the coming years.",
			difference.Round(2).String(),
		)
	} else {
		explanation = fmt.Sprintf(
			"This month's actual spending is $%s less than true cost. This means no major capital expenditures this month, mostly daily expenses.",
			difference.Abs().Round(2).String(),
		)
	}

	return &domain.ReconciliationReport{
		Period:         dates.FormatPeriod(year, month),
		CashOutflow:    cash.TotalOutflow,
		TrueLivingCost: accrual.TrueLivingCost,
		Difference:     difference,
		Explanation:    explanation,
	}, nil
}

// BalanceSheet reports the book value of all non-disposed assets as of today.
func (s *ReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	assets, err := s.assetRepo.ListAssets(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for balance sheet: %w", err)
	}

	now := s.now()
	sheet := &domain.BalanceSheet{
		AsOf:                         now,
		TotalOriginalCost:            decimal.Zero,
		TotalAccumulatedDepreciation: decimal.Zero,
		TotalCurrentValue:            decimal.Zero,
		AssetCount:                   len(assets),
		ByCategory:                   map[string]domain.BalanceSheetCategory{},
		Assets:                       map[string][]domain.BalanceSheetLine{},
	}

	for _, a := range assets {
		currentValue := a.CurrentValue()

		sheet.TotalOriginalCost = sheet.TotalOriginalCost.Add(a.OriginalCost)
		sheet.TotalAccumulatedDepreciation = sheet.TotalAccumulatedDepreciation.Add(a.AccumulatedDepreciation)
		sheet.TotalCurrentValue = sheet.TotalCurrentValue.Add(currentValue)

		sheet.Assets[a.Category] = append(sheet.Assets[a.Category], domain.BalanceSheetLine{
			AssetID:                 a.AssetID,
			Name:                    a.Name,
			OriginalCost:            a.OriginalCost,
			AccumulatedDepreciation: a.AccumulatedDepreciation,
			CurrentValue:            currentValue,
			PurchaseDate:            a.PurchaseDate,
			RemainingMonths:         a.RemainingMonths(now),
		})

		c := sheet.ByCategory[a.Category]
		c.OriginalCost = c.OriginalCost.Add(a.OriginalCost)
		c.CurrentValue = c.CurrentValue.Add(currentValue)
		c.ItemCount++
		sheet.ByCategory[a.Category] = c
	}

	return sheet, nil
}

// DailyCost estimates the daily cost of living over a trailing window:
// average operating spend plus a daily slice of active assets' monthly
// depreciation.
func (s *ReportingService) DailyCost(ctx context.Context, days int) (*domain.DailyCostReport, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be positive, got %d", apperrors.ErrValidation, days)
	}

	now := s.now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	expenseType := domain.Expense
	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{StartDate: &start, EndDate: &end, Type: &expenseType})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for daily cost report: %w", err)
	}

	totalExpense := decimal.Zero
	for _, t := range txns {
		totalExpense = totalExpense.Add(t.Amount)
	}

	assets, err := s.assetRepo.ListAssets(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets for daily cost report: %w", err)
	}
	monthlyDepreciation := decimal.Zero
	for _, a := range assets {
		if !a.FullyDepreciated() {
			monthlyDepreciation = monthlyDepreciation.Add(a.MonthlyDepreciation)
		}
	}

	dailyExpense := totalExpense.Div(decimal.NewFromInt(int64(days)))
	dailyDepreciation := monthlyDepreciation.Div(daysPerMonth)
	trueDailyCost := dailyExpense.Add(dailyDepreciation)

	return &domain.DailyCostReport{
		StartDate:         start,
		EndDate:           end,
		Days:              days,
		DailyExpense:      dailyExpense,
		DailyDepreciation: dailyDepreciation,
		TrueDailyCost:     trueDailyCost,
		MonthlyEstimate:   trueDailyCost.Mul(daysPerMonth),
		YearlyEstimate:    trueDailyCost.Mul(decimal.NewFromInt(365)),
	}, nil
}
