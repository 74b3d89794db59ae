package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// CashFlowResponse is the cash-basis view of a date range.
type CashFlowResponse struct {
	StartDate         string                     `json:"startDate"`
	EndDate           string                     `json:"endDate"`
	TotalIncome       decimal.Decimal            `json:"totalIncome"`
	TotalExpense      decimal.Decimal            `json:"totalExpense"`
	TotalCapital      decimal.Decimal            `json:"totalCapital"`
	TotalOutflow      decimal.Decimal            `json:"totalOutflow"`
	NetCashFlow       decimal.Decimal            `json:"netCashFlow"`
	IncomeByCategory  map[string]decimal.Decimal `json:"incomeByCategory"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expenseByCategory"`
	TransactionCount  int                        `json:"transactionCount"`
}

// AccrualResponse is the accrual-basis view of one calendar month.
type AccrualResponse struct {
	Period                 string                     `json:"period"`
	TotalIncome            decimal.Decimal            `json:"totalIncome"`
	TotalExpense           decimal.Decimal            `json:"totalExpense"`
	TotalDepreciation      decimal.Decimal            `json:"totalDepreciation"`
	TrueLivingCost         decimal.Decimal            `json:"trueLivingCost"`
	DailyCost              decimal.Decimal            `json:"dailyCost"`
	NetResult              decimal.Decimal            `json:"netResult"`
	ExpenseByCategory      map[string]decimal.Decimal `json:"expenseByCategory"`
	DepreciationByCategory map[string]decimal.Decimal `json:"depreciationByCategory"`
	DepreciationCount      int                        `json:"depreciationCount"`
}

// ReconciliationResponse explains the delta between the two views.
type ReconciliationResponse struct {
	Period         string          `json:"period"`
	CashOutflow    decimal.Decimal `json:"cashOutflow"`
	TrueLivingCost decimal.Decimal `json:"trueLivingCost"`
	Difference     decimal.Decimal `json:"difference"`
	Explanation    string          `json:"explanation"`
}

// BalanceSheetLineResponse is one asset's book-value position.
type BalanceSheetLineResponse struct {
	AssetID                 string          `json:"assetID"`
	Name                    string          `json:"name"`
	OriginalCost            decimal.Decimal `json:"originalCost"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	CurrentValue            decimal.Decimal `json:"currentValue"`
	PurchaseDate            string          `json:"purchaseDate"`
	RemainingMonths         int             `json:"remainingMonths"`
}

// BalanceSheetCategoryResponse aggregates one asset category.
type BalanceSheetCategoryResponse struct {
	OriginalCost decimal.Decimal `json:"originalCost"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	ItemCount    int             `json:"itemCount"`
}

// BalanceSheetResponse is the book value of all non-disposed assets.
type BalanceSheetResponse struct {
	Date                         string                                  `json:"date"`
	TotalOriginalCost            decimal.Decimal                         `json:"totalOriginalCost"`
	TotalAccumulatedDepreciation decimal.Decimal                         `json:"totalAccumulatedDepreciation"`
	TotalCurrentValue            decimal.Decimal                         `json:"totalCurrentValue"`
	AssetCount                   int                                     `json:"assetCount"`
	ByCategory                   map[string]BalanceSheetCategoryResponse `json:"byCategory"`
	Assets                       map[string][]BalanceSheetLineResponse   `json:"assets"`
}

// DailyCostResponse estimates daily living cost over a trailing window.
type DailyCostResponse struct {
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	Days              int             `json:"days"`
	DailyExpense      decimal.Decimal `json:"dailyExpense"`
	DailyDepreciation decimal.Decimal `json:"dailyDepreciation"`
	TrueDailyCost     decimal.Decimal `json:"trueDailyCost"`
	MonthlyEstimate   decimal.Decimal `json:"monthlyEstimate"`
	YearlyEstimate    decimal.Decimal `json:"yearlyEstimate"`
}

// DepreciationRunResponse reports what one batch run posted.
type DepreciationRunResponse struct {
	Period            string          `json:"period"`
	TotalPosted       decimal.Decimal `json:"totalPosted"`
	PostedCount       int             `json:"postedCount"`
	SkippedIdempotent int             `json:"skippedIdempotent"`
	SkippedExhausted  int             `json:"skippedExhausted"`
	FailedCount       int             `json:"failedCount"`
}

// roundCategoryTotals rounds a category bucket map for presentation.
func roundCategoryTotals(in map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v.Round(2)
	}
	return out
}

// ToCashFlowResponse converts a domain.CashFlowReport to its DTO.
func ToCashFlowResponse(r *domain.CashFlowReport) CashFlowResponse {
	return CashFlowResponse{
		StartDate:         r.StartDate.Format("2006-01-02"),
		EndDate:           r.EndDate.Format("2006-01-02"),
		TotalIncome:       r.TotalIncome.Round(2),
		TotalExpense:      r.TotalExpense.Round(2),
		TotalCapital:      r.TotalCapital.Round(2),
		TotalOutflow:      r.TotalOutflow.Round(2),
		NetCashFlow:       r.NetCashFlow.Round(2),
		IncomeByCategory:  roundCategoryTotals(r.IncomeByCategory),
		ExpenseByCategory: roundCategoryTotals(r.ExpenseByCategory),
		TransactionCount:  r.TransactionCount,
	}
}

// ToAccrualResponse converts a domain.AccrualReport to its DTO.
func ToAccrualResponse(r *domain.AccrualReport) AccrualResponse {
	return AccrualResponse{
		Period:                 r.Period,
		TotalIncome:            r.TotalIncome.Round(2),
		TotalExpense:           r.TotalExpense.Round(2),
		TotalDepreciation:      r.TotalDepreciation.Round(2),
		TrueLivingCost:         r.TrueLivingCost.Round(2),
		DailyCost:              r.DailyCost.Round(2),
		NetResult:              r.NetResult.Round(2),
		ExpenseByCategory:      roundCategoryTotals(r.ExpenseByCategory),
		DepreciationByCategory: roundCategoryTotals(r.DepreciationByCategory),
		DepreciationCount:      r.DepreciationCount,
	}
}

// ToReconciliationResponse converts a domain.ReconciliationReport to its DTO.
func ToReconciliationResponse(r *domain.ReconciliationReport) ReconciliationResponse {
	return ReconciliationResponse{
		Period:         r.Period,
		CashOutflow:    r.CashOutflow.Round(2),
		TrueLivingCost: r.TrueLivingCost.Round(2),
		Difference:     r.Difference.Round(2),
		Explanation:    r.Explanation,
	}
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to its DTO.
func ToBalanceSheetResponse(r *domain.BalanceSheet) BalanceSheetResponse {
	byCategory := make(map[string]BalanceSheetCategoryResponse, len(r.ByCategory))
	for category, c := range r.ByCategory {
		byCategory[category] = BalanceSheetCategoryResponse{
			OriginalCost: c.OriginalCost.Round(2),
			CurrentValue: c.CurrentValue.Round(2),
			ItemCount:    c.ItemCount,
		}
	}
	assets := make(map[string][]BalanceSheetLineResponse, len(r.Assets))
	for category, lines := range r.Assets {
		out := make([]BalanceSheetLineResponse, len(lines))
		for i, l := range lines {
			out[i] = BalanceSheetLineResponse{
				AssetID:                 l.AssetID,
				Name:                    l.Name,
				OriginalCost:            l.OriginalCost.Round(2),
				AccumulatedDepreciation: l.AccumulatedDepreciation.Round(2),
				CurrentValue:            l.CurrentValue.Round(2),
				PurchaseDate:            l.PurchaseDate.Format("2006-01-02"),
				RemainingMonths:         l.RemainingMonths,
			}
		}
		assets[category] = out
	}
	return BalanceSheetResponse{
		Date:                         r.AsOf.Format("2006-01-02"),
		TotalOriginalCost:            r.TotalOriginalCost.Round(2),
		TotalAccumulatedDepreciation: r.TotalAccumulatedDepreciation.Round(2),
		TotalCurrentValue:            r.TotalCurrentValue.Round(2),
		AssetCount:                   r.AssetCount,
		ByCategory:                   byCategory,
		Assets:                       assets,
	}
}

// ToDailyCostResponse converts a domain.DailyCostReport to its DTO.
func ToDailyCostResponse(r *domain.DailyCostReport) DailyCostResponse {
	return DailyCostResponse{
		StartDate:         r.StartDate.Format("2006-01-02"),
		EndDate:           r.EndDate.Format("2006-01-02"),
		Days:              r.Days,
		DailyExpense:      r.DailyExpense.Round(2),
		DailyDepreciation: r.DailyDepreciation.Round(2),
		TrueDailyCost:     r.TrueDailyCost.Round(2),
		MonthlyEstimate:   r.MonthlyEstimate.Round(2),
		YearlyEstimate:    r.YearlyEstimate.Round(2),
	}
}

// ToDepreciationRunResponse converts a domain.DepreciationRunResult to its DTO.
func ToDepreciationRunResponse(r *domain.DepreciationRunResult) DepreciationRunResponse {
	return DepreciationRunResponse{
		Period:            r.Period,
		TotalPosted:       r.TotalPosted.Round(2),
		PostedCount:       r.PostedCount,
		SkippedIdempotent: r.SkippedIdempotent,
		SkippedExhausted:  r.SkippedExhausted,
		FailedCount:       r.FailedCount,
	}
}
