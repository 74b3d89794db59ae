package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowReport summarizes raw cash movements in a date range, regardless
// of capitalization. Capital purchases spike the period they were paid in.
type CashFlowReport struct {
	StartDate         time.Time
	EndDate           time.Time
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal // operating expenses only
	TotalCapital      decimal.Decimal // capital purchases at full cash amount
	TotalOutflow      decimal.Decimal // expense + capital
	NetCashFlow       decimal.Decimal // income - outflow
	IncomeByCategory  map[string]decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal // capital folds into the same buckets
	TransactionCount  int
}

// AccrualReport summarizes the "true" cost of a calendar month: operating
// expenses plus the month's depreciation, smoothing capital spend across
// its useful life.
type AccrualReport struct {
	Period                 string // "YYYY-MM"
	TotalIncome            decimal.Decimal
	TotalExpense           decimal.Decimal
	TotalDepreciation      decimal.Decimal
	TrueLivingCost         decimal.Decimal // expense + depreciation
	DailyCost              decimal.Decimal // true cost / days in month
	NetResult              decimal.Decimal // income - true cost
	ExpenseByCategory      map[string]decimal.Decimal
	DepreciationByCategory map[string]decimal.Decimal
	DepreciationCount      int
}

// ReconciliationReport explains the gap between cash outflow and accrual
// cost for one month.
type ReconciliationReport struct {
	Period         string
	CashOutflow    decimal.Decimal
	TrueLivingCost decimal.Decimal
	Difference     decimal.Decimal // cash outflow - true living cost
	Explanation    string
}

// BalanceSheetLine is one asset's book-value position.
type BalanceSheetLine struct {
	AssetID                 string
	Name                    string
	OriginalCost            decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	CurrentValue            decimal.Decimal
	PurchaseDate            time.Time
	RemainingMonths         int
}

// BalanceSheetCategory aggregates the lines of one asset category.
type BalanceSheetCategory struct {
	OriginalCost decimal.Decimal
	CurrentValue decimal.Decimal
	ItemCount    int
}

// BalanceSheet is the book value of all non-disposed assets as of a date.
type BalanceSheet struct {
	AsOf                         time.Time
	TotalOriginalCost            decimal.Decimal
	TotalAccumulatedDepreciation decimal.Decimal
	TotalCurrentValue            decimal.Decimal
	AssetCount                   int
	ByCategory                   map[string]BalanceSheetCategory
	Assets                       map[string][]BalanceSheetLine
}

// DailyCostReport estimates the daily cost of living over a trailing window:
// average operating spend plus a daily slice of active assets' depreciation.
type DailyCostReport struct {
	StartDate         time.Time
	EndDate           time.Time
	Days              int
	DailyExpense      decimal.Decimal
	DailyDepreciation decimal.Decimal
	TrueDailyCost     decimal.Decimal
	MonthlyEstimate   decimal.Decimal
	YearlyEstimate    decimal.Decimal
}

// DepreciationRunResult reports what one batch run posted.
type DepreciationRunResult struct {
	Period            string
	TotalPosted       decimal.Decimal
	PostedCount       int
	SkippedIdempotent int
	SkippedExhausted  int
	FailedCount       int
}

// PurchaseImpact projects how a purchase spreads across time. For
// non-capital items it degenerates to the amount itself spread trivially;
// this is a display simplification, not a depreciation posting.
type PurchaseImpact struct {
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	DailyCost   decimal.Decimal `json:"dailyCost"`
	YearlyCost  decimal.Decimal `json:"yearlyCost"`
}
