package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/utils/dates"
)

// Asset is a capitalized purchase depreciated straight-line over its useful life.
type Asset struct {
	AssetID          string          `json:"assetID"` // Primary Key (UUID)
	Name             string          `json:"name"`
	OriginalCost     decimal.Decimal `json:"originalCost"`     // > 0
	UsefulLifeMonths int             `json:"usefulLifeMonths"` // 0 means immediately fully depreciated
	PurchaseDate     time.Time       `json:"purchaseDate"`
	ResidualValue    decimal.Decimal `json:"residualValue"` // >= 0, <= OriginalCost
	Category         string          `json:"category"`
	// MonthlyDepreciation is derived once at creation from the fields above
	// and stored, so later field changes cannot retroactively alter history.
	MonthlyDepreciation decimal.Decimal `json:"monthlyDepreciation"`
	// AccumulatedDepreciation is monotonically non-decreasing and bounded
	// above by DepreciableAmount.
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	IsDisposed              bool            `json:"isDisposed"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// ComputeMonthlyDepreciation returns the straight-line monthly charge for the
// given cost basis, or zero when usefulLifeMonths is zero.
func ComputeMonthlyDepreciation(originalCost, residualValue decimal.Decimal, usefulLifeMonths int) decimal.Decimal {
	if usefulLifeMonths <= 0 {
		return decimal.Zero
	}
	return originalCost.Sub(residualValue).Div(decimal.NewFromInt(int64(usefulLifeMonths)))
}

// DepreciableAmount is the original cost minus the residual (salvage) value.
func (a Asset) DepreciableAmount() decimal.Decimal {
	return a.OriginalCost.Sub(a.ResidualValue)
}

// CurrentValue is the book value: original cost minus accumulated
// depreciation, clamped at zero.
func (a Asset) CurrentValue() decimal.Decimal {
	v := a.OriginalCost.Sub(a.AccumulatedDepreciation)
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// RemainingMonths counts the depreciation months left as of today, based on
// whole calendar-month boundaries crossed since purchase. Never negative.
func (a Asset) RemainingMonths(today time.Time) int {
	remaining := a.UsefulLifeMonths - dates.MonthsBetween(a.PurchaseDate, today)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FullyDepreciated reports whether accumulated depreciation has reached the
// depreciable amount. Such assets are excluded from further postings but are
// not automatically disposed.
func (a Asset) FullyDepreciated() bool {
	return a.AccumulatedDepreciation.GreaterThanOrEqual(a.DepreciableAmount())
}
