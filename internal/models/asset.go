package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is the database row shape for a capitalized purchase.
type Asset struct {
	AssetID                 string
	Name                    string
	OriginalCost            decimal.Decimal
	UsefulLifeMonths        int
	PurchaseDate            time.Time
	ResidualValue           decimal.Decimal
	Category                string
	MonthlyDepreciation     decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	IsDisposed              bool
	CreatedAt               time.Time
}
