package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationRecord is the database row shape for one period's posting.
type DepreciationRecord struct {
	RecordID    string
	AssetID     string
	Period      string
	Amount      decimal.Decimal
	Accumulated decimal.Decimal
	CreatedAt   time.Time
}
