package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationRecord is one period's posting for one asset. At most one
// record exists per (asset, period) pair; that pair is the idempotence key
// for the monthly batch.
type DepreciationRecord struct {
	RecordID    string          `json:"recordID"` // Primary Key (UUID)
	AssetID     string          `json:"assetID"`
	Period      string          `json:"period"`      // "YYYY-MM"
	Amount      decimal.Decimal `json:"amount"`      // Amount posted this period
	Accumulated decimal.Decimal `json:"accumulated"` // Accumulated value after posting
	CreatedAt   time.Time       `json:"createdAt"`
}
