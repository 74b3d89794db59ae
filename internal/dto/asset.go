package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/core/domain"
)

// AssetResponse defines the data returned for an asset, including its
// depreciation status and derived book value.
type AssetResponse struct {
	AssetID                 string          `json:"assetID"`
	Name                    string          `json:"name"`
	Category                string          `json:"category"`
	OriginalCost            decimal.Decimal `json:"originalCost"`
	UsefulLifeMonths        int             `json:"usefulLifeMonths"`
	UsefulLifeYears         float64         `json:"usefulLifeYears"`
	PurchaseDate            string          `json:"purchaseDate"` // "YYYY-MM-DD"
	ResidualValue           decimal.Decimal `json:"residualValue"`
	MonthlyDepreciation     decimal.Decimal `json:"monthlyDepreciation"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	CurrentValue            decimal.Decimal `json:"currentValue"`
	RemainingMonths         int             `json:"remainingMonths"`
	DepreciationProgress    decimal.Decimal `json:"depreciationProgress"` // percent, 1 decimal place
	IsDisposed              bool            `json:"isDisposed"`
	CreatedAt               time.Time       `json:"createdAt"`
}

// ToAssetResponse converts a domain.Asset to AssetResponse. RemainingMonths
// depends on the reference date, so the caller passes "now".
func ToAssetResponse(a *domain.Asset, now time.Time) AssetResponse {
	progress := decimal.NewFromInt(100)
	if depreciable := a.DepreciableAmount(); depreciable.IsPositive() {
		progress = a.AccumulatedDepreciation.Div(depreciable).Mul(decimal.NewFromInt(100))
	}
	return AssetResponse{
		AssetID:                 a.AssetID,
		Name:                    a.Name,
		Category:                a.Category,
		OriginalCost:            a.OriginalCost.Round(2),
		UsefulLifeMonths:        a.UsefulLifeMonths,
		UsefulLifeYears:         float64(a.UsefulLifeMonths) / 12,
		PurchaseDate:            a.PurchaseDate.Format("2006-01-02"),
		ResidualValue:           a.ResidualValue.Round(2),
		MonthlyDepreciation:     a.MonthlyDepreciation.Round(2),
		AccumulatedDepreciation: a.AccumulatedDepreciation.Round(2),
		CurrentValue:            a.CurrentValue().Round(2),
		RemainingMonths:         a.RemainingMonths(now),
		DepreciationProgress:    progress.Round(1),
		IsDisposed:              a.IsDisposed,
		CreatedAt:               a.CreatedAt,
	}
}

// ToAssetResponses converts a slice of domain.Asset to DTOs.
func ToAssetResponses(assets []domain.Asset, now time.Time) []AssetResponse {
	responses := make([]AssetResponse, len(assets))
	for i, a := range assets {
		responses[i] = ToAssetResponse(&a, now)
	}
	return responses
}

// ClassificationResponse mirrors the classifier's decision for display.
type ClassificationResponse struct {
	IsCapital       bool    `json:"isCapital"`
	Category        string  `json:"category"`
	ItemName        string  `json:"itemName"`
	UsefulLifeYears float64 `json:"usefulLifeYears"`
	Reasoning       string  `json:"reasoning"`
}

// ImpactResponse is the display-only amortized cost projection of a purchase.
type ImpactResponse struct {
	MonthlyCost decimal.Decimal `json:"monthlyCost"`
	DailyCost   decimal.Decimal `json:"dailyCost"`
	YearlyCost  decimal.Decimal `json:"yearlyCost"`
}

// RecordingResponse is returned by the recording endpoints.
type RecordingResponse struct {
	Transaction    TransactionResponse    `json:"transaction"`
	Asset          *AssetResponse         `json:"asset,omitempty"`
	Classification ClassificationResponse `json:"classification"`
	Impact         ImpactResponse         `json:"impact"`
}

// ToRecordingResponse converts a domain.RecordingResult to its DTO.
func ToRecordingResponse(r *domain.RecordingResult, now time.Time) RecordingResponse {
	resp := RecordingResponse{
		Transaction: ToTransactionResponse(&r.Transaction),
		Classification: ClassificationResponse{
			IsCapital:       r.Classification.IsCapital,
			Category:        r.Classification.Category,
			ItemName:        r.Classification.ItemName,
			UsefulLifeYears: r.Classification.UsefulLifeYears,
			Reasoning:       r.Classification.Reasoning,
		},
		Impact: ImpactResponse{
			MonthlyCost: r.Impact.MonthlyCost.Round(2),
			DailyCost:   r.Impact.DailyCost.Round(2),
			YearlyCost:  r.Impact.YearlyCost.Round(2),
		},
	}
	if r.Asset != nil {
		asset := ToAssetResponse(r.Asset, now)
		resp.Asset = &asset
	}
	return resp
}
