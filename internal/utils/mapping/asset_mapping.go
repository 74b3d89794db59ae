package mapping

import (
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	"github.com/lunebudget/true_cost_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:                 d.AssetID,
		Name:                    d.Name,
		OriginalCost:            d.OriginalCost,
		UsefulLifeMonths:        d.UsefulLifeMonths,
		PurchaseDate:            d.PurchaseDate,
		ResidualValue:           d.ResidualValue,
		Category:                d.Category,
		MonthlyDepreciation:     d.MonthlyDepreciation,
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		IsDisposed:              d.IsDisposed,
		CreatedAt:               d.CreatedAt,
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:                 m.AssetID,
		Name:                    m.Name,
		OriginalCost:            m.OriginalCost,
		UsefulLifeMonths:        m.UsefulLifeMonths,
		PurchaseDate:            m.PurchaseDate,
		ResidualValue:           m.ResidualValue,
		Category:                m.Category,
		MonthlyDepreciation:     m.MonthlyDepreciation,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		IsDisposed:              m.IsDisposed,
		CreatedAt:               m.CreatedAt,
	}
}

// ToDomainAssetSlice converts a slice of model Assets to domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}

// ToModelDepreciationRecord converts a domain DepreciationRecord to its model
func ToModelDepreciationRecord(d domain.DepreciationRecord) models.DepreciationRecord {
	return models.DepreciationRecord{
		RecordID:    d.RecordID,
		AssetID:     d.AssetID,
		Period:      d.Period,
		Amount:      d.Amount,
		Accumulated: d.Accumulated,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainDepreciationRecord converts a model DepreciationRecord to its domain form
func ToDomainDepreciationRecord(m models.DepreciationRecord) domain.DepreciationRecord {
	return domain.DepreciationRecord{
		RecordID:    m.RecordID,
		AssetID:     m.AssetID,
		Period:      m.Period,
		Amount:      m.Amount,
		Accumulated: m.Accumulated,
		CreatedAt:   m.CreatedAt,
	}
}
