package mapping

import (
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	"github.com/lunebudget/true_cost_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Description:     d.Description,
		Amount:          d.Amount,
		Type:            models.TransactionType(d.Type),
		Category:        d.Category,
		TransactionDate: d.TransactionDate,
		CreatedAt:       d.CreatedAt,
		AssetID:         d.AssetID,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Description:     m.Description,
		Amount:          m.Amount,
		Type:            domain.TransactionType(m.Type),
		Category:        m.Category,
		TransactionDate: m.TransactionDate,
		CreatedAt:       m.CreatedAt,
		AssetID:         m.AssetID,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
