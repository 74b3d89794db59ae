package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	assetRepo := newPgxAssetRepository(dbPool)
	depreciationRepo := newPgxDepreciationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo:  transactionRepo,
		AssetRepo:        assetRepo,
		DepreciationRepo: depreciationRepo,
	}
}
