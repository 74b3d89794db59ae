package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	"github.com/lunebudget/true_cost_app/internal/models"
	"github.com/lunebudget/true_cost_app/internal/utils/mapping"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAssetRepository implements portsrepo.AssetRepositoryFacade
var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, name, original_cost, useful_life_months, purchase_date, residual_value, category, monthly_depreciation, accumulated_depreciation, is_disposed, created_at`

func scanAsset(row pgx.Row) (models.Asset, error) {
	var m models.Asset
	err := row.Scan(
		&m.AssetID,
		&m.Name,
		&m.OriginalCost,
		&m.UsefulLifeMonths,
		&m.PurchaseDate,
		&m.ResidualValue,
		&m.Category,
		&m.MonthlyDepreciation,
		&m.AccumulatedDepreciation,
		&m.IsDisposed,
		&m.CreatedAt,
	)
	return m, err
}

// SaveAssetWithTransaction persists a new asset and its linked capital
// transaction in one database transaction, so a crash cannot leave an asset
// without its purchase record or vice versa.
func (r *PgxAssetRepository) SaveAssetWithTransaction(ctx context.Context, asset domain.Asset, txn domain.Transaction) error {
	mAsset := mapping.ToModelAsset(asset)
	mTxn := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	assetQuery := `
		INSERT INTO assets (asset_id, name, original_cost, useful_life_months, purchase_date, residual_value, category, monthly_depreciation, accumulated_depreciation, is_disposed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, assetQuery,
		mAsset.AssetID,
		mAsset.Name,
		mAsset.OriginalCost,
		mAsset.UsefulLifeMonths,
		mAsset.PurchaseDate,
		mAsset.ResidualValue,
		mAsset.Category,
		mAsset.MonthlyDepreciation,
		mAsset.AccumulatedDepreciation,
		mAsset.IsDisposed,
		mAsset.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: asset with ID %s already exists", apperrors.ErrDuplicate, mAsset.AssetID)
		}
		return fmt.Errorf("failed to save asset %s: %w", mAsset.AssetID, err)
	}

	txnQuery := `
		INSERT INTO transactions (transaction_id, description, amount, type, category, transaction_date, created_at, asset_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, txnQuery,
		mTxn.TransactionID,
		mTxn.Description,
		mTxn.Amount,
		mTxn.Type,
		mTxn.Category,
		mTxn.TransactionDate,
		mTxn.CreatedAt,
		mTxn.AssetID,
	)
	if err != nil {
		return fmt.Errorf("failed to save capital transaction %s for asset %s: %w", mTxn.TransactionID, mAsset.AssetID, err)
	}

	return r.Commit(ctx, tx)
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE asset_id = $1;
	`
	m, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}
	d := mapping.ToDomainAsset(m)
	return &d, nil
}

// ListAssets retrieves assets, newest purchase first.
func (r *PgxAssetRepository) ListAssets(ctx context.Context, includeDisposed bool) ([]domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
	`
	if !includeDisposed {
		query += `WHERE is_disposed = FALSE
	`
	}
	query += `	ORDER BY purchase_date DESC, asset_id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	ms := []models.Asset{}
	for rows.Next() {
		m, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}

	return mapping.ToDomainAssetSlice(ms), nil
}

// DisposeAsset marks an asset as disposed. Accumulated depreciation stays at
// whatever was posted; nothing is reversed.
func (r *PgxAssetRepository) DisposeAsset(ctx context.Context, assetID string) error {
	query := `
		UPDATE assets
		SET is_disposed = TRUE
		WHERE asset_id = $1 AND is_disposed = FALSE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, assetID)
	if err != nil {
		return fmt.Errorf("failed to dispose asset %s: %w", assetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either missing or already disposed; tell them apart.
		_, findErr := r.FindAssetByID(ctx, assetID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check asset status after disposal attempt for %s: %w", assetID, findErr)
		}
		return fmt.Errorf("%w: asset %s is already disposed", apperrors.ErrValidation, assetID)
	}
	return nil
}

// DeleteAssetCascade deletes an asset together with its depreciation records
// and linked transactions in one database transaction.
func (r *PgxAssetRepository) DeleteAssetCascade(ctx context.Context, assetID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM depreciation_records WHERE asset_id = $1;`, assetID); err != nil {
		return fmt.Errorf("failed to delete depreciation records for asset %s: %w", assetID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE asset_id = $1;`, assetID); err != nil {
		return fmt.Errorf("failed to delete transactions for asset %s: %w", assetID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
