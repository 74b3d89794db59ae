package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	"github.com/lunebudget/true_cost_app/internal/models"
	"github.com/lunebudget/true_cost_app/internal/utils/mapping"
)

type PgxDepreciationRepository struct {
	BaseRepository
}

// newPgxDepreciationRepository creates a new repository for depreciation records.
func newPgxDepreciationRepository(pool *pgxpool.Pool) portsrepo.DepreciationRepositoryFacade {
	return &PgxDepreciationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDepreciationRepository implements portsrepo.DepreciationRepositoryFacade
var _ portsrepo.DepreciationRepositoryFacade = (*PgxDepreciationRepository)(nil)

const depreciationColumns = `record_id, asset_id, period, amount, accumulated, created_at`

func scanDepreciationRecord(row pgx.Row) (models.DepreciationRecord, error) {
	var m models.DepreciationRecord
	err := row.Scan(
		&m.RecordID,
		&m.AssetID,
		&m.Period,
		&m.Amount,
		&m.Accumulated,
		&m.CreatedAt,
	)
	return m, err
}

// PostDepreciation inserts the record and moves the asset's accumulated
// depreciation forward in one database transaction. The unique constraint on
// (asset_id, period) makes a replayed posting fail with ErrDuplicate instead
// of charging the asset twice.
func (r *PgxDepreciationRepository) PostDepreciation(ctx context.Context, record domain.DepreciationRecord) error {
	m := mapping.ToModelDepreciationRecord(record)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertQuery := `
		INSERT INTO depreciation_records (record_id, asset_id, period, amount, accumulated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.RecordID,
		m.AssetID,
		m.Period,
		m.Amount,
		m.Accumulated,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation on (asset_id, period)
			return fmt.Errorf("%w: depreciation for asset %s already posted for period %s", apperrors.ErrDuplicate, m.AssetID, m.Period)
		}
		return fmt.Errorf("failed to insert depreciation record for asset %s period %s: %w", m.AssetID, m.Period, err)
	}

	updateQuery := `
		UPDATE assets
		SET accumulated_depreciation = $2
		WHERE asset_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, m.AssetID, m.Accumulated)
	if err != nil {
		return fmt.Errorf("failed to update accumulated depreciation for asset %s: %w", m.AssetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: asset %s not found during depreciation posting", apperrors.ErrNotFound, m.AssetID)
	}

	return r.Commit(ctx, tx)
}

// DepreciationExists reports whether a record exists for (asset, period).
func (r *PgxDepreciationRepository) DepreciationExists(ctx context.Context, assetID string, period string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM depreciation_records WHERE asset_id = $1 AND period = $2);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, assetID, period).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check depreciation record for asset %s period %s: %w", assetID, period, err)
	}
	return exists, nil
}

// ListDepreciationRecords retrieves records filtered by asset and/or period,
// newest period first.
func (r *PgxDepreciationRepository) ListDepreciationRecords(ctx context.Context, assetID *string, period *string) ([]domain.DepreciationRecord, error) {
	query := `
		SELECT ` + depreciationColumns + `
		FROM depreciation_records
	`
	args := []any{}
	where := ""
	addClause := func(clause string, value any) {
		args = append(args, value)
		if where == "" {
			where = "WHERE "
		} else {
			where += " AND "
		}
		where += clause + " $" + strconv.Itoa(len(args))
	}
	if assetID != nil {
		addClause("asset_id =", *assetID)
	}
	if period != nil {
		addClause("period =", *period)
	}
	query += where + `
		ORDER BY period DESC, record_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query depreciation records: %w", err)
	}
	defer rows.Close()

	records := []domain.DepreciationRecord{}
	for rows.Next() {
		m, err := scanDepreciationRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan depreciation record row: %w", err)
		}
		records = append(records, mapping.ToDomainDepreciationRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating depreciation record rows: %w", err)
	}

	return records, nil
}
