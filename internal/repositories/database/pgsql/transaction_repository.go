package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lunebudget/true_cost_app/internal/apperrors"
	"github.com/lunebudget/true_cost_app/internal/core/domain"
	portsrepo "github.com/lunebudget/true_cost_app/internal/core/ports/repositories"
	"github.com/lunebudget/true_cost_app/internal/models"
	"github.com/lunebudget/true_cost_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, description, amount, type, category, transaction_date, created_at, asset_id`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Description,
		&m.Amount,
		&m.Type,
		&m.Category,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.AssetID,
	)
	return m, err
}

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, description, amount, type, category, transaction_date, created_at, asset_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Description,
		m.Amount,
		m.Type,
		m.Category,
		m.TransactionDate,
		m.CreatedAt,
		m.AssetID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves transactions matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
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
	if filter.StartDate != nil {
		addClause("transaction_date >=", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addClause("transaction_date <=", *filter.EndDate)
	}
	if filter.Type != nil {
		addClause("type =", string(*filter.Type))
	}
	query += where + `
		ORDER BY transaction_date DESC, transaction_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// UpdateTransactionFields corrects description, amount and/or category.
// Nil fields are left untouched.
func (r *PgxTransactionRepository) UpdateTransactionFields(ctx context.Context, transactionID string, description *string, amount *decimal.Decimal, category *string) error {
	query := `
		UPDATE transactions
		SET description = COALESCE($2, description),
		    amount = COALESCE($3, amount),
		    category = COALESCE($4, category)
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, description, amount, category)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransactionCascade deletes a transaction and, when it is linked to an
// asset, the asset and its depreciation records in the same database
// transaction.
func (r *PgxTransactionRepository) DeleteTransactionCascade(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var assetID *string
	err = tx.QueryRow(ctx, `SELECT asset_id FROM transactions WHERE transaction_id = $1;`, transactionID).Scan(&assetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load transaction %s for deletion: %w", transactionID, err)
	}

	if assetID != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM depreciation_records WHERE asset_id = $1;`, *assetID); err != nil {
			return fmt.Errorf("failed to delete depreciation records for asset %s: %w", *assetID, err)
		}
		// The transaction row references the asset, so it goes first.
		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
			return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, *assetID); err != nil {
			return fmt.Errorf("failed to delete asset %s: %w", *assetID, err)
		}
	} else {
		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
			return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}
