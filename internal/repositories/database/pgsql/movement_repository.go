package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/utils/mapping"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/utils/pagination"
)

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates the repository backing the movement log.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryWithTx
var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

const movementColumns = `
	movement_id, company_id, from_account_id, to_account_id, amount, currency_code,
	kind, reference_type, reference_id, reference_key, agency_id, actor_id, actor_role,
	direction, reconciliation_status, note,
	created_at, created_by, last_updated_at, last_updated_by`

// RecordMovementInTx performs the full atomic movement-recording unit against
// the supplied transaction: idempotency sentinel, balance validation and
// mutation, then the immutable movement fact. Recording a movement without
// adjusting balances, or the reverse, would be an unrecoverable accounting
// defect, so none of these steps may run outside the others' transaction.
func (r *PgxMovementRepository) RecordMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.FinancialMovement) error {
	m := mapping.ToModelMovement(movement)

	// 1. Idempotency sentinel, keyed by the business event. Two submissions
	// of the same event race to this insert; exactly one wins.
	ct, err := tx.Exec(ctx, `
		INSERT INTO ledger_reference_keys (reference_key, company_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (reference_key) DO NOTHING;
	`, m.ReferenceKey, m.CompanyID, m.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to write idempotency sentinel for "+m.ReferenceKey, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: reference key %s", apperrors.ErrDuplicateMovement, m.ReferenceKey)
	}

	// 2./3. Lock and adjust the involved balances. The source check and the
	// decrement observe the same locked row.
	if m.FromAccountID != "" {
		balance, err := r.lockAccountBalance(ctx, tx, m.CompanyID, m.FromAccountID)
		if err != nil {
			return err
		}
		if balance.LessThan(m.Amount) {
			return fmt.Errorf("%w: account %s has %s, needs %s",
				apperrors.ErrInsufficientFunds, m.FromAccountID, balance.String(), m.Amount.String())
		}
		if err := r.adjustBalance(ctx, tx, m.CompanyID, m.FromAccountID, m.Amount.Neg(), m.CreatedBy, m.CreatedAt); err != nil {
			return err
		}
	}
	if m.ToAccountID != "" {
		if _, err := r.lockAccountBalance(ctx, tx, m.CompanyID, m.ToAccountID); err != nil {
			return err
		}
		if err := r.adjustBalance(ctx, tx, m.CompanyID, m.ToAccountID, m.Amount, m.CreatedBy, m.CreatedAt); err != nil {
			return err
		}
	}

	// 4. The movement fact itself.
	_, err = tx.Exec(ctx, `
		INSERT INTO financial_movements (`+movementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`,
		m.MovementID,
		m.CompanyID,
		nullString(m.FromAccountID),
		nullString(m.ToAccountID),
		m.Amount,
		m.CurrencyCode,
		m.Kind,
		m.ReferenceType,
		m.ReferenceID,
		m.ReferenceKey,
		nullString(m.AgencyID),
		m.ActorID,
		m.ActorRole,
		m.Direction,
		m.Reconciliation,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert movement "+m.MovementID, err)
	}
	return nil
}

// lockAccountBalance reads an active account's balance under FOR UPDATE.
func (r *PgxMovementRepository) lockAccountBalance(ctx context.Context, tx pgx.Tx, companyID, accountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `
		SELECT balance FROM financial_accounts
		WHERE company_id = $1 AND account_id = $2 AND is_active
		FOR UPDATE;
	`, companyID, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to lock account "+accountID, err)
	}
	return balance, nil
}

func (r *PgxMovementRepository) adjustBalance(ctx context.Context, tx pgx.Tx, companyID, accountID string, delta decimal.Decimal, actorID string, now time.Time) error {
	ct, err := tx.Exec(ctx, `
		UPDATE financial_accounts
		SET balance = balance + $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND account_id = $2;
	`, companyID, accountID, delta, now, actorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance for account "+accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s disappeared during balance update", apperrors.ErrAccountNotFound, accountID)
	}
	return nil
}

// SaveMovement records a single movement inside its own transaction.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.FinancialMovement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.RecordMovementInTx(ctx, tx, movement); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveMovementPair records two movements atomically. Used by internal
// transfers: the debit and credit legs share one idempotency key suffix pair
// and must commit or abort together.
func (r *PgxMovementRepository) SaveMovementPair(ctx context.Context, first, second domain.FinancialMovement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.RecordMovementInTx(ctx, tx, first); err != nil {
		return err
	}
	if err := r.RecordMovementInTx(ctx, tx, second); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindMovementByID retrieves a single movement.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, companyID, movementID string) (*domain.FinancialMovement, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+movementColumns+`
		FROM financial_movements
		WHERE company_id = $1 AND movement_id = $2;
	`, companyID, movementID)

	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	d := mapping.ToDomainMovement(*m)
	return &d, nil
}

// ListMovementsByAccount retrieves a token-paginated page of movements
// touching the given account, newest first.
func (r *PgxMovementRepository) ListMovementsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + movementColumns + `
		FROM financial_movements
		WHERE company_id = $1 AND (from_account_id = $2 OR to_account_id = $2)`
	args := []interface{}{companyID, accountID}

	if nextToken != nil && *nextToken != "" {
		createdAt, movementID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, movement_id) < ($3, $4)`
		args = append(args, createdAt, movementID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, movement_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list movements for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelMovements := make([]models.FinancialMovement, 0, limit+1)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		modelMovements = append(modelMovements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating movement rows: %w", err)
	}

	var newNextToken *string
	if len(modelMovements) > limit {
		last := modelMovements[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.MovementID)
		newNextToken = &token
		modelMovements = modelMovements[:limit]
	}

	return mapping.ToDomainMovementSlice(modelMovements), newNextToken, nil
}

// UpdateReconciliationStatus transitions the one mutable movement field.
func (r *PgxMovementRepository) UpdateReconciliationStatus(ctx context.Context, companyID, movementID string, status domain.ReconciliationStatus, actorID string, now time.Time) error {
	ct, err := r.Pool.Exec(ctx, `
		UPDATE financial_movements
		SET reconciliation_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $1 AND movement_id = $2;
	`, companyID, movementID, string(status), now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update reconciliation status for movement %s: %w", movementID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// scanMovement scans one movement row, handling NULL-able columns.
func scanMovement(row pgx.Row) (*models.FinancialMovement, error) {
	var m models.FinancialMovement
	var fromID, toID, agencyID sql.NullString
	err := row.Scan(
		&m.MovementID,
		&m.CompanyID,
		&fromID,
		&toID,
		&m.Amount,
		&m.CurrencyCode,
		&m.Kind,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.ReferenceKey,
		&agencyID,
		&m.ActorID,
		&m.ActorRole,
		&m.Direction,
		&m.Reconciliation,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.FromAccountID = fromID.String
	m.ToAccountID = toID.String
	m.AgencyID = agencyID.String
	return &m, nil
}
