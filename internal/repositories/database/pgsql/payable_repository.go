package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/utils/mapping"
)

type PgxPayableRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementRecorder
}

// newPgxPayableRepository creates a new repository for supplier payables. The
// movement recorder is injected so payment application and the ledger write
// share one transaction.
func newPgxPayableRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementRecorder) portsrepo.PayableRepositoryFacade {
	return &PgxPayableRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

// Ensure PgxPayableRepository implements portsrepo.PayableRepositoryFacade
var _ portsrepo.PayableRepositoryFacade = (*PgxPayableRepository)(nil)

const payableColumns = `
	payable_id, company_id, agency_id, supplier_name, description, currency_code,
	total_amount, amount_paid, remaining_amount, status, approval_status, approved_by,
	created_at, created_by, last_updated_at, last_updated_by`

// SavePayable persists a new payable.
func (r *PgxPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) error {
	m := mapping.ToModelPayable(payable)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO payables (`+payableColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`,
		m.PayableID,
		m.CompanyID,
		m.AgencyID,
		m.SupplierName,
		m.Description,
		m.CurrencyCode,
		m.TotalAmount,
		m.AmountPaid,
		m.RemainingAmount,
		m.Status,
		m.ApprovalStatus,
		nullString(m.ApprovedBy),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: payable with ID %s already exists", apperrors.ErrDuplicate, m.PayableID)
		}
		return fmt.Errorf("failed to save payable %s: %w", m.PayableID, err)
	}
	return nil
}

// FindPayableByID retrieves a payable scoped to a company.
func (r *PgxPayableRepository) FindPayableByID(ctx context.Context, companyID, payableID string) (*domain.Payable, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+payableColumns+`
		FROM payables
		WHERE company_id = $1 AND payable_id = $2;
	`, companyID, payableID)

	m, err := scanPayable(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payable %s", apperrors.ErrNotFound, payableID)
		}
		return nil, fmt.Errorf("failed to find payable %s: %w", payableID, err)
	}
	d := mapping.ToDomainPayable(*m)
	return &d, nil
}

// ListPayablesByAgency retrieves an agency's payables, newest first.
func (r *PgxPayableRepository) ListPayablesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Payable, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+payableColumns+`
		FROM payables
		WHERE company_id = $1 AND agency_id = $2
		ORDER BY created_at DESC, payable_id DESC;
	`, companyID, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables for agency %s: %w", agencyID, err)
	}
	defer rows.Close()

	var payables []models.Payable
	for rows.Next() {
		m, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", err)
	}
	return mapping.ToDomainPayableSlice(payables), nil
}

// UpdateApprovalStatus sets the approval gate on a payable.
func (r *PgxPayableRepository) UpdateApprovalStatus(ctx context.Context, payable domain.Payable) error {
	m := mapping.ToModelPayable(payable)

	ct, err := r.Pool.Exec(ctx, `
		UPDATE payables
		SET approval_status = $3, approved_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND payable_id = $2;
	`, m.CompanyID, m.PayableID, m.ApprovalStatus, nullString(m.ApprovedBy), m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update approval status for payable %s: %w", m.PayableID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: payable %s", apperrors.ErrNotFound, m.PayableID)
	}
	return nil
}

// ApplyPayment records the payment movement and rolls the payable's
// paid/remaining/status forward atomically. The payable row is locked first so
// concurrent payments against the same debt serialize, and the approval and
// overpayment checks run against the locked row rather than whatever the
// caller last read.
func (r *PgxPayableRepository) ApplyPayment(ctx context.Context, payableID string, movement domain.FinancialMovement) (*domain.Payable, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	row := tx.QueryRow(ctx, `
		SELECT `+payableColumns+`
		FROM payables
		WHERE company_id = $1 AND payable_id = $2
		FOR UPDATE;
	`, movement.CompanyID, payableID)

	m, err := scanPayable(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payable %s", apperrors.ErrNotFound, payableID)
		}
		return nil, fmt.Errorf("failed to lock payable %s: %w", payableID, err)
	}
	payable := mapping.ToDomainPayable(*m)

	if payable.ApprovalStatus != domain.ApprovalApproved {
		return nil, fmt.Errorf("%w: payable %s is %s, payments need an approved payable",
			apperrors.ErrInvalidStateTransition, payableID, payable.ApprovalStatus)
	}
	if movement.Amount.GreaterThan(payable.RemainingAmount) {
		return nil, fmt.Errorf("%w: payment %s exceeds remaining %s on payable %s",
			apperrors.ErrOverpaymentRejected, movement.Amount.String(), payable.RemainingAmount.String(), payableID)
	}

	if err := r.movementRepo.RecordMovementInTx(ctx, tx, movement); err != nil {
		return nil, err
	}

	payable.AmountPaid = payable.AmountPaid.Add(movement.Amount)
	payable.RemainingAmount = payable.RemainingAmount.Sub(movement.Amount)
	payable.Status = payable.StatusForRemaining(payable.RemainingAmount)
	payable.LastUpdatedAt = movement.CreatedAt
	payable.LastUpdatedBy = movement.ActorID

	_, err = tx.Exec(ctx, `
		UPDATE payables
		SET amount_paid = $3, remaining_amount = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE company_id = $1 AND payable_id = $2;
	`, payable.CompanyID, payable.PayableID, payable.AmountPaid, payable.RemainingAmount,
		string(payable.Status), payable.LastUpdatedAt, payable.LastUpdatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to update payable "+payableID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &payable, nil
}

// scanPayable scans one payable row, handling the NULL-able approver column.
func scanPayable(row pgx.Row) (*models.Payable, error) {
	var m models.Payable
	var approvedBy sql.NullString
	err := row.Scan(
		&m.PayableID,
		&m.CompanyID,
		&m.AgencyID,
		&m.SupplierName,
		&m.Description,
		&m.CurrencyCode,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.RemainingAmount,
		&m.Status,
		&m.ApprovalStatus,
		&approvedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.ApprovedBy = approvedBy.String
	return &m, nil
}
