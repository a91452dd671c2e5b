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

type PgxExpenseRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementRecorder
	accountRepo  portsrepo.AccountWriter
}

// newPgxExpenseRepository creates a new repository for expenses. The movement
// recorder and account writer are injected so the paid transition, the ledger
// write, and reserve-account provisioning share one transaction.
func newPgxExpenseRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementRecorder, accountRepo portsrepo.AccountWriter) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
		accountRepo:    accountRepo,
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `
	expense_id, company_id, agency_id, category, description, amount, currency_code,
	account_id, status, approved_by, paid_at,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveExpense persists a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`,
		m.ExpenseID,
		m.CompanyID,
		m.AgencyID,
		m.Category,
		m.Description,
		m.Amount,
		m.CurrencyCode,
		m.AccountID,
		m.Status,
		nullString(m.ApprovedBy),
		m.PaidAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense scoped to a company.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, companyID, expenseID string) (*domain.Expense, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE company_id = $1 AND expense_id = $2;
	`, companyID, expenseID)

	m, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(*m)
	return &d, nil
}

// ListExpensesByAgency retrieves an agency's expenses, newest first.
func (r *PgxExpenseRepository) ListExpensesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE company_id = $1 AND agency_id = $2
		ORDER BY created_at DESC, expense_id DESC;
	`, companyID, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for agency %s: %w", agencyID, err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(expenses), nil
}

// UpdateExpenseStatus persists an approve transition. No ledger effect.
func (r *PgxExpenseRepository) UpdateExpenseStatus(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	ct, err := r.Pool.Exec(ctx, `
		UPDATE expenses
		SET status = $3, approved_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND expense_id = $2;
	`, m.CompanyID, m.ExpenseID, m.Status, nullString(m.ApprovedBy), m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for expense %s: %w", m.ExpenseID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, m.ExpenseID)
	}
	return nil
}

// PayExpense performs the paid transition atomically: lock the expense,
// re-validate status, provision the company expense-reserve account if absent,
// record the ledger movement into it, and stamp status and paid_at.
func (r *PgxExpenseRepository) PayExpense(ctx context.Context, expenseID string, movement domain.FinancialMovement, reserveCandidate domain.FinancialAccount) (*domain.Expense, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	row := tx.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE company_id = $1 AND expense_id = $2
		FOR UPDATE;
	`, movement.CompanyID, expenseID)

	m, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to lock expense %s: %w", expenseID, err)
	}
	expense := mapping.ToDomainExpense(*m)

	if expense.Status != domain.ExpenseApproved {
		return nil, fmt.Errorf("%w: expense %s is %s, only approved expenses can be paid",
			apperrors.ErrInvalidStateTransition, expenseID, expense.Status)
	}

	reserveID, err := r.accountRepo.EnsureAccountInTx(ctx, tx, reserveCandidate)
	if err != nil {
		return nil, err
	}
	movement.ToAccountID = reserveID

	if err := r.movementRepo.RecordMovementInTx(ctx, tx, movement); err != nil {
		return nil, err
	}

	paidAt := movement.CreatedAt
	expense.Status = domain.ExpensePaid
	expense.PaidAt = &paidAt
	expense.LastUpdatedAt = movement.CreatedAt
	expense.LastUpdatedBy = movement.ActorID

	_, err = tx.Exec(ctx, `
		UPDATE expenses
		SET status = $3, paid_at = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND expense_id = $2;
	`, expense.CompanyID, expense.ExpenseID, string(expense.Status), expense.PaidAt,
		expense.LastUpdatedAt, expense.LastUpdatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to mark expense paid "+expenseID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &expense, nil
}

// scanExpense scans one expense row, handling the NULL-able columns.
func scanExpense(row pgx.Row) (*models.Expense, error) {
	var m models.Expense
	var approvedBy sql.NullString
	err := row.Scan(
		&m.ExpenseID,
		&m.CompanyID,
		&m.AgencyID,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.AccountID,
		&m.Status,
		&approvedBy,
		&m.PaidAt,
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
