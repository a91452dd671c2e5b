package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/utils/mapping"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for financial account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	account_id, company_id, agency_id, name, kind, currency_code, balance, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveAccount inserts a new financial account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.FinancialAccount) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO financial_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		nullString(m.AgencyID),
		m.Name,
		m.Kind,
		m.CurrencyCode,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID, scoped to a company.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.FinancialAccount, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM financial_accounts
		WHERE company_id = $1 AND account_id = $2;
	`, companyID, accountID)

	m, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	d := mapping.ToDomainAccount(*m)
	return &d, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by ID.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.FinancialAccount, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.FinancialAccount{}, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+`
		FROM financial_accounts
		WHERE company_id = $1 AND account_id = ANY($2);
	`, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.FinancialAccount)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[m.AccountID] = mapping.ToDomainAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves all accounts of a company, optionally filtered by agency.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, agencyID string) ([]domain.FinancialAccount, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM financial_accounts
		WHERE company_id = $1`
	args := []interface{}{companyID}
	if agencyID != "" {
		query += ` AND agency_id = $2`
		args = append(args, agencyID)
	}
	query += ` ORDER BY created_at ASC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.FinancialAccount
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// EnsureAccountInTx idempotently provisions a default account inside an
// existing transaction. A unique partial index on (company_id, kind) for
// singleton kinds makes the insert race-safe; the second select picks up the
// row whichever writer won.
func (r *PgxAccountRepository) EnsureAccountInTx(ctx context.Context, tx pgx.Tx, candidate domain.FinancialAccount) (string, error) {
	m := mapping.ToModelAccount(candidate)

	selectQuery := `
		SELECT account_id FROM financial_accounts
		WHERE company_id = $1 AND COALESCE(agency_id, '') = $2 AND kind = $3 AND is_active
		LIMIT 1;
	`
	var accountID string
	err := tx.QueryRow(ctx, selectQuery, m.CompanyID, m.AgencyID, m.Kind).Scan(&accountID)
	if err == nil {
		return accountID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.NewAppError(500, "failed to look up existing account", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO financial_accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT DO NOTHING;
	`,
		m.AccountID,
		m.CompanyID,
		nullString(m.AgencyID),
		m.Name,
		m.Kind,
		m.CurrencyCode,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to provision account "+m.AccountID, err)
	}

	if err := tx.QueryRow(ctx, selectQuery, m.CompanyID, m.AgencyID, m.Kind).Scan(&accountID); err != nil {
		return "", apperrors.NewAppError(500, "failed to re-read provisioned account", err)
	}
	return accountID, nil
}

// DeactivateAccount flags an account inactive. Accounts are never deleted.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, companyID, accountID, actorID string, now time.Time) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE financial_accounts
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $1 AND account_id = $2 AND is_active;
	`, companyID, accountID, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
	}
	return nil
}

// scanAccount scans one account row, handling the NULL-able agency column.
func scanAccount(row pgx.Row) (*models.FinancialAccount, error) {
	var m models.FinancialAccount
	var agencyID sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&agencyID,
		&m.Name,
		&m.Kind,
		&m.CurrencyCode,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.AgencyID = agencyID.String
	return &m, nil
}
