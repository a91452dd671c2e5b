package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
)

type PgxIntegrityRepository struct {
	pool *pgxpool.Pool
}

// newPgxIntegrityRepository creates the repository backing the ledger
// conservation check.
func newPgxIntegrityRepository(pool *pgxpool.Pool) portsrepo.IntegrityRepositoryFacade {
	return &PgxIntegrityRepository{pool: pool}
}

// Ensure PgxIntegrityRepository implements portsrepo.IntegrityRepositoryFacade
var _ portsrepo.IntegrityRepositoryFacade = (*PgxIntegrityRepository)(nil)

// SummarizeAccountLedgers recomputes every account's balance from the
// movement log next to its persisted balance. A movement crediting the
// account counts positive, one debiting it counts negative; the two sides of
// an internal transfer land on different accounts and cancel company-wide.
func (r *PgxIntegrityRepository) SummarizeAccountLedgers(ctx context.Context, companyID string) ([]portsrepo.AccountLedgerSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			a.account_id,
			a.name,
			a.balance,
			COALESCE(SUM(
				CASE
					WHEN m.to_account_id = a.account_id THEN m.amount
					WHEN m.from_account_id = a.account_id THEN -m.amount
					ELSE 0
				END
			), 0) AS ledger_balance,
			COUNT(m.movement_id) AS movement_count
		FROM financial_accounts a
		LEFT JOIN financial_movements m
			ON m.company_id = a.company_id
			AND (m.from_account_id = a.account_id OR m.to_account_id = a.account_id)
		WHERE a.company_id = $1
		GROUP BY a.account_id, a.name, a.balance
		ORDER BY a.account_id;
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize account ledgers for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var summaries []portsrepo.AccountLedgerSummary
	for rows.Next() {
		var s portsrepo.AccountLedgerSummary
		if err := rows.Scan(&s.AccountID, &s.Name, &s.Balance, &s.LedgerBalance, &s.MovementCount); err != nil {
			return nil, fmt.Errorf("failed to scan ledger summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger summary rows: %w", err)
	}
	return summaries, nil
}
