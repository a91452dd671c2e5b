package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories over one connection pool.
// The movement repository is shared with the payable, proposal, and expense
// repositories so their state transitions and the ledger writes they imply
// commit in the same transaction.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	movementRepo := newPgxMovementRepository(pool)

	return &portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		MovementRepo:  movementRepo,
		PayableRepo:   newPgxPayableRepository(pool, movementRepo),
		ProposalRepo:  newPgxProposalRepository(pool, movementRepo),
		ExpenseRepo:   newPgxExpenseRepository(pool, movementRepo, accountRepo),
		SettingsRepo:  newPgxSettingsRepository(pool),
		IntegrityRepo: newPgxIntegrityRepository(pool),
	}
}
