package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// MovementRecorder is the only legitimate path to mutate an account balance.
// RecordMovementInTx is the entry point collaborators outside this core (shift
// validation, boarding closure, future payroll) must call from inside their
// own transaction; nothing may write a balance column directly.
type MovementRecorder interface {
	// RecordMovementInTx writes the idempotency sentinel, validates and
	// adjusts the involved balances, and inserts the movement fact, all
	// against the supplied transaction. Fails with ErrDuplicateMovement,
	// ErrAccountNotFound, or ErrInsufficientFunds.
	RecordMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.FinancialMovement) error

	// SaveMovement records a single movement inside its own transaction.
	SaveMovement(ctx context.Context, movement domain.FinancialMovement) error

	// SaveMovementPair records two movements atomically; used by internal
	// transfers whose debit and credit legs share one idempotency key suffix
	// pair and must commit or abort together.
	SaveMovementPair(ctx context.Context, first, second domain.FinancialMovement) error
}

// MovementReader defines read operations over the movement log.
type MovementReader interface {
	// FindMovementByID retrieves a single movement.
	FindMovementByID(ctx context.Context, companyID, movementID string) (*domain.FinancialMovement, error)

	// ListMovementsByAccount retrieves a token-paginated list of movements
	// touching an account, newest first.
	ListMovementsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error)
}

// MovementReconciler updates the one mutable field on a movement.
type MovementReconciler interface {
	// UpdateReconciliationStatus transitions reconciliation_status; every
	// other movement column is immutable after insert.
	UpdateReconciliationStatus(ctx context.Context, companyID, movementID string, status domain.ReconciliationStatus, actorID string, now time.Time) error
}

// MovementRepositoryFacade combines all movement repository interfaces.
type MovementRepositoryFacade interface {
	MovementRecorder
	MovementReader
	MovementReconciler
}

// MovementRepositoryWithTx extends the facade with transaction capabilities.
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
