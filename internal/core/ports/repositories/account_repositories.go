package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// AccountReader defines read operations for financial accounts.
type AccountReader interface {
	// FindAccountByID retrieves an account scoped to a company.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.FinancialAccount, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID.
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.FinancialAccount, error)

	// ListAccounts retrieves all accounts of a company, optionally filtered by agency.
	ListAccounts(ctx context.Context, companyID string, agencyID string) ([]domain.FinancialAccount, error)
}

// AccountWriter defines write operations for financial accounts.
// There is deliberately no balance setter anywhere on this interface: balances
// change only inside ledger-writing transactions.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.FinancialAccount) error

	// EnsureAccountInTx provisions a default account inside an existing
	// transaction if no active account of the same company/agency/kind exists,
	// and returns the surviving account's ID either way.
	EnsureAccountInTx(ctx context.Context, tx pgx.Tx, candidate domain.FinancialAccount) (string, error)

	// DeactivateAccount flags an account inactive. Accounts are never deleted;
	// movement history must stay attributable.
	DeactivateAccount(ctx context.Context, companyID, accountID, actorID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
