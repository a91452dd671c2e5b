package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountLedgerSummary pairs an account's persisted balance with the balance
// recomputed from the movement log.
type AccountLedgerSummary struct {
	AccountID      string
	Name           string
	Balance        decimal.Decimal // persisted current balance
	LedgerBalance  decimal.Decimal // signed sum of movements referencing the account
	MovementCount  int64
}

// IntegrityRepositoryFacade exposes the conservation-invariant check: for
// every account, the persisted balance must equal credits minus debits over
// the full movement log.
type IntegrityRepositoryFacade interface {
	// SummarizeAccountLedgers recomputes each company account's balance from
	// the movement log alongside its persisted balance.
	SummarizeAccountLedgers(ctx context.Context, companyID string) ([]AccountLedgerSummary, error)
}
