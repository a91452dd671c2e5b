package models

import (
	"github.com/shopspring/decimal"
)

// FinancialMovement is an immutable ledger row. Only reconciliation_status
// may change after insert.
type FinancialMovement struct {
	MovementID     string          `db:"movement_id"`
	CompanyID      string          `db:"company_id"`
	FromAccountID  string          `db:"from_account_id"` // Nullable
	ToAccountID    string          `db:"to_account_id"`   // Nullable
	Amount         decimal.Decimal `db:"amount"`
	CurrencyCode   string          `db:"currency_code"`
	Kind           string          `db:"kind"`
	ReferenceType  string          `db:"reference_type"`
	ReferenceID    string          `db:"reference_id"`
	ReferenceKey   string          `db:"reference_key"` // Unique
	AgencyID       string          `db:"agency_id"`     // Nullable
	ActorID        string          `db:"actor_id"`
	ActorRole      string          `db:"actor_role"`
	Direction      string          `db:"direction"`
	Reconciliation string          `db:"reconciliation_status"`
	Note           string          `db:"note"`
	AuditFields
}
