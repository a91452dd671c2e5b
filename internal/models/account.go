package models

import (
	"github.com/shopspring/decimal"
)

// AccountKind classifies a financial account by its treasury function.
type AccountKind string

// FinancialAccount represents a money-holding account row.
// Balance is maintained exclusively by ledger-writing transactions.
type FinancialAccount struct {
	AccountID    string          `db:"account_id"`
	CompanyID    string          `db:"company_id"`
	AgencyID     string          `db:"agency_id"` // Nullable; empty = company-level
	Name         string          `db:"name"`
	Kind         AccountKind     `db:"kind"`
	CurrencyCode string          `db:"currency_code"`
	Balance      decimal.Decimal `db:"balance"`
	IsActive     bool            `db:"is_active"`
	AuditFields
}
