package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating-expense row moving through pending/approved/paid.
type Expense struct {
	ExpenseID    string          `db:"expense_id"`
	CompanyID    string          `db:"company_id"`
	AgencyID     string          `db:"agency_id"`
	Category     string          `db:"category"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	AccountID    string          `db:"account_id"`
	Status       string          `db:"status"`
	ApprovedBy   string          `db:"approved_by"` // Nullable
	PaidAt       *time.Time      `db:"paid_at"`     // Nullable
	AuditFields
}
