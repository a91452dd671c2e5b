package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind classifies a financial account by its treasury function.
type AccountKind string

const (
	AgencyCash      AccountKind = "AGENCY_CASH"      // an agency's cash drawer
	CompanyBank     AccountKind = "COMPANY_BANK"     // the company bank account
	MobileMoney     AccountKind = "MOBILE_MONEY"     // company mobile-money wallet
	ExpenseReserve  AccountKind = "EXPENSE_RESERVE"  // company expense reserve
	Payroll         AccountKind = "PAYROLL"          // payroll disbursement account
	TransferHolding AccountKind = "TRANSFER_HOLDING" // internal-transfer holding account
)

// FinancialAccount represents a money-holding account within the core domain.
// Its balance is, at all times, exactly the signed sum of the ledger movements
// referencing it; nothing outside a ledger-writing transaction may change it.
type FinancialAccount struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID)
	CompanyID    string          `json:"companyID"`    // Owning company (NON-NULL)
	AgencyID     string          `json:"agencyID"`     // Owning agency; empty = company-level account
	Name         string          `json:"name"`         // Display name
	Kind         AccountKind     `json:"kind"`         // AGENCY_CASH, COMPANY_BANK, etc.
	CurrencyCode string          `json:"currencyCode"` // ISO currency code attribute (no conversion here)
	Balance      decimal.Decimal `json:"balance"`      // Current balance, maintained by the ledger
	IsActive     bool            `json:"isActive"`     // Accounts are deactivated, never deleted
	AuditFields
}

// IsCompanyLevel reports whether the account belongs to the company rather
// than to a single agency.
func (a FinancialAccount) IsCompanyLevel() bool {
	return a.AgencyID == ""
}
