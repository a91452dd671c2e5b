package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus tracks the linear expense lifecycle: pending, approved, paid.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "PENDING"
	ExpenseApproved ExpenseStatus = "APPROVED"
	ExpensePaid     ExpenseStatus = "PAID"
)

// ExpenseCategory classifies an operating expense.
type ExpenseCategory string

const (
	ExpenseFuel        ExpenseCategory = "FUEL"
	ExpenseMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseSalaryCat   ExpenseCategory = "SALARY"
	ExpenseSupplies    ExpenseCategory = "SUPPLIES"
	ExpenseOther       ExpenseCategory = "OTHER"
)

// Expense is an operating expense working its way from request to payment.
// A ledger movement exists if and only if the status is PAID.
type Expense struct {
	ExpenseID    string          `json:"expenseID"` // Primary Key (UUID)
	CompanyID    string          `json:"companyID"`
	AgencyID     string          `json:"agencyID"`
	Category     ExpenseCategory `json:"category"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	AccountID    string          `json:"accountID"` // Source account the payment debits
	Status       ExpenseStatus   `json:"status"`
	ApprovedBy   string          `json:"approvedBy"`
	PaidAt       *time.Time      `json:"paidAt"`
	AuditFields
}
