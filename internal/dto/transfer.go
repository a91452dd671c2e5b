package dto

import (
	"github.com/shopspring/decimal"
)

// InternalTransferRequest moves money between two accounts of the same
// company. Agency-cash to agency-cash across different agencies is rejected;
// such flows must route through a company bank account.
type InternalTransferRequest struct {
	FromAccountID  string          `json:"fromAccountID" binding:"required"`
	ToAccountID    string          `json:"toAccountID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	AgencyID       string          `json:"agencyID"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Note           string          `json:"note"`
}

// AgencyDepositRequest moves an agency's cash into the company bank account.
type AgencyDepositRequest struct {
	AgencyAccountID string          `json:"agencyAccountID" binding:"required"`
	BankAccountID   string          `json:"bankAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	AgencyID        string          `json:"agencyID" binding:"required"`
	IdempotencyKey  string          `json:"idempotencyKey" binding:"required"`
	Note            string          `json:"note"`
}

// BankWithdrawalRequest moves money from the company bank account to an
// agency cash drawer.
type BankWithdrawalRequest struct {
	BankAccountID   string          `json:"bankAccountID" binding:"required"`
	AgencyAccountID string          `json:"agencyAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	AgencyID        string          `json:"agencyID" binding:"required"`
	IdempotencyKey  string          `json:"idempotencyKey" binding:"required"`
	Note            string          `json:"note"`
}

// MobileToBankRequest settles a mobile-money wallet into the bank account.
type MobileToBankRequest struct {
	MobileAccountID string          `json:"mobileAccountID" binding:"required"`
	BankAccountID   string          `json:"bankAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	IdempotencyKey  string          `json:"idempotencyKey" binding:"required"`
	Note            string          `json:"note"`
}

// MobileExpenseRequest pays an expense directly from the mobile-money wallet:
// a debit-only movement with no destination account.
type MobileExpenseRequest struct {
	MobileAccountID string          `json:"mobileAccountID" binding:"required"`
	ExpenseID       string          `json:"expenseID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	AgencyID        string          `json:"agencyID"`
	IdempotencyKey  string          `json:"idempotencyKey" binding:"required"`
	Note            string          `json:"note"`
}

// TransferResponse lists the movement ids recorded by a transfer operation.
// Internal transfers produce two (debit and credit legs); the other
// operations produce one.
type TransferResponse struct {
	MovementIDs []string `json:"movementIDs"`
}
