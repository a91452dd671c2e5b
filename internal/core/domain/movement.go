package domain

import (
	"github.com/shopspring/decimal"
)

// MovementKind classifies why money moved.
type MovementKind string

const (
	MovementRevenue          MovementKind = "REVENUE"
	MovementDeposit          MovementKind = "DEPOSIT"
	MovementWithdrawal       MovementKind = "WITHDRAWAL"
	MovementInternalTransfer MovementKind = "INTERNAL_TRANSFER"
	MovementExpensePayment   MovementKind = "EXPENSE_PAYMENT"
	MovementPayablePayment   MovementKind = "PAYABLE_PAYMENT"
	MovementSalary           MovementKind = "SALARY"
	MovementAdjustment       MovementKind = "MANUAL_ADJUSTMENT"
)

// ReferenceType is the fixed enumeration of business events that may cause a
// ledger movement. Callers supply a stable ReferenceID per real-world event;
// the pair forms the idempotency key.
type ReferenceType string

const (
	RefShift            ReferenceType = "shift"
	RefReservation      ReferenceType = "reservation"
	RefExpense          ReferenceType = "expense"
	RefDeposit          ReferenceType = "deposit"
	RefWithdrawal       ReferenceType = "withdrawal"
	RefTransfer         ReferenceType = "transfer"
	RefPayablePayment   ReferenceType = "payable_payment"
	RefInternalTransfer ReferenceType = "internal_transfer"
	RefAgencyDeposit    ReferenceType = "agency_deposit"
	RefBankWithdrawal   ReferenceType = "bank_withdrawal"
	RefMobileToBank     ReferenceType = "mobile_to_bank"
	RefMobileExpense    ReferenceType = "mobile_expense"
)

// EntryDirection indicates whether the movement credits a destination account
// or only debits a source.
type EntryDirection string

const (
	EntryDebit  EntryDirection = "DEBIT"
	EntryCredit EntryDirection = "CREDIT"
)

// ReconciliationStatus annotates whether a movement has been matched against
// an external statement. It is the only field on a movement allowed to change
// after creation.
type ReconciliationStatus string

const (
	ReconciliationPending    ReconciliationStatus = "PENDING"
	ReconciliationReconciled ReconciliationStatus = "RECONCILED"
	ReconciliationFailed     ReconciliationStatus = "FAILED"
)

// FinancialMovement is an immutable ledger fact: one money transfer between
// at most two accounts, created exactly once per business event inside the
// same transaction that adjusts the balances.
type FinancialMovement struct {
	MovementID     string          `json:"movementID"`    // Primary Key (UUID)
	CompanyID      string          `json:"companyID"`     // Owning company
	FromAccountID  string          `json:"fromAccountID"` // Source account; empty = none (pure credit)
	ToAccountID    string          `json:"toAccountID"`   // Destination account; empty = none (pure debit)
	Amount         decimal.Decimal `json:"amount"`        // Always positive
	CurrencyCode   string          `json:"currencyCode"`
	Kind           MovementKind    `json:"kind"`
	ReferenceType  ReferenceType   `json:"referenceType"`
	ReferenceID    string          `json:"referenceID"`
	ReferenceKey   string          `json:"referenceKey"` // Derived: referenceType_referenceID, unique
	AgencyID       string          `json:"agencyID"`     // Agency the movement is attributed to; may be empty
	ActorID        string          `json:"actorID"`
	ActorRole      Role            `json:"actorRole"`
	Direction      EntryDirection  `json:"direction"`
	Reconciliation ReconciliationStatus `json:"reconciliation"`
	Note           string          `json:"note"`
	AuditFields
}

// MovementReferenceKey derives the unique business reference key used for
// at-most-once accounting.
func MovementReferenceKey(refType ReferenceType, refID string) string {
	return string(refType) + "_" + refID
}

// DeriveDirection returns the entry direction implied by the presence of a
// destination account: a movement that lands somewhere is a credit, one that
// only leaves a source is a debit.
func DeriveDirection(toAccountID string) EntryDirection {
	if toAccountID != "" {
		return EntryCredit
	}
	return EntryDebit
}
