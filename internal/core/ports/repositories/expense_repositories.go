package repositories

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// ExpenseReader defines read operations for expenses.
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense scoped to a company.
	FindExpenseByID(ctx context.Context, companyID, expenseID string) (*domain.Expense, error)

	// ListExpensesByAgency retrieves an agency's expenses, newest first.
	ListExpensesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpenseStatus persists an approve transition (no ledger effect).
	UpdateExpenseStatus(ctx context.Context, expense domain.Expense) error

	// PayExpense performs the paid transition inside one transaction: locks
	// the expense row, re-validates status APPROVED, auto-provisions the
	// company expense-reserve account if absent, records the ledger movement
	// from the source account to the reserve, and stamps status/paid_at.
	// The reserve candidate is used only when no reserve account exists yet.
	PayExpense(ctx context.Context, expenseID string, movement domain.FinancialMovement, reserveCandidate domain.FinancialAccount) (*domain.Expense, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
