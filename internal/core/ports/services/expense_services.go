package services

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// ExpenseSvcFacade exposes the expense lifecycle: pending, approved, paid.
// Linear, no skipping; only the paid transition touches the ledger.
type ExpenseSvcFacade interface {
	// CreateExpense registers a new pending expense.
	CreateExpense(ctx context.Context, companyID string, req dto.CreateExpenseRequest, actor domain.Actor) (*domain.Expense, error)

	// ApproveExpense transitions pending to approved. Maintenance expenses
	// above the configured threshold require an executive role.
	ApproveExpense(ctx context.Context, companyID, expenseID string, actor domain.Actor) (*domain.Expense, error)

	// PayExpense transitions approved to paid, recording the ledger movement
	// into the company expense reserve inside the same transaction.
	PayExpense(ctx context.Context, companyID, expenseID string, req dto.PayExpenseRequest, actor domain.Actor) (*domain.Expense, error)

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, companyID, expenseID string) (*domain.Expense, error)

	// ListExpensesByAgency retrieves an agency's expenses, newest first.
	ListExpensesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Expense, error)
}
