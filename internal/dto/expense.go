package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// CreateExpenseRequest registers an operating expense for an agency.
type CreateExpenseRequest struct {
	AgencyID     string                 `json:"agencyID" binding:"required"`
	Category     domain.ExpenseCategory `json:"category" binding:"required,oneof=FUEL MAINTENANCE SALARY SUPPLIES OTHER"`
	Description  string                 `json:"description" binding:"required"`
	Amount       decimal.Decimal        `json:"amount" binding:"required"`
	CurrencyCode string                 `json:"currencyCode" binding:"required,len=3"`
	AccountID    string                 `json:"accountID" binding:"required"` // Source account the payment will debit
}

// PayExpenseRequest triggers the paid transition; the idempotency key is
// combined with the expense id into the movement's business reference.
type PayExpenseRequest struct {
	IdempotencyKey string `json:"idempotencyKey" binding:"required"`
	Note           string `json:"note"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    string                 `json:"expenseID"`
	AgencyID     string                 `json:"agencyID"`
	Category     domain.ExpenseCategory `json:"category"`
	Description  string                 `json:"description"`
	Amount       decimal.Decimal        `json:"amount"`
	CurrencyCode string                 `json:"currencyCode"`
	AccountID    string                 `json:"accountID"`
	Status       domain.ExpenseStatus   `json:"status"`
	ApprovedBy   string                 `json:"approvedBy,omitempty"`
	PaidAt       *time.Time             `json:"paidAt,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
	CreatedBy    string                 `json:"createdBy"`
}

// ToExpenseResponse converts a domain expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		AgencyID:     e.AgencyID,
		Category:     e.Category,
		Description:  e.Description,
		Amount:       e.Amount,
		CurrencyCode: e.CurrencyCode,
		AccountID:    e.AccountID,
		Status:       e.Status,
		ApprovedBy:   e.ApprovedBy,
		PaidAt:       e.PaidAt,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
}

// ToExpenseResponseSlice converts a slice of domain expenses.
func ToExpenseResponseSlice(es []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(es))
	for i := range es {
		out[i] = ToExpenseResponse(&es[i])
	}
	return out
}
