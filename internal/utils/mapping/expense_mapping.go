package mapping

import (
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		CompanyID:    d.CompanyID,
		AgencyID:     d.AgencyID,
		Category:     string(d.Category),
		Description:  d.Description,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		AccountID:    d.AccountID,
		Status:       string(d.Status),
		ApprovedBy:   d.ApprovedBy,
		PaidAt:       d.PaidAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		CompanyID:    m.CompanyID,
		AgencyID:     m.AgencyID,
		Category:     domain.ExpenseCategory(m.Category),
		Description:  m.Description,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		AccountID:    m.AccountID,
		Status:       domain.ExpenseStatus(m.Status),
		ApprovedBy:   m.ApprovedBy,
		PaidAt:       m.PaidAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model expenses to domain expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
