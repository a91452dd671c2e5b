package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// CreateAccountRequest defines the data needed to provision a financial account.
type CreateAccountRequest struct {
	AgencyID     string             `json:"agencyID"` // Optional; empty = company-level account
	Name         string             `json:"name" binding:"required"`
	Kind         domain.AccountKind `json:"kind" binding:"required,oneof=AGENCY_CASH COMPANY_BANK MOBILE_MONEY EXPENSE_RESERVE PAYROLL TRANSFER_HOLDING"`
	CurrencyCode string             `json:"currencyCode" binding:"required,len=3"`
}

// AccountResponse defines the data returned for a financial account.
type AccountResponse struct {
	AccountID    string             `json:"accountID"`
	CompanyID    string             `json:"companyID"`
	AgencyID     string             `json:"agencyID,omitempty"`
	Name         string             `json:"name"`
	Kind         domain.AccountKind `json:"kind"`
	CurrencyCode string             `json:"currencyCode"`
	Balance      decimal.Decimal    `json:"balance"`
	IsActive     bool               `json:"isActive"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(acc *domain.FinancialAccount) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		CompanyID:    acc.CompanyID,
		AgencyID:     acc.AgencyID,
		Name:         acc.Name,
		Kind:         acc.Kind,
		CurrencyCode: acc.CurrencyCode,
		Balance:      acc.Balance,
		IsActive:     acc.IsActive,
		CreatedAt:    acc.CreatedAt,
		CreatedBy:    acc.CreatedBy,
	}
}

// ToAccountResponseSlice converts a slice of domain accounts.
func ToAccountResponseSlice(accs []domain.FinancialAccount) []AccountResponse {
	out := make([]AccountResponse, len(accs))
	for i := range accs {
		out[i] = ToAccountResponse(&accs[i])
	}
	return out
}
