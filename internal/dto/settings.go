package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// UpdateSettingsRequest replaces a company's financial settings.
// All fields are required; settings are a singleton replaced wholesale.
type UpdateSettingsRequest struct {
	PaymentApprovalThreshold     decimal.Decimal `json:"paymentApprovalThreshold" binding:"required"`
	PayableApprovalAbove         decimal.Decimal `json:"payableApprovalAbove" binding:"required"`
	BankTransfersRequireApproval bool            `json:"bankTransfersRequireApproval"`
	MaintenanceApprovalThreshold decimal.Decimal `json:"maintenanceApprovalThreshold" binding:"required"`
	FuelAnomalyLimit             decimal.Decimal `json:"fuelAnomalyLimit" binding:"required"`
}

// SettingsResponse defines the data returned for financial settings.
type SettingsResponse struct {
	CompanyID                    string          `json:"companyID"`
	PaymentApprovalThreshold     decimal.Decimal `json:"paymentApprovalThreshold"`
	PayableApprovalAbove         decimal.Decimal `json:"payableApprovalAbove"`
	BankTransfersRequireApproval bool            `json:"bankTransfersRequireApproval"`
	MaintenanceApprovalThreshold decimal.Decimal `json:"maintenanceApprovalThreshold"`
	FuelAnomalyLimit             decimal.Decimal `json:"fuelAnomalyLimit"`
}

// ToSettingsResponse converts domain settings to their response DTO.
func ToSettingsResponse(s *domain.FinancialSettings) SettingsResponse {
	return SettingsResponse{
		CompanyID:                    s.CompanyID,
		PaymentApprovalThreshold:     s.PaymentApprovalThreshold,
		PayableApprovalAbove:         s.PayableApprovalAbove,
		BankTransfersRequireApproval: s.BankTransfersRequireApproval,
		MaintenanceApprovalThreshold: s.MaintenanceApprovalThreshold,
		FuelAnomalyLimit:             s.FuelAnomalyLimit,
	}
}
