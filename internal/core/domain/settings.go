package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialSettings is the per-company configuration singleton supplying the
// thresholds consumed by the expense, payable, and proposal workflows.
// Read-mostly; mutated only by executive actors.
type FinancialSettings struct {
	CompanyID string `json:"companyID"` // Primary Key

	// PaymentApprovalThreshold is the single-payment amount above which a
	// payable payment must go through the proposal workflow. The same value
	// bounds the 24h cumulative sums per payable, agency, and actor.
	PaymentApprovalThreshold decimal.Decimal `json:"paymentApprovalThreshold"`

	// PayableApprovalAbove is the payable total above which a new payable
	// starts with approval status pending instead of pre-approved.
	PayableApprovalAbove decimal.Decimal `json:"payableApprovalAbove"`

	// BankTransfersRequireApproval forces executive approval on bank
	// withdrawals above the payment approval threshold.
	BankTransfersRequireApproval bool `json:"bankTransfersRequireApproval"`

	// MaintenanceApprovalThreshold is the maintenance-expense amount above
	// which only executive roles may approve.
	MaintenanceApprovalThreshold decimal.Decimal `json:"maintenanceApprovalThreshold"`

	// FuelAnomalyLimit flags suspiciously large fuel expenses.
	FuelAnomalyLimit decimal.Decimal `json:"fuelAnomalyLimit"`

	AuditFields
}

// DefaultFinancialSettings returns the hard-coded safe defaults used when a
// company has not configured its settings yet.
func DefaultFinancialSettings(companyID string) FinancialSettings {
	return FinancialSettings{
		CompanyID:                    companyID,
		PaymentApprovalThreshold:     decimal.NewFromInt(1_000_000),
		PayableApprovalAbove:         decimal.NewFromInt(500_000),
		BankTransfersRequireApproval: true,
		MaintenanceApprovalThreshold: decimal.NewFromInt(200_000),
		FuelAnomalyLimit:             decimal.NewFromInt(300_000),
	}
}
