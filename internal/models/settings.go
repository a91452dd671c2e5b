package models

import (
	"github.com/shopspring/decimal"
)

// FinancialSettings is the per-company threshold configuration row.
type FinancialSettings struct {
	CompanyID                    string          `db:"company_id"`
	PaymentApprovalThreshold     decimal.Decimal `db:"payment_approval_threshold"`
	PayableApprovalAbove         decimal.Decimal `db:"payable_approval_above"`
	BankTransfersRequireApproval bool            `db:"bank_transfers_require_approval"`
	MaintenanceApprovalThreshold decimal.Decimal `db:"maintenance_approval_threshold"`
	FuelAnomalyLimit             decimal.Decimal `db:"fuel_anomaly_limit"`
	AuditFields
}
