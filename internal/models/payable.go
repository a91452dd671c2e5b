package models

import (
	"github.com/shopspring/decimal"
)

// Payable is a supplier debt row with partial-payment tracking.
type Payable struct {
	PayableID       string          `db:"payable_id"`
	CompanyID       string          `db:"company_id"`
	AgencyID        string          `db:"agency_id"`
	SupplierName    string          `db:"supplier_name"`
	Description     string          `db:"description"`
	CurrencyCode    string          `db:"currency_code"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	Status          string          `db:"status"`
	ApprovalStatus  string          `db:"approval_status"`
	ApprovedBy      string          `db:"approved_by"` // Nullable
	AuditFields
}
