package domain

import (
	"github.com/shopspring/decimal"
)

// PayableStatus tracks the payment lifecycle of a supplier debt.
type PayableStatus string

const (
	PayablePending       PayableStatus = "PENDING"
	PayablePartiallyPaid PayableStatus = "PARTIALLY_PAID"
	PayablePaid          PayableStatus = "PAID"
)

// ApprovalStatus gates whether any payment may be attempted against an entity.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// Payable is a debt owed to a named supplier, scoped to an agency, with
// partial-payment support. RemainingAmount = TotalAmount - AmountPaid and is
// never negative; no payment may be attempted while ApprovalStatus is not
// APPROVED.
type Payable struct {
	PayableID       string          `json:"payableID"` // Primary Key (UUID)
	CompanyID       string          `json:"companyID"`
	AgencyID        string          `json:"agencyID"`
	SupplierName    string          `json:"supplierName"`
	Description     string          `json:"description"`
	CurrencyCode    string          `json:"currencyCode"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          PayableStatus   `json:"status"`
	ApprovalStatus  ApprovalStatus  `json:"approvalStatus"`
	ApprovedBy      string          `json:"approvedBy"` // Actor who set the approval status; empty while pending
	AuditFields
}

// StatusForRemaining derives the payable lifecycle status from its remaining
// amount after a payment has been applied.
func (p Payable) StatusForRemaining(remaining decimal.Decimal) PayableStatus {
	if remaining.IsZero() {
		return PayablePaid
	}
	if remaining.LessThan(p.TotalAmount) {
		return PayablePartiallyPaid
	}
	return PayablePending
}
