package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// CreatePayableRequest registers a supplier debt for an agency.
type CreatePayableRequest struct {
	AgencyID     string          `json:"agencyID" binding:"required"`
	SupplierName string          `json:"supplierName" binding:"required"`
	Description  string          `json:"description"`
	TotalAmount  decimal.Decimal `json:"totalAmount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
}

// PayPayableRequest attempts a (partial) payment against a payable. The
// idempotency key must be stable per real-world payment attempt; it is
// combined with the payable id into the movement's business reference.
type PayPayableRequest struct {
	AccountID      string          `json:"accountID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Note           string          `json:"note"`
}

// PayableResponse defines the data returned for a payable.
type PayableResponse struct {
	PayableID       string                `json:"payableID"`
	AgencyID        string                `json:"agencyID"`
	SupplierName    string                `json:"supplierName"`
	Description     string                `json:"description,omitempty"`
	CurrencyCode    string                `json:"currencyCode"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	AmountPaid      decimal.Decimal       `json:"amountPaid"`
	RemainingAmount decimal.Decimal       `json:"remainingAmount"`
	Status          domain.PayableStatus  `json:"status"`
	ApprovalStatus  domain.ApprovalStatus `json:"approvalStatus"`
	ApprovedBy      string                `json:"approvedBy,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// PaymentResultResponse is the outcome of a payment attempt: either an
// executed movement, or a pending proposal when the amount (alone or
// cumulatively) crossed the approval threshold.
type PaymentResultResponse struct {
	Executed   bool              `json:"executed"`
	MovementID string            `json:"movementID,omitempty"`
	Payable    *PayableResponse  `json:"payable,omitempty"`
	Proposal   *ProposalResponse `json:"proposal,omitempty"`
}

// ToPayableResponse converts a domain payable to its response DTO.
func ToPayableResponse(p *domain.Payable) PayableResponse {
	return PayableResponse{
		PayableID:       p.PayableID,
		AgencyID:        p.AgencyID,
		SupplierName:    p.SupplierName,
		Description:     p.Description,
		CurrencyCode:    p.CurrencyCode,
		TotalAmount:     p.TotalAmount,
		AmountPaid:      p.AmountPaid,
		RemainingAmount: p.RemainingAmount,
		Status:          p.Status,
		ApprovalStatus:  p.ApprovalStatus,
		ApprovedBy:      p.ApprovedBy,
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
	}
}

// ToPayableResponseSlice converts a slice of domain payables.
func ToPayableResponseSlice(ps []domain.Payable) []PayableResponse {
	out := make([]PayableResponse, len(ps))
	for i := range ps {
		out[i] = ToPayableResponse(&ps[i])
	}
	return out
}
