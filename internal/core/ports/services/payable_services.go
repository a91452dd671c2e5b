package services

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// PaymentOutcome is the result of a payment attempt: either a movement was
// executed immediately, or a proposal was created and nothing moved.
type PaymentOutcome struct {
	Executed   bool
	MovementID string
	Payable    *domain.Payable
	Proposal   *domain.PaymentProposal
}

// PayableSvcFacade exposes supplier-payable operations.
type PayableSvcFacade interface {
	// CreatePayable registers a supplier debt. Totals at or under the
	// configured auto-approval bound start pre-approved; larger ones start
	// with a pending approval status.
	CreatePayable(ctx context.Context, companyID string, req dto.CreatePayableRequest, actor domain.Actor) (*domain.Payable, error)

	// ApprovePayable lifts the approval gate; no ledger effect.
	ApprovePayable(ctx context.Context, companyID, payableID string, actor domain.Actor) (*domain.Payable, error)

	// RejectPayable closes the approval gate; no ledger effect.
	RejectPayable(ctx context.Context, companyID, payableID string, actor domain.Actor) (*domain.Payable, error)

	// PayPayable attempts a (partial) payment. Small, non-cumulative amounts
	// execute immediately; amounts crossing the threshold (alone or via 24h
	// cumulative sums) produce a pending proposal instead.
	PayPayable(ctx context.Context, companyID, payableID string, req dto.PayPayableRequest, actor domain.Actor) (*PaymentOutcome, error)

	// GetPayable retrieves a payable by ID.
	GetPayable(ctx context.Context, companyID, payableID string) (*domain.Payable, error)

	// ListPayablesByAgency retrieves an agency's payables, newest first.
	ListPayablesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Payable, error)
}
