package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// ProposalSvcFacade exposes the payment proposal workflow.
type ProposalSvcFacade interface {
	// RequiresApproval evaluates the trigger conditions for a prospective
	// payment: single amount over threshold, or any of the trailing-24h
	// cumulative sums (by payable, by agency, by actor) pushed over it.
	// The sums are an advisory pre-transaction read.
	RequiresApproval(ctx context.Context, companyID string, payable domain.Payable, amount decimal.Decimal, actor domain.Actor) (bool, error)

	// CreateProposal opens a pending proposal with a seeded audit trail and
	// an expiration at creation plus the validity window.
	CreateProposal(ctx context.Context, companyID string, payable domain.Payable, accountID string, amount decimal.Decimal, note string, actor domain.Actor) (*domain.PaymentProposal, error)

	// ApproveProposal executes the proposed payment. Requires an executive
	// role; fails on settled or expired proposals, and re-validates the
	// payable's remaining amount inside the transaction.
	ApproveProposal(ctx context.Context, companyID, proposalID string, actor domain.Actor) (*domain.PaymentProposal, error)

	// RejectProposal closes a pending proposal with no ledger effect.
	RejectProposal(ctx context.Context, companyID, proposalID, reason string, actor domain.Actor) (*domain.PaymentProposal, error)

	// GetProposal retrieves a proposal with its audit trail.
	GetProposal(ctx context.Context, companyID, proposalID string) (*domain.PaymentProposal, error)

	// ListPendingProposals lists live pending proposals. Proposals past
	// their validity window are excluded and best-effort marked expired.
	ListPendingProposals(ctx context.Context, companyID, agencyID string) ([]domain.PaymentProposal, error)
}
