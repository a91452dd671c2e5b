package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// ProposalReader defines read operations for payment proposals.
type ProposalReader interface {
	// FindProposalByID retrieves a proposal with its action history.
	FindProposalByID(ctx context.Context, companyID, proposalID string) (*domain.PaymentProposal, error)

	// ListProposalsByStatus retrieves a company's proposals in a given
	// status, optionally filtered by agency, newest first. Expiration is not
	// applied here; callers derive it from ExpiresAt.
	ListProposalsByStatus(ctx context.Context, companyID, agencyID string, status domain.ProposalStatus) ([]domain.PaymentProposal, error)

	// SumProposalAmountsByPayable sums amounts of a payable's proposals in
	// the given statuses created after the cutoff.
	SumProposalAmountsByPayable(ctx context.Context, companyID, payableID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error)

	// SumProposalAmountsByAgency sums amounts of an agency's proposals in
	// the given statuses created after the cutoff.
	SumProposalAmountsByAgency(ctx context.Context, companyID, agencyID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error)

	// SumProposalAmountsByProposer sums amounts of an actor's proposals in
	// the given statuses created after the cutoff.
	SumProposalAmountsByProposer(ctx context.Context, companyID, proposerID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error)
}

// ProposalWriter defines write operations for payment proposals.
type ProposalWriter interface {
	// SaveProposal persists a new proposal and its seed history entry.
	SaveProposal(ctx context.Context, proposal domain.PaymentProposal, seed domain.ProposalAction) error

	// ApproveProposal executes the proposed payment inside one transaction:
	// locks the proposal, rejects if it is settled or past its validity
	// window, locks the payable and re-validates its remaining amount,
	// records the ledger movement, updates the payable, appends the approval
	// action, and marks the proposal approved with the executed movement ID.
	ApproveProposal(ctx context.Context, companyID, proposalID string, movement domain.FinancialMovement, action domain.ProposalAction) (*domain.PaymentProposal, error)

	// RejectProposal marks a pending proposal rejected and appends the
	// rejection action; no ledger effect.
	RejectProposal(ctx context.Context, companyID, proposalID string, action domain.ProposalAction) (*domain.PaymentProposal, error)

	// MarkProposalsExpired best-effort transitions still-pending proposals
	// whose validity window has passed. Used by lazy expiration on reads.
	MarkProposalsExpired(ctx context.Context, companyID string, proposalIDs []string, now time.Time) error
}

// ProposalRepositoryFacade combines all proposal repository interfaces.
type ProposalRepositoryFacade interface {
	ProposalReader
	ProposalWriter
}
