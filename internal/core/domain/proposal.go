package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus tracks the lifecycle of a payment proposal. Once the status
// leaves PENDING it is terminal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "PENDING"
	ProposalApproved ProposalStatus = "APPROVED"
	ProposalRejected ProposalStatus = "REJECTED"
	ProposalExpired  ProposalStatus = "EXPIRED"
)

// ProposalActionType enumerates the append-only audit-trail actions on a proposal.
type ProposalActionType string

const (
	ActionProposed ProposalActionType = "PROPOSED"
	ActionApproved ProposalActionType = "APPROVED"
	ActionRejected ProposalActionType = "REJECTED"
)

// ProposalAction is one entry in a proposal's approval history.
type ProposalAction struct {
	ActionID   string             `json:"actionID"`
	ProposalID string             `json:"proposalID"`
	Action     ProposalActionType `json:"action"`
	ActorID    string             `json:"actorID"`
	ActorRole  Role               `json:"actorRole"`
	Reason     string             `json:"reason"` // Optional; used on rejection
	OccurredAt time.Time          `json:"occurredAt"`
}

// PaymentProposal is a pending request to pay part of a payable from a
// specific account, awaiting executive approval. Expiration is a wall-clock
// fact derived at read time, not a background job.
type PaymentProposal struct {
	ProposalID         string          `json:"proposalID"` // Primary Key (UUID)
	CompanyID          string          `json:"companyID"`
	AgencyID           string          `json:"agencyID"`
	PayableID          string          `json:"payableID"`
	AccountID          string          `json:"accountID"` // Source account the payment would debit
	Amount             decimal.Decimal `json:"amount"`
	CurrencyCode       string          `json:"currencyCode"`
	ProposerID         string          `json:"proposerID"`
	ProposerRole       Role            `json:"proposerRole"`
	Note               string          `json:"note"`
	Status             ProposalStatus  `json:"status"`
	ExpiresAt          time.Time       `json:"expiresAt"`
	ExecutedMovementID string          `json:"executedMovementID"` // Set on approval
	History            []ProposalAction `json:"history"`
	AuditFields
}

// IsExpired reports whether the proposal's validity window has passed at the
// given instant.
func (p PaymentProposal) IsExpired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
