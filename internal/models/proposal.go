package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProposal is a pending large-payment request row.
type PaymentProposal struct {
	ProposalID         string          `db:"proposal_id"`
	CompanyID          string          `db:"company_id"`
	AgencyID           string          `db:"agency_id"`
	PayableID          string          `db:"payable_id"`
	AccountID          string          `db:"account_id"`
	Amount             decimal.Decimal `db:"amount"`
	CurrencyCode       string          `db:"currency_code"`
	ProposerID         string          `db:"proposer_id"`
	ProposerRole       string          `db:"proposer_role"`
	Note               string          `db:"note"`
	Status             string          `db:"status"`
	ExpiresAt          time.Time       `db:"expires_at"`
	ExecutedMovementID string          `db:"executed_movement_id"` // Nullable
	AuditFields
}

// ProposalAction is one append-only audit-trail row for a proposal.
type ProposalAction struct {
	ActionID   string    `db:"action_id"`
	ProposalID string    `db:"proposal_id"`
	Action     string    `db:"action"`
	ActorID    string    `db:"actor_id"`
	ActorRole  string    `db:"actor_role"`
	Reason     string    `db:"reason"` // Nullable
	OccurredAt time.Time `db:"occurred_at"`
}
