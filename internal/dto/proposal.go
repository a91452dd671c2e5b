package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// RejectProposalRequest carries the optional rejection reason.
type RejectProposalRequest struct {
	Reason string `json:"reason"`
}

// ProposalActionResponse is one audit-trail entry on a proposal.
type ProposalActionResponse struct {
	Action     domain.ProposalActionType `json:"action"`
	ActorID    string                    `json:"actorID"`
	ActorRole  domain.Role               `json:"actorRole"`
	Reason     string                    `json:"reason,omitempty"`
	OccurredAt time.Time                 `json:"occurredAt"`
}

// ProposalResponse defines the data returned for a payment proposal.
type ProposalResponse struct {
	ProposalID         string                   `json:"proposalID"`
	AgencyID           string                   `json:"agencyID"`
	PayableID          string                   `json:"payableID"`
	AccountID          string                   `json:"accountID"`
	Amount             decimal.Decimal          `json:"amount"`
	CurrencyCode       string                   `json:"currencyCode"`
	ProposerID         string                   `json:"proposerID"`
	ProposerRole       domain.Role              `json:"proposerRole"`
	Note               string                   `json:"note,omitempty"`
	Status             domain.ProposalStatus    `json:"status"`
	ExpiresAt          time.Time                `json:"expiresAt"`
	ExecutedMovementID string                   `json:"executedMovementID,omitempty"`
	History            []ProposalActionResponse `json:"history"`
	CreatedAt          time.Time                `json:"createdAt"`
}

// ToProposalResponse converts a domain proposal to its response DTO.
func ToProposalResponse(p *domain.PaymentProposal) ProposalResponse {
	history := make([]ProposalActionResponse, len(p.History))
	for i, a := range p.History {
		history[i] = ProposalActionResponse{
			Action:     a.Action,
			ActorID:    a.ActorID,
			ActorRole:  a.ActorRole,
			Reason:     a.Reason,
			OccurredAt: a.OccurredAt,
		}
	}
	return ProposalResponse{
		ProposalID:         p.ProposalID,
		AgencyID:           p.AgencyID,
		PayableID:          p.PayableID,
		AccountID:          p.AccountID,
		Amount:             p.Amount,
		CurrencyCode:       p.CurrencyCode,
		ProposerID:         p.ProposerID,
		ProposerRole:       p.ProposerRole,
		Note:               p.Note,
		Status:             p.Status,
		ExpiresAt:          p.ExpiresAt,
		ExecutedMovementID: p.ExecutedMovementID,
		History:            history,
		CreatedAt:          p.CreatedAt,
	}
}

// ToProposalResponseSlice converts a slice of domain proposals.
func ToProposalResponseSlice(ps []domain.PaymentProposal) []ProposalResponse {
	out := make([]ProposalResponse, len(ps))
	for i := range ps {
		out[i] = ToProposalResponse(&ps[i])
	}
	return out
}
