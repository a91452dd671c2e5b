package mapping

import (
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
)

// ToModelProposal converts a domain PaymentProposal to a model PaymentProposal.
// History rows are mapped separately; the proposal row does not embed them.
func ToModelProposal(d domain.PaymentProposal) models.PaymentProposal {
	return models.PaymentProposal{
		ProposalID:         d.ProposalID,
		CompanyID:          d.CompanyID,
		AgencyID:           d.AgencyID,
		PayableID:          d.PayableID,
		AccountID:          d.AccountID,
		Amount:             d.Amount,
		CurrencyCode:       d.CurrencyCode,
		ProposerID:         d.ProposerID,
		ProposerRole:       string(d.ProposerRole),
		Note:               d.Note,
		Status:             string(d.Status),
		ExpiresAt:          d.ExpiresAt,
		ExecutedMovementID: d.ExecutedMovementID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProposal converts a model PaymentProposal to a domain PaymentProposal.
func ToDomainProposal(m models.PaymentProposal) domain.PaymentProposal {
	return domain.PaymentProposal{
		ProposalID:         m.ProposalID,
		CompanyID:          m.CompanyID,
		AgencyID:           m.AgencyID,
		PayableID:          m.PayableID,
		AccountID:          m.AccountID,
		Amount:             m.Amount,
		CurrencyCode:       m.CurrencyCode,
		ProposerID:         m.ProposerID,
		ProposerRole:       domain.Role(m.ProposerRole),
		Note:               m.Note,
		Status:             domain.ProposalStatus(m.Status),
		ExpiresAt:          m.ExpiresAt,
		ExecutedMovementID: m.ExecutedMovementID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProposalAction converts a domain ProposalAction to its model row.
func ToModelProposalAction(d domain.ProposalAction) models.ProposalAction {
	return models.ProposalAction{
		ActionID:   d.ActionID,
		ProposalID: d.ProposalID,
		Action:     string(d.Action),
		ActorID:    d.ActorID,
		ActorRole:  string(d.ActorRole),
		Reason:     d.Reason,
		OccurredAt: d.OccurredAt,
	}
}

// ToDomainProposalAction converts a model ProposalAction to its domain form.
func ToDomainProposalAction(m models.ProposalAction) domain.ProposalAction {
	return domain.ProposalAction{
		ActionID:   m.ActionID,
		ProposalID: m.ProposalID,
		Action:     domain.ProposalActionType(m.Action),
		ActorID:    m.ActorID,
		ActorRole:  domain.Role(m.ActorRole),
		Reason:     m.Reason,
		OccurredAt: m.OccurredAt,
	}
}

// ToDomainProposalActionSlice converts model action rows to domain actions.
func ToDomainProposalActionSlice(ms []models.ProposalAction) []domain.ProposalAction {
	ds := make([]domain.ProposalAction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProposalAction(m)
	}
	return ds
}
