package mapping

import (
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
)

// ToModelMovement converts a domain FinancialMovement to a model FinancialMovement.
func ToModelMovement(d domain.FinancialMovement) models.FinancialMovement {
	return models.FinancialMovement{
		MovementID:     d.MovementID,
		CompanyID:      d.CompanyID,
		FromAccountID:  d.FromAccountID,
		ToAccountID:    d.ToAccountID,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		Kind:           string(d.Kind),
		ReferenceType:  string(d.ReferenceType),
		ReferenceID:    d.ReferenceID,
		ReferenceKey:   d.ReferenceKey,
		AgencyID:       d.AgencyID,
		ActorID:        d.ActorID,
		ActorRole:      string(d.ActorRole),
		Direction:      string(d.Direction),
		Reconciliation: string(d.Reconciliation),
		Note:           d.Note,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model FinancialMovement to a domain FinancialMovement.
func ToDomainMovement(m models.FinancialMovement) domain.FinancialMovement {
	return domain.FinancialMovement{
		MovementID:     m.MovementID,
		CompanyID:      m.CompanyID,
		FromAccountID:  m.FromAccountID,
		ToAccountID:    m.ToAccountID,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		Kind:           domain.MovementKind(m.Kind),
		ReferenceType:  domain.ReferenceType(m.ReferenceType),
		ReferenceID:    m.ReferenceID,
		ReferenceKey:   m.ReferenceKey,
		AgencyID:       m.AgencyID,
		ActorID:        m.ActorID,
		ActorRole:      domain.Role(m.ActorRole),
		Direction:      domain.EntryDirection(m.Direction),
		Reconciliation: domain.ReconciliationStatus(m.Reconciliation),
		Note:           m.Note,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model movements to domain movements.
func ToDomainMovementSlice(ms []models.FinancialMovement) []domain.FinancialMovement {
	ds := make([]domain.FinancialMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
