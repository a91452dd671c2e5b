package mapping

import (
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
)

// ToModelAccount converts a domain FinancialAccount to a model FinancialAccount.
func ToModelAccount(d domain.FinancialAccount) models.FinancialAccount {
	return models.FinancialAccount{
		AccountID:    d.AccountID,
		CompanyID:    d.CompanyID,
		AgencyID:     d.AgencyID,
		Name:         d.Name,
		Kind:         models.AccountKind(d.Kind),
		CurrencyCode: d.CurrencyCode,
		Balance:      d.Balance,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model FinancialAccount to a domain FinancialAccount.
func ToDomainAccount(m models.FinancialAccount) domain.FinancialAccount {
	return domain.FinancialAccount{
		AccountID:    m.AccountID,
		CompanyID:    m.CompanyID,
		AgencyID:     m.AgencyID,
		Name:         m.Name,
		Kind:         domain.AccountKind(m.Kind),
		CurrencyCode: m.CurrencyCode,
		Balance:      m.Balance,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model accounts to domain accounts.
func ToDomainAccountSlice(ms []models.FinancialAccount) []domain.FinancialAccount {
	ds := make([]domain.FinancialAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
