package mapping

import (
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
)

// ToModelSettings converts domain FinancialSettings to their model row.
func ToModelSettings(d domain.FinancialSettings) models.FinancialSettings {
	return models.FinancialSettings{
		CompanyID:                    d.CompanyID,
		PaymentApprovalThreshold:     d.PaymentApprovalThreshold,
		PayableApprovalAbove:         d.PayableApprovalAbove,
		BankTransfersRequireApproval: d.BankTransfersRequireApproval,
		MaintenanceApprovalThreshold: d.MaintenanceApprovalThreshold,
		FuelAnomalyLimit:             d.FuelAnomalyLimit,
		AuditFields:                  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts a model FinancialSettings row to its domain form.
func ToDomainSettings(m models.FinancialSettings) domain.FinancialSettings {
	return domain.FinancialSettings{
		CompanyID:                    m.CompanyID,
		PaymentApprovalThreshold:     m.PaymentApprovalThreshold,
		PayableApprovalAbove:         m.PayableApprovalAbove,
		BankTransfersRequireApproval: m.BankTransfersRequireApproval,
		MaintenanceApprovalThreshold: m.MaintenanceApprovalThreshold,
		FuelAnomalyLimit:             m.FuelAnomalyLimit,
		AuditFields:                  ToDomainAuditFields(m.AuditFields),
	}
}
