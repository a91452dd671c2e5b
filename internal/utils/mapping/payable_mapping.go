package mapping

import (
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
)

// ToModelPayable converts a domain Payable to a model Payable.
func ToModelPayable(d domain.Payable) models.Payable {
	return models.Payable{
		PayableID:       d.PayableID,
		CompanyID:       d.CompanyID,
		AgencyID:        d.AgencyID,
		SupplierName:    d.SupplierName,
		Description:     d.Description,
		CurrencyCode:    d.CurrencyCode,
		TotalAmount:     d.TotalAmount,
		AmountPaid:      d.AmountPaid,
		RemainingAmount: d.RemainingAmount,
		Status:          string(d.Status),
		ApprovalStatus:  string(d.ApprovalStatus),
		ApprovedBy:      d.ApprovedBy,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayable converts a model Payable to a domain Payable.
func ToDomainPayable(m models.Payable) domain.Payable {
	return domain.Payable{
		PayableID:       m.PayableID,
		CompanyID:       m.CompanyID,
		AgencyID:        m.AgencyID,
		SupplierName:    m.SupplierName,
		Description:     m.Description,
		CurrencyCode:    m.CurrencyCode,
		TotalAmount:     m.TotalAmount,
		AmountPaid:      m.AmountPaid,
		RemainingAmount: m.RemainingAmount,
		Status:          domain.PayableStatus(m.Status),
		ApprovalStatus:  domain.ApprovalStatus(m.ApprovalStatus),
		ApprovedBy:      m.ApprovedBy,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayableSlice converts a slice of model payables to domain payables.
func ToDomainPayableSlice(ms []models.Payable) []domain.Payable {
	ds := make([]domain.Payable, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayable(m)
	}
	return ds
}
