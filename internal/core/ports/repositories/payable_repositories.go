package repositories

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// PayableReader defines read operations for supplier payables.
type PayableReader interface {
	// FindPayableByID retrieves a payable scoped to a company.
	FindPayableByID(ctx context.Context, companyID, payableID string) (*domain.Payable, error)

	// ListPayablesByAgency retrieves an agency's payables, newest first.
	ListPayablesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Payable, error)
}

// PayableWriter defines write operations for supplier payables.
type PayableWriter interface {
	// SavePayable persists a new payable.
	SavePayable(ctx context.Context, payable domain.Payable) error

	// UpdateApprovalStatus sets the approval gate on a payable.
	UpdateApprovalStatus(ctx context.Context, payable domain.Payable) error

	// ApplyPayment records the payment movement and updates the payable's
	// paid/remaining/status fields inside one transaction. It re-validates
	// the approval status and remaining amount against the locked row and
	// fails with ErrInvalidStateTransition or ErrOverpaymentRejected.
	ApplyPayment(ctx context.Context, payableID string, movement domain.FinancialMovement) (*domain.Payable, error)
}

// PayableRepositoryFacade combines all payable repository interfaces.
type PayableRepositoryFacade interface {
	PayableReader
	PayableWriter
}
