package services

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// TransferSvcFacade exposes the composite money-movement operations. Each is
// one atomic transaction; each re-validates the source balance inside that
// transaction rather than trusting any pre-transaction read.
type TransferSvcFacade interface {
	// InternalTransfer moves money between two company accounts as an atomic
	// debit/credit movement pair. Direct agency-to-agency cash transfers are
	// rejected with ErrTopologyViolation.
	InternalTransfer(ctx context.Context, companyID string, req dto.InternalTransferRequest, actor domain.Actor) ([]string, error)

	// AgencyDeposit moves agency cash into the company bank account.
	AgencyDeposit(ctx context.Context, companyID string, req dto.AgencyDepositRequest, actor domain.Actor) (string, error)

	// BankWithdrawal moves money from the company bank to an agency drawer.
	// Fails with ErrApprovalRequired when settings demand executive approval
	// for bank moves above the payment threshold.
	BankWithdrawal(ctx context.Context, companyID string, req dto.BankWithdrawalRequest, actor domain.Actor) (string, error)

	// MobileToBank settles the mobile-money wallet into the bank account.
	MobileToBank(ctx context.Context, companyID string, req dto.MobileToBankRequest, actor domain.Actor) (string, error)

	// MobileExpense pays an expense directly from the mobile-money wallet as
	// a debit-only movement.
	MobileExpense(ctx context.Context, companyID string, req dto.MobileExpenseRequest, actor domain.Actor) (string, error)
}
