package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// payableService provides supplier payable operations, including the payment
// path that routes large amounts through the proposal workflow.
type payableService struct {
	payableRepo portsrepo.PayableRepositoryFacade
	proposalSvc portssvc.ProposalSvcFacade
	settingsSvc portssvc.SettingsSvcFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewPayableService creates a new PayableService.
func NewPayableService(payableRepo portsrepo.PayableRepositoryFacade, proposalSvc portssvc.ProposalSvcFacade, settingsSvc portssvc.SettingsSvcFacade, accountSvc portssvc.AccountSvcFacade) portssvc.PayableSvcFacade {
	return &payableService{
		payableRepo: payableRepo,
		proposalSvc: proposalSvc,
		settingsSvc: settingsSvc,
		accountSvc:  accountSvc,
	}
}

// Ensure payableService implements the portssvc.PayableSvcFacade interface
var _ portssvc.PayableSvcFacade = (*payableService)(nil)

// requireAccountCurrency verifies the paying account exists, is active, and is
// denominated in the expected currency before any movement is built against
// it. Amounts never convert between currencies.
func requireAccountCurrency(ctx context.Context, accountSvc portssvc.AccountSvcFacade, companyID, accountID, currency string) error {
	account, err := accountSvc.GetAccount(ctx, companyID, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, accountID)
	}
	if account.CurrencyCode != currency {
		return fmt.Errorf("%w: account %s is denominated in %s, payment is in %s",
			apperrors.ErrValidation, accountID, account.CurrencyCode, currency)
	}
	return nil
}

// CreatePayable registers a supplier debt. Totals at or under the configured
// auto-approval bound start pre-approved; larger ones wait for an executive.
func (s *payableService) CreatePayable(ctx context.Context, companyID string, req dto.CreatePayableRequest, actor domain.Actor) (*domain.Payable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TotalAmount.IsZero() || req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: payable total must be positive, got %s", apperrors.ErrInvalidAmount, req.TotalAmount.String())
	}

	settings, err := s.settingsSvc.GetSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}

	approvalStatus := domain.ApprovalPending
	approvedBy := ""
	if req.TotalAmount.LessThanOrEqual(settings.PayableApprovalAbove) {
		approvalStatus = domain.ApprovalApproved
		approvedBy = actor.ActorID
	}

	now := time.Now()
	payable := domain.Payable{
		PayableID:       uuid.NewString(),
		CompanyID:       companyID,
		AgencyID:        req.AgencyID,
		SupplierName:    req.SupplierName,
		Description:     req.Description,
		CurrencyCode:    req.CurrencyCode,
		TotalAmount:     req.TotalAmount,
		AmountPaid:      decimal.Zero,
		RemainingAmount: req.TotalAmount,
		Status:          domain.PayablePending,
		ApprovalStatus:  approvalStatus,
		ApprovedBy:      approvedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	if err := s.payableRepo.SavePayable(ctx, payable); err != nil {
		logger.Error("Failed to save payable", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Payable created",
		slog.String("payable_id", payable.PayableID),
		slog.String("supplier", payable.SupplierName),
		slog.String("approval_status", string(payable.ApprovalStatus)),
	)
	return &payable, nil
}

// ApprovePayable lifts the approval gate; executives only, no ledger effect.
func (s *payableService) ApprovePayable(ctx context.Context, companyID, payableID string, actor domain.Actor) (*domain.Payable, error) {
	return s.setApproval(ctx, companyID, payableID, domain.ApprovalApproved, actor)
}

// RejectPayable closes the approval gate; executives only, no ledger effect.
func (s *payableService) RejectPayable(ctx context.Context, companyID, payableID string, actor domain.Actor) (*domain.Payable, error) {
	return s.setApproval(ctx, companyID, payableID, domain.ApprovalRejected, actor)
}

func (s *payableService) setApproval(ctx context.Context, companyID, payableID string, status domain.ApprovalStatus, actor domain.Actor) (*domain.Payable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsExecutive() {
		return nil, fmt.Errorf("%w: role %s cannot change payable approval", apperrors.ErrForbidden, actor.Role)
	}

	payable, err := s.payableRepo.FindPayableByID(ctx, companyID, payableID)
	if err != nil {
		return nil, err
	}
	if payable.ApprovalStatus != domain.ApprovalPending {
		return nil, fmt.Errorf("%w: payable %s approval is already %s",
			apperrors.ErrInvalidStateTransition, payableID, payable.ApprovalStatus)
	}

	now := time.Now()
	payable.ApprovalStatus = status
	payable.ApprovedBy = actor.ActorID
	payable.LastUpdatedAt = now
	payable.LastUpdatedBy = actor.ActorID

	if err := s.payableRepo.UpdateApprovalStatus(ctx, *payable); err != nil {
		logger.Error("Failed to update payable approval",
			slog.String("payable_id", payableID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Payable approval updated",
		slog.String("payable_id", payableID),
		slog.String("approval_status", string(status)),
	)
	return payable, nil
}

// PayPayable attempts a (partial) payment against a payable. Amounts that
// cross the approval threshold, alone or via the trailing cumulative sums,
// produce a pending proposal instead of an immediate movement.
func (s *payableService) PayPayable(ctx context.Context, companyID, payableID string, req dto.PayPayableRequest, actor domain.Actor) (*portssvc.PaymentOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsZero() || req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}

	payable, err := s.payableRepo.FindPayableByID(ctx, companyID, payableID)
	if err != nil {
		return nil, err
	}
	if payable.ApprovalStatus != domain.ApprovalApproved {
		return nil, fmt.Errorf("%w: payable %s is %s, payments need an approved payable",
			apperrors.ErrInvalidStateTransition, payableID, payable.ApprovalStatus)
	}
	if req.Amount.GreaterThan(payable.RemainingAmount) {
		return nil, fmt.Errorf("%w: payment %s exceeds remaining %s",
			apperrors.ErrOverpaymentRejected, req.Amount.String(), payable.RemainingAmount.String())
	}
	if err := requireAccountCurrency(ctx, s.accountSvc, companyID, req.AccountID, payable.CurrencyCode); err != nil {
		return nil, err
	}

	needsApproval, err := s.proposalSvc.RequiresApproval(ctx, companyID, *payable, req.Amount, actor)
	if err != nil {
		return nil, err
	}

	if needsApproval {
		proposal, err := s.proposalSvc.CreateProposal(ctx, companyID, *payable, req.AccountID, req.Amount, req.Note, actor)
		if err != nil {
			return nil, err
		}
		logger.Info("Payment routed to proposal workflow",
			slog.String("payable_id", payableID),
			slog.String("proposal_id", proposal.ProposalID),
		)
		return &portssvc.PaymentOutcome{
			Executed: false,
			Payable:  payable,
			Proposal: proposal,
		}, nil
	}

	now := time.Now()
	refID := payableID + "_" + req.IdempotencyKey
	movement := domain.FinancialMovement{
		MovementID:     uuid.NewString(),
		CompanyID:      companyID,
		FromAccountID:  req.AccountID,
		Amount:         req.Amount,
		CurrencyCode:   payable.CurrencyCode,
		Kind:           domain.MovementPayablePayment,
		ReferenceType:  domain.RefPayablePayment,
		ReferenceID:    refID,
		ReferenceKey:   domain.MovementReferenceKey(domain.RefPayablePayment, refID),
		AgencyID:       payable.AgencyID,
		ActorID:        actor.ActorID,
		ActorRole:      actor.Role,
		Direction:      domain.EntryDebit,
		Reconciliation: domain.ReconciliationPending,
		Note:           req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	updated, err := s.payableRepo.ApplyPayment(ctx, payableID, movement)
	if err != nil {
		logger.Error("Failed to apply payment",
			slog.String("payable_id", payableID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Payment executed",
		slog.String("payable_id", payableID),
		slog.String("movement_id", movement.MovementID),
		slog.String("status", string(updated.Status)),
	)
	return &portssvc.PaymentOutcome{
		Executed:   true,
		MovementID: movement.MovementID,
		Payable:    updated,
	}, nil
}

// GetPayable retrieves a payable by ID.
func (s *payableService) GetPayable(ctx context.Context, companyID, payableID string) (*domain.Payable, error) {
	return s.payableRepo.FindPayableByID(ctx, companyID, payableID)
}

// ListPayablesByAgency retrieves an agency's payables, newest first.
func (s *payableService) ListPayablesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Payable, error) {
	return s.payableRepo.ListPayablesByAgency(ctx, companyID, agencyID)
}
