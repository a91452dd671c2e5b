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
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// cumulativeWindow is the trailing window over which proposal amounts are
// summed when evaluating the approval triggers.
const cumulativeWindow = 24 * time.Hour

// proposalService drives the payment proposal workflow.
type proposalService struct {
	proposalRepo portsrepo.ProposalRepositoryFacade
	settingsSvc  portssvc.SettingsSvcFacade
	accountSvc   portssvc.AccountSvcFacade
	validity     time.Duration
}

// NewProposalService creates a new ProposalService. The validity duration is
// how long a proposal stays actionable after creation.
func NewProposalService(proposalRepo portsrepo.ProposalRepositoryFacade, settingsSvc portssvc.SettingsSvcFacade, accountSvc portssvc.AccountSvcFacade, validity time.Duration) portssvc.ProposalSvcFacade {
	return &proposalService{
		proposalRepo: proposalRepo,
		settingsSvc:  settingsSvc,
		accountSvc:   accountSvc,
		validity:     validity,
	}
}

// Ensure proposalService implements the portssvc.ProposalSvcFacade interface
var _ portssvc.ProposalSvcFacade = (*proposalService)(nil)

// Cumulative exposure counts different statuses per scope: the per-payable sum
// covers only still-pending requests, while the agency and proposer sums also
// count already-executed ones. Rejected and expired proposals never moved money
// and never will.
var (
	payableExposureStatuses = []domain.ProposalStatus{domain.ProposalPending}
	actorExposureStatuses   = []domain.ProposalStatus{domain.ProposalPending, domain.ProposalApproved}
)

// RequiresApproval evaluates the approval triggers for a prospective payment.
// The cumulative sums are a deliberately advisory pre-transaction read: two
// racing payments may both pass, which is accepted for this soft control. The
// hard controls (balance, remaining amount, idempotency) stay transactional.
func (s *proposalService) RequiresApproval(ctx context.Context, companyID string, payable domain.Payable, amount decimal.Decimal, actor domain.Actor) (bool, error) {
	settings, err := s.settingsSvc.GetSettings(ctx, companyID)
	if err != nil {
		return false, err
	}
	threshold := settings.PaymentApprovalThreshold

	if amount.GreaterThan(threshold) {
		return true, nil
	}

	since := time.Now().Add(-cumulativeWindow)

	byPayable, err := s.proposalRepo.SumProposalAmountsByPayable(ctx, companyID, payable.PayableID, payableExposureStatuses, since)
	if err != nil {
		return false, err
	}
	if byPayable.Add(amount).GreaterThan(threshold) {
		return true, nil
	}

	byAgency, err := s.proposalRepo.SumProposalAmountsByAgency(ctx, companyID, payable.AgencyID, actorExposureStatuses, since)
	if err != nil {
		return false, err
	}
	if byAgency.Add(amount).GreaterThan(threshold) {
		return true, nil
	}

	byProposer, err := s.proposalRepo.SumProposalAmountsByProposer(ctx, companyID, actor.ActorID, actorExposureStatuses, since)
	if err != nil {
		return false, err
	}
	if byProposer.Add(amount).GreaterThan(threshold) {
		return true, nil
	}

	return false, nil
}

// CreateProposal opens a pending proposal with a seeded audit trail.
func (s *proposalService) CreateProposal(ctx context.Context, companyID string, payable domain.Payable, accountID string, amount decimal.Decimal, note string, actor domain.Actor) (*domain.PaymentProposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	proposal := domain.PaymentProposal{
		ProposalID:   uuid.NewString(),
		CompanyID:    companyID,
		AgencyID:     payable.AgencyID,
		PayableID:    payable.PayableID,
		AccountID:    accountID,
		Amount:       amount,
		CurrencyCode: payable.CurrencyCode,
		ProposerID:   actor.ActorID,
		ProposerRole: actor.Role,
		Note:         note,
		Status:       domain.ProposalPending,
		ExpiresAt:    now.Add(s.validity),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	seed := domain.ProposalAction{
		ActionID:   uuid.NewString(),
		ProposalID: proposal.ProposalID,
		Action:     domain.ActionProposed,
		ActorID:    actor.ActorID,
		ActorRole:  actor.Role,
		OccurredAt: now,
	}

	if err := s.proposalRepo.SaveProposal(ctx, proposal, seed); err != nil {
		logger.Error("Failed to save proposal", slog.String("error", err.Error()))
		return nil, err
	}

	proposal.History = []domain.ProposalAction{seed}
	logger.Info("Payment proposal created",
		slog.String("proposal_id", proposal.ProposalID),
		slog.String("payable_id", proposal.PayableID),
		slog.String("amount", proposal.Amount.String()),
	)
	return &proposal, nil
}

// ApproveProposal executes the proposed payment. Requires an executive role.
func (s *proposalService) ApproveProposal(ctx context.Context, companyID, proposalID string, actor domain.Actor) (*domain.PaymentProposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsExecutive() {
		return nil, fmt.Errorf("%w: role %s cannot approve payment proposals", apperrors.ErrForbidden, actor.Role)
	}

	proposal, err := s.proposalRepo.FindProposalByID(ctx, companyID, proposalID)
	if err != nil {
		return nil, err
	}
	// The account may have changed since the proposal was filed.
	if err := requireAccountCurrency(ctx, s.accountSvc, companyID, proposal.AccountID, proposal.CurrencyCode); err != nil {
		return nil, err
	}

	now := time.Now()
	refID := proposal.PayableID + "_" + proposal.ProposalID
	movement := domain.FinancialMovement{
		MovementID:     uuid.NewString(),
		CompanyID:      companyID,
		FromAccountID:  proposal.AccountID,
		Amount:         proposal.Amount,
		CurrencyCode:   proposal.CurrencyCode,
		Kind:           domain.MovementPayablePayment,
		ReferenceType:  domain.RefPayablePayment,
		ReferenceID:    refID,
		ReferenceKey:   domain.MovementReferenceKey(domain.RefPayablePayment, refID),
		AgencyID:       proposal.AgencyID,
		ActorID:        actor.ActorID,
		ActorRole:      actor.Role,
		Direction:      domain.EntryDebit,
		Reconciliation: domain.ReconciliationPending,
		Note:           proposal.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	action := domain.ProposalAction{
		ActionID:   uuid.NewString(),
		ProposalID: proposalID,
		Action:     domain.ActionApproved,
		ActorID:    actor.ActorID,
		ActorRole:  actor.Role,
		OccurredAt: now,
	}

	approved, err := s.proposalRepo.ApproveProposal(ctx, companyID, proposalID, movement, action)
	if err != nil {
		logger.Error("Failed to approve proposal",
			slog.String("proposal_id", proposalID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Proposal approved and executed",
		slog.String("proposal_id", proposalID),
		slog.String("movement_id", movement.MovementID),
	)
	return approved, nil
}

// RejectProposal closes a pending proposal with no ledger effect. Requires an
// executive role.
func (s *proposalService) RejectProposal(ctx context.Context, companyID, proposalID, reason string, actor domain.Actor) (*domain.PaymentProposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsExecutive() {
		return nil, fmt.Errorf("%w: role %s cannot reject payment proposals", apperrors.ErrForbidden, actor.Role)
	}

	action := domain.ProposalAction{
		ActionID:   uuid.NewString(),
		ProposalID: proposalID,
		Action:     domain.ActionRejected,
		ActorID:    actor.ActorID,
		ActorRole:  actor.Role,
		Reason:     reason,
		OccurredAt: time.Now(),
	}

	rejected, err := s.proposalRepo.RejectProposal(ctx, companyID, proposalID, action)
	if err != nil {
		logger.Error("Failed to reject proposal",
			slog.String("proposal_id", proposalID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Proposal rejected", slog.String("proposal_id", proposalID))
	return rejected, nil
}

// GetProposal retrieves a proposal with its audit trail.
func (s *proposalService) GetProposal(ctx context.Context, companyID, proposalID string) (*domain.PaymentProposal, error) {
	return s.proposalRepo.FindProposalByID(ctx, companyID, proposalID)
}

// ListPendingProposals lists live pending proposals. Proposals past their
// validity window are filtered out of the response and best-effort marked
// expired so they stop surfacing; expiration remains a wall-clock fact, not a
// background job.
func (s *proposalService) ListPendingProposals(ctx context.Context, companyID, agencyID string) ([]domain.PaymentProposal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	proposals, err := s.proposalRepo.ListProposalsByStatus(ctx, companyID, agencyID, domain.ProposalPending)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	live := make([]domain.PaymentProposal, 0, len(proposals))
	var expiredIDs []string
	for _, p := range proposals {
		if p.IsExpired(now) {
			expiredIDs = append(expiredIDs, p.ProposalID)
			continue
		}
		live = append(live, p)
	}

	if len(expiredIDs) > 0 {
		if err := s.proposalRepo.MarkProposalsExpired(ctx, companyID, expiredIDs, now); err != nil {
			// The filtered response is already correct; failing the read for a
			// bookkeeping write would be worse than retrying on the next list.
			logger.Warn("Failed to mark proposals expired",
				slog.Int("count", len(expiredIDs)),
				slog.String("error", err.Error()),
			)
		}
	}

	return live, nil
}
