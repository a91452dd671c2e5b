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

// transferService provides the composite money-movement operations. Topology
// and currency rules are checked up front; the balance check is always redone
// under the row lock inside the recording transaction.
type transferService struct {
	accountSvc   portssvc.AccountSvcFacade
	movementRepo portsrepo.MovementRepositoryWithTx
	settingsSvc  portssvc.SettingsSvcFacade
}

// NewTransferService creates a new TransferService.
func NewTransferService(movementRepo portsrepo.MovementRepositoryWithTx, accountSvc portssvc.AccountSvcFacade, settingsSvc portssvc.SettingsSvcFacade) portssvc.TransferSvcFacade {
	return &transferService{
		accountSvc:   accountSvc,
		movementRepo: movementRepo,
		settingsSvc:  settingsSvc,
	}
}

// Ensure transferService implements the portssvc.TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// loadAccountPair fetches and validates two accounts: both must exist, be
// active, and share a currency.
func (s *transferService) loadAccountPair(ctx context.Context, companyID, fromID, toID string) (domain.FinancialAccount, domain.FinancialAccount, error) {
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, companyID, []string{fromID, toID})
	if err != nil {
		return domain.FinancialAccount{}, domain.FinancialAccount{}, err
	}

	from, ok := accounts[fromID]
	if !ok {
		return domain.FinancialAccount{}, domain.FinancialAccount{}, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, fromID)
	}
	to, ok := accounts[toID]
	if !ok {
		return domain.FinancialAccount{}, domain.FinancialAccount{}, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, toID)
	}
	if !from.IsActive {
		return domain.FinancialAccount{}, domain.FinancialAccount{}, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, fromID)
	}
	if !to.IsActive {
		return domain.FinancialAccount{}, domain.FinancialAccount{}, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, toID)
	}
	if from.CurrencyCode != to.CurrencyCode {
		return domain.FinancialAccount{}, domain.FinancialAccount{}, fmt.Errorf("%w: currency mismatch %s vs %s",
			apperrors.ErrValidation, from.CurrencyCode, to.CurrencyCode)
	}
	return from, to, nil
}

func validateTransferAmount(amount decimal.Decimal) error {
	if amount.IsZero() || amount.IsNegative() {
		return fmt.Errorf("%w: transfer amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	return nil
}

// InternalTransfer moves money between two company accounts as an atomic
// debit/credit movement pair. A direct cash transfer between two different
// agencies is rejected; such money must route through a company account.
func (s *transferService) InternalTransfer(ctx context.Context, companyID string, req dto.InternalTransferRequest, actor domain.Actor) ([]string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateTransferAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: cannot transfer an account to itself", apperrors.ErrValidation)
	}

	from, to, err := s.loadAccountPair(ctx, companyID, req.FromAccountID, req.ToAccountID)
	if err != nil {
		return nil, err
	}

	if from.Kind == domain.AgencyCash && to.Kind == domain.AgencyCash && from.AgencyID != to.AgencyID {
		return nil, fmt.Errorf("%w: direct cash transfer between agencies %s and %s",
			apperrors.ErrTopologyViolation, from.AgencyID, to.AgencyID)
	}

	now := time.Now()
	base := domain.FinancialMovement{
		CompanyID:      companyID,
		Amount:         req.Amount,
		CurrencyCode:   from.CurrencyCode,
		Kind:           domain.MovementInternalTransfer,
		ReferenceType:  domain.RefInternalTransfer,
		AgencyID:       req.AgencyID,
		ActorID:        actor.ActorID,
		ActorRole:      actor.Role,
		Reconciliation: domain.ReconciliationPending,
		Note:           req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	debit := base
	debit.MovementID = uuid.NewString()
	debit.FromAccountID = req.FromAccountID
	debit.ReferenceID = req.IdempotencyKey + "_debit"
	debit.ReferenceKey = domain.MovementReferenceKey(debit.ReferenceType, debit.ReferenceID)
	debit.Direction = domain.EntryDebit

	credit := base
	credit.MovementID = uuid.NewString()
	credit.ToAccountID = req.ToAccountID
	credit.ReferenceID = req.IdempotencyKey + "_credit"
	credit.ReferenceKey = domain.MovementReferenceKey(credit.ReferenceType, credit.ReferenceID)
	credit.Direction = domain.EntryCredit

	if err := s.movementRepo.SaveMovementPair(ctx, debit, credit); err != nil {
		logger.Error("Internal transfer failed",
			slog.String("from", req.FromAccountID),
			slog.String("to", req.ToAccountID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Internal transfer recorded",
		slog.String("debit_movement_id", debit.MovementID),
		slog.String("credit_movement_id", credit.MovementID),
	)
	return []string{debit.MovementID, credit.MovementID}, nil
}

// AgencyDeposit moves agency cash into the company bank account.
func (s *transferService) AgencyDeposit(ctx context.Context, companyID string, req dto.AgencyDepositRequest, actor domain.Actor) (string, error) {
	if err := validateTransferAmount(req.Amount); err != nil {
		return "", err
	}

	from, to, err := s.loadAccountPair(ctx, companyID, req.AgencyAccountID, req.BankAccountID)
	if err != nil {
		return "", err
	}
	if from.Kind != domain.AgencyCash {
		return "", fmt.Errorf("%w: deposit source %s is %s, not agency cash", apperrors.ErrTopologyViolation, from.AccountID, from.Kind)
	}
	if to.Kind != domain.CompanyBank {
		return "", fmt.Errorf("%w: deposit destination %s is %s, not the company bank", apperrors.ErrTopologyViolation, to.AccountID, to.Kind)
	}

	return s.recordSingle(ctx, companyID, req.AgencyAccountID, req.BankAccountID,
		req.Amount, from.CurrencyCode, domain.MovementDeposit, domain.RefAgencyDeposit,
		req.IdempotencyKey, req.AgencyID, req.Note, actor)
}

// BankWithdrawal moves money from the company bank to an agency cash drawer.
// Amounts above the payment approval threshold require an executive actor
// when the company has bank-transfer approvals enabled.
func (s *transferService) BankWithdrawal(ctx context.Context, companyID string, req dto.BankWithdrawalRequest, actor domain.Actor) (string, error) {
	if err := validateTransferAmount(req.Amount); err != nil {
		return "", err
	}

	from, to, err := s.loadAccountPair(ctx, companyID, req.BankAccountID, req.AgencyAccountID)
	if err != nil {
		return "", err
	}
	if from.Kind != domain.CompanyBank {
		return "", fmt.Errorf("%w: withdrawal source %s is %s, not the company bank", apperrors.ErrTopologyViolation, from.AccountID, from.Kind)
	}
	if to.Kind != domain.AgencyCash {
		return "", fmt.Errorf("%w: withdrawal destination %s is %s, not agency cash", apperrors.ErrTopologyViolation, to.AccountID, to.Kind)
	}

	settings, err := s.settingsSvc.GetSettings(ctx, companyID)
	if err != nil {
		return "", err
	}
	if settings.BankTransfersRequireApproval &&
		req.Amount.GreaterThan(settings.PaymentApprovalThreshold) &&
		!actor.Role.IsExecutive() {
		return "", fmt.Errorf("%w: bank withdrawal of %s exceeds threshold %s",
			apperrors.ErrApprovalRequired, req.Amount.String(), settings.PaymentApprovalThreshold.String())
	}

	return s.recordSingle(ctx, companyID, req.BankAccountID, req.AgencyAccountID,
		req.Amount, from.CurrencyCode, domain.MovementWithdrawal, domain.RefBankWithdrawal,
		req.IdempotencyKey, req.AgencyID, req.Note, actor)
}

// MobileToBank settles the mobile-money wallet into the bank account.
func (s *transferService) MobileToBank(ctx context.Context, companyID string, req dto.MobileToBankRequest, actor domain.Actor) (string, error) {
	if err := validateTransferAmount(req.Amount); err != nil {
		return "", err
	}

	from, to, err := s.loadAccountPair(ctx, companyID, req.MobileAccountID, req.BankAccountID)
	if err != nil {
		return "", err
	}
	if from.Kind != domain.MobileMoney {
		return "", fmt.Errorf("%w: settlement source %s is %s, not a mobile wallet", apperrors.ErrTopologyViolation, from.AccountID, from.Kind)
	}
	if to.Kind != domain.CompanyBank {
		return "", fmt.Errorf("%w: settlement destination %s is %s, not the company bank", apperrors.ErrTopologyViolation, to.AccountID, to.Kind)
	}

	return s.recordSingle(ctx, companyID, req.MobileAccountID, req.BankAccountID,
		req.Amount, from.CurrencyCode, domain.MovementInternalTransfer, domain.RefMobileToBank,
		req.IdempotencyKey, "", req.Note, actor)
}

// MobileExpense pays an expense directly from the mobile-money wallet as a
// debit-only movement; no destination account is credited.
func (s *transferService) MobileExpense(ctx context.Context, companyID string, req dto.MobileExpenseRequest, actor domain.Actor) (string, error) {
	if err := validateTransferAmount(req.Amount); err != nil {
		return "", err
	}

	account, err := s.accountSvc.GetAccount(ctx, companyID, req.MobileAccountID)
	if err != nil {
		return "", err
	}
	if !account.IsActive {
		return "", fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, req.MobileAccountID)
	}
	if account.Kind != domain.MobileMoney {
		return "", fmt.Errorf("%w: expense source %s is %s, not a mobile wallet", apperrors.ErrTopologyViolation, account.AccountID, account.Kind)
	}

	return s.recordSingle(ctx, companyID, req.MobileAccountID, "",
		req.Amount, account.CurrencyCode, domain.MovementExpensePayment, domain.RefMobileExpense,
		req.ExpenseID+"_"+req.IdempotencyKey, req.AgencyID, req.Note, actor)
}

// recordSingle builds and records one movement for the fixed-route transfer
// operations.
func (s *transferService) recordSingle(ctx context.Context, companyID, fromID, toID string, amount decimal.Decimal, currency string, kind domain.MovementKind, refType domain.ReferenceType, refID, agencyID, note string, actor domain.Actor) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	movement := domain.FinancialMovement{
		MovementID:     uuid.NewString(),
		CompanyID:      companyID,
		FromAccountID:  fromID,
		ToAccountID:    toID,
		Amount:         amount,
		CurrencyCode:   currency,
		Kind:           kind,
		ReferenceType:  refType,
		ReferenceID:    refID,
		ReferenceKey:   domain.MovementReferenceKey(refType, refID),
		AgencyID:       agencyID,
		ActorID:        actor.ActorID,
		ActorRole:      actor.Role,
		Direction:      domain.DeriveDirection(toID),
		Reconciliation: domain.ReconciliationPending,
		Note:           note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		logger.Error("Transfer movement failed",
			slog.String("reference_key", movement.ReferenceKey),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	logger.Info("Transfer movement recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("kind", string(kind)),
	)
	return movement.MovementID, nil
}
