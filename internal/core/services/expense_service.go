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

// expenseService drives the linear expense lifecycle. Only the paid
// transition touches the ledger.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	settingsSvc portssvc.SettingsSvcFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, settingsSvc portssvc.SettingsSvcFacade, accountSvc portssvc.AccountSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		settingsSvc: settingsSvc,
		accountSvc:  accountSvc,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense registers a new pending expense. Fuel expenses above the
// configured anomaly limit are accepted but flagged in the logs for review.
func (s *expenseService) CreateExpense(ctx context.Context, companyID string, req dto.CreateExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsZero() || req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}

	settings, err := s.settingsSvc.GetSettings(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if req.Category == domain.ExpenseFuel && req.Amount.GreaterThan(settings.FuelAnomalyLimit) {
		logger.Warn("Fuel expense exceeds anomaly limit",
			slog.String("agency_id", req.AgencyID),
			slog.String("amount", req.Amount.String()),
			slog.String("limit", settings.FuelAnomalyLimit.String()),
		)
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		CompanyID:    companyID,
		AgencyID:     req.AgencyID,
		Category:     req.Category,
		Description:  req.Description,
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		AccountID:    req.AccountID,
		Status:       domain.ExpensePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", string(expense.Category)),
	)
	return &expense, nil
}

// ApproveExpense transitions pending to approved. Maintenance expenses above
// the configured threshold may only be approved by executive roles.
func (s *expenseService) ApproveExpense(ctx context.Context, companyID, expenseID string, actor domain.Actor) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpensePending {
		return nil, fmt.Errorf("%w: expense %s is %s, only pending expenses can be approved",
			apperrors.ErrInvalidStateTransition, expenseID, expense.Status)
	}

	if expense.Category == domain.ExpenseMaintenance {
		settings, err := s.settingsSvc.GetSettings(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if expense.Amount.GreaterThan(settings.MaintenanceApprovalThreshold) && !actor.Role.IsExecutive() {
			return nil, fmt.Errorf("%w: maintenance expense of %s requires an executive approver",
				apperrors.ErrForbidden, expense.Amount.String())
		}
	}

	now := time.Now()
	expense.Status = domain.ExpenseApproved
	expense.ApprovedBy = actor.ActorID
	expense.LastUpdatedAt = now
	expense.LastUpdatedBy = actor.ActorID

	if err := s.expenseRepo.UpdateExpenseStatus(ctx, *expense); err != nil {
		logger.Error("Failed to approve expense",
			slog.String("expense_id", expenseID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Expense approved", slog.String("expense_id", expenseID))
	return expense, nil
}

// PayExpense transitions approved to paid, moving the money from the
// expense's source account into the company expense reserve in the same
// transaction that stamps the status.
func (s *expenseService) PayExpense(ctx context.Context, companyID, expenseID string, req dto.PayExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, companyID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != domain.ExpenseApproved {
		return nil, fmt.Errorf("%w: expense %s is %s, only approved expenses can be paid",
			apperrors.ErrInvalidStateTransition, expenseID, expense.Status)
	}
	if err := requireAccountCurrency(ctx, s.accountSvc, companyID, expense.AccountID, expense.CurrencyCode); err != nil {
		return nil, err
	}

	now := time.Now()
	refID := expenseID + "_" + req.IdempotencyKey
	movement := domain.FinancialMovement{
		MovementID:    uuid.NewString(),
		CompanyID:     companyID,
		FromAccountID: expense.AccountID,
		// ToAccountID is filled with the expense reserve inside the paying
		// transaction, after the reserve is provisioned if needed.
		Amount:         expense.Amount,
		CurrencyCode:   expense.CurrencyCode,
		Kind:           domain.MovementExpensePayment,
		ReferenceType:  domain.RefExpense,
		ReferenceID:    refID,
		ReferenceKey:   domain.MovementReferenceKey(domain.RefExpense, refID),
		AgencyID:       expense.AgencyID,
		ActorID:        actor.ActorID,
		ActorRole:      actor.Role,
		Direction:      domain.EntryCredit,
		Reconciliation: domain.ReconciliationPending,
		Note:           req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	reserveCandidate := domain.FinancialAccount{
		AccountID:    uuid.NewString(),
		CompanyID:    companyID,
		Name:         "Expense Reserve",
		Kind:         domain.ExpenseReserve,
		CurrencyCode: expense.CurrencyCode,
		Balance:      decimal.Zero,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	paid, err := s.expenseRepo.PayExpense(ctx, expenseID, movement, reserveCandidate)
	if err != nil {
		logger.Error("Failed to pay expense",
			slog.String("expense_id", expenseID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Expense paid",
		slog.String("expense_id", expenseID),
		slog.String("movement_id", movement.MovementID),
	)
	return paid, nil
}

// GetExpense retrieves an expense by ID.
func (s *expenseService) GetExpense(ctx context.Context, companyID, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, companyID, expenseID)
}

// ListExpensesByAgency retrieves an agency's expenses, newest first.
func (s *expenseService) ListExpensesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Expense, error) {
	return s.expenseRepo.ListExpensesByAgency(ctx, companyID, agencyID)
}
