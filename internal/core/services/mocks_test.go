package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.FinancialAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.FinancialAccount, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, agencyID string) ([]domain.FinancialAccount, error) {
	args := m.Called(ctx, companyID, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountRepository) EnsureAccountInTx(ctx context.Context, tx pgx.Tx, candidate domain.FinancialAccount) (string, error) {
	args := m.Called(ctx, tx, candidate)
	return args.String(0), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, companyID, accountID, actorID string, now time.Time) error {
	args := m.Called(ctx, companyID, accountID, actorID, now)
	return args.Error(0)
}

// --- Mock MovementRepository ---

type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryWithTx = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) RecordMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.FinancialMovement) error {
	args := m.Called(ctx, tx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.FinancialMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveMovementPair(ctx context.Context, first, second domain.FinancialMovement) error {
	args := m.Called(ctx, first, second)
	return args.Error(0)
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, companyID, movementID string) (*domain.FinancialMovement, error) {
	args := m.Called(ctx, companyID, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialMovement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error) {
	args := m.Called(ctx, companyID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.FinancialMovement), returnedNextToken, args.Error(2)
}

func (m *MockMovementRepository) UpdateReconciliationStatus(ctx context.Context, companyID, movementID string, status domain.ReconciliationStatus, actorID string, now time.Time) error {
	args := m.Called(ctx, companyID, movementID, status, actorID, now)
	return args.Error(0)
}

func (m *MockMovementRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockMovementRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMovementRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock PayableRepository ---

type MockPayableRepository struct {
	mock.Mock
}

var _ portsrepo.PayableRepositoryFacade = (*MockPayableRepository)(nil)

func (m *MockPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockPayableRepository) FindPayableByID(ctx context.Context, companyID, payableID string) (*domain.Payable, error) {
	args := m.Called(ctx, companyID, payableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}

func (m *MockPayableRepository) ListPayablesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Payable, error) {
	args := m.Called(ctx, companyID, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payable), args.Error(1)
}

func (m *MockPayableRepository) UpdateApprovalStatus(ctx context.Context, payable domain.Payable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockPayableRepository) ApplyPayment(ctx context.Context, payableID string, movement domain.FinancialMovement) (*domain.Payable, error) {
	args := m.Called(ctx, payableID, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payable), args.Error(1)
}

// --- Mock ProposalRepository ---

type MockProposalRepository struct {
	mock.Mock
}

var _ portsrepo.ProposalRepositoryFacade = (*MockProposalRepository)(nil)

func (m *MockProposalRepository) FindProposalByID(ctx context.Context, companyID, proposalID string) (*domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalRepository) ListProposalsByStatus(ctx context.Context, companyID, agencyID string, status domain.ProposalStatus) ([]domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, agencyID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalRepository) SumProposalAmountsByPayable(ctx context.Context, companyID, payableID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, payableID, statuses, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProposalRepository) SumProposalAmountsByAgency(ctx context.Context, companyID, agencyID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, agencyID, statuses, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProposalRepository) SumProposalAmountsByProposer(ctx context.Context, companyID, proposerID string, statuses []domain.ProposalStatus, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, companyID, proposerID, statuses, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProposalRepository) SaveProposal(ctx context.Context, proposal domain.PaymentProposal, seed domain.ProposalAction) error {
	args := m.Called(ctx, proposal, seed)
	return args.Error(0)
}

func (m *MockProposalRepository) ApproveProposal(ctx context.Context, companyID, proposalID string, movement domain.FinancialMovement, action domain.ProposalAction) (*domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, proposalID, movement, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalRepository) RejectProposal(ctx context.Context, companyID, proposalID string, action domain.ProposalAction) (*domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, proposalID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalRepository) MarkProposalsExpired(ctx context.Context, companyID string, proposalIDs []string, now time.Time) error {
	args := m.Called(ctx, companyID, proposalIDs, now)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, companyID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, companyID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByAgency(ctx context.Context, companyID, agencyID string) ([]domain.Expense, error) {
	args := m.Called(ctx, companyID, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpenseStatus(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) PayExpense(ctx context.Context, expenseID string, movement domain.FinancialMovement, reserveCandidate domain.FinancialAccount) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID, movement, reserveCandidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) FindSettings(ctx context.Context, companyID string) (*domain.FinancialSettings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertSettings(ctx context.Context, settings domain.FinancialSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock IntegrityRepository ---

type MockIntegrityRepository struct {
	mock.Mock
}

var _ portsrepo.IntegrityRepositoryFacade = (*MockIntegrityRepository)(nil)

func (m *MockIntegrityRepository) SummarizeAccountLedgers(ctx context.Context, companyID string) ([]portsrepo.AccountLedgerSummary, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portsrepo.AccountLedgerSummary), args.Error(1)
}

// --- Mock SettingsService ---

type MockSettingsService struct {
	mock.Mock
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

func (m *MockSettingsService) GetSettings(ctx context.Context, companyID string) (*domain.FinancialSettings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSettings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, companyID string, req dto.UpdateSettingsRequest, actor domain.Actor) (*domain.FinancialSettings, error) {
	args := m.Called(ctx, companyID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSettings), args.Error(1)
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, companyID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, companyID, accountID string) (*domain.FinancialAccount, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.FinancialAccount, error) {
	args := m.Called(ctx, companyID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID, agencyID string) ([]domain.FinancialAccount, error) {
	args := m.Called(ctx, companyID, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialAccount), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, companyID, accountID string, actor domain.Actor) error {
	args := m.Called(ctx, companyID, accountID, actor)
	return args.Error(0)
}

// --- Mock ProposalService ---

type MockProposalService struct {
	mock.Mock
}

var _ portssvc.ProposalSvcFacade = (*MockProposalService)(nil)

func (m *MockProposalService) RequiresApproval(ctx context.Context, companyID string, payable domain.Payable, amount decimal.Decimal, actor domain.Actor) (bool, error) {
	args := m.Called(ctx, companyID, payable, amount, actor)
	return args.Bool(0), args.Error(1)
}

func (m *MockProposalService) CreateProposal(ctx context.Context, companyID string, payable domain.Payable, accountID string, amount decimal.Decimal, note string, actor domain.Actor) (*domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, payable, accountID, amount, note, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalService) ApproveProposal(ctx context.Context, companyID, proposalID string, actor domain.Actor) (*domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, proposalID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalService) RejectProposal(ctx context.Context, companyID, proposalID, reason string, actor domain.Actor) (*domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, proposalID, reason, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalService) GetProposal(ctx context.Context, companyID, proposalID string) (*domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentProposal), args.Error(1)
}

func (m *MockProposalService) ListPendingProposals(ctx context.Context, companyID, agencyID string) ([]domain.PaymentProposal, error) {
	args := m.Called(ctx, companyID, agencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentProposal), args.Error(1)
}
