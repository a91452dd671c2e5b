package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockSettingsSvc *MockSettingsService
	mockAccountSvc  *MockAccountService
	service         portssvc.ExpenseSvcFacade
	companyID       string
	manager         domain.Actor
	executive       domain.Actor
	settings        domain.FinancialSettings
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockSettingsSvc, suite.mockAccountSvc)

	suite.companyID = uuid.NewString()
	suite.manager = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleManager}
	suite.executive = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleAdmin}
	suite.settings = domain.DefaultFinancialSettings(suite.companyID)
}

func (suite *ExpenseServiceTestSuite) pendingExpense(category domain.ExpenseCategory, amount int64) *domain.Expense {
	return &domain.Expense{
		ExpenseID:    uuid.NewString(),
		CompanyID:    suite.companyID,
		AgencyID:     "agency-a",
		Category:     category,
		Description:  "test expense",
		Amount:       decimal.NewFromInt(amount),
		CurrencyCode: "XOF",
		AccountID:    uuid.NewString(),
		Status:       domain.ExpensePending,
	}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		AgencyID:     "agency-a",
		Category:     domain.ExpenseSupplies,
		Description:  "office supplies",
		Amount:       decimal.NewFromInt(25_000),
		CurrencyCode: "XOF",
		AccountID:    uuid.NewString(),
	}

	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Status == domain.ExpensePending && e.PaidAt == nil
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.companyID, req, suite.manager)

	suite.NoError(err)
	suite.Equal(domain.ExpensePending, expense.Status)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		AgencyID:     "agency-a",
		Category:     domain.ExpenseFuel,
		Amount:       decimal.NewFromInt(-10),
		CurrencyCode: "XOF",
		AccountID:    uuid.NewString(),
	}

	_, err := suite.service.CreateExpense(ctx, suite.companyID, req, suite.manager)

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *ExpenseServiceTestSuite) TestApproveExpense_Success() {
	ctx := context.Background()
	expense := suite.pendingExpense(domain.ExpenseSupplies, 50_000)

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.companyID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpenseStatus", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Status == domain.ExpenseApproved && e.ApprovedBy == suite.manager.ActorID
	})).Return(nil).Once()

	approved, err := suite.service.ApproveExpense(ctx, suite.companyID, expense.ExpenseID, suite.manager)

	suite.NoError(err)
	suite.Equal(domain.ExpenseApproved, approved.Status)
}

func (suite *ExpenseServiceTestSuite) TestApproveExpense_LargeMaintenanceNeedsExecutive() {
	ctx := context.Background()
	expense := suite.pendingExpense(domain.ExpenseMaintenance, 500_000)

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.companyID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()

	_, err := suite.service.ApproveExpense(ctx, suite.companyID, expense.ExpenseID, suite.manager)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpenseStatus")
}

func (suite *ExpenseServiceTestSuite) TestApproveExpense_LargeMaintenanceByExecutive() {
	ctx := context.Background()
	expense := suite.pendingExpense(domain.ExpenseMaintenance, 500_000)

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.companyID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()
	suite.mockExpenseRepo.On("UpdateExpenseStatus", ctx, mock.Anything).Return(nil).Once()

	approved, err := suite.service.ApproveExpense(ctx, suite.companyID, expense.ExpenseID, suite.executive)

	suite.NoError(err)
	suite.Equal(domain.ExpenseApproved, approved.Status)
}

func (suite *ExpenseServiceTestSuite) TestApproveExpense_AlreadyApproved() {
	ctx := context.Background()
	expense := suite.pendingExpense(domain.ExpenseSupplies, 10_000)
	expense.Status = domain.ExpenseApproved

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.companyID, expense.ExpenseID).Return(expense, nil).Once()

	_, err := suite.service.ApproveExpense(ctx, suite.companyID, expense.ExpenseID, suite.manager)

	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
}

func (suite *ExpenseServiceTestSuite) TestPayExpense_Success() {
	ctx := context.Background()
	expense := suite.pendingExpense(domain.ExpenseFuel, 80_000)
	expense.Status = domain.ExpenseApproved
	req := dto.PayExpenseRequest{IdempotencyKey: "pay-1"}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.companyID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockAccountSvc.On("GetAccount", ctx, suite.companyID, expense.AccountID).
		Return(&domain.FinancialAccount{AccountID: expense.AccountID, CurrencyCode: "XOF", IsActive: true}, nil).Once()

	paid := *expense
	paid.Status = domain.ExpensePaid
	suite.mockExpenseRepo.On("PayExpense", ctx, expense.ExpenseID,
		mock.MatchedBy(func(m domain.FinancialMovement) bool {
			return m.Kind == domain.MovementExpensePayment &&
				m.ReferenceKey == "expense_"+expense.ExpenseID+"_pay-1" &&
				m.FromAccountID == expense.AccountID &&
				m.Amount.Equal(expense.Amount)
		}),
		mock.MatchedBy(func(a domain.FinancialAccount) bool {
			return a.Kind == domain.ExpenseReserve && a.IsCompanyLevel()
		}),
	).Return(&paid, nil).Once()

	result, err := suite.service.PayExpense(ctx, suite.companyID, expense.ExpenseID, req, suite.manager)

	suite.NoError(err)
	suite.Equal(domain.ExpensePaid, result.Status)
}

func (suite *ExpenseServiceTestSuite) TestPayExpense_NotApproved() {
	ctx := context.Background()
	expense := suite.pendingExpense(domain.ExpenseFuel, 80_000)
	req := dto.PayExpenseRequest{IdempotencyKey: "pay-2"}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.companyID, expense.ExpenseID).Return(expense, nil).Once()

	_, err := suite.service.PayExpense(ctx, suite.companyID, expense.ExpenseID, req, suite.manager)

	suite.ErrorIs(err, apperrors.ErrInvalidStateTransition)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "PayExpense")
}

func (suite *ExpenseServiceTestSuite) TestPayExpense_AccountCurrencyMismatch() {
	ctx := context.Background()
	expense := suite.pendingExpense(domain.ExpenseFuel, 80_000)
	expense.Status = domain.ExpenseApproved
	req := dto.PayExpenseRequest{IdempotencyKey: "pay-3"}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, suite.companyID, expense.ExpenseID).Return(expense, nil).Once()
	suite.mockAccountSvc.On("GetAccount", ctx, suite.companyID, expense.AccountID).
		Return(&domain.FinancialAccount{AccountID: expense.AccountID, CurrencyCode: "EUR", IsActive: true}, nil).Once()

	_, err := suite.service.PayExpense(ctx, suite.companyID, expense.ExpenseID, req, suite.manager)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "PayExpense")
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
