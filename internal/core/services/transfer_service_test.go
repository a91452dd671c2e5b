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

type TransferServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockAccountSvc   *MockAccountService
	mockSettingsSvc  *MockSettingsService
	service          portssvc.TransferSvcFacade
	companyID        string
	actor            domain.Actor
	agencyCashA      domain.FinancialAccount
	agencyCashB      domain.FinancialAccount
	bankAccount      domain.FinancialAccount
	mobileWallet     domain.FinancialAccount
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.service = services.NewTransferService(suite.mockMovementRepo, suite.mockAccountSvc, suite.mockSettingsSvc)

	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleManager}

	suite.agencyCashA = domain.FinancialAccount{
		AccountID: uuid.NewString(), CompanyID: suite.companyID, AgencyID: "agency-a",
		Kind: domain.AgencyCash, CurrencyCode: "XOF", IsActive: true,
	}
	suite.agencyCashB = domain.FinancialAccount{
		AccountID: uuid.NewString(), CompanyID: suite.companyID, AgencyID: "agency-b",
		Kind: domain.AgencyCash, CurrencyCode: "XOF", IsActive: true,
	}
	suite.bankAccount = domain.FinancialAccount{
		AccountID: uuid.NewString(), CompanyID: suite.companyID,
		Kind: domain.CompanyBank, CurrencyCode: "XOF", IsActive: true,
	}
	suite.mobileWallet = domain.FinancialAccount{
		AccountID: uuid.NewString(), CompanyID: suite.companyID,
		Kind: domain.MobileMoney, CurrencyCode: "XOF", IsActive: true,
	}
}

func (suite *TransferServiceTestSuite) mockPair(a, b domain.FinancialAccount) {
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, suite.companyID, []string{a.AccountID, b.AccountID}).
		Return(map[string]domain.FinancialAccount{a.AccountID: a, b.AccountID: b}, nil).Once()
}

func (suite *TransferServiceTestSuite) TestInternalTransfer_Success() {
	ctx := context.Background()
	req := dto.InternalTransferRequest{
		FromAccountID:  suite.agencyCashA.AccountID,
		ToAccountID:    suite.bankAccount.AccountID,
		Amount:         decimal.NewFromInt(50000),
		IdempotencyKey: "tr-1",
	}
	suite.mockPair(suite.agencyCashA, suite.bankAccount)

	suite.mockMovementRepo.On("SaveMovementPair", ctx,
		mock.MatchedBy(func(m domain.FinancialMovement) bool {
			return m.ReferenceKey == "internal_transfer_tr-1_debit" &&
				m.Direction == domain.EntryDebit &&
				m.FromAccountID == suite.agencyCashA.AccountID &&
				m.ToAccountID == ""
		}),
		mock.MatchedBy(func(m domain.FinancialMovement) bool {
			return m.ReferenceKey == "internal_transfer_tr-1_credit" &&
				m.Direction == domain.EntryCredit &&
				m.ToAccountID == suite.bankAccount.AccountID &&
				m.FromAccountID == ""
		}),
	).Return(nil).Once()

	movementIDs, err := suite.service.InternalTransfer(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.Len(movementIDs, 2)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestInternalTransfer_AgencyToAgencyRejected() {
	ctx := context.Background()
	req := dto.InternalTransferRequest{
		FromAccountID:  suite.agencyCashA.AccountID,
		ToAccountID:    suite.agencyCashB.AccountID,
		Amount:         decimal.NewFromInt(10000),
		IdempotencyKey: "tr-2",
	}
	suite.mockPair(suite.agencyCashA, suite.agencyCashB)

	_, err := suite.service.InternalTransfer(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrTopologyViolation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovementPair")
}

func (suite *TransferServiceTestSuite) TestInternalTransfer_CurrencyMismatch() {
	ctx := context.Background()
	euroBank := suite.bankAccount
	euroBank.CurrencyCode = "EUR"
	req := dto.InternalTransferRequest{
		FromAccountID:  suite.agencyCashA.AccountID,
		ToAccountID:    euroBank.AccountID,
		Amount:         decimal.NewFromInt(10000),
		IdempotencyKey: "tr-3",
	}
	suite.mockPair(suite.agencyCashA, euroBank)

	_, err := suite.service.InternalTransfer(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestInternalTransfer_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.bankAccount
	inactive.IsActive = false
	req := dto.InternalTransferRequest{
		FromAccountID:  suite.agencyCashA.AccountID,
		ToAccountID:    inactive.AccountID,
		Amount:         decimal.NewFromInt(10000),
		IdempotencyKey: "tr-4",
	}
	suite.mockPair(suite.agencyCashA, inactive)

	_, err := suite.service.InternalTransfer(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransferServiceTestSuite) TestAgencyDeposit_Success() {
	ctx := context.Background()
	req := dto.AgencyDepositRequest{
		AgencyAccountID: suite.agencyCashA.AccountID,
		BankAccountID:   suite.bankAccount.AccountID,
		Amount:          decimal.NewFromInt(200000),
		AgencyID:        "agency-a",
		IdempotencyKey:  "dep-1",
	}
	suite.mockPair(suite.agencyCashA, suite.bankAccount)

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.FinancialMovement) bool {
		return m.Kind == domain.MovementDeposit &&
			m.ReferenceKey == "agency_deposit_dep-1" &&
			m.FromAccountID == suite.agencyCashA.AccountID &&
			m.ToAccountID == suite.bankAccount.AccountID
	})).Return(nil).Once()

	movementID, err := suite.service.AgencyDeposit(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.NotEmpty(movementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestAgencyDeposit_WrongDestinationKind() {
	ctx := context.Background()
	req := dto.AgencyDepositRequest{
		AgencyAccountID: suite.agencyCashA.AccountID,
		BankAccountID:   suite.mobileWallet.AccountID,
		Amount:          decimal.NewFromInt(200000),
		AgencyID:        "agency-a",
		IdempotencyKey:  "dep-2",
	}
	suite.mockPair(suite.agencyCashA, suite.mobileWallet)

	_, err := suite.service.AgencyDeposit(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrTopologyViolation)
}

func (suite *TransferServiceTestSuite) TestBankWithdrawal_ApprovalRequired() {
	ctx := context.Background()
	req := dto.BankWithdrawalRequest{
		BankAccountID:   suite.bankAccount.AccountID,
		AgencyAccountID: suite.agencyCashA.AccountID,
		Amount:          decimal.NewFromInt(2_000_000),
		AgencyID:        "agency-a",
		IdempotencyKey:  "wd-1",
	}
	suite.mockPair(suite.bankAccount, suite.agencyCashA)

	settings := domain.DefaultFinancialSettings(suite.companyID)
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&settings, nil).Once()

	_, err := suite.service.BankWithdrawal(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrApprovalRequired)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *TransferServiceTestSuite) TestBankWithdrawal_ExecutiveAllowed() {
	ctx := context.Background()
	executive := domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleCEO}
	req := dto.BankWithdrawalRequest{
		BankAccountID:   suite.bankAccount.AccountID,
		AgencyAccountID: suite.agencyCashA.AccountID,
		Amount:          decimal.NewFromInt(2_000_000),
		AgencyID:        "agency-a",
		IdempotencyKey:  "wd-2",
	}
	suite.mockPair(suite.bankAccount, suite.agencyCashA)

	settings := domain.DefaultFinancialSettings(suite.companyID)
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&settings, nil).Once()

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.FinancialMovement) bool {
		return m.Kind == domain.MovementWithdrawal && m.ReferenceKey == "bank_withdrawal_wd-2"
	})).Return(nil).Once()

	movementID, err := suite.service.BankWithdrawal(ctx, suite.companyID, req, executive)

	suite.NoError(err)
	suite.NotEmpty(movementID)
}

func (suite *TransferServiceTestSuite) TestBankWithdrawal_SmallAmountNoApproval() {
	ctx := context.Background()
	req := dto.BankWithdrawalRequest{
		BankAccountID:   suite.bankAccount.AccountID,
		AgencyAccountID: suite.agencyCashA.AccountID,
		Amount:          decimal.NewFromInt(50_000),
		AgencyID:        "agency-a",
		IdempotencyKey:  "wd-3",
	}
	suite.mockPair(suite.bankAccount, suite.agencyCashA)

	settings := domain.DefaultFinancialSettings(suite.companyID)
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&settings, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.Anything).Return(nil).Once()

	movementID, err := suite.service.BankWithdrawal(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.NotEmpty(movementID)
}

func (suite *TransferServiceTestSuite) TestMobileExpense_DebitOnly() {
	ctx := context.Background()
	req := dto.MobileExpenseRequest{
		MobileAccountID: suite.mobileWallet.AccountID,
		ExpenseID:       "exp-9",
		Amount:          decimal.NewFromInt(30000),
		IdempotencyKey:  "mx-1",
	}
	suite.mockAccountSvc.On("GetAccount", ctx, suite.companyID, suite.mobileWallet.AccountID).
		Return(&suite.mobileWallet, nil).Once()

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.FinancialMovement) bool {
		return m.Kind == domain.MovementExpensePayment &&
			m.ReferenceKey == "mobile_expense_exp-9_mx-1" &&
			m.ToAccountID == "" &&
			m.Direction == domain.EntryDebit
	})).Return(nil).Once()

	movementID, err := suite.service.MobileExpense(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.NotEmpty(movementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *TransferServiceTestSuite) TestMobileExpense_WrongSourceKind() {
	ctx := context.Background()
	req := dto.MobileExpenseRequest{
		MobileAccountID: suite.bankAccount.AccountID,
		ExpenseID:       "exp-9",
		Amount:          decimal.NewFromInt(30000),
		IdempotencyKey:  "mx-2",
	}
	suite.mockAccountSvc.On("GetAccount", ctx, suite.companyID, suite.bankAccount.AccountID).
		Return(&suite.bankAccount, nil).Once()

	_, err := suite.service.MobileExpense(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrTopologyViolation)
}

func TestTransferService(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}
