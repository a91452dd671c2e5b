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

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	companyID       string
	actor           domain.Actor
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleManager}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_StartsZeroAndActive() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AgencyID:     "agency-a",
		Name:         "Caisse Agence Bamako",
		Kind:         domain.AgencyCash,
		CurrencyCode: "XOF",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.FinancialAccount) bool {
		return a.CompanyID == suite.companyID &&
			a.Balance.Equal(decimal.Zero) &&
			a.IsActive &&
			a.Kind == domain.AgencyCash &&
			a.CreatedBy == suite.actor.ActorID
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.True(account.Balance.IsZero())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicatePassthrough() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Banque Principale",
		Kind:         domain.CompanyBank,
		CurrencyCode: "XOF",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestGetAccount_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, accountID).
		Return(nil, apperrors.ErrAccountNotFound).Once()

	_, err := suite.service.GetAccount(ctx, suite.companyID, accountID)

	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_AgencyFilter() {
	ctx := context.Background()
	accounts := []domain.FinancialAccount{
		{AccountID: uuid.NewString(), AgencyID: "agency-a", Kind: domain.AgencyCash},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, suite.companyID, "agency-a").Return(accounts, nil).Once()

	result, err := suite.service.ListAccounts(ctx, suite.companyID, "agency-a")

	suite.NoError(err)
	suite.Len(result, 1)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeactivateAccount", ctx, suite.companyID, accountID, suite.actor.ActorID, mock.Anything).
		Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.companyID, accountID, suite.actor)

	suite.NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
