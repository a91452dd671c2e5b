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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	service          portssvc.LedgerSvcFacade
	companyID        string
	actor            domain.Actor
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.service = services.NewLedgerService(suite.mockMovementRepo)
	suite.companyID = uuid.NewString()
	suite.actor = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleCashier}
}

func (suite *LedgerServiceTestSuite) validRequest() dto.RecordMovementRequest {
	return dto.RecordMovementRequest{
		ToAccountID:   uuid.NewString(),
		Amount:        decimal.NewFromInt(15000),
		CurrencyCode:  "XOF",
		Kind:          domain.MovementRevenue,
		ReferenceType: domain.RefShift,
		ReferenceID:   "shift-42",
		AgencyID:      "agency-1",
	}
}

func (suite *LedgerServiceTestSuite) TestRecordMovement_Success() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.FinancialMovement) bool {
		return m.CompanyID == suite.companyID &&
			m.ReferenceKey == "shift_shift-42" &&
			m.Direction == domain.EntryCredit &&
			m.Reconciliation == domain.ReconciliationPending &&
			m.ActorID == suite.actor.ActorID
	})).Return(nil).Once()

	movementID, err := suite.service.RecordMovement(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.NotEmpty(movementID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordMovement_ZeroAmountIsNoOp() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Amount = decimal.Zero

	movementID, err := suite.service.RecordMovement(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.Empty(movementID)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *LedgerServiceTestSuite) TestRecordMovement_NegativeAmount() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Amount = decimal.NewFromInt(-500)

	_, err := suite.service.RecordMovement(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *LedgerServiceTestSuite) TestRecordMovement_NoAccounts() {
	ctx := context.Background()
	req := suite.validRequest()
	req.FromAccountID = ""
	req.ToAccountID = ""

	_, err := suite.service.RecordMovement(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestRecordMovement_DebitDirection() {
	ctx := context.Background()
	req := suite.validRequest()
	req.FromAccountID = uuid.NewString()
	req.ToAccountID = ""
	req.Kind = domain.MovementExpensePayment
	req.ReferenceType = domain.RefExpense

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.FinancialMovement) bool {
		return m.Direction == domain.EntryDebit && m.ToAccountID == ""
	})).Return(nil).Once()

	_, err := suite.service.RecordMovement(ctx, suite.companyID, req, suite.actor)

	suite.NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordMovement_DuplicatePassthrough() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockMovementRepo.On("SaveMovement", ctx, mock.Anything).Return(apperrors.ErrDuplicateMovement).Once()

	_, err := suite.service.RecordMovement(ctx, suite.companyID, req, suite.actor)

	suite.ErrorIs(err, apperrors.ErrDuplicateMovement)
}

func (suite *LedgerServiceTestSuite) TestUpdateReconciliationStatus() {
	ctx := context.Background()
	movementID := uuid.NewString()

	suite.mockMovementRepo.On("UpdateReconciliationStatus", ctx, suite.companyID, movementID,
		domain.ReconciliationReconciled, suite.actor.ActorID, mock.Anything).Return(nil).Once()

	err := suite.service.UpdateReconciliationStatus(ctx, suite.companyID, movementID, domain.ReconciliationReconciled, suite.actor)

	suite.NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
