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

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.SettingsSvcFacade
	companyID        string
	executive        domain.Actor
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockSettingsRepo)
	suite.companyID = uuid.NewString()
	suite.executive = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleCEO}
}

func (suite *SettingsServiceTestSuite) TestGetSettings_Stored() {
	ctx := context.Background()
	stored := domain.FinancialSettings{
		CompanyID:                suite.companyID,
		PaymentApprovalThreshold: decimal.NewFromInt(2_500_000),
	}

	suite.mockSettingsRepo.On("FindSettings", ctx, suite.companyID).Return(&stored, nil).Once()

	settings, err := suite.service.GetSettings(ctx, suite.companyID)

	suite.NoError(err)
	suite.True(settings.PaymentApprovalThreshold.Equal(decimal.NewFromInt(2_500_000)))
}

func (suite *SettingsServiceTestSuite) TestGetSettings_DefaultsWhenMissing() {
	ctx := context.Background()

	suite.mockSettingsRepo.On("FindSettings", ctx, suite.companyID).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx, suite.companyID)

	suite.NoError(err)
	defaults := domain.DefaultFinancialSettings(suite.companyID)
	suite.True(settings.PaymentApprovalThreshold.Equal(defaults.PaymentApprovalThreshold))
	suite.True(settings.BankTransfersRequireApproval)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_NonExecutiveForbidden() {
	ctx := context.Background()
	cashier := domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleCashier}

	_, err := suite.service.UpdateSettings(ctx, suite.companyID, dto.UpdateSettingsRequest{}, cashier)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpsertSettings")
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_NegativeThreshold() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		PaymentApprovalThreshold: decimal.NewFromInt(-1),
	}

	_, err := suite.service.UpdateSettings(ctx, suite.companyID, req, suite.executive)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Success() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		PaymentApprovalThreshold:     decimal.NewFromInt(2_000_000),
		PayableApprovalAbove:         decimal.NewFromInt(750_000),
		BankTransfersRequireApproval: false,
		MaintenanceApprovalThreshold: decimal.NewFromInt(400_000),
		FuelAnomalyLimit:             decimal.NewFromInt(600_000),
	}

	suite.mockSettingsRepo.On("UpsertSettings", ctx, mock.MatchedBy(func(s domain.FinancialSettings) bool {
		return s.CompanyID == suite.companyID &&
			s.PaymentApprovalThreshold.Equal(req.PaymentApprovalThreshold) &&
			!s.BankTransfersRequireApproval &&
			s.LastUpdatedBy == suite.executive.ActorID
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, suite.companyID, req, suite.executive)

	suite.NoError(err)
	suite.True(settings.PayableApprovalAbove.Equal(req.PayableApprovalAbove))
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
