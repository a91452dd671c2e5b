package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/services"
)

type IntegrityServiceTestSuite struct {
	suite.Suite
	mockIntegrityRepo *MockIntegrityRepository
	service           portssvc.IntegritySvcFacade
	companyID         string
}

func (suite *IntegrityServiceTestSuite) SetupTest() {
	suite.mockIntegrityRepo = new(MockIntegrityRepository)
	suite.service = services.NewIntegrityService(suite.mockIntegrityRepo)
	suite.companyID = uuid.NewString()
}

func (suite *IntegrityServiceTestSuite) TestVerifyLedger_Consistent() {
	ctx := context.Background()
	summaries := []portsrepo.AccountLedgerSummary{
		{
			AccountID:     uuid.NewString(),
			Name:          "Caisse Agence Bamako",
			Balance:       decimal.NewFromInt(150_000),
			LedgerBalance: decimal.NewFromInt(150_000),
			MovementCount: 12,
		},
		{
			AccountID:     uuid.NewString(),
			Name:          "Banque Principale",
			Balance:       decimal.Zero,
			LedgerBalance: decimal.Zero,
			MovementCount: 0,
		},
	}

	suite.mockIntegrityRepo.On("SummarizeAccountLedgers", ctx, suite.companyID).Return(summaries, nil).Once()

	report, err := suite.service.VerifyLedger(ctx, suite.companyID)

	suite.NoError(err)
	suite.True(report.Consistent)
	suite.Equal(2, report.AccountsChecked)
	suite.Equal(int64(12), report.MovementsSeen)
	suite.Empty(report.Discrepancies)
}

func (suite *IntegrityServiceTestSuite) TestVerifyLedger_ReportsDrift() {
	ctx := context.Background()
	driftedID := uuid.NewString()
	summaries := []portsrepo.AccountLedgerSummary{
		{
			AccountID:     driftedID,
			Name:          "Caisse Agence Kayes",
			Balance:       decimal.NewFromInt(200_000),
			LedgerBalance: decimal.NewFromInt(185_000),
			MovementCount: 7,
		},
	}

	suite.mockIntegrityRepo.On("SummarizeAccountLedgers", ctx, suite.companyID).Return(summaries, nil).Once()

	report, err := suite.service.VerifyLedger(ctx, suite.companyID)

	suite.NoError(err)
	suite.False(report.Consistent)
	suite.Len(report.Discrepancies, 1)
	suite.Equal(driftedID, report.Discrepancies[0].AccountID)
	suite.True(report.Discrepancies[0].Difference.Equal(decimal.NewFromInt(15_000)))
}

func TestIntegrityService(t *testing.T) {
	suite.Run(t, new(IntegrityServiceTestSuite))
}
