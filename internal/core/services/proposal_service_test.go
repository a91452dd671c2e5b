package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/services"
)

const testValidity = 168 * time.Hour

type ProposalServiceTestSuite struct {
	suite.Suite
	mockProposalRepo *MockProposalRepository
	mockSettingsSvc  *MockSettingsService
	mockAccountSvc   *MockAccountService
	service          portssvc.ProposalSvcFacade
	companyID        string
	cashier          domain.Actor
	executive        domain.Actor
	settings         domain.FinancialSettings
	payable          domain.Payable
}

func (suite *ProposalServiceTestSuite) SetupTest() {
	suite.mockProposalRepo = new(MockProposalRepository)
	suite.mockSettingsSvc = new(MockSettingsService)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewProposalService(suite.mockProposalRepo, suite.mockSettingsSvc, suite.mockAccountSvc, testValidity)

	suite.companyID = uuid.NewString()
	suite.cashier = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleCashier}
	suite.executive = domain.Actor{ActorID: uuid.NewString(), Role: domain.RoleCEO}
	suite.settings = domain.DefaultFinancialSettings(suite.companyID)
	suite.payable = domain.Payable{
		PayableID:       uuid.NewString(),
		CompanyID:       suite.companyID,
		AgencyID:        "agency-a",
		CurrencyCode:    "XOF",
		TotalAmount:     decimal.NewFromInt(5_000_000),
		RemainingAmount: decimal.NewFromInt(5_000_000),
		ApprovalStatus:  domain.ApprovalApproved,
	}
}

// statusesEqual matches the exact status set a cumulative sum may count.
func statusesEqual(want ...domain.ProposalStatus) interface{} {
	return mock.MatchedBy(func(got []domain.ProposalStatus) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range want {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	})
}

func (suite *ProposalServiceTestSuite) mockSums(byPayable, byAgency, byProposer int64) {
	ctxAnything := mock.Anything
	// The per-payable sum counts pending proposals only; agency and proposer
	// sums also count approved (already executed) ones.
	suite.mockProposalRepo.On("SumProposalAmountsByPayable", ctxAnything, suite.companyID, suite.payable.PayableID,
		statusesEqual(domain.ProposalPending), mock.Anything).
		Return(decimal.NewFromInt(byPayable), nil).Maybe()
	suite.mockProposalRepo.On("SumProposalAmountsByAgency", ctxAnything, suite.companyID, suite.payable.AgencyID,
		statusesEqual(domain.ProposalPending, domain.ProposalApproved), mock.Anything).
		Return(decimal.NewFromInt(byAgency), nil).Maybe()
	suite.mockProposalRepo.On("SumProposalAmountsByProposer", ctxAnything, suite.companyID, suite.cashier.ActorID,
		statusesEqual(domain.ProposalPending, domain.ProposalApproved), mock.Anything).
		Return(decimal.NewFromInt(byProposer), nil).Maybe()
}

func (suite *ProposalServiceTestSuite) TestRequiresApproval_SingleAmountOverThreshold() {
	ctx := context.Background()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()

	required, err := suite.service.RequiresApproval(ctx, suite.companyID, suite.payable, decimal.NewFromInt(1_500_000), suite.cashier)

	suite.NoError(err)
	suite.True(required)
	// Cumulative sums are not consulted when the single amount already crosses.
	suite.mockProposalRepo.AssertNotCalled(suite.T(), "SumProposalAmountsByPayable")
}

func (suite *ProposalServiceTestSuite) TestRequiresApproval_CumulativeByPayable() {
	ctx := context.Background()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()
	suite.mockSums(900_000, 0, 0)

	required, err := suite.service.RequiresApproval(ctx, suite.companyID, suite.payable, decimal.NewFromInt(200_000), suite.cashier)

	suite.NoError(err)
	suite.True(required)
}

func (suite *ProposalServiceTestSuite) TestRequiresApproval_CumulativeByAgency() {
	ctx := context.Background()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()
	suite.mockSums(0, 950_000, 0)

	required, err := suite.service.RequiresApproval(ctx, suite.companyID, suite.payable, decimal.NewFromInt(100_000), suite.cashier)

	suite.NoError(err)
	suite.True(required)
}

func (suite *ProposalServiceTestSuite) TestRequiresApproval_CumulativeByProposer() {
	ctx := context.Background()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()
	suite.mockSums(0, 0, 990_000)

	required, err := suite.service.RequiresApproval(ctx, suite.companyID, suite.payable, decimal.NewFromInt(50_000), suite.cashier)

	suite.NoError(err)
	suite.True(required)
}

func (suite *ProposalServiceTestSuite) TestRequiresApproval_PayableSumIgnoresApproved() {
	ctx := context.Background()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()

	// An approved 900k proposal against this payable sits inside the window,
	// but only pending proposals count toward the per-payable sum: the repo is
	// queried for pending only and reports zero, so a small follow-up payment
	// executes directly.
	suite.mockProposalRepo.On("SumProposalAmountsByPayable", mock.Anything, suite.companyID, suite.payable.PayableID,
		statusesEqual(domain.ProposalPending), mock.Anything).
		Return(decimal.Zero, nil).Once()
	suite.mockProposalRepo.On("SumProposalAmountsByAgency", mock.Anything, suite.companyID, suite.payable.AgencyID,
		statusesEqual(domain.ProposalPending, domain.ProposalApproved), mock.Anything).
		Return(decimal.NewFromInt(900_000), nil).Once()
	suite.mockProposalRepo.On("SumProposalAmountsByProposer", mock.Anything, suite.companyID, suite.cashier.ActorID,
		statusesEqual(domain.ProposalPending, domain.ProposalApproved), mock.Anything).
		Return(decimal.NewFromInt(900_000), nil).Once()

	required, err := suite.service.RequiresApproval(ctx, suite.companyID, suite.payable, decimal.NewFromInt(50_000), suite.cashier)

	suite.NoError(err)
	suite.False(required)
	suite.mockProposalRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestRequiresApproval_NotRequired() {
	ctx := context.Background()
	suite.mockSettingsSvc.On("GetSettings", ctx, suite.companyID).Return(&suite.settings, nil).Once()
	suite.mockSums(100_000, 200_000, 100_000)

	required, err := suite.service.RequiresApproval(ctx, suite.companyID, suite.payable, decimal.NewFromInt(50_000), suite.cashier)

	suite.NoError(err)
	suite.False(required)
}

func (suite *ProposalServiceTestSuite) TestCreateProposal_SetsExpiryAndSeed() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1_500_000)
	before := time.Now()

	suite.mockProposalRepo.On("SaveProposal", ctx,
		mock.MatchedBy(func(p domain.PaymentProposal) bool {
			return p.Status == domain.ProposalPending &&
				p.PayableID == suite.payable.PayableID &&
				p.ProposerID == suite.cashier.ActorID &&
				p.ExpiresAt.After(before.Add(testValidity-time.Minute))
		}),
		mock.MatchedBy(func(a domain.ProposalAction) bool {
			return a.Action == domain.ActionProposed && a.ActorID == suite.cashier.ActorID
		}),
	).Return(nil).Once()

	proposal, err := suite.service.CreateProposal(ctx, suite.companyID, suite.payable, uuid.NewString(), amount, "fuel restock", suite.cashier)

	suite.NoError(err)
	suite.Len(proposal.History, 1)
	suite.Equal(domain.ActionProposed, proposal.History[0].Action)
}

func (suite *ProposalServiceTestSuite) TestApproveProposal_NonExecutiveForbidden() {
	ctx := context.Background()

	_, err := suite.service.ApproveProposal(ctx, suite.companyID, uuid.NewString(), suite.cashier)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProposalRepo.AssertNotCalled(suite.T(), "ApproveProposal")
}

func (suite *ProposalServiceTestSuite) TestApproveProposal_Success() {
	ctx := context.Background()
	proposal := &domain.PaymentProposal{
		ProposalID:   uuid.NewString(),
		CompanyID:    suite.companyID,
		AgencyID:     "agency-a",
		PayableID:    suite.payable.PayableID,
		AccountID:    uuid.NewString(),
		Amount:       decimal.NewFromInt(1_500_000),
		CurrencyCode: "XOF",
		Status:       domain.ProposalPending,
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	suite.mockProposalRepo.On("FindProposalByID", ctx, suite.companyID, proposal.ProposalID).Return(proposal, nil).Once()
	suite.mockAccountSvc.On("GetAccount", ctx, suite.companyID, proposal.AccountID).
		Return(&domain.FinancialAccount{AccountID: proposal.AccountID, CurrencyCode: "XOF", IsActive: true}, nil).Once()

	approved := *proposal
	approved.Status = domain.ProposalApproved
	suite.mockProposalRepo.On("ApproveProposal", ctx, suite.companyID, proposal.ProposalID,
		mock.MatchedBy(func(m domain.FinancialMovement) bool {
			return m.Kind == domain.MovementPayablePayment &&
				m.ReferenceKey == "payable_payment_"+proposal.PayableID+"_"+proposal.ProposalID &&
				m.FromAccountID == proposal.AccountID &&
				m.Amount.Equal(proposal.Amount)
		}),
		mock.MatchedBy(func(a domain.ProposalAction) bool {
			return a.Action == domain.ActionApproved && a.ActorID == suite.executive.ActorID
		}),
	).Return(&approved, nil).Once()

	result, err := suite.service.ApproveProposal(ctx, suite.companyID, proposal.ProposalID, suite.executive)

	suite.NoError(err)
	suite.Equal(domain.ProposalApproved, result.Status)
}

func (suite *ProposalServiceTestSuite) TestApproveProposal_ExpiredPassthrough() {
	ctx := context.Background()
	proposal := &domain.PaymentProposal{
		ProposalID:   uuid.NewString(),
		PayableID:    suite.payable.PayableID,
		AccountID:    uuid.NewString(),
		CurrencyCode: "XOF",
		Status:       domain.ProposalPending,
		ExpiresAt:    time.Now().Add(-time.Hour),
	}

	suite.mockProposalRepo.On("FindProposalByID", ctx, suite.companyID, proposal.ProposalID).Return(proposal, nil).Once()
	suite.mockAccountSvc.On("GetAccount", ctx, suite.companyID, proposal.AccountID).
		Return(&domain.FinancialAccount{AccountID: proposal.AccountID, CurrencyCode: "XOF", IsActive: true}, nil).Once()
	suite.mockProposalRepo.On("ApproveProposal", ctx, suite.companyID, proposal.ProposalID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrProposalExpired).Once()

	_, err := suite.service.ApproveProposal(ctx, suite.companyID, proposal.ProposalID, suite.executive)

	suite.ErrorIs(err, apperrors.ErrProposalExpired)
}

func (suite *ProposalServiceTestSuite) TestApproveProposal_AccountCurrencyMismatch() {
	ctx := context.Background()
	proposal := &domain.PaymentProposal{
		ProposalID:   uuid.NewString(),
		PayableID:    suite.payable.PayableID,
		AccountID:    uuid.NewString(),
		Amount:       decimal.NewFromInt(1_500_000),
		CurrencyCode: "XOF",
		Status:       domain.ProposalPending,
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	suite.mockProposalRepo.On("FindProposalByID", ctx, suite.companyID, proposal.ProposalID).Return(proposal, nil).Once()
	suite.mockAccountSvc.On("GetAccount", ctx, suite.companyID, proposal.AccountID).
		Return(&domain.FinancialAccount{AccountID: proposal.AccountID, CurrencyCode: "EUR", IsActive: true}, nil).Once()

	_, err := suite.service.ApproveProposal(ctx, suite.companyID, proposal.ProposalID, suite.executive)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProposalRepo.AssertNotCalled(suite.T(), "ApproveProposal")
}

func (suite *ProposalServiceTestSuite) TestRejectProposal_NonExecutiveForbidden() {
	ctx := context.Background()

	_, err := suite.service.RejectProposal(ctx, suite.companyID, uuid.NewString(), "too big", suite.cashier)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProposalServiceTestSuite) TestRejectProposal_Success() {
	ctx := context.Background()
	proposalID := uuid.NewString()
	rejected := &domain.PaymentProposal{ProposalID: proposalID, Status: domain.ProposalRejected}

	suite.mockProposalRepo.On("RejectProposal", ctx, suite.companyID, proposalID,
		mock.MatchedBy(func(a domain.ProposalAction) bool {
			return a.Action == domain.ActionRejected && a.Reason == "duplicate request"
		}),
	).Return(rejected, nil).Once()

	result, err := suite.service.RejectProposal(ctx, suite.companyID, proposalID, "duplicate request", suite.executive)

	suite.NoError(err)
	suite.Equal(domain.ProposalRejected, result.Status)
}

func (suite *ProposalServiceTestSuite) TestListPendingProposals_FiltersAndMarksExpired() {
	ctx := context.Background()
	now := time.Now()
	live := domain.PaymentProposal{
		ProposalID: uuid.NewString(),
		Status:     domain.ProposalPending,
		ExpiresAt:  now.Add(time.Hour),
	}
	stale := domain.PaymentProposal{
		ProposalID: uuid.NewString(),
		Status:     domain.ProposalPending,
		ExpiresAt:  now.Add(-time.Hour),
	}

	suite.mockProposalRepo.On("ListProposalsByStatus", ctx, suite.companyID, "", domain.ProposalPending).
		Return([]domain.PaymentProposal{live, stale}, nil).Once()
	suite.mockProposalRepo.On("MarkProposalsExpired", ctx, suite.companyID, []string{stale.ProposalID}, mock.Anything).
		Return(nil).Once()

	result, err := suite.service.ListPendingProposals(ctx, suite.companyID, "")

	suite.NoError(err)
	suite.Len(result, 1)
	suite.Equal(live.ProposalID, result[0].ProposalID)
	suite.mockProposalRepo.AssertExpectations(suite.T())
}

func TestProposalService(t *testing.T) {
	suite.Run(t, new(ProposalServiceTestSuite))
}
