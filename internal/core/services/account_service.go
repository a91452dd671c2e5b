package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// accountService provides financial account operations. There is no balance
// mutator here on purpose: balances move only through ledger transactions.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
	}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount provisions a new financial account with a zero balance.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.FinancialAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	account := domain.FinancialAccount{
		AccountID:    uuid.NewString(),
		CompanyID:    companyID,
		AgencyID:     req.AgencyID,
		Name:         req.Name,
		Kind:         req.Kind,
		CurrencyCode: req.CurrencyCode,
		Balance:      decimal.Zero,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.String("kind", string(account.Kind)),
	)
	return &account, nil
}

// GetAccount retrieves an account by ID.
func (s *accountService) GetAccount(ctx context.Context, companyID, accountID string) (*domain.FinancialAccount, error) {
	return s.accountRepo.FindAccountByID(ctx, companyID, accountID)
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.FinancialAccount, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
}

// ListAccounts retrieves a company's accounts, optionally filtered by agency.
func (s *accountService) ListAccounts(ctx context.Context, companyID, agencyID string) ([]domain.FinancialAccount, error) {
	return s.accountRepo.ListAccounts(ctx, companyID, agencyID)
}

// DeactivateAccount flags an account inactive; its movement history remains.
func (s *accountService) DeactivateAccount(ctx context.Context, companyID, accountID string, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeactivateAccount(ctx, companyID, accountID, actor.ActorID, time.Now()); err != nil {
		logger.Error("Failed to deactivate account",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()),
		)
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
