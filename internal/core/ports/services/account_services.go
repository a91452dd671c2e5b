package services

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// AccountSvcFacade exposes financial-account operations. Note the absence of
// any balance mutator: balances move only through the ledger.
type AccountSvcFacade interface {
	// CreateAccount provisions a new financial account.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, actor domain.Actor) (*domain.FinancialAccount, error)

	// GetAccount retrieves an account by ID.
	GetAccount(ctx context.Context, companyID, accountID string) (*domain.FinancialAccount, error)

	// GetAccountsByIDs retrieves multiple accounts keyed by ID.
	GetAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.FinancialAccount, error)

	// ListAccounts retrieves a company's accounts, optionally filtered by agency.
	ListAccounts(ctx context.Context, companyID, agencyID string) ([]domain.FinancialAccount, error)

	// DeactivateAccount flags an account inactive; history stays attributable.
	DeactivateAccount(ctx context.Context, companyID, accountID string, actor domain.Actor) error
}
