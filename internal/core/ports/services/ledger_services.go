package services

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// LedgerSvcFacade exposes the movement log.
type LedgerSvcFacade interface {
	// RecordMovement records one ledger movement atomically and returns the
	// generated movement id. A zero amount is a no-op returning an empty id;
	// a negative amount fails with ErrInvalidAmount.
	RecordMovement(ctx context.Context, companyID string, req dto.RecordMovementRequest, actor domain.Actor) (string, error)

	// GetMovement retrieves a single movement.
	GetMovement(ctx context.Context, companyID, movementID string) (*domain.FinancialMovement, error)

	// ListMovementsByAccount retrieves a token-paginated page of movements
	// touching an account, newest first.
	ListMovementsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error)

	// UpdateReconciliationStatus changes the only mutable movement field.
	UpdateReconciliationStatus(ctx context.Context, companyID, movementID string, status domain.ReconciliationStatus, actor domain.Actor) error
}
