package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// ledgerService provides the movement log operations.
type ledgerService struct {
	movementRepo portsrepo.MovementRepositoryWithTx
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(movementRepo portsrepo.MovementRepositoryWithTx) portssvc.LedgerSvcFacade {
	return &ledgerService{
		movementRepo: movementRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// RecordMovement records one ledger movement atomically. A zero amount is a
// no-op returning an empty id; a negative amount is rejected.
func (s *ledgerService) RecordMovement(ctx context.Context, companyID string, req dto.RecordMovementRequest, actor domain.Actor) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsZero() {
		logger.Info("Skipping zero-amount movement",
			slog.String("reference_type", string(req.ReferenceType)),
			slog.String("reference_id", req.ReferenceID),
		)
		return "", nil
	}
	if req.Amount.IsNegative() {
		return "", fmt.Errorf("%w: amount %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}
	if req.FromAccountID == "" && req.ToAccountID == "" {
		return "", fmt.Errorf("%w: at least one of fromAccountID/toAccountID is required", apperrors.ErrValidation)
	}

	movement := newMovement(companyID, req, actor, time.Now())

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		logger.Error("Failed to record movement",
			slog.String("reference_key", movement.ReferenceKey),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	logger.Info("Movement recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("kind", string(movement.Kind)),
		slog.String("reference_key", movement.ReferenceKey),
	)
	return movement.MovementID, nil
}

// newMovement builds a fully-populated movement from a record request.
func newMovement(companyID string, req dto.RecordMovementRequest, actor domain.Actor, now time.Time) domain.FinancialMovement {
	return domain.FinancialMovement{
		MovementID:     uuid.NewString(),
		CompanyID:      companyID,
		FromAccountID:  req.FromAccountID,
		ToAccountID:    req.ToAccountID,
		Amount:         req.Amount,
		CurrencyCode:   req.CurrencyCode,
		Kind:           req.Kind,
		ReferenceType:  req.ReferenceType,
		ReferenceID:    req.ReferenceID,
		ReferenceKey:   domain.MovementReferenceKey(req.ReferenceType, req.ReferenceID),
		AgencyID:       req.AgencyID,
		ActorID:        actor.ActorID,
		ActorRole:      actor.Role,
		Direction:      domain.DeriveDirection(req.ToAccountID),
		Reconciliation: domain.ReconciliationPending,
		Note:           req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}
}

// GetMovement retrieves a single movement.
func (s *ledgerService) GetMovement(ctx context.Context, companyID, movementID string) (*domain.FinancialMovement, error) {
	return s.movementRepo.FindMovementByID(ctx, companyID, movementID)
}

// ListMovementsByAccount retrieves a token-paginated page of movements.
func (s *ledgerService) ListMovementsByAccount(ctx context.Context, companyID, accountID string, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error) {
	return s.movementRepo.ListMovementsByAccount(ctx, companyID, accountID, limit, nextToken)
}

// UpdateReconciliationStatus changes the only mutable movement field.
func (s *ledgerService) UpdateReconciliationStatus(ctx context.Context, companyID, movementID string, status domain.ReconciliationStatus, actor domain.Actor) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.movementRepo.UpdateReconciliationStatus(ctx, companyID, movementID, status, actor.ActorID, time.Now()); err != nil {
		logger.Error("Failed to update reconciliation status",
			slog.String("movement_id", movementID),
			slog.String("error", err.Error()),
		)
		return err
	}

	logger.Info("Reconciliation status updated",
		slog.String("movement_id", movementID),
		slog.String("status", string(status)),
	)
	return nil
}
