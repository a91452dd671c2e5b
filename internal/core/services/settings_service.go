package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// settingsService provides the per-company financial settings singleton.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

// Ensure settingsService implements the portssvc.SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings returns the company's settings. A company that never configured
// anything gets the hard-coded safe defaults; thresholds must always resolve.
func (s *settingsService) GetSettings(ctx context.Context, companyID string) (*domain.FinancialSettings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultFinancialSettings(companyID)
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings replaces the settings wholesale; executive roles only.
func (s *settingsService) UpdateSettings(ctx context.Context, companyID string, req dto.UpdateSettingsRequest, actor domain.Actor) (*domain.FinancialSettings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.Role.IsExecutive() {
		return nil, fmt.Errorf("%w: role %s cannot change financial settings", apperrors.ErrForbidden, actor.Role)
	}
	if req.PaymentApprovalThreshold.IsNegative() || req.PayableApprovalAbove.IsNegative() ||
		req.MaintenanceApprovalThreshold.IsNegative() || req.FuelAnomalyLimit.IsNegative() {
		return nil, fmt.Errorf("%w: thresholds cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	settings := domain.FinancialSettings{
		CompanyID:                    companyID,
		PaymentApprovalThreshold:     req.PaymentApprovalThreshold,
		PayableApprovalAbove:         req.PayableApprovalAbove,
		BankTransfersRequireApproval: req.BankTransfersRequireApproval,
		MaintenanceApprovalThreshold: req.MaintenanceApprovalThreshold,
		FuelAnomalyLimit:             req.FuelAnomalyLimit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ActorID,
		},
	}

	if err := s.settingsRepo.UpsertSettings(ctx, settings); err != nil {
		logger.Error("Failed to upsert settings", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Financial settings updated", slog.String("company_id", companyID))
	return &settings, nil
}
