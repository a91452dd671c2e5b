package services

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// SettingsSvcFacade exposes the per-company financial settings singleton.
type SettingsSvcFacade interface {
	// GetSettings returns the company's settings, falling back to hard-coded
	// safe defaults when none are stored.
	GetSettings(ctx context.Context, companyID string) (*domain.FinancialSettings, error)

	// UpdateSettings replaces the settings; executive roles only.
	UpdateSettings(ctx context.Context, companyID string, req dto.UpdateSettingsRequest, actor domain.Actor) (*domain.FinancialSettings, error)
}
