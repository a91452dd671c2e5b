package repositories

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
)

// SettingsRepositoryFacade defines operations on the per-company financial
// settings singleton.
type SettingsRepositoryFacade interface {
	// FindSettings retrieves a company's settings; ErrNotFound when unset.
	FindSettings(ctx context.Context, companyID string) (*domain.FinancialSettings, error)

	// UpsertSettings creates or replaces a company's settings row.
	UpsertSettings(ctx context.Context, settings domain.FinancialSettings) error
}
