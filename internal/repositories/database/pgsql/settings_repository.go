package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/apperrors"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/domain"
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/models"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for financial settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{pool: pool}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const settingsColumns = `
	company_id, payment_approval_threshold, payable_approval_above,
	bank_transfers_require_approval, maintenance_approval_threshold, fuel_anomaly_limit,
	created_at, created_by, last_updated_at, last_updated_by`

// FindSettings retrieves a company's settings row; ErrNotFound when unset.
func (r *PgxSettingsRepository) FindSettings(ctx context.Context, companyID string) (*domain.FinancialSettings, error) {
	var m models.FinancialSettings
	err := r.pool.QueryRow(ctx, `
		SELECT `+settingsColumns+`
		FROM financial_settings
		WHERE company_id = $1;
	`, companyID).Scan(
		&m.CompanyID,
		&m.PaymentApprovalThreshold,
		&m.PayableApprovalAbove,
		&m.BankTransfersRequireApproval,
		&m.MaintenanceApprovalThreshold,
		&m.FuelAnomalyLimit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: settings for company %s", apperrors.ErrNotFound, companyID)
		}
		return nil, fmt.Errorf("failed to find settings for company %s: %w", companyID, err)
	}
	d := mapping.ToDomainSettings(m)
	return &d, nil
}

// UpsertSettings creates or replaces a company's settings row.
func (r *PgxSettingsRepository) UpsertSettings(ctx context.Context, settings domain.FinancialSettings) error {
	m := mapping.ToModelSettings(settings)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO financial_settings (`+settingsColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (company_id) DO UPDATE SET
			payment_approval_threshold = EXCLUDED.payment_approval_threshold,
			payable_approval_above = EXCLUDED.payable_approval_above,
			bank_transfers_require_approval = EXCLUDED.bank_transfers_require_approval,
			maintenance_approval_threshold = EXCLUDED.maintenance_approval_threshold,
			fuel_anomaly_limit = EXCLUDED.fuel_anomaly_limit,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`,
		m.CompanyID,
		m.PaymentApprovalThreshold,
		m.PayableApprovalAbove,
		m.BankTransfersRequireApproval,
		m.MaintenanceApprovalThreshold,
		m.FuelAnomalyLimit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert settings for company %s: %w", m.CompanyID, err)
	}
	return nil
}
