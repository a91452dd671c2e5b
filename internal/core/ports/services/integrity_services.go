package services

import (
	"context"

	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
)

// IntegritySvcFacade exposes the ledger conservation check: every account's
// persisted balance must equal the signed sum of the movements referencing it.
type IntegritySvcFacade interface {
	// VerifyLedger recomputes all account balances of a company from the
	// movement log and reports any discrepancy.
	VerifyLedger(ctx context.Context, companyID string) (*dto.IntegrityReportResponse, error)
}
