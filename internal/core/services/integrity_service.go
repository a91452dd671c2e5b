package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/dto"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/middleware"
)

// integrityService recomputes account balances from the movement log and
// reports any account whose persisted balance drifted.
type integrityService struct {
	integrityRepo portsrepo.IntegrityRepositoryFacade
}

// NewIntegrityService creates a new IntegrityService.
func NewIntegrityService(integrityRepo portsrepo.IntegrityRepositoryFacade) portssvc.IntegritySvcFacade {
	return &integrityService{
		integrityRepo: integrityRepo,
	}
}

// Ensure integrityService implements the portssvc.IntegritySvcFacade interface
var _ portssvc.IntegritySvcFacade = (*integrityService)(nil)

// VerifyLedger checks the conservation invariant for every account of a
// company: the persisted balance must equal the signed sum of the movements
// referencing the account.
func (s *integrityService) VerifyLedger(ctx context.Context, companyID string) (*dto.IntegrityReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	summaries, err := s.integrityRepo.SummarizeAccountLedgers(ctx, companyID)
	if err != nil {
		return nil, err
	}

	report := &dto.IntegrityReportResponse{
		AccountsChecked: len(summaries),
		Consistent:      true,
	}
	for _, summary := range summaries {
		report.MovementsSeen += summary.MovementCount
		if summary.Balance.Equal(summary.LedgerBalance) {
			continue
		}
		report.Consistent = false
		report.Discrepancies = append(report.Discrepancies, dto.AccountDiscrepancy{
			AccountID:     summary.AccountID,
			Name:          summary.Name,
			Balance:       summary.Balance,
			LedgerBalance: summary.LedgerBalance,
			Difference:    summary.Balance.Sub(summary.LedgerBalance),
		})
	}

	if !report.Consistent {
		logger.Error("Ledger integrity check found discrepancies",
			slog.String("company_id", companyID),
			slog.Int("discrepancies", len(report.Discrepancies)),
		)
	} else {
		logger.Info("Ledger integrity check passed",
			slog.String("company_id", companyID),
			slog.Int("accounts_checked", report.AccountsChecked),
		)
	}
	return report, nil
}
