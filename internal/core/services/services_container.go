package services

import (
	portsrepo "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/repositories"
	portssvc "github.com/Ibradiallo1000/reservation-v1-sub008/internal/core/ports/services"
	"github.com/Ibradiallo1000/reservation-v1-sub008/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings come first; several services consult thresholds.
	container.Settings = NewSettingsService(repos.SettingsRepo)

	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.MovementRepo)
	container.Transfer = NewTransferService(repos.MovementRepo, container.Account, container.Settings)
	container.Expense = NewExpenseService(repos.ExpenseRepo, container.Settings, container.Account)
	container.Proposal = NewProposalService(repos.ProposalRepo, container.Settings, container.Account, cfg.ProposalValidityDuration)
	container.Payable = NewPayableService(repos.PayableRepo, container.Proposal, container.Settings, container.Account)
	container.Integrity = NewIntegrityService(repos.IntegrityRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.TransferSvcFacade = (*transferService)(nil)
	_ portssvc.PayableSvcFacade  = (*payableService)(nil)
)
