package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	MovementRepo  MovementRepositoryWithTx
	PayableRepo   PayableRepositoryFacade
	ProposalRepo  ProposalRepositoryFacade
	ExpenseRepo   ExpenseRepositoryFacade
	SettingsRepo  SettingsRepositoryFacade
	IntegrityRepo IntegrityRepositoryFacade
}
