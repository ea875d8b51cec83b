package services

import (
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	catalog *domain.Catalog,
	ledgerOptions ...LedgerServiceOption,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:    NewLedgerService(repos.AccountRepo, repos.BalanceRepo, repos.LogRepo, catalog, ledgerOptions...),
		Registry:  NewRegistryService(repos.AccountRepo, catalog),
		Reporting: NewReportingService(repos, catalog),
		Token:     NewTokenService(cfg),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.RegistrySvcFacade = (*registryService)(nil)
	_ portssvc.ReportingSvc      = (*reportingService)(nil)
	_ portssvc.TokenSvcFacade    = (*tokenService)(nil)
)
