package memory

import (
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider creates an independent, empty set of ledger stores.
// Each call yields a separate ledger; nothing is shared between instances.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: NewAccountRegistry(),
		BalanceRepo: NewBalanceStore(),
		LogRepo:     NewTransactionLog(),
	}
}
