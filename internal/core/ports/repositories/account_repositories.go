package repositories

import (
	"context"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
)

// AccountReader defines read operations on the account registry
type AccountReader interface {
	// FindAccountByID retrieves an account by its identifier.
	// It returns an error wrapping apperrors.ErrNotFound if the account is unknown.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns accounts in registration order, optionally restricted to one role.
	ListAccounts(ctx context.Context, role *domain.Role) ([]domain.Account, error)
}

// AccountWriter defines the out-of-band admin operations on the registry.
// The transaction engine never calls these.
type AccountWriter interface {
	// SaveAccount registers a new account. Identifiers are never reused.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateVerification changes an account's verified flag.
	UpdateVerification(ctx context.Context, accountID string, verified bool) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
