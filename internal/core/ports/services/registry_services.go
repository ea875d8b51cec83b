package services

import (
	"context"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/SscSPs/relief_ledger/internal/dto"
)

// RegistryReaderSvc defines read operations on accounts and the category catalog
type RegistryReaderSvc interface {
	// GetAccount retrieves a specific account by its identifier.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns accounts in registration order, optionally filtered by role.
	ListAccounts(ctx context.Context, role *domain.Role) ([]domain.Account, error)

	// ListCategories returns the catalog in display order.
	ListCategories(ctx context.Context) []domain.Category

	// Catalog exposes the immutable category catalog.
	Catalog() *domain.Catalog
}

// RegistryWriterSvc defines the out-of-band administrative operations
type RegistryWriterSvc interface {
	// RegisterAccount adds a participant. The caller must be an administrator.
	RegisterAccount(ctx context.Context, caller domain.Caller, req dto.RegisterAccountRequest) (*domain.Account, error)

	// SetVerified changes an account's verified flag. The caller must be an administrator.
	SetVerified(ctx context.Context, caller domain.Caller, accountID string, verified bool) (*domain.Account, error)
}

// RegistrySvcFacade combines all registry-related service interfaces
type RegistrySvcFacade interface {
	RegistryReaderSvc
	RegistryWriterSvc
}
