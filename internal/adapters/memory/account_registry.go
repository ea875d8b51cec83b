package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
)

type accountRegistry struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	order    []string // registration order
}

// NewAccountRegistry creates an empty in-process account registry.
func NewAccountRegistry() portsrepo.AccountRepositoryFacade {
	return &accountRegistry{
		accounts: make(map[string]domain.Account),
	}
}

// SaveAccount registers a new account.
func (r *accountRegistry) SaveAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountID]; exists {
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, apperrors.ErrDuplicate)
	}
	r.accounts[account.AccountID] = account
	r.order = append(r.order, account.AccountID)
	return nil
}

// FindAccountByID retrieves an account by its ID. The returned value is a copy.
func (r *accountRegistry) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return &acc, nil
}

// ListAccounts returns accounts in registration order, optionally filtered by role.
func (r *accountRegistry) ListAccounts(ctx context.Context, role *domain.Role) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		acc := r.accounts[id]
		if role != nil && acc.Role != *role {
			continue
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// UpdateVerification sets the verified flag and returns the updated account.
func (r *accountRegistry) UpdateVerification(ctx context.Context, accountID string, verified bool) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	acc.Verified = verified
	r.accounts[accountID] = acc
	return &acc, nil
}
