package memory

import (
	"context"
	"fmt"
	"sync"

	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type balanceKey struct {
	accountID  string
	categoryID string
}

type balanceStore struct {
	mu       sync.RWMutex
	balances map[string]map[string]decimal.Decimal // accountID -> categoryID -> amount
}

// NewBalanceStore creates an empty balance store. Entries spring into
// existence at zero the first time they are credited.
func NewBalanceStore() portsrepo.BalanceStoreFacade {
	return &balanceStore{
		balances: make(map[string]map[string]decimal.Decimal),
	}
}

func (s *balanceStore) GetBalance(ctx context.Context, accountID string, categoryID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[accountID][categoryID]
}

func (s *balanceStore) GetAllBalances(ctx context.Context, accountID string) map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]decimal.Decimal, len(s.balances[accountID]))
	for categoryID, amount := range s.balances[accountID] {
		out[categoryID] = amount
	}
	return out
}

func (s *balanceStore) Totals(ctx context.Context) map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]decimal.Decimal)
	for _, byCategory := range s.balances {
		for categoryID, amount := range byCategory {
			totals[categoryID] = totals[categoryID].Add(amount)
		}
	}
	return totals
}

func (s *balanceStore) ApplyDelta(ctx context.Context, accountID string, categoryID string, delta decimal.Decimal) error {
	return s.ApplyDeltas(ctx, portsrepo.BalanceDelta{AccountID: accountID, CategoryID: categoryID, Delta: delta})
}

// ApplyDeltas stages every delta against the current balances and commits
// only if none goes negative. Readers never see a partially applied batch.
func (s *balanceStore) ApplyDeltas(ctx context.Context, deltas ...portsrepo.BalanceDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[balanceKey]decimal.Decimal, len(deltas))
	for _, d := range deltas {
		key := balanceKey{accountID: d.AccountID, categoryID: d.CategoryID}
		current, ok := staged[key]
		if !ok {
			current = s.balances[d.AccountID][d.CategoryID]
		}
		next := current.Add(d.Delta)
		if next.IsNegative() {
			return fmt.Errorf("%w: account %s category %s: %s + %s",
				portsrepo.ErrNegativeBalance, d.AccountID, d.CategoryID, current, d.Delta)
		}
		staged[key] = next
	}

	for key, amount := range staged {
		byCategory, ok := s.balances[key.accountID]
		if !ok {
			byCategory = make(map[string]decimal.Decimal)
			s.balances[key.accountID] = byCategory
		}
		byCategory[key.categoryID] = amount
	}
	return nil
}
