package repositories

import (
	"context"
	"fmt"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ErrNegativeBalance is returned when a delta would drive a balance below zero.
var ErrNegativeBalance = fmt.Errorf("%w: balance would become negative", apperrors.ErrIntegrity)

// BalanceDelta is a signed change to one (account, category) balance.
type BalanceDelta struct {
	AccountID  string
	CategoryID string
	Delta      decimal.Decimal
}

// BalanceReader defines read operations on the balance store
type BalanceReader interface {
	// GetBalance returns the balance for the pair, zero if it was never referenced.
	GetBalance(ctx context.Context, accountID string, categoryID string) decimal.Decimal

	// GetAllBalances returns every category balance the account has touched.
	GetAllBalances(ctx context.Context, accountID string) map[string]decimal.Decimal

	// Totals sums every balance per category across all accounts.
	Totals(ctx context.Context) map[string]decimal.Decimal
}

// BalanceWriter defines the mutators used exclusively by the transaction engine.
type BalanceWriter interface {
	// ApplyDelta applies a single signed change.
	ApplyDelta(ctx context.Context, accountID string, categoryID string, delta decimal.Decimal) error

	// ApplyDeltas applies all changes as one unit: either every delta is
	// applied or, if any would leave a negative balance, none is.
	ApplyDeltas(ctx context.Context, deltas ...BalanceDelta) error
}

// BalanceStoreFacade combines all balance-related repository interfaces
type BalanceStoreFacade interface {
	BalanceReader
	BalanceWriter
}
