package accounting

import (
	"fmt"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for a zero or negative transfer or allocation amount.
var ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)

// RequirePositive rejects amounts that are not strictly greater than zero.
func RequirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount.String())
	}
	return nil
}

// TransferDeltas builds the two legs of a transfer: the sender is debited in
// the category drawn from and the receiver is credited in creditCategory.
// The legs always sum to zero.
func TransferDeltas(fromAccountID, drawCategory, toAccountID, creditCategory string, amount decimal.Decimal) []portsrepo.BalanceDelta {
	return []portsrepo.BalanceDelta{
		{AccountID: fromAccountID, CategoryID: drawCategory, Delta: amount.Neg()},
		{AccountID: toAccountID, CategoryID: creditCategory, Delta: amount},
	}
}

// ReverseDeltas returns the compensating deltas, in reverse order, that undo
// a previously applied batch.
func ReverseDeltas(deltas []portsrepo.BalanceDelta) []portsrepo.BalanceDelta {
	reversed := make([]portsrepo.BalanceDelta, len(deltas))
	for i, d := range deltas {
		reversed[len(deltas)-1-i] = portsrepo.BalanceDelta{
			AccountID:  d.AccountID,
			CategoryID: d.CategoryID,
			Delta:      d.Delta.Neg(),
		}
	}
	return reversed
}
