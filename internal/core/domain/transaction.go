package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the outcome of a transfer or allocation attempt.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Outcome reasons recorded on transaction records.
const (
	ReasonInsufficientFunds    = "Insufficient Funds in Category"
	ReasonInvalidReceiver      = "Invalid Receiver"
	ReasonMerchantNotVerified  = "Merchant Not Verified"
	ReasonTransferVerified     = "Smart Contract Verified"
	ReasonReliefAllocation     = "Relief Allocation"
	reasonCategoryMismatchBase = "Category Mismatch: Merchant is "
)

// ReasonCategoryMismatch names the merchant's authorized category in the
// rejection reason.
func ReasonCategoryMismatch(authorizedCategory string) string {
	return reasonCategoryMismatchBase + authorizedCategory
}

// TransactionRecord is an immutable log entry for one transfer or allocation
// attempt, successful or not.
type TransactionRecord struct {
	TransactionID string            `json:"transactionID"` // opaque, globally unique
	Sequence      uint64            `json:"sequence"`      // assigned by the log on append
	Hash          string            `json:"hash"`          // display only
	Timestamp     time.Time         `json:"timestamp"`
	FromAccountID string            `json:"fromAccountID"`
	ToAccountID   string            `json:"toAccountID"`
	Amount        decimal.Decimal   `json:"amount"`
	CategoryID    string            `json:"categoryID"`
	Status        TransactionStatus `json:"status"`
	Reason        string            `json:"reason"`
}

// Succeeded reports whether the attempt was applied to the balances.
func (t TransactionRecord) Succeeded() bool {
	return t.Status == StatusSuccess
}

// Involves reports whether accountID is the sender or the receiver.
func (t TransactionRecord) Involves(accountID string) bool {
	return t.FromAccountID == accountID || t.ToAccountID == accountID
}

// Validate checks that the record is well formed enough to be appended.
func (t TransactionRecord) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("%w: transaction ID is required", apperrors.ErrValidation)
	}
	if t.FromAccountID == "" || t.ToAccountID == "" {
		return fmt.Errorf("%w: transaction %s must reference both accounts", apperrors.ErrValidation, t.TransactionID)
	}
	if t.CategoryID == "" {
		return fmt.Errorf("%w: transaction %s must reference a category", apperrors.ErrValidation, t.TransactionID)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: transaction %s has unknown status '%s'", apperrors.ErrValidation, t.TransactionID, t.Status)
	}
	if t.Timestamp.IsZero() {
		return fmt.Errorf("%w: transaction %s has no timestamp", apperrors.ErrValidation, t.TransactionID)
	}
	return nil
}

// LogFilter selects transaction records. Zero-valued fields match everything.
type LogFilter struct {
	AccountID     string // matches sender or receiver
	FromAccountID string
	ToAccountID   string
	Status        TransactionStatus
	CategoryID    string
	AfterSequence uint64 // only records with a greater sequence
}

// Matches reports whether the record satisfies every set field of the filter.
func (f LogFilter) Matches(t TransactionRecord) bool {
	if f.AccountID != "" && !t.Involves(f.AccountID) {
		return false
	}
	if f.FromAccountID != "" && t.FromAccountID != f.FromAccountID {
		return false
	}
	if f.ToAccountID != "" && t.ToAccountID != f.ToAccountID {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	return t.Sequence > f.AfterSequence
}
