package repositories

import (
	"context"
	"iter"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
)

// TransactionLogReader defines read operations on the append-only log
type TransactionLogReader interface {
	// Query returns a lazy, restartable sequence of records matching the
	// filter, in append order.
	Query(ctx context.Context, filter domain.LogFilter) iter.Seq[domain.TransactionRecord]

	// Len returns the number of records appended so far.
	Len(ctx context.Context) int
}

// TransactionLogWriter defines the single mutator of the log
type TransactionLogWriter interface {
	// Append stores the record, assigning its sequence number, and returns
	// the stored copy.
	Append(ctx context.Context, record domain.TransactionRecord) (domain.TransactionRecord, error)
}

// TransactionLogFacade combines all log-related repository interfaces
type TransactionLogFacade interface {
	TransactionLogReader
	TransactionLogWriter
}
