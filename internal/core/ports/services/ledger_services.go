package services

import (
	"context"
	"iter"
	"time"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// Ledger operation names reported to a LedgerObserver.
const (
	OperationTransfer = "transfer"
	OperationAllocate = "allocate"
)

// LedgerObserver receives the outcome of every engine attempt that produced
// a record. Implementations must be safe for concurrent use and must not block.
type LedgerObserver interface {
	ObserveLedgerOutcome(operation string, rec domain.TransactionRecord, elapsed time.Duration)
}

// LedgerReaderSvc defines read operations on balances and the transaction log
type LedgerReaderSvc interface {
	// GetBalance returns the balance of an account in one category.
	GetBalance(ctx context.Context, accountID string, categoryID string) (decimal.Decimal, error)

	// GetAllBalances returns the account's balance in every catalog category,
	// zero for categories it never touched.
	GetAllBalances(ctx context.Context, accountID string) (map[string]decimal.Decimal, error)

	// QueryLog returns a lazy, restartable sequence of matching records in append order.
	QueryLog(ctx context.Context, filter domain.LogFilter) iter.Seq[domain.TransactionRecord]

	// ListTransactions returns one page of the log in append order. The
	// NextToken of a page resumes after its last record.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerWriterSvc defines the mutating engine operations.
// Business-rule rejections are returned as a FAILED record with a nil error;
// an error means no record was written and no balance changed.
type LedgerWriterSvc interface {
	// Transfer moves funds from the caller's account to the receiver.
	Transfer(ctx context.Context, caller domain.Caller, req dto.TransferRequest) (*domain.TransactionRecord, error)

	// Allocate credits relief funds to an account. Only administrators may allocate.
	Allocate(ctx context.Context, caller domain.Caller, req dto.AllocationRequest) (*domain.TransactionRecord, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
