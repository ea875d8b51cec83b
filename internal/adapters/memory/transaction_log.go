package memory

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
)

type transactionLog struct {
	mu      sync.RWMutex
	records []domain.TransactionRecord // records[i].Sequence == i+1
}

// NewTransactionLog creates an empty append-only transaction log.
func NewTransactionLog() portsrepo.TransactionLogFacade {
	return &transactionLog{}
}

// Append assigns the next sequence number and stores the record.
func (l *transactionLog) Append(ctx context.Context, record domain.TransactionRecord) (domain.TransactionRecord, error) {
	if err := record.Validate(); err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("failed to append transaction: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	record.Sequence = uint64(len(l.records)) + 1
	l.records = append(l.records, record)
	return record, nil
}

// Query yields matching records in append order. Each iteration works on the
// records present when it starts; stored records are never modified, so the
// snapshot needs no copying.
func (l *transactionLog) Query(ctx context.Context, filter domain.LogFilter) iter.Seq[domain.TransactionRecord] {
	return func(yield func(domain.TransactionRecord) bool) {
		l.mu.RLock()
		snapshot := l.records[:len(l.records):len(l.records)]
		l.mu.RUnlock()

		start := min(filter.AfterSequence, uint64(len(snapshot)))
		for _, record := range snapshot[start:] {
			if ctx.Err() != nil {
				return
			}
			if !filter.Matches(record) {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}

func (l *transactionLog) Len(ctx context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
