package services

import (
	"context"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
)

// ReportingSvc defines operations for the administrative overview
type ReportingSvc interface {
	// GetSummary aggregates balances, allocations and transfer outcomes.
	// The caller must be an administrator.
	GetSummary(ctx context.Context, caller domain.Caller) (*domain.LedgerSummary, error)
}
