package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	repos   portsrepo.RepositoryProvider
	catalog *domain.Catalog
}

// NewReportingService creates a reporting service reading every store.
func NewReportingService(repos portsrepo.RepositoryProvider, catalog *domain.Catalog) portssvc.ReportingSvc {
	return &reportingService{
		repos:   repos,
		catalog: catalog,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetSummary builds the administrative overview. Balances and the log are
// read separately, so a transfer landing in between may show in one but not
// the other.
func (s *reportingService) GetSummary(ctx context.Context, caller domain.Caller) (*domain.LedgerSummary, error) {
	if err := s.RequireAdmin(ctx, caller, "view summary"); err != nil {
		return nil, err
	}

	summary := &domain.LedgerSummary{
		TotalAllocated: decimal.Zero,
		TotalSpent:     decimal.Zero,
	}

	totals := s.repos.BalanceRepo.Totals(ctx)
	for _, cat := range s.catalog.List() {
		summary.CategoryTotals = append(summary.CategoryTotals, domain.CategoryAmount{
			CategoryID: cat.CategoryID,
			Label:      cat.Label,
			Amount:     totals[cat.CategoryID],
		})
	}

	for rec := range s.repos.LogRepo.Query(ctx, domain.LogFilter{}) {
		switch {
		case !rec.Succeeded():
			summary.FailedTransfers++
		case rec.Reason == domain.ReasonReliefAllocation:
			summary.Allocations++
			summary.TotalAllocated = summary.TotalAllocated.Add(rec.Amount)
		default:
			summary.SuccessfulTransfers++
			summary.TotalSpent = summary.TotalSpent.Add(rec.Amount)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("summary interrupted: %w", err)
	}

	accounts, err := s.repos.AccountRepo.ListAccounts(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for summary")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	for _, acc := range accounts {
		if !acc.Verified {
			continue
		}
		switch acc.Role {
		case domain.RoleBeneficiary:
			summary.ActiveBeneficiaries++
		case domain.RoleMerchant:
			summary.VerifiedMerchants++
		}
	}

	s.LogDebug(ctx, "Summary generated",
		slog.Int("allocations", summary.Allocations),
		slog.Int("successful_transfers", summary.SuccessfulTransfers),
		slog.Int("failed_transfers", summary.FailedTransfers))
	return summary, nil
}
