package services_test

import (
	"github.com/SscSPs/relief_ledger/internal/apperrors"
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/SscSPs/relief_ledger/internal/core/services"
	"github.com/shopspring/decimal"
)

// Reporting reuses the ledger fixture: 6 allocations worth 5000785 in total.
func (s *LedgerServiceTestSuite) TestReportingSummary() {
	reporting := services.NewReportingService(s.repos, domain.DefaultCatalog())

	_, err := s.transfer(ben1Caller, "merch_2", "100", domain.CategoryFood)
	s.Require().NoError(err)
	_, err = s.transfer(ben1Caller, "merch_1", "100", domain.CategoryMedical)
	s.Require().NoError(err)

	summary, err := reporting.GetSummary(s.ctx, adminCaller)
	s.Require().NoError(err)

	s.Equal(6, summary.Allocations)
	s.Equal(1, summary.SuccessfulTransfers)
	s.Equal(1, summary.FailedTransfers)
	s.True(decimal.NewFromInt(5000785).Equal(summary.TotalAllocated))
	s.True(decimal.NewFromInt(100).Equal(summary.TotalSpent))
	s.Equal(2, summary.ActiveBeneficiaries)
	s.Equal(3, summary.VerifiedMerchants)

	s.Require().Len(summary.CategoryTotals, 4)
	byCategory := make(map[string]decimal.Decimal)
	for _, ct := range summary.CategoryTotals {
		byCategory[ct.CategoryID] = ct.Amount
	}
	s.Equal(domain.CategoryFood, summary.CategoryTotals[0].CategoryID)
	s.True(decimal.NewFromInt(125).Equal(byCategory[domain.CategoryFood]))
	s.True(decimal.NewFromInt(50).Equal(byCategory[domain.CategoryMedical]))
	s.True(decimal.NewFromInt(500).Equal(byCategory[domain.CategoryShelter]))
	// 10 (ben_1) + 5000000 (donor_1) + 100 (merch_2)
	s.True(decimal.NewFromInt(5000110).Equal(byCategory[domain.CategoryGeneral]))

	_, err = reporting.GetSummary(s.ctx, donorCaller)
	s.ErrorIs(err, apperrors.ErrForbidden)
}
