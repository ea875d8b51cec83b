package dto

import (
	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryAmountResponse is the amount held in one category across all accounts
type CategoryAmountResponse struct {
	CategoryID string          `json:"categoryID"`
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
}

// LedgerSummaryResponse represents the administrative overview of the ledger
type LedgerSummaryResponse struct {
	CategoryTotals      []CategoryAmountResponse `json:"categoryTotals"`
	TotalAllocated      decimal.Decimal          `json:"totalAllocated"`
	TotalSpent          decimal.Decimal          `json:"totalSpent"`
	SuccessfulTransfers int                      `json:"successfulTransfers"`
	FailedTransfers     int                      `json:"failedTransfers"`
	Allocations         int                      `json:"allocations"`
	ActiveBeneficiaries int                      `json:"activeBeneficiaries"`
	VerifiedMerchants   int                      `json:"verifiedMerchants"`
}

// ToLedgerSummaryResponse converts a domain.LedgerSummary to its response DTO
func ToLedgerSummaryResponse(summary *domain.LedgerSummary) LedgerSummaryResponse {
	totals := make([]CategoryAmountResponse, len(summary.CategoryTotals))
	for i, t := range summary.CategoryTotals {
		totals[i] = CategoryAmountResponse{
			CategoryID: t.CategoryID,
			Label:      t.Label,
			Amount:     t.Amount,
		}
	}
	return LedgerSummaryResponse{
		CategoryTotals:      totals,
		TotalAllocated:      summary.TotalAllocated,
		TotalSpent:          summary.TotalSpent,
		SuccessfulTransfers: summary.SuccessfulTransfers,
		FailedTransfers:     summary.FailedTransfers,
		Allocations:         summary.Allocations,
		ActiveBeneficiaries: summary.ActiveBeneficiaries,
		VerifiedMerchants:   summary.VerifiedMerchants,
	}
}
