package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryAmount is the total held in one category across all accounts.
type CategoryAmount struct {
	CategoryID string          `json:"categoryID"`
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
}

// LedgerSummary aggregates the ledger for the administrative overview.
type LedgerSummary struct {
	CategoryTotals      []CategoryAmount `json:"categoryTotals"`
	TotalAllocated      decimal.Decimal  `json:"totalAllocated"` // sum of successful relief allocations
	TotalSpent          decimal.Decimal  `json:"totalSpent"`     // sum of successful transfers
	SuccessfulTransfers int              `json:"successfulTransfers"`
	FailedTransfers     int              `json:"failedTransfers"`
	Allocations         int              `json:"allocations"`
	ActiveBeneficiaries int              `json:"activeBeneficiaries"` // verified beneficiaries
	VerifiedMerchants   int              `json:"verifiedMerchants"`
}
