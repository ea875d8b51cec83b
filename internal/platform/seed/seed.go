// Package seed loads the demonstration accounts and opening balances.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger/internal/dto"
	"github.com/SscSPs/relief_ledger/internal/middleware"
	"github.com/shopspring/decimal"
)

// AdminAccountID is the administrator that funds the demo balances.
const AdminAccountID = "admin_1"

// Accounts are the demo participants, in registration order.
var Accounts = []dto.RegisterAccountRequest{
	{AccountID: AdminAccountID, Name: "Relief Admin (NGO)", Role: domain.RoleAdmin, Verified: true},
	{AccountID: "donor_1", Name: "Global Aid Foundation", Role: domain.RoleDonor, Verified: true},
	{AccountID: "ben_1", Name: "Maria Garcia", Role: domain.RoleBeneficiary, Verified: true, Location: "Zone A", KYCStatus: "Whitelisted"},
	{AccountID: "ben_2", Name: "Ahmed Khan", Role: domain.RoleBeneficiary, Verified: true, Location: "Zone B", KYCStatus: "Whitelisted"},
	{AccountID: "merch_1", Name: "Central Pharmacy", Role: domain.RoleMerchant, AuthorizedCategory: domain.CategoryMedical, Verified: true, Location: "Zone A"},
	{AccountID: "merch_2", Name: "Fresh Mart Grocery", Role: domain.RoleMerchant, AuthorizedCategory: domain.CategoryFood, Verified: true, Location: "Zone A"},
	{AccountID: "merch_3", Name: "SafeStay Supplies", Role: domain.RoleMerchant, AuthorizedCategory: domain.CategoryShelter, Verified: true, Location: "Zone B"},
	{AccountID: "merch_4", Name: "Unauthorized Vendor", Role: domain.RoleMerchant, AuthorizedCategory: domain.CategoryGeneral, Verified: false, Location: "Zone A"},
}

// OpeningBalances maps account → category → amount. Zero entries are skipped.
var OpeningBalances = map[string]map[string]decimal.Decimal{
	"donor_1": {domain.CategoryGeneral: decimal.NewFromInt(5000000)},
	"ben_1": {
		domain.CategoryFood:    decimal.NewFromInt(150),
		domain.CategoryMedical: decimal.NewFromInt(50),
		domain.CategoryShelter: decimal.Zero,
		domain.CategoryGeneral: decimal.NewFromInt(10),
	},
	"ben_2": {
		domain.CategoryFood:    decimal.NewFromInt(75),
		domain.CategoryMedical: decimal.NewFromInt(200),
		domain.CategoryShelter: decimal.NewFromInt(500),
		domain.CategoryGeneral: decimal.Zero,
	},
}

// Seed registers the demo accounts and funds them through relief
// allocations, so the opening balances appear in the transaction log.
func Seed(ctx context.Context, services *portssvc.ServiceContainer) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, req := range Accounts {
		if _, err := services.Registry.RegisterAccount(ctx, domain.SystemCaller, req); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", req.AccountID, err)
		}
	}

	admin := domain.Caller{AccountID: AdminAccountID, Role: domain.RoleAdmin}
	allocations := 0
	for _, req := range Accounts {
		balances, ok := OpeningBalances[req.AccountID]
		if !ok {
			continue
		}
		// Catalog order keeps the seeded log deterministic.
		for _, categoryID := range services.Registry.Catalog().IDs() {
			amount := balances[categoryID]
			if !amount.IsPositive() {
				continue
			}
			_, err := services.Ledger.Allocate(ctx, admin, dto.AllocationRequest{
				BeneficiaryID: req.AccountID,
				Amount:        amount,
				CategoryID:    categoryID,
			})
			if err != nil {
				return fmt.Errorf("failed to seed balance %s/%s: %w", req.AccountID, categoryID, err)
			}
			allocations++
		}
	}

	logger.Info("Demo data seeded", slog.Int("accounts", len(Accounts)), slog.Int("allocations", allocations))
	return nil
}
