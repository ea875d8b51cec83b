package dto

import (
	"time"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterAccountRequest defines the data needed to register a participant.
type RegisterAccountRequest struct {
	AccountID          string      `json:"accountID"` // Optional, generated when empty
	Name               string      `json:"name" binding:"required"`
	Role               domain.Role `json:"role" binding:"required,role"`
	Verified           bool        `json:"verified"`
	AuthorizedCategory string      `json:"authorizedCategory"` // MERCHANT only
	Location           string      `json:"location"`
	KYCStatus          string      `json:"kycStatus"`
}

// UpdateVerificationRequest toggles an account's verified flag.
// A pointer distinguishes an explicit false from an omitted field.
type UpdateVerificationRequest struct {
	Verified *bool `json:"verified" binding:"required"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID          string      `json:"accountID"`
	Name               string      `json:"name"`
	Role               domain.Role `json:"role"`
	Verified           bool        `json:"verified"`
	AuthorizedCategory string      `json:"authorizedCategory,omitempty"`
	Location           string      `json:"location,omitempty"`
	KYCStatus          string      `json:"kycStatus,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:          acc.AccountID,
		Name:               acc.Name,
		Role:               acc.Role,
		Verified:           acc.Verified,
		AuthorizedCategory: acc.AuthorizedCategory,
		Location:           acc.Location,
		KYCStatus:          acc.KYCStatus,
		CreatedAt:          acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Role string `form:"role" binding:"omitempty,role"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// BalanceResponse is the balance of one account in one category.
type BalanceResponse struct {
	AccountID  string          `json:"accountID"`
	CategoryID string          `json:"categoryID"`
	Balance    decimal.Decimal `json:"balance"`
}

// AccountBalancesResponse lists an account's balance in every catalog category,
// zero-filled for categories never touched.
type AccountBalancesResponse struct {
	AccountID string            `json:"accountID"`
	Balances  []BalanceResponse `json:"balances"`
}
