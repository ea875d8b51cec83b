package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/relief_ledger/internal/apperrors"
)

// Role defines what a participant is allowed to do on the ledger.
// A role is assigned at registration and never changes.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleDonor       Role = "DONOR"
	RoleBeneficiary Role = "BENEFICIARY"
	RoleMerchant    Role = "MERCHANT"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDonor, RoleBeneficiary, RoleMerchant:
		return true
	}
	return false
}

// CanAllocate reports whether the role may credit relief funds to other accounts.
func (r Role) CanAllocate() bool {
	return r == RoleAdmin
}

// CanAdminister reports whether the role may register accounts or change verification.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}

// IsRestrictedSpender reports whether transfers made in this role are subject
// to the merchant, category and verification rules.
func (r Role) IsRestrictedSpender() bool {
	return r == RoleBeneficiary
}

// Account represents a ledger participant.
type Account struct {
	AccountID          string    `json:"accountID"`
	Name               string    `json:"name"`
	Role               Role      `json:"role"`
	Verified           bool      `json:"verified"`
	AuthorizedCategory string    `json:"authorizedCategory,omitempty"` // MERCHANT only
	Location           string    `json:"location,omitempty"`
	KYCStatus          string    `json:"kycStatus,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// IsMerchant reports whether the account accepts payments from beneficiaries.
func (a Account) IsMerchant() bool {
	return a.Role == RoleMerchant
}

// Validate checks the account's structural invariants against the catalog.
func (a Account) Validate(catalog *Catalog) error {
	if a.AccountID == "" {
		return fmt.Errorf("%w: account ID is required", apperrors.ErrValidation)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	if !a.Role.IsValid() {
		return fmt.Errorf("%w: unknown role '%s'", apperrors.ErrValidation, a.Role)
	}

	if a.Role != RoleMerchant {
		if a.AuthorizedCategory != "" {
			return fmt.Errorf("%w: only merchants carry an authorized category (account %s is %s)",
				apperrors.ErrValidation, a.AccountID, a.Role)
		}
		return nil
	}

	if a.AuthorizedCategory == "" {
		return fmt.Errorf("%w: merchant %s must have an authorized category", apperrors.ErrValidation, a.AccountID)
	}
	if !catalog.Contains(a.AuthorizedCategory) {
		return fmt.Errorf("%w: merchant %s authorized for unknown category '%s'",
			apperrors.ErrValidation, a.AccountID, a.AuthorizedCategory)
	}
	return nil
}

// Caller identifies who invokes a ledger operation and in which role.
// The HTTP layer resolves it from the authenticated subject.
type Caller struct {
	AccountID string
	Role      Role
}

// SystemCaller is used for bootstrap operations such as seeding demo data.
var SystemCaller = Caller{AccountID: "system", Role: RoleAdmin}
