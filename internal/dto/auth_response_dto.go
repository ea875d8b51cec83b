package dto

import "time"

// DevTokenRequest asks for a token acting as an existing account.
// Only served when development tokens are enabled.
type DevTokenRequest struct {
	AccountID string `json:"accountID" binding:"required"`
}

// LoginResponse represents the response for a successful token issuance.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
