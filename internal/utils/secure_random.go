package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// displayHashBytes gives the 64 hex digits shown in the ledger explorer.
const displayHashBytes = 32

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateDisplayHash returns a "0x"-prefixed random hash for transaction
// records. It is cosmetic: nothing orders, identifies or verifies by it.
func GenerateDisplayHash() (string, error) {
	s, err := GenerateSecureRandomString(displayHashBytes)
	if err != nil {
		return "", err
	}
	return "0x" + s, nil
}
