package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	// accountIDKey holds the authenticated account ID (the JWT subject).
	accountIDKey = contextKey("accountID")
)

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin context.
// It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(accountIDKey)); exists {
		accountID, ok := v.(string)
		return accountID, ok && accountID != ""
	}
	// check in the request context as well
	return AccountIDFromCtx(c.Request.Context())
}

// AccountIDFromCtx retrieves the authenticated account ID from a standard context.
func AccountIDFromCtx(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(accountIDKey).(string)
	return accountID, ok && accountID != ""
}
