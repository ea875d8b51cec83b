package dto

import (
	"time"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest defines a proposed transfer from the caller's account.
// The sender and the role it acts in come from the authenticated caller.
type TransferRequest struct {
	ReceiverID string          `json:"receiverID" binding:"required"`
	Amount     decimal.Decimal `json:"amount"` // must be positive, checked by the engine
	CategoryID string          `json:"categoryID" binding:"required"`
}

// AllocationRequest defines a relief allocation made by an administrator.
type AllocationRequest struct {
	BeneficiaryID string          `json:"beneficiaryID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryID" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction record.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Sequence      uint64                   `json:"sequence"`
	Hash          string                   `json:"hash"`
	Timestamp     time.Time                `json:"timestamp"`
	FromAccountID string                   `json:"fromAccountID"`
	ToAccountID   string                   `json:"toAccountID"`
	Amount        decimal.Decimal          `json:"amount"`
	CategoryID    string                   `json:"categoryID"`
	Status        domain.TransactionStatus `json:"status"`
	Reason        string                   `json:"reason"`
}

// ToTransactionResponse converts a domain.TransactionRecord to TransactionResponse DTO.
func ToTransactionResponse(rec *domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		TransactionID: rec.TransactionID,
		Sequence:      rec.Sequence,
		Hash:          rec.Hash,
		Timestamp:     rec.Timestamp,
		FromAccountID: rec.FromAccountID,
		ToAccountID:   rec.ToAccountID,
		Amount:        rec.Amount,
		CategoryID:    rec.CategoryID,
		Status:        rec.Status,
		Reason:        rec.Reason,
	}
}

// ToTransactionResponses converts a slice of domain.TransactionRecord to []TransactionResponse.
func ToTransactionResponses(recs []domain.TransactionRecord) []TransactionResponse {
	responses := make([]TransactionResponse, len(recs))
	for i, rec := range recs {
		responses[i] = ToTransactionResponse(&rec)
	}
	return responses
}

// ListTransactionsParams defines query parameters for browsing the transaction log.
type ListTransactionsParams struct {
	AccountID  string `form:"accountID"`
	Status     string `form:"status" binding:"omitempty,oneof=SUCCESS FAILED"`
	CategoryID string `form:"categoryID"`
	Limit      int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken  string `form:"nextToken"`
}

// ListTransactionsResponse is one page of the transaction log.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"` // nil on the last page
}
