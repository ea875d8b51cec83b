package dto

import "github.com/SscSPs/relief_ledger/internal/core/domain"

// CategoryResponse defines the data returned for a fund-purpose category.
type CategoryResponse struct {
	CategoryID     string `json:"categoryID"`
	Label          string `json:"label"`
	IsUnrestricted bool   `json:"isUnrestricted"`
}

// ToCategoryResponses converts catalog entries to response DTOs.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = CategoryResponse{
			CategoryID:     cat.CategoryID,
			Label:          cat.Label,
			IsUnrestricted: cat.IsUnrestricted,
		}
	}
	return res
}
