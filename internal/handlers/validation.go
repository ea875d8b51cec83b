package handlers

import (
	"fmt"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators installs the `role` binding tag on gin's validator
// engine. The engine is process-wide, so only tags that hold no per-ledger
// state belong here; categories are checked against each router's catalog
// by requireKnownCategory.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("failed to register role validator: %w", err)
	}
	return nil
}
