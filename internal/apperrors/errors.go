package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role does not permit the requested operation.
var ErrForbidden = errors.New("operation not permitted for caller")

// ErrIntegrity indicates an internal consistency violation, e.g. a mutation
// that would leave a balance negative. It always points at a caller bug.
var ErrIntegrity = errors.New("ledger integrity violation")
