package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/staffdb/internal/employees/schema"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation_error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not_found")
	ErrStore        = errors.New("store_error")
)

// invalid builds an ErrValidation carrying a single field violation.
func invalid(field, code, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &schema.ViolationError{
		Fields: []schema.FieldViolation{{Field: field, Code: code, Message: message}},
	})
}

// fromStore maps store sentinels onto the service taxonomy. Anything the
// store did not classify becomes ErrStore.
func fromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, store.ErrSchemaViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
}
