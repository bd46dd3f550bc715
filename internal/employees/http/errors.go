package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/staffdb/internal/employees/schema"
	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/pkg/slogx"
	"github.com/aussiebroadwan/staffdb/pkg/staffsdk"
)

// writeError maps a service or decode error onto its status code and writes
// the JSON error body. Store failures are logged and answered with a
// generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := toAPIError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
	}
	if apiErr.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	apiErr.WriteError(w)
}

func toAPIError(err error) *staffsdk.APIError {
	var ve *schema.ViolationError

	switch {
	case errors.Is(err, schema.ErrMalformed):
		return staffsdk.NewAPIError(http.StatusBadRequest, staffsdk.ErrorCodeInvalidRequest, err.Error())
	case errors.As(err, &ve):
		return &staffsdk.APIError{
			StatusCode:  http.StatusUnprocessableEntity,
			Code:        staffsdk.ErrorCodeValidation,
			Description: "request failed validation",
			Fields:      fieldErrors(ve),
		}
	case errors.Is(err, service.ErrValidation):
		return staffsdk.NewAPIError(http.StatusUnprocessableEntity, staffsdk.ErrorCodeValidation, "record rejected by the storage schema")
	case errors.Is(err, service.ErrUnauthorized):
		return staffsdk.NewAPIError(http.StatusUnauthorized, staffsdk.ErrorCodeUnauthorized, "could not validate credentials")
	case errors.Is(err, service.ErrConflict):
		return staffsdk.NewAPIError(http.StatusConflict, staffsdk.ErrorCodeConflict, "employee_id already exists")
	case errors.Is(err, service.ErrNotFound):
		return staffsdk.NewAPIError(http.StatusNotFound, staffsdk.ErrorCodeNotFound, "employee not found")
	default:
		return staffsdk.ErrServerError
	}
}

func fieldErrors(ve *schema.ViolationError) []staffsdk.FieldError {
	out := make([]staffsdk.FieldError, len(ve.Fields))
	for i, f := range ve.Fields {
		out[i] = staffsdk.FieldError{Field: f.Field, Code: f.Code, Message: f.Message}
	}
	return out
}

// fieldError is a single-field validation failure raised by a handler.
func fieldError(field, code, message string) error {
	return &schema.ViolationError{
		Fields: []schema.FieldViolation{{Field: field, Code: code, Message: message}},
	}
}
