// Package schema holds the structural rules every stored employee record
// must satisfy, plus the JSON decoding that feeds them.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Field length limits, shared with the storage level constraints.
const (
	MaxEmployeeIDLen = 64
	MaxNameLen       = 256
	MaxDepartmentLen = 128
)

// ErrViolation matches every *ViolationError with errors.Is.
var ErrViolation = errors.New("schema violation")

// FieldViolation describes one offending field.
type FieldViolation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ViolationError lists every field that broke the schema.
type ViolationError struct {
	Fields []FieldViolation
}

func (e *ViolationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrViolation.Error()
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return fmt.Sprintf("%s: %s", ErrViolation, strings.Join(msgs, "; "))
}

func (e *ViolationError) Is(target error) bool { return target == ErrViolation }

func (e *ViolationError) add(field, code, message string) {
	e.Fields = append(e.Fields, FieldViolation{Field: field, Code: code, Message: message})
}

func (e *ViolationError) has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ViolationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		return f.Interface().(domain.Date).String()
	}, domain.Date{})
	return v
}

// Validate checks e against the employee schema. It returns nil or a
// *ViolationError.
func Validate(e domain.Employee) error {
	return validateInto(&ViolationError{}, e)
}

func validateInto(ve *ViolationError, e domain.Employee) error {
	err := validate.Struct(e)

	var fieldErrs validator.ValidationErrors
	if err != nil && !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if ve.has(fe.Field()) {
			continue
		}
		ve.add(fe.Field(), fe.Tag(), message(fe))
	}
	return ve.orNil()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "notblank":
		return fe.Field() + " must not be blank"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
