package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
)

// ErrMalformed is returned when the body is not a JSON object at all.
var ErrMalformed = errors.New("malformed JSON body")

type employeeWire struct {
	EmployeeID  *string   `json:"employee_id"`
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate *string   `json:"joining_date"`
	Skills      *[]string `json:"skills"`
}

type patchWire struct {
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate *string   `json:"joining_date"`
	Skills      *[]string `json:"skills"`
}

// DecodeEmployee reads a full employee from r. Absent fields, wrongly typed
// fields and schema breaches are all reported together in a *ViolationError.
func DecodeEmployee(r io.Reader) (domain.Employee, error) {
	var w employeeWire
	ve := &ViolationError{}
	if err := decode(r, &w, ve); err != nil {
		return domain.Employee{}, err
	}

	required := []struct {
		name    string
		present bool
	}{
		{"employee_id", w.EmployeeID != nil},
		{"name", w.Name != nil},
		{"department", w.Department != nil},
		{"salary", w.Salary != nil},
		{"joining_date", w.JoiningDate != nil},
		{"skills", w.Skills != nil},
	}
	for _, f := range required {
		if !f.present && !ve.has(f.name) {
			ve.add(f.name, "required", f.name+" is required")
		}
	}

	var e domain.Employee
	if w.EmployeeID != nil {
		e.EmployeeID = *w.EmployeeID
	}
	if w.Name != nil {
		e.Name = *w.Name
	}
	if w.Department != nil {
		e.Department = *w.Department
	}
	if w.Salary != nil {
		e.Salary = *w.Salary
	}
	if w.JoiningDate != nil {
		e.JoiningDate = parseDate(*w.JoiningDate, ve)
	}
	if w.Skills != nil {
		e.Skills = *w.Skills
	}

	if err := validateInto(ve, e); err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

// DecodePatch reads a partial update from r. Only type and format problems
// are reported here; the merged record is validated by the caller.
func DecodePatch(r io.Reader) (domain.EmployeePatch, error) {
	var w patchWire
	ve := &ViolationError{}
	if err := decode(r, &w, ve); err != nil {
		return domain.EmployeePatch{}, err
	}

	p := domain.EmployeePatch{
		Name:       w.Name,
		Department: w.Department,
		Salary:     w.Salary,
		Skills:     w.Skills,
	}
	if w.JoiningDate != nil {
		d := parseDate(*w.JoiningDate, ve)
		p.JoiningDate = &d
	}

	if err := ve.orNil(); err != nil {
		return domain.EmployeePatch{}, err
	}
	return p, nil
}

// decode unmarshals one JSON object. Type mismatches become violations so
// the caller can keep collecting; anything else is ErrMalformed.
func decode(r io.Reader, dst any, ve *ViolationError) error {
	err := json.NewDecoder(r).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		ve.add(typeErr.Field, "type", fmt.Sprintf("%s must be of type %s", typeErr.Field, jsonType(typeErr)))
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformed, err)
}

func jsonType(e *json.UnmarshalTypeError) string {
	switch e.Field {
	case "salary":
		return "number"
	case "skills":
		return "array of strings"
	default:
		return "string"
	}
}

func parseDate(s string, ve *ViolationError) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		ve.add("joining_date", "date", "joining_date must be a date formatted YYYY-MM-DD")
		return domain.Date{}
	}
	return d
}
