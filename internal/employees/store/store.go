package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrSchemaViolation is returned when the database itself rejects a
	// record (CHECK constraint, NOT NULL, collection validator).
	ErrSchemaViolation = errors.New("store: schema violation")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres, mongo) implement this.
type Store interface {
	Employees() Employees

	// ApplyMigrations installs tables, indexes and storage level schema
	// constraints. It is idempotent and run once at startup.
	ApplyMigrations(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Employees interface {
	// CreateEmployee inserts e under the internal id. A duplicate
	// employee_id yields ErrAlreadyExists.
	CreateEmployee(ctx context.Context, e domain.Employee) error

	// GetEmployee looks a record up by its business key.
	GetEmployee(ctx context.Context, employeeID string) (domain.Employee, error)

	// UpdateEmployee writes only the fields present in patch and returns the
	// record as stored afterwards. Callers must not pass an empty patch.
	UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) (domain.Employee, error)

	// DeleteEmployee removes the record and returns it as it was. Of two
	// concurrent deletes exactly one wins; the other gets ErrNotFound.
	DeleteEmployee(ctx context.Context, employeeID string) (domain.Employee, error)

	// ListByDepartment returns every record whose department matches exactly,
	// ordered by internal id.
	ListByDepartment(ctx context.Context, department string) ([]domain.Employee, error)

	// ListEmployees returns up to limit records after skipping offset, in
	// internal id order.
	ListEmployees(ctx context.Context, offset, limit int) ([]domain.Employee, error)

	// CountEmployees returns the total number of records.
	CountEmployees(ctx context.Context) (int64, error)

	// SearchBySkills returns records having at least one skill that contains
	// any of terms, case-insensitively. Terms are matched literally.
	SearchBySkills(ctx context.Context, terms []string) ([]domain.Employee, error)

	// AverageSalaryByDepartment returns the mean salary of every department
	// that has at least one record, ordered by department.
	AverageSalaryByDepartment(ctx context.Context) ([]domain.DepartmentSalary, error)
}
