package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"github.com/aussiebroadwan/staffdb/internal/employees/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

func employee(employeeID, department string, salary float64, skills ...string) domain.Employee {
	if skills == nil {
		skills = []string{}
	}
	return domain.Employee{
		EmployeeID:  employeeID,
		Name:        "Employee " + employeeID,
		Department:  department,
		Salary:      salary,
		JoiningDate: domain.NewDate(2023, time.January, 15),
		Skills:      skills,
	}
}

func ptr[T any](v T) *T { return &v }

var errBoom = errors.New("connection reset")

// brokenStore fails every call with errBoom.
type brokenStore struct{}

func (brokenStore) Employees() store.Employees                { return brokenEmployees{} }
func (brokenStore) ApplyMigrations(ctx context.Context) error { return errBoom }
func (brokenStore) Close() error                              { return nil }
func (brokenStore) Ping(ctx context.Context) error            { return errBoom }

type brokenEmployees struct{}

func (brokenEmployees) CreateEmployee(context.Context, domain.Employee) error { return errBoom }
func (brokenEmployees) GetEmployee(context.Context, string) (domain.Employee, error) {
	return domain.Employee{}, errBoom
}
func (brokenEmployees) UpdateEmployee(context.Context, string, domain.EmployeePatch) (domain.Employee, error) {
	return domain.Employee{}, errBoom
}
func (brokenEmployees) DeleteEmployee(context.Context, string) (domain.Employee, error) {
	return domain.Employee{}, errBoom
}
func (brokenEmployees) ListByDepartment(context.Context, string) ([]domain.Employee, error) {
	return nil, errBoom
}
func (brokenEmployees) ListEmployees(context.Context, int, int) ([]domain.Employee, error) {
	return nil, errBoom
}
func (brokenEmployees) CountEmployees(context.Context) (int64, error) { return 0, errBoom }
func (brokenEmployees) SearchBySkills(context.Context, []string) ([]domain.Employee, error) {
	return nil, errBoom
}
func (brokenEmployees) AverageSalaryByDepartment(context.Context) ([]domain.DepartmentSalary, error) {
	return nil, errBoom
}
