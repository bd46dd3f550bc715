// Package storetest is a conformance suite every store driver must pass.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"github.com/aussiebroadwan/staffdb/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty, migrated store. It is called once per subtest
// and must register its own cleanup.
type Factory func(t *testing.T) store.Store

// Run executes the suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"CreateAndGet", testCreateAndGet},
		{"DuplicateEmployeeID", testDuplicateEmployeeID},
		{"GetMissing", testGetMissing},
		{"StorageRejectsInvalidRecords", testStorageRejectsInvalid},
		{"UpdatePreservesOtherFields", testUpdatePreserves},
		{"UpdateMissing", testUpdateMissing},
		{"DeleteReturnsSnapshot", testDeleteReturnsSnapshot},
		{"ConcurrentDeleteHasOneWinner", testConcurrentDelete},
		{"ConcurrentCreateHasOneWinner", testConcurrentCreate},
		{"ListByDepartment", testListByDepartment},
		{"Pagination", testPagination},
		{"SearchBySkills", testSearchBySkills},
		{"AverageSalaryByDepartment", testAverageSalary},
		{"MigrationsAreIdempotent", testMigrationsIdempotent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

// NewEmployee returns a valid record with a fresh internal id.
func NewEmployee(employeeID, department string, salary float64, skills ...string) domain.Employee {
	if skills == nil {
		skills = []string{}
	}
	return domain.Employee{
		ID:          idx.New().String(),
		EmployeeID:  employeeID,
		Name:        "Employee " + employeeID,
		Department:  department,
		Salary:      salary,
		JoiningDate: domain.NewDate(2023, time.January, 15),
		Skills:      skills,
	}
}

func mustCreate(t *testing.T, s store.Store, e domain.Employee) domain.Employee {
	t.Helper()
	require.NoError(t, s.Employees().CreateEmployee(context.Background(), e))
	return e
}

func ids(es []domain.Employee) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.EmployeeID
	}
	return out
}

func testCreateAndGet(t *testing.T, s store.Store) {
	ctx := context.Background()
	want := NewEmployee("E123", "Engineering", 75000.5, "Python", "FastAPI", "MongoDB")
	want.JoiningDate = domain.NewDate(1999, time.December, 31)
	mustCreate(t, s, want)

	got, err := s.Employees().GetEmployee(ctx, "E123")
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.EmployeeID, got.EmployeeID)
	require.Equal(t, want.Name, got.Name)
	require.Equal(t, want.Department, got.Department)
	require.Equal(t, want.Salary, got.Salary)
	require.Equal(t, "1999-12-31", got.JoiningDate.String())
	require.True(t, want.JoiningDate.Equal(got.JoiningDate))
	require.Equal(t, []string{"Python", "FastAPI", "MongoDB"}, got.Skills)

	empty := NewEmployee("E124", "Engineering", 0)
	mustCreate(t, s, empty)
	got, err = s.Employees().GetEmployee(ctx, "E124")
	require.NoError(t, err)
	require.NotNil(t, got.Skills)
	require.Empty(t, got.Skills)
}

func testDuplicateEmployeeID(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustCreate(t, s, NewEmployee("E1", "A", 1))

	err := s.Employees().CreateEmployee(ctx, NewEmployee("E1", "B", 2))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := s.Employees().CountEmployees(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := s.Employees().GetEmployee(ctx, "E1")
	require.NoError(t, err)
	require.Equal(t, "A", got.Department)
}

func testGetMissing(t *testing.T, s store.Store) {
	_, err := s.Employees().GetEmployee(context.Background(), "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testStorageRejectsInvalid(t *testing.T, s store.Store) {
	ctx := context.Background()

	negative := NewEmployee("E1", "A", -1)
	require.ErrorIs(t, s.Employees().CreateEmployee(ctx, negative), store.ErrSchemaViolation)

	noName := NewEmployee("E2", "A", 1)
	noName.Name = ""
	require.ErrorIs(t, s.Employees().CreateEmployee(ctx, noName), store.ErrSchemaViolation)

	mustCreate(t, s, NewEmployee("E3", "A", 1))
	bad := -10.0
	_, err := s.Employees().UpdateEmployee(ctx, "E3", domain.EmployeePatch{Salary: &bad})
	require.ErrorIs(t, err, store.ErrSchemaViolation)

	got, err := s.Employees().GetEmployee(ctx, "E3")
	require.NoError(t, err)
	require.Equal(t, 1.0, got.Salary)

	n, err := s.Employees().CountEmployees(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func testUpdatePreserves(t *testing.T, s store.Store) {
	ctx := context.Background()
	orig := mustCreate(t, s, NewEmployee("E1", "Engineering", 75000, "Go", "SQL"))

	salary := 80000.0
	got, err := s.Employees().UpdateEmployee(ctx, "E1", domain.EmployeePatch{Salary: &salary})
	require.NoError(t, err)
	require.Equal(t, 80000.0, got.Salary)
	require.Equal(t, orig.ID, got.ID)
	require.Equal(t, orig.Name, got.Name)
	require.Equal(t, orig.Department, got.Department)
	require.True(t, orig.JoiningDate.Equal(got.JoiningDate))
	require.Equal(t, orig.Skills, got.Skills)

	date := domain.NewDate(2024, time.February, 29)
	skills := []string{"Rust"}
	name := "Renamed"
	got, err = s.Employees().UpdateEmployee(ctx, "E1", domain.EmployeePatch{
		Name:        &name,
		JoiningDate: &date,
		Skills:      &skills,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Equal(t, "2024-02-29", got.JoiningDate.String())
	require.Equal(t, []string{"Rust"}, got.Skills)
	require.Equal(t, 80000.0, got.Salary)

	fetched, err := s.Employees().GetEmployee(ctx, "E1")
	require.NoError(t, err)
	require.Equal(t, got, fetched)
}

func testUpdateMissing(t *testing.T, s store.Store) {
	name := "x"
	_, err := s.Employees().UpdateEmployee(context.Background(), "nope", domain.EmployeePatch{Name: &name})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testDeleteReturnsSnapshot(t *testing.T, s store.Store) {
	ctx := context.Background()
	orig := mustCreate(t, s, NewEmployee("E1", "Engineering", 75000, "Go"))
	mustCreate(t, s, NewEmployee("E2", "Engineering", 1))

	got, err := s.Employees().DeleteEmployee(ctx, "E1")
	require.NoError(t, err)
	require.Equal(t, orig.ID, got.ID)
	require.Equal(t, orig.Name, got.Name)
	require.Equal(t, []string{"Go"}, got.Skills)
	require.Equal(t, "2023-01-15", got.JoiningDate.String())

	_, err = s.Employees().GetEmployee(ctx, "E1")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Employees().DeleteEmployee(ctx, "E1")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.Employees().CountEmployees(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func testConcurrentDelete(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustCreate(t, s, NewEmployee("E1", "A", 1))

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Employees().DeleteEmployee(ctx, "E1")
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, store.ErrNotFound)
	}
	require.Equal(t, 1, ok)
}

func testConcurrentCreate(t *testing.T, s store.Store) {
	ctx := context.Background()

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.Employees().CreateEmployee(ctx, NewEmployee("E1", fmt.Sprintf("D%d", i), 1))
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	}
	require.Equal(t, 1, ok)
}

func testListByDepartment(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustCreate(t, s, NewEmployee("E1", "Engineering", 1))
	mustCreate(t, s, NewEmployee("E2", "Finance", 1))
	mustCreate(t, s, NewEmployee("E3", "Engineering", 1))
	mustCreate(t, s, NewEmployee("E4", "engineering", 1))

	got, err := s.Employees().ListByDepartment(ctx, "Engineering")
	require.NoError(t, err)
	require.Equal(t, []string{"E1", "E3"}, ids(got))

	got, err = s.Employees().ListByDepartment(ctx, "Marketing")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func testPagination(t *testing.T, s store.Store) {
	ctx := context.Background()
	var want []string
	for i := range 25 {
		e := mustCreate(t, s, NewEmployee(fmt.Sprintf("E%02d", i), "D", float64(i)))
		want = append(want, e.EmployeeID)
	}

	n, err := s.Employees().CountEmployees(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 25, n)

	var seen []string
	for page := 1; page <= 3; page++ {
		got, err := s.Employees().ListEmployees(ctx, (page-1)*10, 10)
		require.NoError(t, err)
		if page < 3 {
			require.Len(t, got, 10)
		} else {
			require.Len(t, got, 5)
		}
		seen = append(seen, ids(got)...)
	}
	require.Equal(t, want, seen)

	got, err := s.Employees().ListEmployees(ctx, 30, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func testSearchBySkills(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustCreate(t, s, NewEmployee("E1", "D", 1, "Python", "FastAPI"))
	mustCreate(t, s, NewEmployee("E2", "D", 1, "Go", "PostgreSQL"))
	mustCreate(t, s, NewEmployee("E3", "D", 1, "C++", "Embedded"))
	mustCreate(t, s, NewEmployee("E4", "D", 1))
	mustCreate(t, s, NewEmployee("E5", "D", 1, "Ängström Optics"))

	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{"exact", []string{"Go"}, []string{"E2"}},
		{"case insensitive", []string{"python"}, []string{"E1"}},
		{"substring", []string{"sql"}, []string{"E2"}},
		{"or across terms", []string{"fastapi", "embedded"}, []string{"E1", "E3"}},
		{"metacharacters are literal", []string{"c++"}, []string{"E3"}},
		{"dot is not a wildcard", []string{"."}, []string{}},
		{"no match", []string{"cobol"}, []string{}},
		{"non-ascii case insensitive", []string{"äng"}, []string{"E5"}},
		{"non-ascii upper term", []string{"ÄNGSTRÖM"}, []string{"E5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Employees().SearchBySkills(ctx, tt.terms)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func testAverageSalary(t *testing.T, s store.Store) {
	ctx := context.Background()

	got, err := s.Employees().AverageSalaryByDepartment(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	mustCreate(t, s, NewEmployee("E1", "B", 50))
	mustCreate(t, s, NewEmployee("E2", "A", 100))
	mustCreate(t, s, NewEmployee("E3", "A", 200))

	got, err = s.Employees().AverageSalaryByDepartment(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "A", got[0].Department)
	require.InDelta(t, 150, got[0].AverageSalary, 1e-9)
	require.Equal(t, "B", got[1].Department)
	require.InDelta(t, 50, got[1].AverageSalary, 1e-9)
}

func testMigrationsIdempotent(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustCreate(t, s, NewEmployee("E1", "A", 1))

	require.NoError(t, s.ApplyMigrations(ctx))
	require.NoError(t, s.Ping(ctx))

	_, err := s.Employees().GetEmployee(ctx, "E1")
	require.NoError(t, err)
}
