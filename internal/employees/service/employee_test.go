package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/schema"
	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := &service.EmployeeService{Store: newStore(t)}

	id, err := svc.Create(ctx, employee("E123", "Engineering", 75000, "Go"))
	require.NoError(t, err)
	_, err = idx.Parse(id)
	require.NoError(t, err)

	got, err := svc.Get(ctx, "E123")
	require.NoError(t, err)
	require.Equal(t, id, got.ID)

	t.Run("duplicate employee id is a conflict", func(t *testing.T) {
		_, err := svc.Create(ctx, employee("E123", "Finance", 1))
		require.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("schema violations are validation errors", func(t *testing.T) {
		bad := employee("E999", "", -1)
		_, err := svc.Create(ctx, bad)
		require.ErrorIs(t, err, service.ErrValidation)

		var ve *schema.ViolationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Fields, 2)

		_, err = svc.Get(ctx, "E999")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("caller supplied id is ignored", func(t *testing.T) {
		e := employee("E200", "Engineering", 1)
		e.ID = "chosen-by-client"
		id, err := svc.Create(ctx, e)
		require.NoError(t, err)
		require.NotEqual(t, "chosen-by-client", id)
	})
}

func TestEmployeeUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := &service.EmployeeService{Store: newStore(t)}

	_, err := svc.Create(ctx, employee("E1", "Engineering", 75000, "Go", "SQL"))
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		got, err := svc.Update(ctx, "E1", domain.EmployeePatch{Salary: ptr(80000.0)})
		require.NoError(t, err)
		require.Equal(t, 80000.0, got.Salary)
		require.Equal(t, "Employee E1", got.Name)
		require.Equal(t, "Engineering", got.Department)
		require.Equal(t, "2023-01-15", got.JoiningDate.String())
		require.Equal(t, []string{"Go", "SQL"}, got.Skills)
	})

	t.Run("date is stored as a calendar day", func(t *testing.T) {
		d := domain.DateOf(time.Date(2024, 3, 1, 17, 45, 0, 0, time.FixedZone("X", -5*3600)))
		got, err := svc.Update(ctx, "E1", domain.EmployeePatch{JoiningDate: &d})
		require.NoError(t, err)
		require.Equal(t, "2024-03-01", got.JoiningDate.String())
		require.Zero(t, got.JoiningDate.Time().Hour())
	})

	t.Run("empty patch returns the record unchanged", func(t *testing.T) {
		before, err := svc.Get(ctx, "E1")
		require.NoError(t, err)

		got, err := svc.Update(ctx, "E1", domain.EmployeePatch{})
		require.NoError(t, err)
		require.Equal(t, before, got)
	})

	t.Run("empty patch on missing record", func(t *testing.T) {
		_, err := svc.Update(ctx, "nope", domain.EmployeePatch{})
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := svc.Update(ctx, "nope", domain.EmployeePatch{Name: ptr("x")})
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("merged record must satisfy the schema", func(t *testing.T) {
		_, err := svc.Update(ctx, "E1", domain.EmployeePatch{Name: ptr("  "), Salary: ptr(-1.0)})
		require.ErrorIs(t, err, service.ErrValidation)

		got, err := svc.Get(ctx, "E1")
		require.NoError(t, err)
		require.Equal(t, "Employee E1", got.Name)
	})

	t.Run("skills can be cleared", func(t *testing.T) {
		got, err := svc.Update(ctx, "E1", domain.EmployeePatch{Skills: ptr([]string{})})
		require.NoError(t, err)
		require.Empty(t, got.Skills)
	})
}

func TestEmployeeDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := &service.EmployeeService{Store: newStore(t)}

	id, err := svc.Create(ctx, employee("E1", "Engineering", 75000, "Go"))
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, "E1")
	require.NoError(t, err)
	require.Equal(t, id, removed.ID)
	require.Equal(t, "E1", removed.EmployeeID)
	require.Equal(t, []string{"Go"}, removed.Skills)

	_, err = svc.Delete(ctx, "E1")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Get(ctx, "E1")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestEmployeeStoreFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := &service.EmployeeService{Store: brokenStore{}}

	_, err := svc.Create(ctx, employee("E1", "A", 1))
	require.ErrorIs(t, err, service.ErrStore)
	require.ErrorIs(t, err, errBoom)

	_, err = svc.Get(ctx, "E1")
	require.ErrorIs(t, err, service.ErrStore)

	_, err = svc.Update(ctx, "E1", domain.EmployeePatch{Name: ptr("x")})
	require.ErrorIs(t, err, service.ErrStore)

	_, err = svc.Delete(ctx, "E1")
	require.ErrorIs(t, err, service.ErrStore)
}
