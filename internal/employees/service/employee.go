package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/schema"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"github.com/aussiebroadwan/staffdb/pkg/idx"
	"github.com/aussiebroadwan/staffdb/pkg/slogx"
)

// EmployeeService is the only path through which employee records are
// written. Every record is validated against the schema before it reaches
// the store.
type EmployeeService struct {
	Store store.Store
}

// Create validates e, assigns it a fresh internal id and stores it.
func (s *EmployeeService) Create(ctx context.Context, e domain.Employee) (string, error) {
	l := slogx.FromContext(ctx)

	if err := schema.Validate(e); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}

	e.ID = idx.New().String()
	if err := s.Store.Employees().CreateEmployee(ctx, e); err != nil {
		l.Warn("create employee failed", slog.String("employee_id", e.EmployeeID), slog.Any("err", err))
		return "", fromStore(err)
	}

	l.Info("employee created", slog.String("employee_id", e.EmployeeID), slog.String("id", e.ID))
	return e.ID, nil
}

// Get returns the record with the given business key.
func (s *EmployeeService) Get(ctx context.Context, employeeID string) (domain.Employee, error) {
	e, err := s.Store.Employees().GetEmployee(ctx, employeeID)
	if err != nil {
		return domain.Employee{}, fromStore(err)
	}
	return e, nil
}

// Update applies patch to the record. The merged record must satisfy the
// schema, and only the fields present in patch are written. An empty patch
// returns the record unchanged.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, patch domain.EmployeePatch) (domain.Employee, error) {
	l := slogx.FromContext(ctx)

	existing, err := s.Get(ctx, employeeID)
	if err != nil {
		return domain.Employee{}, err
	}
	if patch.IsEmpty() {
		return existing, nil
	}

	if err := schema.Validate(patch.Apply(existing)); err != nil {
		return domain.Employee{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.Store.Employees().UpdateEmployee(ctx, employeeID, patch)
	if err != nil {
		l.Warn("update employee failed", slog.String("employee_id", employeeID), slog.Any("err", err))
		return domain.Employee{}, fromStore(err)
	}

	l.Info("employee updated", slog.String("employee_id", employeeID), slog.Any("fields", patch.Fields()))
	return updated, nil
}

// Delete removes the record and returns it as it was just before removal.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) (domain.Employee, error) {
	removed, err := s.Store.Employees().DeleteEmployee(ctx, employeeID)
	if err != nil {
		return domain.Employee{}, fromStore(err)
	}

	slogx.FromContext(ctx).Info("employee deleted", slog.String("employee_id", employeeID))
	return removed, nil
}
