package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// QueryService answers read-only questions over the employee records.
type QueryService struct {
	Store store.Store
}

// ListByDepartment returns every employee of department. No match is an
// empty list, not an error.
func (s *QueryService) ListByDepartment(ctx context.Context, department string) ([]domain.Employee, error) {
	if department == "" {
		return nil, invalid("department", "required", "department is required")
	}
	out, err := s.Store.Employees().ListByDepartment(ctx, department)
	if err != nil {
		return nil, fromStore(err)
	}
	return out, nil
}

// Paginate returns page number page (1-based) of size pageSize, ordered by
// internal id.
func (s *QueryService) Paginate(ctx context.Context, page, pageSize int) (domain.Page, error) {
	if page < 1 {
		return domain.Page{}, invalid("page", "gte", "page must be greater than or equal to 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return domain.Page{}, invalid("page_size", "range",
			fmt.Sprintf("page_size must be between 1 and %d", MaxPageSize))
	}

	total, err := s.Store.Employees().CountEmployees(ctx)
	if err != nil {
		return domain.Page{}, fromStore(err)
	}

	out := domain.Page{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: domain.TotalPages(total, pageSize),
		Employees:  []domain.Employee{},
	}
	// Past the last page the skip may not fit in an int.
	if int64(page) > out.TotalPages {
		return out, nil
	}

	employees, err := s.Store.Employees().ListEmployees(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return domain.Page{}, fromStore(err)
	}
	out.Employees = employees
	return out, nil
}

// SearchBySkills returns employees with at least one skill containing any of
// terms, ignoring case. Finding nobody is ErrNotFound.
func (s *QueryService) SearchBySkills(ctx context.Context, terms []string) ([]domain.Employee, error) {
	if len(terms) == 0 {
		return nil, invalid("skills", "required", "at least one skill is required")
	}
	for _, t := range terms {
		if strings.TrimSpace(t) == "" {
			return nil, invalid("skills", "notblank", "skills must not be blank")
		}
	}

	out, err := s.Store.Employees().SearchBySkills(ctx, terms)
	if err != nil {
		return nil, fromStore(err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no employee has any of the skills %q", ErrNotFound, terms)
	}
	return out, nil
}

// AverageSalaryByDepartment returns the mean salary per department, sorted
// by department name.
func (s *QueryService) AverageSalaryByDepartment(ctx context.Context) ([]domain.DepartmentSalary, error) {
	out, err := s.Store.Employees().AverageSalaryByDepartment(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	slices.SortFunc(out, func(a, b domain.DepartmentSalary) int {
		return strings.Compare(a.Department, b.Department)
	})
	return out, nil
}
