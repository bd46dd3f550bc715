package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, employee_id, name, department, salary, joining_date, skills`

type employeesRepo struct {
	pool *pgxpool.Pool
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO employees (`+employeeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.EmployeeID, e.Name, e.Department, e.Salary, e.JoiningDate.Time(), nonNil(e.Skills),
	)
	return mapErr(err)
}

func (r *employeesRepo) GetEmployee(ctx context.Context, employeeID string) (domain.Employee, error) {
	return r.one(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_id = $1`, employeeID)
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, employeeID string, p domain.EmployeePatch) (domain.Employee, error) {
	args := pgx.NamedArgs{"employee_id": employeeID}
	var sets []string
	if p.Name != nil {
		sets = append(sets, "name = @name")
		args["name"] = *p.Name
	}
	if p.Department != nil {
		sets = append(sets, "department = @department")
		args["department"] = *p.Department
	}
	if p.Salary != nil {
		sets = append(sets, "salary = @salary")
		args["salary"] = *p.Salary
	}
	if p.JoiningDate != nil {
		sets = append(sets, "joining_date = @joining_date")
		args["joining_date"] = p.JoiningDate.Time()
	}
	if p.Skills != nil {
		sets = append(sets, "skills = @skills")
		args["skills"] = nonNil(*p.Skills)
	}
	if len(sets) == 0 {
		return domain.Employee{}, fmt.Errorf("postgres: empty update for %q", employeeID)
	}
	sets = append(sets, "updated_at = now()")

	return r.one(ctx,
		`UPDATE employees SET `+strings.Join(sets, ", ")+` WHERE employee_id = @employee_id RETURNING `+employeeColumns,
		args)
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, employeeID string) (domain.Employee, error) {
	return r.one(ctx, `DELETE FROM employees WHERE employee_id = $1 RETURNING `+employeeColumns, employeeID)
}

func (r *employeesRepo) ListByDepartment(ctx context.Context, department string) ([]domain.Employee, error) {
	return r.many(ctx, `SELECT `+employeeColumns+` FROM employees WHERE department = $1 ORDER BY id`, department)
}

func (r *employeesRepo) ListEmployees(ctx context.Context, offset, limit int) ([]domain.Employee, error) {
	return r.many(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *employeesRepo) CountEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n)
	return n, mapErr(err)
}

func (r *employeesRepo) SearchBySkills(ctx context.Context, terms []string) ([]domain.Employee, error) {
	if len(terms) == 0 {
		return []domain.Employee{}, nil
	}
	return r.many(ctx,
		`SELECT `+employeeColumns+` FROM employees e
		 WHERE EXISTS (
		   SELECT 1
		   FROM unnest(e.skills) AS s(skill), unnest($1::text[]) AS t(term)
		   WHERE strpos(lower(s.skill), lower(t.term)) > 0
		 )
		 ORDER BY id`, terms)
}

func (r *employeesRepo) AverageSalaryByDepartment(ctx context.Context) ([]domain.DepartmentSalary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT department, AVG(salary)::float8 FROM employees GROUP BY department ORDER BY department COLLATE "C"`)
	if err != nil {
		return nil, mapErr(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepartmentSalary, error) {
		var ds domain.DepartmentSalary
		err := row.Scan(&ds.Department, &ds.AverageSalary)
		return ds, err
	})
	if err != nil {
		return nil, mapErr(err)
	}
	if out == nil {
		out = []domain.DepartmentSalary{}
	}
	return out, nil
}

func (r *employeesRepo) one(ctx context.Context, q string, args ...any) (domain.Employee, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return domain.Employee{}, mapErr(err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanEmployee)
	return e, mapErr(err)
}

func (r *employeesRepo) many(ctx context.Context, q string, args ...any) ([]domain.Employee, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	out, err := pgx.CollectRows(rows, scanEmployee)
	if err != nil {
		return nil, mapErr(err)
	}
	if out == nil {
		out = []domain.Employee{}
	}
	return out, nil
}

func scanEmployee(row pgx.CollectableRow) (domain.Employee, error) {
	var (
		e      domain.Employee
		joined time.Time
	)
	if err := row.Scan(&e.ID, &e.EmployeeID, &e.Name, &e.Department, &e.Salary, &joined, &e.Skills); err != nil {
		return domain.Employee{}, err
	}
	e.JoiningDate = domain.DateOf(joined.UTC())
	e.Skills = nonNil(e.Skills)
	return e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ store.Employees = (*employeesRepo)(nil)
