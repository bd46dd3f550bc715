package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
)

const employeeColumns = `id, employee_id, name, department, salary, joining_date, skills`

type employeesRepo struct {
	db *sql.DB
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) error {
	skills, err := encodeSkills(e.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO employees (`+employeeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.EmployeeID, e.Name, e.Department, e.Salary, e.JoiningDate.Time().Unix(), skills,
	)
	return mapErr(err)
}

func (r *employeesRepo) GetEmployee(ctx context.Context, employeeID string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE employee_id = ?`, employeeID)
	e, err := scanEmployee(row)
	return e, mapErr(err)
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, employeeID string, p domain.EmployeePatch) (domain.Employee, error) {
	var (
		sets []string
		args []any
	)
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Department != nil {
		sets = append(sets, "department = ?")
		args = append(args, *p.Department)
	}
	if p.Salary != nil {
		sets = append(sets, "salary = ?")
		args = append(args, *p.Salary)
	}
	if p.JoiningDate != nil {
		sets = append(sets, "joining_date = ?")
		args = append(args, p.JoiningDate.Time().Unix())
	}
	if p.Skills != nil {
		skills, err := encodeSkills(*p.Skills)
		if err != nil {
			return domain.Employee{}, err
		}
		sets = append(sets, "skills = ?")
		args = append(args, skills)
	}
	if len(sets) == 0 {
		return domain.Employee{}, fmt.Errorf("sqlite: empty update for %q", employeeID)
	}
	sets = append(sets, "updated_at = unixepoch()")
	args = append(args, employeeID)

	row := r.db.QueryRowContext(ctx,
		`UPDATE employees SET `+strings.Join(sets, ", ")+` WHERE employee_id = ? RETURNING `+employeeColumns,
		args...)
	e, err := scanEmployee(row)
	return e, mapErr(err)
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, employeeID string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`DELETE FROM employees WHERE employee_id = ? RETURNING `+employeeColumns, employeeID)
	e, err := scanEmployee(row)
	return e, mapErr(err)
}

func (r *employeesRepo) ListByDepartment(ctx context.Context, department string) ([]domain.Employee, error) {
	return r.query(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE department = ? ORDER BY id`, department)
}

func (r *employeesRepo) ListEmployees(ctx context.Context, offset, limit int) ([]domain.Employee, error) {
	return r.query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
}

func (r *employeesRepo) CountEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n)
	return n, mapErr(err)
}

// SearchBySkills matches with instr over casefold(), see init in store.go.
func (r *employeesRepo) SearchBySkills(ctx context.Context, terms []string) ([]domain.Employee, error) {
	if len(terms) == 0 {
		return []domain.Employee{}, nil
	}

	conds := make([]string, len(terms))
	args := make([]any, len(terms))
	for i, t := range terms {
		conds[i] = "instr(casefold(s.value), casefold(?)) > 0"
		args[i] = t
	}

	return r.query(ctx,
		`SELECT `+employeeColumns+` FROM employees e
		 WHERE EXISTS (
		   SELECT 1 FROM json_each(e.skills) s WHERE `+strings.Join(conds, " OR ")+`
		 )
		 ORDER BY id`, args...)
}

func (r *employeesRepo) AverageSalaryByDepartment(ctx context.Context) ([]domain.DepartmentSalary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT department, AVG(salary) FROM employees GROUP BY department ORDER BY department`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.DepartmentSalary{}
	for rows.Next() {
		var ds domain.DepartmentSalary
		if err := rows.Scan(&ds.Department, &ds.AverageSalary); err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, rows.Err()
}

func (r *employeesRepo) query(ctx context.Context, q string, args ...any) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (domain.Employee, error) {
	var (
		e      domain.Employee
		joined int64
		skills string
	)
	if err := row.Scan(&e.ID, &e.EmployeeID, &e.Name, &e.Department, &e.Salary, &joined, &skills); err != nil {
		return domain.Employee{}, err
	}

	e.JoiningDate = domain.DateOf(time.Unix(joined, 0).UTC())
	if err := json.Unmarshal([]byte(skills), &e.Skills); err != nil {
		return domain.Employee{}, fmt.Errorf("sqlite: decode skills of %s: %w", e.EmployeeID, err)
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return e, nil
}

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var _ store.Employees = (*employeesRepo)(nil)
