package domain

import "slices"

// Employee is a single personnel record. EmployeeID is the business key;
// ID is assigned by the service on insert and never changes.
type Employee struct {
	ID          string   `json:"id,omitempty"`
	EmployeeID  string   `json:"employee_id" validate:"required,notblank,max=64"`
	Name        string   `json:"name" validate:"required,notblank,max=256"`
	Department  string   `json:"department" validate:"required,notblank,max=128"`
	Salary      float64  `json:"salary" validate:"gte=0"`
	JoiningDate Date     `json:"joining_date" validate:"required"`
	Skills      []string `json:"skills" validate:"required,dive,required,notblank"`
}

// EmployeePatch is a partial update. A nil field is left untouched. The
// business key is not patchable.
type EmployeePatch struct {
	Name        *string   `json:"name,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Salary      *float64  `json:"salary,omitempty"`
	JoiningDate *Date     `json:"joining_date,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p EmployeePatch) IsEmpty() bool {
	return p.Name == nil && p.Department == nil && p.Salary == nil &&
		p.JoiningDate == nil && p.Skills == nil
}

// Apply returns a copy of e with every present field of p written over it.
func (p EmployeePatch) Apply(e Employee) Employee {
	out := e
	out.Skills = slices.Clone(e.Skills)

	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Department != nil {
		out.Department = *p.Department
	}
	if p.Salary != nil {
		out.Salary = *p.Salary
	}
	if p.JoiningDate != nil {
		out.JoiningDate = *p.JoiningDate
	}
	if p.Skills != nil {
		out.Skills = slices.Clone(*p.Skills)
	}
	return out
}

// Fields lists the wire names of the fields the patch sets, in a stable order.
func (p EmployeePatch) Fields() []string {
	var fields []string
	if p.Name != nil {
		fields = append(fields, "name")
	}
	if p.Department != nil {
		fields = append(fields, "department")
	}
	if p.Salary != nil {
		fields = append(fields, "salary")
	}
	if p.JoiningDate != nil {
		fields = append(fields, "joining_date")
	}
	if p.Skills != nil {
		fields = append(fields, "skills")
	}
	return fields
}
