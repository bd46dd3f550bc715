package staffsdk

// Employee is an employee record as it travels over the wire. JoiningDate is
// YYYY-MM-DD. ID is assigned by the server.
type Employee struct {
	ID          string   `json:"id,omitempty"`
	EmployeeID  string   `json:"employee_id" example:"E001"`
	Name        string   `json:"name" example:"Ada Lovelace"`
	Department  string   `json:"department" example:"Engineering"`
	Salary      float64  `json:"salary" example:"85000"`
	JoiningDate string   `json:"joining_date" example:"2023-01-15"`
	Skills      []string `json:"skills" example:"Go,SQL"`
}

// EmployeeUpdate is a partial update. Nil fields are left untouched.
type EmployeeUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Salary      *float64  `json:"salary,omitempty"`
	JoiningDate *string   `json:"joining_date,omitempty" example:"2024-02-01"`
	Skills      *[]string `json:"skills,omitempty"`
}

// CreateResponse is returned by POST /employees.
type CreateResponse struct {
	Msg string `json:"msg" example:"Employee inserted successfully"`
	ID  string `json:"id"`
}

// DeleteResponse is returned by DELETE /employees/{employee_id}.
type DeleteResponse struct {
	Msg             string   `json:"msg" example:"success"`
	DeletedEmployee Employee `json:"deleted_employee"`
}

// PageResponse is one page of GET /employees/list.
type PageResponse struct {
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalCount int64      `json:"total_count"`
	TotalPages int64      `json:"total_pages"`
	Employees  []Employee `json:"employees"`
}

// DepartmentSalary is one row of GET /employees/avg-salary.
type DepartmentSalary struct {
	Department    string  `json:"department"`
	AverageSalary float64 `json:"average_salary"`
}

// TokenResponse is returned by POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int    `json:"expires_in" example:"1800"`
}

// HealthResponse is returned by the health probes. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
