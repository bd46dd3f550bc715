package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/internal/employees/schema"
	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/pkg/httpx"
	"github.com/aussiebroadwan/staffdb/pkg/staffsdk"
)

// EmployeesHandler serves everything under /employees.
type EmployeesHandler struct {
	Employees *service.EmployeeService
	Queries   *service.QueryService
}

// Create godoc
//
//	@Summary		Create Employee
//	@Description	Inserts a new employee. employee_id must be unique.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			employee	body		staffsdk.Employee			true	"Employee record"
//	@Success		201			{object}	staffsdk.CreateResponse		"msg, id"
//	@Failure		400			{object}	staffsdk.ErrorResponse		"Malformed JSON"
//	@Failure		401			{object}	staffsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		409			{object}	staffsdk.ErrorResponse		"employee_id already exists"
//	@Failure		422			{object}	staffsdk.ErrorResponse		"Validation failed"
//	@Failure		500			{object}	staffsdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/employees [post].
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	e, err := schema.DecodeEmployee(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.Employees.Create(r.Context(), e)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, staffsdk.CreateResponse{
		Msg: "Employee inserted successfully",
		ID:  id,
	})
}

// Get godoc
//
//	@Summary		Get Employee
//	@Tags			Employees
//	@Produce		json
//	@Param			employee_id	path		string					true	"Business key"
//	@Success		200			{object}	staffsdk.Employee
//	@Failure		401			{object}	staffsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404			{object}	staffsdk.ErrorResponse	"Employee not found"
//	@Failure		500			{object}	staffsdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/employees/{employee_id} [get].
func (h *EmployeesHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Employees.Get(r.Context(), r.PathValue("employee_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKEmployee(e))
}

// Update godoc
//
//	@Summary		Update Employee
//	@Description	Partial update. Only the fields present in the body change; an empty body returns the record as is.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			employee_id	path		string					true	"Business key"
//	@Param			update		body		staffsdk.EmployeeUpdate	true	"Fields to change"
//	@Success		200			{object}	staffsdk.Employee		"Record after the update"
//	@Failure		400			{object}	staffsdk.ErrorResponse	"Malformed JSON"
//	@Failure		401			{object}	staffsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404			{object}	staffsdk.ErrorResponse	"Employee not found"
//	@Failure		422			{object}	staffsdk.ErrorResponse	"Validation failed"
//	@Failure		500			{object}	staffsdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/employees/{employee_id} [put].
func (h *EmployeesHandler) Update(w http.ResponseWriter, r *http.Request) {
	patch, err := schema.DecodePatch(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, err)
		return
	}

	e, err := h.Employees.Update(r.Context(), r.PathValue("employee_id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKEmployee(e))
}

// Delete godoc
//
//	@Summary		Delete Employee
//	@Tags			Employees
//	@Produce		json
//	@Param			employee_id	path		string					true	"Business key"
//	@Success		200			{object}	staffsdk.DeleteResponse	"msg, deleted_employee"
//	@Failure		401			{object}	staffsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404			{object}	staffsdk.ErrorResponse	"Employee not found"
//	@Failure		500			{object}	staffsdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/employees/{employee_id} [delete].
func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	e, err := h.Employees.Delete(r.Context(), r.PathValue("employee_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, staffsdk.DeleteResponse{
		Msg:             "success",
		DeletedEmployee: toSDKEmployee(e),
	})
}

// ListByDepartment godoc
//
//	@Summary		List Employees by Department
//	@Description	Exact match on department. Unknown departments give an empty list.
//	@Tags			Employees
//	@Produce		json
//	@Param			department	query		string					true	"Department name"
//	@Success		200			{array}		staffsdk.Employee
//	@Failure		422			{object}	staffsdk.ErrorResponse	"department missing"
//	@Failure		500			{object}	staffsdk.ErrorResponse	"Internal server error"
//	@Router			/employees [get].
func (h *EmployeesHandler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	out, err := h.Queries.ListByDepartment(r.Context(), r.URL.Query().Get("department"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKEmployees(out))
}

// Search godoc
//
//	@Summary		Search Employees by Skill
//	@Description	Case-insensitive substring match on any skill. Repeat skills to match any of several terms.
//	@Tags			Employees
//	@Produce		json
//	@Param			skills	query		[]string				true	"Skill terms"	collectionFormat(multi)
//	@Success		200		{array}		staffsdk.Employee
//	@Failure		404		{object}	staffsdk.ErrorResponse	"Nobody has any of the skills"
//	@Failure		422		{object}	staffsdk.ErrorResponse	"skills missing or blank"
//	@Failure		500		{object}	staffsdk.ErrorResponse	"Internal server error"
//	@Router			/employees/search [get].
func (h *EmployeesHandler) Search(w http.ResponseWriter, r *http.Request) {
	out, err := h.Queries.SearchBySkills(r.Context(), r.URL.Query()["skills"])
	if errors.Is(err, service.ErrNotFound) {
		staffsdk.NewAPIError(http.StatusNotFound, staffsdk.ErrorCodeNotFound,
			"no employees found with the given skills").WriteError(w)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKEmployees(out))
}

// List godoc
//
//	@Summary		List Employees
//	@Description	Paginated listing ordered by creation.
//	@Tags			Employees
//	@Produce		json
//	@Param			page		query		int						false	"Page number, from 1"		default(1)
//	@Param			page_size	query		int						false	"Page size, 1 to 100"		default(10)
//	@Success		200			{object}	staffsdk.PageResponse
//	@Failure		401			{object}	staffsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		422			{object}	staffsdk.ErrorResponse	"page or page_size out of range"
//	@Failure		500			{object}	staffsdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/employees/list [get].
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), "page", 1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	size, err := intParam(q.Get("page_size"), "page_size", service.DefaultPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.Queries.Paginate(r.Context(), page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, staffsdk.PageResponse{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
		Employees:  toSDKEmployees(p.Employees),
	})
}

// AverageSalary godoc
//
//	@Summary		Average Salary by Department
//	@Tags			Employees
//	@Produce		json
//	@Success		200	{array}		staffsdk.DepartmentSalary
//	@Failure		401	{object}	staffsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		500	{object}	staffsdk.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/employees/avg-salary [get].
func (h *EmployeesHandler) AverageSalary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Queries.AverageSalaryByDepartment(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]staffsdk.DepartmentSalary, len(rows))
	for i, row := range rows {
		out[i] = staffsdk.DepartmentSalary{Department: row.Department, AverageSalary: row.AverageSalary}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func intParam(raw, name string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldError(name, "type", name+" must be an integer")
	}
	return n, nil
}

func toSDKEmployee(e domain.Employee) staffsdk.Employee {
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return staffsdk.Employee{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Department:  e.Department,
		Salary:      e.Salary,
		JoiningDate: e.JoiningDate.String(),
		Skills:      skills,
	}
}

func toSDKEmployees(es []domain.Employee) []staffsdk.Employee {
	out := make([]staffsdk.Employee, len(es))
	for i, e := range es {
		out[i] = toSDKEmployee(e)
	}
	return out
}
