package staffsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateEmployee inserts e and returns the id the server assigned.
func (s *Session) CreateEmployee(ctx context.Context, e Employee) (*CreateResponse, error) {
	body, headers, err := jsonBody(e)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/employees", body, headers)
	if err != nil {
		return nil, err
	}

	var out CreateResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEmployee looks up one employee by business key.
func (s *Session) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/employees/"+url.PathEscape(employeeID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Employee
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployee applies u and returns the record as stored afterwards.
func (s *Session) UpdateEmployee(ctx context.Context, employeeID string, u EmployeeUpdate) (*Employee, error) {
	body, headers, err := jsonBody(u)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/employees/"+url.PathEscape(employeeID), body, headers)
	if err != nil {
		return nil, err
	}

	var out Employee
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEmployee removes one employee and returns it as it was.
func (s *Session) DeleteEmployee(ctx context.Context, employeeID string) (*DeleteResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/employees/"+url.PathEscape(employeeID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out DeleteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEmployees returns one page of the full listing.
func (s *Session) ListEmployees(ctx context.Context, page, pageSize int) (*PageResponse, error) {
	q := url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(pageSize)},
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/employees/list?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out PageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AverageSalaryByDepartment returns the mean salary of every department.
func (s *Session) AverageSalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/employees/avg-salary", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []DepartmentSalary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
