package staffsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListByDepartment returns every employee of department. No auth needed.
func (c *Client) ListByDepartment(ctx context.Context, department string) ([]Employee, error) {
	q := url.Values{"department": {department}}

	resp, err := c.doRequest(ctx, http.MethodGet, "/employees?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Employee
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchBySkills returns employees having any of skills. No match is an
// *APIError with status 404. No auth needed.
func (c *Client) SearchBySkills(ctx context.Context, skills ...string) ([]Employee, error) {
	q := url.Values{"skills": skills}

	resp, err := c.doRequest(ctx, http.MethodGet, "/employees/search?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Employee
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
