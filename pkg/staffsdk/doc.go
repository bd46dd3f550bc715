/*
Package staffsdk provides a Go client for the staffdb employee record service.

# Client vs Session

The package is organized around two types:

  - Client: public endpoints (health probes, login, department listing, skill search)
  - Session: endpoints that need a bearer token

Create a Client and log in to get a Session:

	client := staffsdk.NewClient("http://localhost:8080")

	// Public reads
	engineers, err := client.ListByDepartment(ctx, "Engineering")
	matches, err := client.SearchBySkills(ctx, "go", "python")

	// Exchange operator credentials for a token
	session, err := client.Login(ctx, username, password)

Use the Session for writes and protected reads:

	created, err := session.CreateEmployee(ctx, staffsdk.Employee{...})
	emp, err := session.GetEmployee(ctx, "E001")
	page, err := session.ListEmployees(ctx, 1, 10)

Sessions do not refresh. When the access token expires every call fails with
an *APIError whose StatusCode is 401 and the caller logs in again.

# Errors

Every non-2xx response is returned as *APIError:

	_, err := session.GetEmployee(ctx, "E404")
	var apiErr *staffsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// no such employee
	}

Validation failures carry the offending fields in APIError.Fields.
*/
package staffsdk
