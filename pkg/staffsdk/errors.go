package staffsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/staffdb/pkg/httpx"
)

// Error codes carried in the "error" member of every error body.
const (
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeValidation        = "validation_error"
	ErrorCodeConflict          = "conflict"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeServerError       = "server_error"
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
)

// FieldError names one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error            string       `json:"error"`
	ErrorDescription string       `json:"error_description"`
	Fields           []FieldError `json:"fields,omitempty"`
}

// APIError is a failed request. Handlers write it, the client returns it.
type APIError struct {
	StatusCode  int          `json:"-"`
	Code        string       `json:"error"`
	Description string       `json:"error_description"`
	Fields      []FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("%s: %s (%d field errors)", e.Code, e.Description, len(e.Fields))
}

// WriteError writes e as the response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Fields:           e.Fields,
	})
}

// NewAPIError builds an APIError without field details.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Description: description}
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "incorrect username or password",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Fields:      errResp.Fields,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
