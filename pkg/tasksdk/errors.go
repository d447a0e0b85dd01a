package tasksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
)

const (
	ErrorCodeValidation         = "validation_error"
	ErrorCodeUserExists         = "user_exists"
	ErrorCodeUserNotFound       = "user_not_found"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccessDenied       = "access_denied"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeTaskNotFound       = "task_not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error body returned by the API. It is used by the server
// to write responses and by the client to report them.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is a stable machine readable identifier.
	Code string `json:"error"`

	// Message is shown to users as is.
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Is matches another *APIError with the same status and code, so callers
// can compare against the predefined values regardless of message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// WriteError writes e as the JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Message)
}

var (
	ErrUserExists = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeUserExists,
		Message:    "User already exists",
	}

	ErrUserNotFound = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeUserNotFound,
		Message:    "User not found",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "Invalid credentials",
	}

	ErrAccessDenied = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAccessDenied,
		Message:    "Access Denied",
	}

	// ErrInvalidToken never says why the token was rejected.
	ErrInvalidToken = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidToken,
		Message:    "Invalid Token",
	}

	ErrTaskNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeTaskNotFound,
		Message:    "Task not found",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "Server error",
	}
)

// NewValidationError returns a 400 with a field specific message.
func NewValidationError(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    message,
	}
}

// NewServerError returns a 500 with an operation specific message.
func NewServerError(message string) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    message,
	}
}

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies
// that are not JSON keep the raw text as the message.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = string(body)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}
	return apiErr
}
