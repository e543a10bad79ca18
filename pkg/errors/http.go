package errors

import "fmt"

// HTTPError is an error that knows which HTTP status and public message it maps to.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    any
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Error implements error.
func (e *HTTPError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%d %s: %v", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// WithDetails returns a copy of e carrying details. The shared sentinel is never mutated.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

// Is reports whether target is an HTTPError with the same status and message,
// so copies produced by WithDetails still match their sentinel.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode && t.Message == e.Message
}
