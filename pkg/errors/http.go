package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError is an error that is safe to show to API clients.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Status returns the HTTP status for the error, 400 when unset.
func (e *HTTPError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusBadRequest
	}
	return e.StatusCode
}

// NewHTTPError returns a 400 HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: http.StatusBadRequest}
}

// NewHTTPErrorWithStatus returns an HTTPError rendered with status.
func NewHTTPErrorWithStatus(status, code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// AsHTTPError unwraps err looking for an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
