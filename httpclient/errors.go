package httpclient

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed    = errors.New("httpclient: request failed")
	ErrServiceError     = errors.New("httpclient: service error")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrCreateRequest    = errors.New("httpclient: failed to create request")
	ErrEncodeBody       = errors.New("httpclient: failed to encode request body")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
)

// ServiceError is a non-2xx answer from the backend. Detail holds the server's
// "detail" message when the body carried one.
type ServiceError struct {
	StatusCode int
	Detail     string
	RequestID  string
}

// Error returns the server detail verbatim, or the generic status message when
// the server supplied none.
func (e *ServiceError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}

	return HTTPErrorMessage(e.StatusCode)
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(target, ErrServiceError)
}

func (e *ServiceError) Unwrap() error {
	return ErrServiceError
}

// HasDetail reports whether the failure is a domain-level validation or
// business error rather than a bare status.
func (e *ServiceError) HasDetail() bool {
	return e.Detail != ""
}

func NewServiceError(statusCode int, detail, requestID string) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Detail:     detail,
		RequestID:  requestID,
	}
}

func HTTPErrorMessage(statusCode int) string {
	return fmt.Sprintf("HTTP error! status: %d", statusCode)
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}

	return nil, false
}

// StatusCode returns the backend status carried by err, or 0 when err is not a
// ServiceError.
func StatusCode(err error) int {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.StatusCode
	}

	return 0
}
