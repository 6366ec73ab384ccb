package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/andyle182810/cinemadash/middleware"
	"github.com/labstack/echo/v5"
)

func HTTPError(code int, err error, details ...string) *echo.HTTPError {
	message := err.Error()

	if len(details) > 0 {
		message = fmt.Sprintf("%s: %s", details[0], message)
	}

	return wrapHTTPError(echo.NewHTTPError(code, message), err)
}

// BackendError converts a failed cinema backend call into the gateway's answer
// using the same mapping as the error handler. Unknown failures become 500.
func BackendError(err error) *echo.HTTPError {
	if httpErr, ok := middleware.HTTPErrorFrom(err); ok {
		return httpErr
	}

	return wrapHTTPError(echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)), err)
}

func wrapHTTPError(httpErr *echo.HTTPError, cause error) *echo.HTTPError {
	var wrapped *echo.HTTPError
	if errors.As(httpErr.Wrap(cause), &wrapped) {
		return wrapped
	}

	return httpErr
}
