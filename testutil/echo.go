package testutil

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/andyle182810/cinemadash/middleware"
	"github.com/andyle182810/cinemadash/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

type Options struct {
	Method        string            // HTTP method (GET, POST, etc.)
	Path          string            // Request path
	Body          []byte            // Request body
	Headers       map[string]string // Custom headers
	QueryParams   map[string]string // Query parameters
	PathParams    map[string]string // Path parameters (e.g., :movieId)
	ContentType   string            // Content-Type header (defaults to application/json)
	SkipRequestID bool              // Skip auto-generating X-Request-ID header
}

// NewEcho returns an echo instance wired the way the gateway wires its own.
func NewEcho() *echo.Echo {
	iecho := echo.New()
	iecho.Validator = validator.New()
	iecho.HTTPErrorHandler = middleware.ErrorHandler(iecho.HTTPErrorHandler)

	return iecho
}

func SetupEchoContext(
	t *testing.T,
	opts *Options,
) (*echo.Context, *httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	iecho := NewEcho()

	requestPath := opts.Path

	if len(opts.QueryParams) > 0 {
		query := url.Values{}
		for key, value := range opts.QueryParams {
			query.Add(key, value)
		}

		requestPath = fmt.Sprintf("%s?%s", opts.Path, query.Encode())
	}

	req := httptest.NewRequest(opts.Method, requestPath, bytes.NewBuffer(opts.Body))

	if !opts.SkipRequestID {
		req.Header.Set(middleware.HeaderXRequestID, uuid.New().String())
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = "application/json"
	}

	req.Header.Set("Content-Type", contentType)

	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	ctx := iecho.NewContext(req, rec)

	if len(opts.PathParams) > 0 {
		pathValues := make([]echo.PathValue, 0, len(opts.PathParams))

		for name, value := range opts.PathParams {
			pathValues = append(pathValues, echo.PathValue{
				Name:  name,
				Value: value,
			})
		}

		ctx.SetPathValues(pathValues)
	}

	return ctx, rec, req
}

// Serve sends one request through the full echo stack (router, middleware and
// error handler) and returns the recorded response.
func Serve(t *testing.T, handler http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}
