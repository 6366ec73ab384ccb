package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/andyle182810/cinemadash/middleware"
	"github.com/andyle182810/cinemadash/testutil"
	"github.com/labstack/echo/v5"
	echomiddleware "github.com/labstack/echo/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(buf *bytes.Buffer) *echo.Echo {
	e := testutil.NewEcho()
	e.Use(middleware.RequestLogger(zerolog.New(buf), func(_ *echo.Context) map[string]any {
		return map[string]any{"component": "gateway"}
	}))
	e.Use(middleware.RequestID(echomiddleware.DefaultSkipper))

	e.GET("/ok", func(c *echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/missing", func(_ *echo.Context) error {
		return httpclient.NewServiceError(http.StatusNotFound, "Movie not found", "")
	})

	return e
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))

	return line
}

func TestRequestLogger_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	rec := testutil.Serve(t, newLoggedEcho(&buf), http.MethodGet, "/ok", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	line := decodeLogLine(t, &buf)
	require.Equal(t, "info", line["level"])
	require.InDelta(t, float64(http.StatusOK), line["status"], 0)
	require.Equal(t, "gateway", line["component"])
	require.Equal(t, rec.Header().Get(middleware.HeaderXRequestID), line["request_id"])
	require.Equal(t, "The request has completed successfully", line["message"])
}

func TestRequestLogger_BackendErrorLoggedWithTranslatedStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	rec := testutil.Serve(t, newLoggedEcho(&buf), http.MethodGet, "/missing", nil)

	testutil.AssertErrorResponse(t, rec, http.StatusNotFound, "Movie not found")

	line := decodeLogLine(t, &buf)
	require.Equal(t, "warn", line["level"])
	require.InDelta(t, float64(http.StatusNotFound), line["status"], 0)
	require.Equal(t, "Movie not found", line["error"])
}
