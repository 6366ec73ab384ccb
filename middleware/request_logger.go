package middleware

import (
	"errors"
	"maps"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

type LogFieldExtractor func(*echo.Context) map[string]any

// RequestLogger writes one access log line per request. Failed requests are
// logged with the status the error handler is going to send.
func RequestLogger(log zerolog.Logger, extraLogFieldExtractor ...LogFieldExtractor) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx *echo.Context) error {
			start := time.Now()

			err := next(ctx)

			status, size := responseStatus(ctx, err)

			fields := extractLogFields(ctx, start, status, size)

			if id, ok := ctx.Get(ContextKeyRequestID).(string); ok && id != "" {
				fields["request_id"] = id
			}

			addExtraLogFields(fields, ctx, extraLogFieldExtractor)

			logRequest(log, fields, err, status)

			return err
		}
	}
}

func responseStatus(ctx *echo.Context, err error) (int, int64) {
	if err != nil {
		return statusOf(err), 0
	}

	res, unwrapErr := echo.UnwrapResponse(ctx.Response())
	if unwrapErr != nil || res == nil {
		return http.StatusOK, 0
	}

	return res.Status, res.Size
}

func statusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	if translated, ok := HTTPErrorFrom(err); ok {
		return translated.Code
	}

	return http.StatusInternalServerError
}

func extractLogFields(ctx *echo.Context, start time.Time, status int, size int64) map[string]any {
	req := ctx.Request()

	return map[string]any{
		"remote_ip":   ctx.RealIP(),
		"latency":     time.Since(start).String(),
		"host":        req.Host,
		"request":     req.Method + " " + req.URL.String(),
		"request_uri": req.RequestURI,
		"status":      status,
		"size":        size,
		"user_agent":  req.UserAgent(),
	}
}

func addExtraLogFields(fields map[string]any, ctx *echo.Context, extractors []LogFieldExtractor) {
	for _, extractor := range extractors {
		maps.Copy(fields, extractor(ctx))
	}
}

func logRequest(log zerolog.Logger, fields map[string]any, err error, status int) {
	logger := log.With().Fields(fields).Logger()
	if err != nil {
		logger = logger.With().Err(err).Logger()
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error().
			Msg("The request has resulted in a server error")
	case status >= http.StatusBadRequest:
		logger.Warn().
			Msg("The request has resulted in a client error")
	case status >= http.StatusMultipleChoices:
		logger.Info().
			Msg("The request has resulted in a redirection")
	default:
		logger.Info().
			Msg("The request has completed successfully")
	}
}
