package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/andyle182810/cinemadash/validator"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
)

const (
	msgBackendUnavailable = "cinema backend unavailable"
	msgBackendTimeout     = "cinema backend timed out"
	msgBadBackendResponse = "unexpected response from cinema backend"
)

type ErrorHandlerConfig struct {
	Logger                *zerolog.Logger
	LogErrors             bool
	IncludeInternalErrors bool
	CustomErrorResponse   func(*echo.Context, error, int) map[string]any
}

// ErrorHandler renders errors as {"message": ...}. Echo HTTP errors keep their
// code. Errors from the cinema backend are translated by HTTPErrorFrom; next
// only sees errors that are neither.
func ErrorHandler(next echo.HTTPErrorHandler, config ...*ErrorHandlerConfig) echo.HTTPErrorHandler {
	cfg := getErrorHandlerConfig(config)

	return func(ectx *echo.Context, err error) {
		res, unwrapErr := echo.UnwrapResponse(ectx.Response())
		if unwrapErr == nil && res.Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			handleHTTPError(ectx, httpErr, cfg)

			return
		}

		if translated, ok := HTTPErrorFrom(err); ok {
			handleHTTPError(ectx, translated, cfg)

			return
		}

		if cfg.LogErrors && cfg.Logger != nil {
			logError(ectx, err, cfg.Logger)
		}

		if next != nil {
			next(ectx, err)
		}
	}
}

// HTTPErrorFrom maps a cinema backend failure to the gateway's answer. A
// backend status is passed through with the backend's message; invalid input
// is a 400; a timeout is a 504; anything else from the client is a 502.
func HTTPErrorFrom(err error) (*echo.HTTPError, bool) {
	var validationErrs validator.ValidationErrors

	switch svcErr, isSvc := httpclient.IsServiceError(err); {
	case isSvc:
		code := svcErr.StatusCode
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}

		return wrap(echo.NewHTTPError(code, svcErr.Error()), err), true
	case errors.As(err, &validationErrs):
		return wrap(echo.NewHTTPError(http.StatusBadRequest, validationErrs.Error()), err), true
	case errors.Is(err, cinema.ErrInvalidInput):
		return wrap(echo.NewHTTPError(http.StatusBadRequest, err.Error()), err), true
	case errors.Is(err, context.DeadlineExceeded):
		return wrap(echo.NewHTTPError(http.StatusGatewayTimeout, msgBackendTimeout), err), true
	case errors.Is(err, httpclient.ErrRequestFailed):
		return wrap(echo.NewHTTPError(http.StatusBadGateway, msgBackendUnavailable), err), true
	case errors.Is(err, httpclient.ErrDecodeResponse), errors.Is(err, httpclient.ErrResponseTooLarge):
		return wrap(echo.NewHTTPError(http.StatusBadGateway, msgBadBackendResponse), err), true
	default:
		return nil, false
	}
}

func wrap(httpErr *echo.HTTPError, cause error) *echo.HTTPError {
	var wrapped *echo.HTTPError
	if errors.As(httpErr.Wrap(cause), &wrapped) {
		return wrapped
	}

	return httpErr
}

func getErrorHandlerConfig(config []*ErrorHandlerConfig) *ErrorHandlerConfig {
	if len(config) > 0 && config[0] != nil {
		return config[0]
	}

	return &ErrorHandlerConfig{} //nolint:exhaustruct
}

func handleHTTPError(ectx *echo.Context, httpErr *echo.HTTPError, cfg *ErrorHandlerConfig) {
	if cfg.LogErrors && cfg.Logger != nil {
		logHTTPError(ectx, httpErr, cfg.Logger)
	}

	if cfg.CustomErrorResponse != nil {
		response := cfg.CustomErrorResponse(ectx, httpErr, httpErr.Code)
		_ = ectx.JSON(httpErr.Code, response)

		return
	}

	response := buildErrorResponse(httpErr, cfg)
	_ = ectx.JSON(httpErr.Code, response)
}

func buildErrorResponse(httpErr *echo.HTTPError, cfg *ErrorHandlerConfig) map[string]any {
	response := map[string]any{
		"message": httpErr.Message,
	}

	if cfg.IncludeInternalErrors {
		if internal := httpErr.Unwrap(); internal != nil {
			response["internal"] = internal.Error()
		}
	}

	return response
}

func logHTTPError(ectx *echo.Context, httpErr *echo.HTTPError, logger *zerolog.Logger) {
	logFields := map[string]any{
		"status_code": httpErr.Code,
		"message":     httpErr.Message,
		"path":        ectx.Request().URL.Path,
		"method":      ectx.Request().Method,
	}

	if id, ok := ectx.Get(ContextKeyRequestID).(string); ok && id != "" {
		logFields["request_id"] = id
	}

	if handler, ok := ectx.Get(ContextKeyHandler).(string); ok && handler != "" {
		logFields["handler"] = handler
	}

	loggerWithFields := logger.With().Fields(logFields).Logger()

	if internal := httpErr.Unwrap(); internal != nil {
		loggerWithFields = loggerWithFields.With().Err(internal).Logger()
	}

	switch {
	case httpErr.Code >= http.StatusInternalServerError:
		loggerWithFields.Error().Msg("Request failed with server error")
	case httpErr.Code >= http.StatusBadRequest:
		loggerWithFields.Warn().Msg("Request failed with client error")
	default:
		loggerWithFields.Info().Msg("HTTP error")
	}
}

func logError(ectx *echo.Context, err error, logger *zerolog.Logger) {
	logFields := map[string]any{
		"path":   ectx.Request().URL.Path,
		"method": ectx.Request().Method,
	}

	if id, ok := ectx.Get(ContextKeyRequestID).(string); ok && id != "" {
		logFields["request_id"] = id
	}

	logger.Error().
		Err(err).
		Fields(logFields).
		Msg("Unhandled error")
}
