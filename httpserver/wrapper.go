package httpserver

import (
	"net/http"
	"reflect"
	"runtime"

	"github.com/andyle182810/cinemadash/middleware"
	"github.com/labstack/echo/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Wrapper adapts a typed handler to echo: it binds path and query values into
// TREQ, validates it, and sends the handler's result as JSON.
func Wrapper[TREQ any](wrapped func(*echo.Context, *TREQ) (any, *echo.HTTPError)) echo.HandlerFunc {
	handlerName := runtime.FuncForPC(reflect.ValueOf(wrapped).Pointer()).Name()

	return func(ectx *echo.Context) error {
		logger := log.With().
			Str("request_id", ectx.Request().Header.Get(middleware.HeaderXRequestID)).
			Str("path", ectx.Request().RequestURI).
			Str("handler", handlerName).
			Logger()

		logger.Debug().Msg("Request started")

		req, httpErr := bindAndValidate[TREQ](ectx, logger)
		if httpErr != nil {
			return httpErr
		}

		ectx.Set(middleware.ContextKeyBody, req)

		res, httpErr := wrapped(ectx, req)
		if httpErr != nil {
			return httpErr
		}

		logger.Debug().Msg("Request completed")

		return ectx.JSON(http.StatusOK, res)
	}
}

func bindAndValidate[TREQ any](ectx *echo.Context, logger zerolog.Logger) (*TREQ, *echo.HTTPError) {
	var req TREQ

	if err := ectx.Bind(&req); err != nil {
		logger.Warn().Err(err).Msg("Failed to bind request")

		return nil, HTTPError(http.StatusBadRequest, err, "invalid request")
	}

	if err := ectx.Validate(&req); err != nil {
		logger.Warn().Err(err).Msg("Request validation failed")

		return nil, wrapHTTPError(echo.NewHTTPError(http.StatusBadRequest, err.Error()), err)
	}

	return &req, nil
}
