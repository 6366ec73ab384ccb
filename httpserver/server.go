package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/andyle182810/cinemadash/middleware"
	"github.com/andyle182810/cinemadash/validator"
	"github.com/labstack/echo/v5"
	echomiddleware "github.com/labstack/echo/v5/middleware"
	"github.com/rs/zerolog/log"
)

const (
	kilobyte         = 1 << 10
	megabyte         = 1 << 20
	gigabyte         = 1 << 30
	defaultBodyLimit = 10 * megabyte
)

var ErrNotRunning = errors.New("httpserver: server is not running")

type Config struct {
	Host         string
	Port         int
	EnableCors   bool
	AllowOrigins []string
	BodyLimit    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	GracePeriod  time.Duration
}

type Option func(*echo.Echo)

// WithMiddleware installs extra middleware ahead of the routes, e.g. the
// prometheus instrumentation from metricserver.
func WithMiddleware(middlewares ...echo.MiddlewareFunc) Option {
	return func(e *echo.Echo) {
		e.Use(middlewares...)
	}
}

type Server struct {
	address      string
	gracePeriod  time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
	Echo         *echo.Echo
	Root         *echo.Group

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

func New(cfg *Config, opts ...Option) *Server {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(echo.DefaultHTTPErrorHandler(false))

	e.Pre(middleware.RequestLogger(log.Logger, SafeLogFieldsExtractor))
	e.Pre(echomiddleware.BodyLimit(parseBodyLimit(cfg.BodyLimit)))

	if cfg.EnableCors {
		e.Use(echomiddleware.CORS(cfg.AllowOrigins...))
	}

	for _, opt := range opts {
		opt(e)
	}

	root := e.Group("")
	address := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	return &Server{ //nolint:exhaustruct
		gracePeriod:  cfg.GracePeriod,
		address:      address,
		Echo:         e,
		Root:         root,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func parseBodyLimit(limit string) int64 {
	if limit == "" {
		return defaultBodyLimit
	}

	multiplier := int64(1)
	unit := limit[len(limit)-1:]

	switch unit {
	case "K", "k":
		multiplier = kilobyte
		limit = limit[:len(limit)-1]
	case "M", "m":
		multiplier = megabyte
		limit = limit[:len(limit)-1]
	case "G", "g":
		multiplier = gigabyte
		limit = limit[:len(limit)-1]
	}

	size, err := strconv.ParseInt(limit, 10, 64)
	if err != nil || size <= 0 {
		return defaultBodyLimit
	}

	return size * multiplier
}

// Start binds the listen address before returning so that a port conflict is
// reported to the caller; serving then continues in the background.
func (s *Server) Start(_ context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}

	httpServer := &http.Server{ //nolint:exhaustruct
		Handler:      s.Echo,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	s.mu.Lock()
	s.httpServer = httpServer
	s.listener = listener
	s.mu.Unlock()

	log.Info().
		Str("address", listener.Addr().String()).
		Msg("The HTTP server is being started")

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	log.Info().
		Msg("The graceful shutdown of HTTP server is being initiated")

	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer == nil {
		return ErrNotRunning
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.gracePeriod)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to gracefully stop HTTP server")

		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}

	log.Info().
		Msg("The HTTP server shutdown has been completed successfully")

	return nil
}

// Addr is the bound address once Start has returned, otherwise the configured
// one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.address
}

func (s *Server) Name() string {
	return "http"
}

func SafeLogFieldsExtractor(ctx *echo.Context) map[string]any {
	fields := make(map[string]any)

	if handler := middleware.GetHandler(ctx); handler != "" {
		fields["handler"] = handler
	}

	if req := ctx.Get(middleware.ContextKeyBody); req != nil {
		// Only the request type is logged, never its content.
		fields["has_body"] = true
		fields["body_type"] = fmt.Sprintf("%T", req)
	} else {
		fields["has_body"] = false
	}

	return fields
}

func RequestIDSkipper(skip bool) echomiddleware.Skipper {
	return func(_ *echo.Context) bool {
		return skip
	}
}
