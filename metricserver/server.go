package metricserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

const (
	metricsPath = "/metrics"
	statusPath  = "/status"
)

var ErrNotRunning = errors.New("metricserver: server is not running")

// StatusFunc reports extra readiness detail for /status, e.g. the last backend
// probe result. A non-nil error turns the answer into a 503.
type StatusFunc func() (map[string]any, error)

type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	GracePeriod  time.Duration
	Gatherer     prometheus.Gatherer
	Status       StatusFunc
}

type Server struct {
	gracePeriod  time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
	address      string
	echo         *echo.Echo

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

func New(cfg *Config) *Server {
	ech := echo.New()

	ech.GET(statusPath, statusHandler(cfg.Status))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	ech.GET(metricsPath, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	return &Server{ //nolint:exhaustruct
		gracePeriod:  cfg.GracePeriod,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		address:      net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		echo:         ech,
	}
}

// NewMiddleware instruments gateway requests into registerer under namespace.
func NewMiddleware(namespace string, registerer prometheus.Registerer) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{ //nolint:exhaustruct
		Namespace:  namespace,
		Subsystem:  "http",
		Registerer: registerer,
	})
}

func statusHandler(status StatusFunc) echo.HandlerFunc {
	return func(ctx *echo.Context) error {
		body := map[string]any{"status": "ok"}

		if status == nil {
			return ctx.JSON(http.StatusOK, body)
		}

		details, err := status()
		for key, value := range details {
			body[key] = value
		}

		if err != nil {
			body["status"] = "degraded"
			body["error"] = err.Error()

			return ctx.JSON(http.StatusServiceUnavailable, body)
		}

		return ctx.JSON(http.StatusOK, body)
	}
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(_ context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}

	httpServer := &http.Server{ //nolint:exhaustruct
		Handler:      s.echo,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	s.mu.Lock()
	s.httpServer = httpServer
	s.listener = listener
	s.mu.Unlock()

	log.Info().Str("address", listener.Addr().String()).Msg("Starting metrics server")

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server encountered a fatal error")
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer == nil {
		return ErrNotRunning
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.gracePeriod)
	defer cancel()

	log.Info().Msg("Initiating graceful shutdown of metrics server")

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to gracefully shut down metrics server")

		return fmt.Errorf("failed to stop metrics server: %w", err)
	}

	log.Info().Msg("Metrics server shutdown complete")

	return nil
}

func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.address
}

func (s *Server) Name() string {
	return "metric"
}
