package main

import (
	"fmt"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/endpoint"
	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/andyle182810/cinemadash/internal/config"
	"github.com/andyle182810/cinemadash/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	backendName      = "cinema"
	metricsNamespace = "cinemadash"
)

// newBackend registers the cinema backend and returns the registry together
// with the typed client over it. A nil registerer disables client metrics.
func newBackend(
	cfg *config.Config,
	logger zerolog.Logger,
	registerer prometheus.Registerer,
) (*httpclient.Registry, *cinema.Client, error) {
	opts := []httpclient.Option{
		httpclient.WithCatalog(endpoint.Cinema()),
		httpclient.WithTimeout(cfg.BackendTimeout),
		httpclient.WithMaxResponseSize(cfg.BackendMaxBodyBytes),
		httpclient.WithRequestIDKey(middleware.RequestIDKey),
		httpclient.WithLogger(logger),
	}

	if cfg.BackendUseResty {
		opts = append(opts, httpclient.WithDoer(httpclient.NewRestyDoer(httpclient.NewRestyClient(cfg.BackendTimeout))))
	}

	if cfg.BackendRateLimit > 0 {
		opts = append(opts, httpclient.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.BackendRateLimit), cfg.BackendRateBurst)))
	}

	if registerer != nil {
		metrics, err := httpclient.NewMetrics(metricsNamespace, registerer)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to register backend metrics: %w", err)
		}

		opts = append(opts, httpclient.WithMetrics(metrics))
	}

	registry := httpclient.NewRegistry(opts...)
	api := registry.Register(backendName, cfg.BackendBaseURL, cfg.BackendHealthPath)

	return registry, cinema.New(api), nil
}
