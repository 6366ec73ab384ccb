package main

import (
	"fmt"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/dashboard"
	"github.com/andyle182810/cinemadash/gateway"
	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/andyle182810/cinemadash/httpserver"
	"github.com/andyle182810/cinemadash/internal/config"
	"github.com/andyle182810/cinemadash/logutil"
	"github.com/andyle182810/cinemadash/metricserver"
	"github.com/andyle182810/cinemadash/probe"
	"github.com/andyle182810/cinemadash/runner"
	"github.com/andyle182810/cinemadash/workerpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const probePoolName = "backend-probe"

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "serve",
		Short: "Run the dashboard gateway, the metric server and the backend probe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			logutil.Setup(cfg.LogLevel, cfg.LogFormat, serviceName)

			app, err := newApplication(cfg, prometheus.NewRegistry())
			if err != nil {
				return err
			}

			if err := app.newRunner().Run(cmd.Context()); err != nil {
				return fmt.Errorf("runner: %w", err)
			}

			log.Info().Msg("Application shutdown complete")

			return nil
		},
	}
}

type application struct {
	cfg       *config.Config
	metrics   *prometheus.Registry
	backends  *httpclient.Registry
	cinema    *cinema.Client
	dashboard *dashboard.Service
	prober    *probe.Prober
}

func newApplication(cfg *config.Config, metrics *prometheus.Registry) (*application, error) {
	if err := metrics.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}

	backends, client, err := newBackend(cfg, log.Logger, metrics)
	if err != nil {
		return nil, err
	}

	return &application{
		cfg:       cfg,
		metrics:   metrics,
		backends:  backends,
		cinema:    client,
		dashboard: dashboard.New(client),
		prober:    probe.New(backends, probe.WithRegisterer(metricsNamespace, metrics)),
	}, nil
}

func (app *application) newRunner() *runner.Runner {
	return runner.New(
		runner.WithCoreService(app.newMetricServer()),
		runner.WithCoreService(app.newHTTPServer()),
		runner.WithCoreService(app.newProbePool()),
		runner.WithShutdownTimeout(app.cfg.GracefulShutdownPeriod),
	)
}

func (app *application) newHTTPServer() *httpserver.Server {
	httpCfg := &httpserver.Config{
		Host:         app.cfg.HTTPServerHost,
		Port:         app.cfg.HTTPServerPort,
		EnableCors:   app.cfg.HTTPEnableCORS,
		AllowOrigins: app.cfg.HTTPCORSOrigins,
		BodyLimit:    app.cfg.HTTPBodyLimit,
		ReadTimeout:  app.cfg.HTTPServerReadTimeout,
		WriteTimeout: app.cfg.HTTPServerWriteTimeout,
		GracePeriod:  app.cfg.GracefulShutdownPeriod,
	}

	svr := httpserver.New(httpCfg, httpserver.WithMiddleware(metricserver.NewMiddleware(metricsNamespace, app.metrics)))

	gateway.New(app.cinema, app.dashboard).
		Register(svr.Root, httpserver.RequestIDSkipper(app.cfg.HTTPSkipRequestID))

	return svr
}

func (app *application) newMetricServer() *metricserver.Server {
	metricCfg := &metricserver.Config{
		Host:         app.cfg.MetricServerHost,
		Port:         app.cfg.MetricServerPort,
		ReadTimeout:  app.cfg.MetricServerReadTimeout,
		WriteTimeout: app.cfg.MetricServerWriteTimeout,
		GracePeriod:  app.cfg.GracefulShutdownPeriod,
		Gatherer:     app.metrics,
		Status:       app.prober.Status,
	}

	return metricserver.New(metricCfg)
}

func (app *application) newProbePool() *workerpool.WorkerPool {
	return workerpool.New(
		app.prober,
		workerpool.WithName(probePoolName),
		workerpool.WithWorkerCount(1),
		workerpool.WithTickInterval(app.cfg.ProbeInterval),
		workerpool.WithExecutionTimeout(app.cfg.ProbeTimeout),
		workerpool.WithRunOnStart(),
	)
}
