package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Application
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Cinema backend
	BackendBaseURL      string        `env:"BACKEND_BASE_URL"       envDefault:"http://localhost:8001"`
	BackendTimeout      time.Duration `env:"BACKEND_TIMEOUT"        envDefault:"15s"`
	BackendHealthPath   string        `env:"BACKEND_HEALTH_PATH"    envDefault:"/health"`
	BackendRateLimit    float64       `env:"BACKEND_RATE_LIMIT"     envDefault:"0"`
	BackendRateBurst    int           `env:"BACKEND_RATE_BURST"     envDefault:"10"`
	BackendUseResty     bool          `env:"BACKEND_USE_RESTY"      envDefault:"false"`
	BackendMaxBodyBytes int64         `env:"BACKEND_MAX_BODY_BYTES" envDefault:"10485760"`

	// HTTP Server
	HTTPServerHost         string        `env:"HTTP_SERVER_HOST"          envDefault:"0.0.0.0"`
	HTTPServerPort         int           `env:"HTTP_SERVER_PORT"          envDefault:"8080"`
	HTTPEnableCORS         bool          `env:"HTTP_ENABLE_CORS"          envDefault:"true"`
	HTTPCORSOrigins        []string      `env:"HTTP_CORS_ORIGINS"         envDefault:"*"`
	HTTPBodyLimit          string        `env:"HTTP_BODY_LIMIT"           envDefault:"1M"`
	HTTPServerReadTimeout  time.Duration `env:"HTTP_SERVER_READ_TIMEOUT"  envDefault:"30s"`
	HTTPServerWriteTimeout time.Duration `env:"HTTP_SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPSkipRequestID      bool          `env:"HTTP_SKIP_REQUEST_ID"      envDefault:"false"`

	// Metric Server
	MetricServerHost         string        `env:"METRIC_SERVER_HOST"          envDefault:"0.0.0.0"`
	MetricServerPort         int           `env:"METRIC_SERVER_PORT"          envDefault:"9090"`
	MetricServerReadTimeout  time.Duration `env:"METRIC_SERVER_READ_TIMEOUT"  envDefault:"10s"`
	MetricServerWriteTimeout time.Duration `env:"METRIC_SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// Backend probe
	ProbeInterval time.Duration `env:"PROBE_INTERVAL" envDefault:"30s"`
	ProbeTimeout  time.Duration `env:"PROBE_TIMEOUT"  envDefault:"5s"`

	// Graceful Shutdown
	GracefulShutdownPeriod time.Duration `env:"GRACEFUL_SHUTDOWN_PERIOD" envDefault:"10s"`
}

func New() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	backendURL, err := url.Parse(c.BackendBaseURL)
	if err != nil || backendURL.Scheme == "" || backendURL.Host == "" {
		return fmt.Errorf("invalid BACKEND_BASE_URL %q", c.BackendBaseURL) //nolint:err113
	}

	if c.BackendRateLimit < 0 {
		return fmt.Errorf("BACKEND_RATE_LIMIT must not be negative, got %v", c.BackendRateLimit) //nolint:err113
	}

	return nil
}
