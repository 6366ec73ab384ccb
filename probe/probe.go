// Package probe periodically checks that the registered backends answer their
// health endpoint and keeps the latest result for status reporting.
package probe

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrNotProbed = errors.New("probe: backends not probed yet")

type Pinger interface {
	Names() []string
	PingAll(ctx context.Context) map[string]error
}

var _ Pinger = (*httpclient.Registry)(nil)

// Result is the outcome of one probe round.
type Result struct {
	CheckedAt time.Time
	Failures  map[string]error
}

func (r Result) Healthy() bool {
	return len(r.Failures) == 0
}

// Err joins the failures in backend name order, or returns nil.
func (r Result) Err() error {
	errs := make([]error, 0, len(r.Failures))
	for _, name := range slices.Sorted(maps.Keys(r.Failures)) {
		errs = append(errs, fmt.Errorf("%s: %w", name, r.Failures[name]))
	}

	return errors.Join(errs...)
}

// Prober is a workerpool.Executor.
type Prober struct {
	pinger Pinger
	logger zerolog.Logger
	up     *prometheus.GaugeVec
	now    func() time.Time

	namespace  string
	registerer prometheus.Registerer

	mu   sync.RWMutex
	last *Result
}

type Option func(*Prober)

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Prober) {
		p.logger = logger
	}
}

// WithRegisterer exports a backend_up{backend} gauge.
func WithRegisterer(namespace string, registerer prometheus.Registerer) Option {
	return func(p *Prober) {
		p.namespace = namespace
		p.registerer = registerer
	}
}

func New(pinger Pinger, opts ...Option) *Prober {
	p := &Prober{
		pinger:     pinger,
		logger:     log.Logger,
		up:         nil,
		now:        time.Now,
		namespace:  "",
		registerer: nil,
		mu:         sync.RWMutex{},
		last:       nil,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.registerer != nil {
		p.registerGauge()
	}

	return p
}

func (p *Prober) registerGauge() {
	up := prometheus.NewGaugeVec(prometheus.GaugeOpts{ //nolint:exhaustruct
		Namespace: p.namespace,
		Name:      "backend_up",
		Help:      "Whether the backend answered its last health probe.",
	}, []string{"backend"})

	if err := p.registerer.Register(up); err != nil {
		p.logger.Warn().Err(err).Msg("Backend probe gauge not registered")

		return
	}

	p.up = up
}

// Execute runs one probe round. It returns the joined failures so the worker
// pool logs them, and records the round either way.
func (p *Prober) Execute(ctx context.Context) error {
	result := Result{
		CheckedAt: p.now(),
		Failures:  p.pinger.PingAll(ctx),
	}

	p.mu.Lock()
	p.last = &result
	p.mu.Unlock()

	if p.up != nil {
		for _, name := range p.pinger.Names() {
			value := 1.0
			if _, failed := result.Failures[name]; failed {
				value = 0
			}

			p.up.WithLabelValues(name).Set(value)
		}
	}

	if result.Healthy() {
		p.logger.Debug().Msg("All backends healthy")

		return nil
	}

	return result.Err()
}

func (p *Prober) Last() (Result, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.last == nil {
		return Result{}, false
	}

	return *p.last, true
}

// Status reports the last round in the shape metricserver's /status expects.
func (p *Prober) Status() (map[string]any, error) {
	result, ok := p.Last()
	if !ok {
		return map[string]any{"backends": p.pinger.Names()}, ErrNotProbed
	}

	details := map[string]any{
		"backends":  p.pinger.Names(),
		"checkedAt": result.CheckedAt.UTC().Format(time.RFC3339),
	}

	return details, result.Err()
}
