// Package dashboard aggregates several cinema backend calls into the figures
// the admin dashboard shows. Calls in one aggregation run concurrently; the
// aggregation waits for every call and fails if any of them failed.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultRecentCount = 5

// Backend is the slice of the cinema client the dashboard reads from.
type Backend interface {
	Movies(ctx context.Context, filter cinema.MovieFilter) ([]cinema.Movie, error)
	Producers(ctx context.Context, filter cinema.ProducerFilter) ([]cinema.Producer, error)
	BoxOfficeRecords(ctx context.Context, filter cinema.BoxOfficeFilter) ([]cinema.BoxOffice, error)
	Languages(ctx context.Context, page cinema.Page) ([]cinema.Language, error)
	TopMovies(ctx context.Context, limit int) ([]cinema.TopMovie, error)
	ProfitAnalysis(ctx context.Context, limit int) ([]cinema.ProfitRow, error)
	MovieDetails(ctx context.Context, id int64) (cinema.MovieDetails, error)
	MovieProfit(ctx context.Context, id int64) (cinema.ProfitReport, error)
}

var _ Backend = (*cinema.Client)(nil)

type Service struct {
	backend     Backend
	logger      zerolog.Logger
	recentCount int
}

type Option func(*Service)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithRecentCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.recentCount = count
		}
	}
}

func New(backend Backend, opts ...Option) *Service {
	s := &Service{
		backend:     backend,
		logger:      log.Logger,
		recentCount: DefaultRecentCount,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// task runs fn in g and stores its error in dst under a label. The group has
// no shared context, so one failure never cancels a sibling call.
func task(g *errgroup.Group, dst *error, label string, fn func() error) {
	g.Go(func() error {
		if err := fn(); err != nil {
			*dst = fmt.Errorf("%s: %w", label, err)
		}

		return *dst
	})
}

// wait blocks until every task finished and joins all their errors.
func wait(g *errgroup.Group, errs ...*error) error {
	_ = g.Wait()

	joined := make([]error, 0, len(errs))
	for _, err := range errs {
		joined = append(joined, *err)
	}

	return errors.Join(joined...)
}
