package dashboard

import (
	"context"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Statistics struct {
	TotalMovies     int             `json:"totalMovies"     yaml:"total_movies"`
	TotalProducers  int             `json:"totalProducers"  yaml:"total_producers"`
	TotalCollection decimal.Decimal `json:"totalCollection" yaml:"total_collection"`
	CollectionLabel string          `json:"collectionLabel" yaml:"collection_label"`
	AverageRating   decimal.Decimal `json:"averageRating"   yaml:"average_rating"`
	RatedMovies     int             `json:"ratedMovies"     yaml:"rated_movies"`
	RecentMovies    []cinema.Movie  `json:"recentMovies"    yaml:"recent_movies"`
}

// Statistics loads movies, producers and box-office records concurrently and
// derives the headline figures.
func (s *Service) Statistics(ctx context.Context) (Statistics, error) {
	var (
		g         errgroup.Group
		movies    []cinema.Movie
		producers []cinema.Producer
		records   []cinema.BoxOffice

		moviesErr, producersErr, recordsErr error
	)

	task(&g, &moviesErr, "movies", func() (err error) {
		movies, err = s.backend.Movies(ctx, cinema.MovieFilter{})

		return err
	})

	task(&g, &producersErr, "producers", func() (err error) {
		producers, err = s.backend.Producers(ctx, cinema.ProducerFilter{})

		return err
	})

	task(&g, &recordsErr, "box office", func() (err error) {
		records, err = s.backend.BoxOfficeRecords(ctx, cinema.BoxOfficeFilter{})

		return err
	})

	if err := wait(&g, &moviesErr, &producersErr, &recordsErr); err != nil {
		s.logger.Error().Err(err).Msg("Failed to load dashboard statistics")

		return Statistics{}, err
	}

	return Summarize(movies, producers, records, s.recentCount), nil
}

// Summarize computes the statistics from already loaded lists. Only rated
// movies count towards the average; unset collections count as zero.
func Summarize(
	movies []cinema.Movie,
	producers []cinema.Producer,
	records []cinema.BoxOffice,
	recentCount int,
) Statistics {
	total := decimal.Zero

	for _, record := range records {
		if record.TotalCollection.Valid {
			total = total.Add(record.TotalCollection.Decimal)
		}
	}

	ratingSum := decimal.Zero
	rated := 0

	for _, movie := range movies {
		if movie.IMDBRating.Valid && !movie.IMDBRating.Decimal.IsZero() {
			ratingSum = ratingSum.Add(movie.IMDBRating.Decimal)
			rated++
		}
	}

	average := decimal.Zero
	if rated > 0 {
		average = ratingSum.Div(decimal.NewFromInt(int64(rated))).Round(1)
	}

	recent := movies[:max(0, min(recentCount, len(movies)))]

	return Statistics{
		TotalMovies:     len(movies),
		TotalProducers:  len(producers),
		TotalCollection: total,
		CollectionLabel: cinema.FormatCrores(decimal.NewNullDecimal(total)),
		AverageRating:   average,
		RatedMovies:     rated,
		RecentMovies:    append([]cinema.Movie{}, recent...),
	}
}
