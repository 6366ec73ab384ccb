package dashboard

import (
	"context"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type MovieOverview struct {
	Details          cinema.MovieDetails `json:"details"          yaml:"details"`
	Profit           cinema.ProfitReport `json:"profit"           yaml:"profit"`
	ProfitPercentage decimal.Decimal     `json:"profitPercentage" yaml:"profit_percentage"`
	Tier             cinema.ProfitTier   `json:"tier"             yaml:"tier"`
}

// MovieOverview fetches a movie's details and its profit analysis at the same
// time. Both must succeed.
func (s *Service) MovieOverview(ctx context.Context, movieID int64) (MovieOverview, error) {
	var (
		g       errgroup.Group
		details cinema.MovieDetails
		profit  cinema.ProfitReport

		detailsErr, profitErr error
	)

	task(&g, &detailsErr, "details", func() (err error) {
		details, err = s.backend.MovieDetails(ctx, movieID)

		return err
	})

	task(&g, &profitErr, "profit", func() (err error) {
		profit, err = s.backend.MovieProfit(ctx, movieID)

		return err
	})

	if err := wait(&g, &detailsErr, &profitErr); err != nil {
		s.logger.Error().Err(err).Int64("movie_id", movieID).Msg("Failed to load movie overview")

		return MovieOverview{}, err
	}

	budget := profit.Budget
	if !budget.Valid {
		budget = details.Movie.Budget
	}

	percentage := cinema.ProfitPercentage(budget.Decimal, profit.TotalCollection.Decimal)

	return MovieOverview{
		Details:          details,
		Profit:           profit,
		ProfitPercentage: percentage,
		Tier:             cinema.TierOf(percentage),
	}, nil
}

type Analytics struct {
	TopMovies     []cinema.TopMovie  `json:"topMovies"     yaml:"top_movies"`
	ProfitLeaders []cinema.ProfitRow `json:"profitLeaders" yaml:"profit_leaders"`
}

// Analytics loads both analytics rankings concurrently.
func (s *Service) Analytics(ctx context.Context, limit int) (Analytics, error) {
	var (
		g      errgroup.Group
		top    []cinema.TopMovie
		profit []cinema.ProfitRow

		topErr, profitErr error
	)

	task(&g, &topErr, "top movies", func() (err error) {
		top, err = s.backend.TopMovies(ctx, limit)

		return err
	})

	task(&g, &profitErr, "profit analysis", func() (err error) {
		profit, err = s.backend.ProfitAnalysis(ctx, limit)

		return err
	})

	if err := wait(&g, &topErr, &profitErr); err != nil {
		s.logger.Error().Err(err).Msg("Failed to load analytics")

		return Analytics{}, err
	}

	return Analytics{TopMovies: top, ProfitLeaders: profit}, nil
}

type Snapshot struct {
	Statistics Statistics      `json:"statistics" yaml:"statistics"`
	Analytics  Analytics       `json:"analytics"  yaml:"analytics"`
	Languages  []LanguageShare `json:"languages"  yaml:"languages"`
}

// Snapshot loads everything the dashboard page shows in a single fan-out of
// six calls. Language names are optional, as in LanguageCollection.
func (s *Service) Snapshot(ctx context.Context, limit int) (Snapshot, error) {
	var (
		g         errgroup.Group
		movies    []cinema.Movie
		producers []cinema.Producer
		records   []cinema.BoxOffice
		languages []cinema.Language
		top       []cinema.TopMovie
		profit    []cinema.ProfitRow

		moviesErr, producersErr, recordsErr, languagesErr, topErr, profitErr error
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

	task(&g, &languagesErr, "languages", func() (err error) {
		languages, err = s.backend.Languages(ctx, cinema.Page{})

		return err
	})

	task(&g, &topErr, "top movies", func() (err error) {
		top, err = s.backend.TopMovies(ctx, limit)

		return err
	})

	task(&g, &profitErr, "profit analysis", func() (err error) {
		profit, err = s.backend.ProfitAnalysis(ctx, limit)

		return err
	})

	if err := wait(&g, &moviesErr, &producersErr, &recordsErr, &topErr, &profitErr); err != nil {
		s.logger.Error().Err(err).Msg("Failed to load dashboard snapshot")

		return Snapshot{}, err
	}

	if languagesErr != nil {
		s.logger.Warn().Err(languagesErr).Msg("Language names unavailable, labelling by id")
	}

	return Snapshot{
		Statistics: Summarize(movies, producers, records, s.recentCount),
		Analytics:  Analytics{TopMovies: top, ProfitLeaders: profit},
		Languages:  GroupByLanguage(movies, records, languages),
	}, nil
}
