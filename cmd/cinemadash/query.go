package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/dashboard"
	"github.com/andyle182810/cinemadash/form"
	"github.com/andyle182810/cinemadash/logutil"
	"github.com/spf13/cobra"
)

// session is what a one-shot query command needs: the typed client and the
// dashboard service over it. Logs go to the command's stderr.
type session struct {
	cinema    *cinema.Client
	dashboard *dashboard.Service
}

func (o *options) connect(cmd *cobra.Command) (*session, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}

	logger := logutil.NewLogger(cmd.ErrOrStderr(), cfg.LogFormat, serviceName).
		Level(logutil.ParseZerologLevel(cfg.LogLevel))

	_, client, err := newBackend(cfg, logger, nil)
	if err != nil {
		return nil, err
	}

	return &session{
		cinema:    client,
		dashboard: dashboard.New(client, dashboard.WithLogger(logger)),
	}, nil
}

// queryCmd wires a command that loads one value and renders it.
func queryCmd[T any](opts *options, cmd *cobra.Command, load func(ctx context.Context, s *session) (T, error)) *cobra.Command {
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		s, err := opts.connect(cmd)
		if err != nil {
			return err
		}

		value, err := load(cmd.Context(), s)
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), opts.output, value)
	}

	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	return queryCmd(opts, &cobra.Command{ //nolint:exhaustruct
		Use:   "stats",
		Short: "Show headline dashboard statistics",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, s *session) (dashboard.Statistics, error) {
		return s.dashboard.Statistics(ctx)
	})
}

func newTopCmd(opts *options) *cobra.Command {
	var limit int

	cmd := queryCmd(opts, &cobra.Command{ //nolint:exhaustruct
		Use:   "top",
		Short: "List the top grossing movies",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, s *session) ([]cinema.TopMovie, error) {
		return s.cinema.TopMovies(ctx, limit)
	})

	cmd.Flags().IntVar(&limit, "limit", cinema.DefaultAnalyticsLimit, "number of movies")

	return cmd
}

func newProfitCmd(opts *options) *cobra.Command {
	var limit int

	cmd := queryCmd(opts, &cobra.Command{ //nolint:exhaustruct
		Use:   "profit",
		Short: "List movies by profit percentage",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, s *session) ([]cinema.ProfitRow, error) {
		return s.cinema.ProfitAnalysis(ctx, limit)
	})

	cmd.Flags().IntVar(&limit, "limit", cinema.DefaultAnalyticsLimit, "number of movies")

	return cmd
}

func newLanguagesCmd(opts *options) *cobra.Command {
	return queryCmd(opts, &cobra.Command{ //nolint:exhaustruct
		Use:   "languages",
		Short: "Show box-office collection grouped by language",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, s *session) ([]dashboard.LanguageShare, error) {
		return s.dashboard.LanguageCollection(ctx)
	})
}

func newMoviesCmd(opts *options) *cobra.Command {
	var title, languageID, producerID, skip, limit string

	cmd := queryCmd(opts, &cobra.Command{ //nolint:exhaustruct
		Use:   "movies",
		Short: "List movies",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, s *session) ([]cinema.Movie, error) {
		return s.cinema.Movies(ctx, cinema.MovieFilter{
			Title:      title,
			LanguageID: form.Int64(languageID),
			ProducerID: form.Int64(producerID),
			Skip:       form.Int(skip),
			Limit:      form.Int(limit),
		})
	})

	flags := cmd.Flags()
	flags.StringVar(&title, "title", "", "title substring")
	flags.StringVar(&languageID, "language", "", "language id")
	flags.StringVar(&producerID, "producer", "", "producer id")
	flags.StringVar(&skip, "skip", "", "records to skip")
	flags.StringVar(&limit, "limit", "", "maximum records")

	return cmd
}

func newMovieCmd(opts *options) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "movie <id>",
		Short: "Show a movie with its cast, crew and profit analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := form.RequireInt64("id", args[0])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			s, err := opts.connect(cmd)
			if err != nil {
				return err
			}

			overview, err := s.dashboard.MovieOverview(cmd.Context(), movieID)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return render(cmd.OutOrStdout(), opts.output, overview)
		},
	}
}

func newActorsCmd(opts *options) *cobra.Command {
	var name, gender string

	cmd := queryCmd(opts, &cobra.Command{ //nolint:exhaustruct
		Use:   "actors",
		Short: "List actors, optionally filtered by name and gender",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, s *session) ([]cinema.Actor, error) {
		filter := cinema.ActorFilter{Name: name, Gender: cinema.Gender(gender)} //nolint:exhaustruct
		if gender != "" && !filter.Gender.Valid() {
			return nil, enumError("gender", gender, cinema.Genders())
		}

		actors, err := s.cinema.Actors(ctx, cinema.ActorFilter{}) //nolint:exhaustruct
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return cinema.FilterActors(actors, filter), nil
	})

	cmd.Flags().StringVar(&name, "name", "", "name substring, case-insensitive")
	cmd.Flags().StringVar(&gender, "gender", "", "one of "+strings.Join(cinema.Strings(cinema.Genders()), ", "))

	return cmd
}

func newCrewCmd(opts *options) *cobra.Command {
	var name, role string

	cmd := queryCmd(opts, &cobra.Command{ //nolint:exhaustruct
		Use:   "crew",
		Short: "List crew members, optionally filtered by name and role",
		Args:  cobra.NoArgs,
	}, func(ctx context.Context, s *session) ([]cinema.CrewMember, error) {
		filter := cinema.CrewFilter{Name: name, Role: cinema.CrewRole(role)}
		if role != "" && !filter.Role.Valid() {
			return nil, enumError("role", role, cinema.CrewRoles())
		}

		members, err := s.cinema.Crew(ctx, cinema.CrewFilter{}) //nolint:exhaustruct
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return cinema.FilterCrew(members, filter), nil
	})

	cmd.Flags().StringVar(&name, "name", "", "name substring, case-insensitive")
	cmd.Flags().StringVar(&role, "role", "", "one of "+strings.Join(cinema.Strings(cinema.CrewRoles()), ", "))

	return cmd
}

func enumError[T ~string](flag, value string, allowed []T) error {
	return fmt.Errorf("%w: %s %q (want one of %s)",
		ErrInvalidArgument, flag, value, strings.Join(cinema.Strings(allowed), ", "))
}
