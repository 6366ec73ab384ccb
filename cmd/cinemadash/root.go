package main

import (
	"errors"
	"fmt"

	"github.com/andyle182810/cinemadash/internal/config"
	"github.com/spf13/cobra"
)

const serviceName = "cinemadash"

var ErrInvalidArgument = errors.New("invalid argument")

type options struct {
	backendURL string
	output     string
}

func newRootCmd() *cobra.Command {
	opts := &options{
		backendURL: "",
		output:     formatJSON,
	}

	root := &cobra.Command{ //nolint:exhaustruct
		Use:           serviceName,
		Short:         "Indian cinema dashboard gateway and backend client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return checkFormat(opts.output)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.backendURL, "backend-url", "", "cinema backend base URL (overrides BACKEND_BASE_URL)")
	flags.StringVarP(&opts.output, "output", "o", formatJSON, "output format: json or yaml")

	root.AddCommand(
		newServeCmd(opts),
		newStatsCmd(opts),
		newTopCmd(opts),
		newProfitCmd(opts),
		newLanguagesCmd(opts),
		newMoviesCmd(opts),
		newMovieCmd(opts),
		newActorsCmd(opts),
		newCrewCmd(opts),
	)

	return root
}

// load reads the environment configuration and applies flag overrides.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if o.backendURL != "" {
		cfg.BackendBaseURL = o.backendURL
	}

	return cfg, nil
}
