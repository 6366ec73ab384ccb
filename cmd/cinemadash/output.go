package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: output format %q (want json or yaml)", ErrInvalidArgument, format)
	}
}

func render(w io.Writer, format string, value any) error {
	switch format {
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2) //nolint:mnd

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return encoder.Close() //nolint:wrapcheck
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}

		return nil
	}
}
