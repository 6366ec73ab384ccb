package logutil

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

func ParseZerologLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger builds a logger writing to w. Any format other than "console"
// produces JSON lines.
func NewLogger(w io.Writer, format, service string) zerolog.Logger {
	if strings.EqualFold(format, FormatConsole) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339} //nolint:exhaustruct
	}

	ctx := zerolog.New(w).With().Timestamp()
	if service != "" {
		ctx = ctx.Str("service", service)
	}

	return ctx.Logger()
}

// Setup installs the process-wide logger on stderr and sets the global level.
func Setup(level, format, service string) {
	zerolog.SetGlobalLevel(ParseZerologLevel(level))
	log.Logger = NewLogger(os.Stderr, format, service)
}
