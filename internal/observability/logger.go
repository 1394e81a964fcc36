package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig configures NewLogger.
type LogConfig struct {
	Level        string    `json:"level" yaml:"level"`                 // trace, debug, info, warn, error
	Format       string    `json:"format" yaml:"format"`               // json or pretty
	TimeFormat   string    `json:"time_format" yaml:"time_format"`     // defaults to RFC3339
	ReportCaller bool      `json:"report_caller" yaml:"report_caller"` // add file:line to each event
	Output       io.Writer `json:"-" yaml:"-"`                         // defaults to stderr
}

// NewLogger builds a zerolog logger from cfg and installs it as the global
// log.Logger. Unknown levels fall back to info.
func NewLogger(cfg LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}

	logger := ctx.Logger()
	log.Logger = logger
	return logger
}

// NopLogger returns a logger that discards everything.
func NopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
