// Package logger builds the slog logger used for diagnostic output. The CLI
// keeps its normal output clean; anything logged here goes to stderr and is
// warn-level unless verbose mode raises it.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures logger creation.
type Option func(*config)

type config struct {
	level  slog.Level
	output io.Writer
}

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithVerbose drops the level to debug.
func WithVerbose() Option {
	return func(c *config) { c.level = slog.LevelDebug }
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// New creates a text-format slog logger. Defaults: warn level, stderr.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelWarn,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return slog.New(slog.NewTextHandler(cfg.output, &slog.HandlerOptions{Level: cfg.level}))
}
