package engine

import (
	"io"
	"log/slog"
)

// Option configures an engine.
type Option interface{ apply(e *T) }

var defaults = []Option{ //nolint:gochecknoglobals
	withOutput(io.Discard),
	withLogger(nil),
}

func (e *engine) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(e)
	}

	for _, opt := range opts {
		if opt != nil {
			opt.apply(e)
		}
	}
}

// WithOutput directs the trace to w.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithLogger sets the logger for debug records. Nil selects slog's default.
func WithLogger(l *slog.Logger) Option { return withLogger(l) }

type outputOption struct{ io.Writer }
type loggerOption struct{ *slog.Logger }

func withOutput(w io.Writer) outputOption    { return outputOption{w} }
func withLogger(l *slog.Logger) loggerOption { return loggerOption{l} }

func (o outputOption) apply(e *T) {
	e.out = o.Writer
}

func (o loggerOption) apply(e *T) {
	e.logger = o.Logger
	if e.logger == nil {
		e.logger = slog.Default()
	}
}
