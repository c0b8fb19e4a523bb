package zoo

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ngoguened/zoo/internal/logging"
)

// Option configures a Zoo at construction.
type Option func(*options)

// options holds the configurable collaborators of a Zoo.
type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// defaultOptions returns options with a discarding logger and no metrics.
func defaultOptions() options {
	return options{
		logger:     logging.NewNop(),
		registerer: nil,
	}
}

// WithLogger sets the logger. Passing nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers the zoo's metrics on reg. Without it, no metrics
// are collected.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
