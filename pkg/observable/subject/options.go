package subject

import (
	"context"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
	_ "github.com/pokt-network/rxsubjects/pkg/polylog/polyzero"
)

// Option configures a subject at construction.
type Option func(cfg *subjectConfig)

type subjectConfig struct {
	name    string
	logger  polylog.Logger
	metrics Metrics
}

// WithName sets the name which the subject uses as its metrics label and
// logger field. It defaults to the variant name (e.g. "behavior").
func WithName(name string) Option {
	return func(cfg *subjectConfig) {
		cfg.name = name
	}
}

// WithLogger sets the logger used for lifecycle debug logs. It defaults to
// polylog.DefaultContextLogger.
func WithLogger(logger polylog.Logger) Option {
	return func(cfg *subjectConfig) {
		cfg.logger = logger
	}
}

// WithMetrics sets the Metrics sink. It defaults to a no-op.
func WithMetrics(metrics Metrics) Option {
	return func(cfg *subjectConfig) {
		cfg.metrics = metrics
	}
}

func newSubjectConfig(variant string, opts []Option) subjectConfig {
	cfg := subjectConfig{
		name:    variant,
		logger:  polylog.Ctx(context.Background()),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = cfg.logger.With("subject", cfg.name)

	return cfg
}
