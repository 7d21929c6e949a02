package polyzero

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

// WithOutput replaces the logger's output writer. The current level is kept.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.Logger = ze.Logger.Output(output)
	}
}

// WithLevel sets the minimum level which the logger emits.
func WithLevel(level Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		ze := logger.(*zerologLogger)
		ze.Logger = ze.Logger.Level(zerolog.Level(level))
	}
}

// WithSetupFn gives direct access to the underlying zerolog logger, e.g. to add
// a timestamp hook.
func WithSetupFn(fn func(logger *zerolog.Logger)) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		fn(&logger.(*zerologLogger).Logger)
	}
}
