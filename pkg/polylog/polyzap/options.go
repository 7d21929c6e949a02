package polyzap

import (
	"io"

	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

// WithOutput sets the writer which the logger encodes JSON lines to.
func WithOutput(output io.Writer) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zapLogger).writeSyncer = zapcore.AddSync(output)
	}
}

// WithLevel sets the minimum level which the logger emits.
func WithLevel(level Level) polylog.LoggerOption {
	return func(logger polylog.Logger) {
		logger.(*zapLogger).level = zapcore.Level(level.Int())
	}
}
