package polyzap

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

var _ polylog.Logger = (*zapLogger)(nil)

type zapLogger struct {
	// NB: Default (0) is Info.
	level       zapcore.Level
	writeSyncer zapcore.WriteSyncer
	logger      *zap.Logger
}

// NewLogger constructs a zap-backed polylog.Logger which writes JSON lines to
// os.Stderr at the Info level unless configured otherwise.
func NewLogger(
	opts ...polylog.LoggerOption,
) polylog.Logger {
	za := &zapLogger{}

	for _, opt := range opts {
		opt(za)
	}

	za.buildLogger()

	return za
}

func (za *zapLogger) Debug() polylog.Event {
	return newEvent(za.logger, zapcore.DebugLevel)
}

func (za *zapLogger) Info() polylog.Event {
	return newEvent(za.logger, zapcore.InfoLevel)
}

func (za *zapLogger) Warn() polylog.Event {
	return newEvent(za.logger, zapcore.WarnLevel)
}

func (za *zapLogger) Error() polylog.Event {
	return newEvent(za.logger, zapcore.ErrorLevel)
}

// With creates a child logger with the fields constructed from keyVals added
// to its context. A trailing key without a value is ignored.
func (za *zapLogger) With(keyVals ...any) polylog.Logger {
	return &zapLogger{
		level:       za.level,
		writeSyncer: za.writeSyncer,
		logger:      za.logger.With(keyValsToFields(keyVals)...),
	}
}

// WithContext returns a copy of ctx with the receiver attached.
func (za *zapLogger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, polylog.CtxKey, za)
}

func (za *zapLogger) WithLevel(level polylog.Level) polylog.Event {
	return newEvent(za.logger, zapcore.Level(level.Int()))
}

func (za *zapLogger) Write(p []byte) (n int, err error) {
	za.logger.Log(za.level, string(p))
	return len(p), nil
}

func (za *zapLogger) buildLogger() {
	if za.writeSyncer == nil {
		za.writeSyncer = zapcore.AddSync(os.Stderr)
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, za.writeSyncer, za.level)
	za.logger = zap.New(core)
}

func keyValsToFields(keyVals []any) []zap.Field {
	fields := make([]zap.Field, 0, len(keyVals)/2)
	for i := 0; i+1 < len(keyVals); i += 2 {
		fields = append(fields, zap.Any(fmt.Sprintf("%v", keyVals[i]), keyVals[i+1]))
	}
	return fields
}
