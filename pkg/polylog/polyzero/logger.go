package polyzero

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

var _ polylog.Logger = (*zerologLogger)(nil)

func init() {
	polylog.DefaultContextLogger = NewLogger(WithLevel(InfoLevel))
}

// zerologLogger is a thin wrapper around a zerolog logger which implements
// the polylog.Logger interface.
type zerologLogger struct {
	zerolog.Logger
}

// NewLogger constructs a new zerolog-backed logger which conforms to the
// polylog.Logger interface. By default, the logger writes to os.Stderr and
// logs at the Debug level.
func NewLogger(
	opts ...polylog.LoggerOption,
) polylog.Logger {
	ze := &zerologLogger{
		Logger: zerolog.New(os.Stderr).Level(zerolog.DebugLevel),
	}

	for _, opt := range opts {
		opt(ze)
	}

	return ze
}

func (ze *zerologLogger) Debug() polylog.Event {
	return newEvent(ze.Logger.Debug())
}

func (ze *zerologLogger) Info() polylog.Event {
	return newEvent(ze.Logger.Info())
}

func (ze *zerologLogger) Warn() polylog.Event {
	return newEvent(ze.Logger.Warn())
}

func (ze *zerologLogger) Error() polylog.Event {
	return newEvent(ze.Logger.Error())
}

// With creates a child logger with the fields constructed from keyVals added
// to its context.
func (ze *zerologLogger) With(keyVals ...any) polylog.Logger {
	return &zerologLogger{
		Logger: ze.Logger.With().Fields(keyVals).Logger(),
	}
}

// WithLevel starts a new message with level.
func (ze *zerologLogger) WithLevel(level polylog.Level) polylog.Event {
	return newEvent(ze.Logger.WithLevel(zerolog.Level(level.Int())))
}

// WithContext returns a copy of ctx with the receiver attached, both under
// polylog.CtxKey and zerolog's own context key.
func (ze *zerologLogger) WithContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, polylog.CtxKey, ze)
	return ze.Logger.WithContext(ctx)
}

// Write implements io.Writer. This is useful to set as a writer for the
// standard library log.
func (ze *zerologLogger) Write(p []byte) (n int, err error) {
	return ze.Logger.Write(p)
}
