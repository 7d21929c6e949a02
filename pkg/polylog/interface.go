package polylog

import (
	"context"
	"time"
)

// Level is the interface which every logger implementation's level type
// conforms to. It is used by Logger#WithLevel() to start an event at an
// arbitrary level.
type Level interface {
	String() string
	Int() int
}

// LoggerOption is a function which receives and can modify the Logger which it
// is applied to. Options are implementation specific and cast the Logger to the
// concrete type they know how to configure.
type LoggerOption func(Logger)

// Logger is an interface which is intended to abstract the underlying logging
// library; it mirrors the zerolog API (i.e. levelled events with chained
// fields which are sent by Msg, Msgf or Send).
type Logger interface {
	// Debug starts a new message with debug level.
	//
	// You must call Msg, Msgf, or Send on the returned event in order to send the event.
	Debug() Event

	// Info starts a new message with info level.
	//
	// You must call Msg, Msgf, or Send on the returned event in order to send the event.
	Info() Event

	// Warn starts a new message with warn level.
	//
	// You must call Msg, Msgf, or Send on the returned event in order to send the event.
	Warn() Event

	// Error starts a new message with error level.
	//
	// You must call Msg, Msgf, or Send on the returned event in order to send the event.
	Error() Event

	// With creates a child logger with the fields constructed from keyVals
	// added to its context. keyVals is a flat list of alternating keys and values.
	With(keyVals ...any) Logger

	// WithLevel starts a new message with the given level.
	WithLevel(level Level) Event

	// WithContext returns a copy of ctx with the receiver attached; use Ctx to
	// retrieve it.
	WithContext(ctx context.Context) context.Context

	// Write implements io.Writer so that loggers can back the standard log package.
	Write(p []byte) (n int, err error)
}

// Event represents a single log message which is being constructed. Fields are
// chained onto it and it is sent by calling one of Msg, Msgf or Send.
type Event interface {
	Str(key, value string) Event
	Bool(key string, value bool) Event
	Int(key string, value int) Event
	Int64(key string, value int64) Event
	Uint64(key string, value uint64) Event
	Float64(key string, value float64) Event
	Err(err error) Event
	Dur(key string, value time.Duration) Event
	Time(key string, value time.Time) Event

	// Fields adds the given fields to the event. fields is expected to be
	// either a map[string]any or a flat slice of alternating keys and values.
	Fields(fields any) Event

	// Enabled returns false if the event is going to be filtered out by log level.
	Enabled() bool

	// Discard disables the event so that it won't be sent.
	Discard() Event

	Msg(message string)
	Msgf(format string, args ...any)
	Send()
}
