package polylog

import (
	"context"
	"time"
)

var (
	_ Logger = disabledLogger{}
	_ Event  = disabledEvent{}
)

// disabledLogger drops everything. It is what Ctx falls back to when neither
// the context nor DefaultContextLogger provide a logger.
type disabledLogger struct{}

func (disabledLogger) Debug() Event { return disabledEvent{} }
func (disabledLogger) Info() Event { return disabledEvent{} }
func (disabledLogger) Warn() Event { return disabledEvent{} }
func (disabledLogger) Error() Event { return disabledEvent{} }
func (l disabledLogger) With(...any) Logger { return l }
func (disabledLogger) WithLevel(Level) Event { return disabledEvent{} }
func (disabledLogger) Write(p []byte) (int, error) { return len(p), nil }

// WithContext does not attach the disabled logger; ctx is returned as is.
func (disabledLogger) WithContext(ctx context.Context) context.Context { return ctx }

type disabledEvent struct{}

func (e disabledEvent) Str(string, string) Event { return e }
func (e disabledEvent) Bool(string, bool) Event { return e }
func (e disabledEvent) Int(string, int) Event { return e }
func (e disabledEvent) Int64(string, int64) Event { return e }
func (e disabledEvent) Uint64(string, uint64) Event { return e }
func (e disabledEvent) Float64(string, float64) Event { return e }
func (e disabledEvent) Err(error) Event { return e }
func (e disabledEvent) Dur(string, time.Duration) Event { return e }
func (e disabledEvent) Time(string, time.Time) Event { return e }
func (e disabledEvent) Fields(any) Event { return e }
func (disabledEvent) Enabled() bool { return false }
func (e disabledEvent) Discard() Event { return e }
func (disabledEvent) Msg(string) {}
func (disabledEvent) Msgf(string, ...any) {}
func (disabledEvent) Send() {}
