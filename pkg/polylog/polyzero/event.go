package polyzero

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

var _ polylog.Event = (*zerologEvent)(nil)

type zerologEvent struct {
	event *zerolog.Event
}

func newEvent(event *zerolog.Event) polylog.Event {
	return &zerologEvent{event: event}
}

func (zle *zerologEvent) Str(key, value string) polylog.Event {
	zle.event.Str(key, value)
	return zle
}

func (zle *zerologEvent) Bool(key string, value bool) polylog.Event {
	zle.event.Bool(key, value)
	return zle
}

func (zle *zerologEvent) Int(key string, value int) polylog.Event {
	zle.event.Int(key, value)
	return zle
}

func (zle *zerologEvent) Int64(key string, value int64) polylog.Event {
	zle.event.Int64(key, value)
	return zle
}

func (zle *zerologEvent) Uint64(key string, value uint64) polylog.Event {
	zle.event.Uint64(key, value)
	return zle
}

func (zle *zerologEvent) Float64(key string, value float64) polylog.Event {
	zle.event.Float64(key, value)
	return zle
}

func (zle *zerologEvent) Err(err error) polylog.Event {
	zle.event.Err(err)
	return zle
}

func (zle *zerologEvent) Dur(key string, value time.Duration) polylog.Event {
	zle.event.Dur(key, value)
	return zle
}

func (zle *zerologEvent) Time(key string, value time.Time) polylog.Event {
	zle.event.Time(key, value)
	return zle
}

func (zle *zerologEvent) Fields(fields any) polylog.Event {
	zle.event.Fields(fields)
	return zle
}

func (zle *zerologEvent) Enabled() bool {
	return zle.event.Enabled()
}

func (zle *zerologEvent) Discard() polylog.Event {
	zle.event.Discard()
	return zle
}

func (zle *zerologEvent) Msg(msg string) {
	zle.event.Msg(msg)
}

func (zle *zerologEvent) Msgf(format string, args ...any) {
	zle.event.Msgf(format, args...)
}

func (zle *zerologEvent) Send() {
	zle.event.Send()
}
