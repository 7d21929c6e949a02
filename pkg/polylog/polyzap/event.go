package polyzap

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

var _ polylog.Event = (*zapEvent)(nil)

type zapEvent struct {
	logger    *zap.Logger
	level     zapcore.Level
	fields    []zapcore.Field
	discarded bool
}

func newEvent(logger *zap.Logger, level zapcore.Level) polylog.Event {
	return &zapEvent{
		logger:    logger,
		level:     level,
		discarded: !logger.Core().Enabled(level),
	}
}

func (zae *zapEvent) Str(key, value string) polylog.Event {
	return zae.add(zap.String(key, value))
}

func (zae *zapEvent) Bool(key string, value bool) polylog.Event {
	return zae.add(zap.Bool(key, value))
}

func (zae *zapEvent) Int(key string, value int) polylog.Event {
	return zae.add(zap.Int(key, value))
}

func (zae *zapEvent) Int64(key string, value int64) polylog.Event {
	return zae.add(zap.Int64(key, value))
}

func (zae *zapEvent) Uint64(key string, value uint64) polylog.Event {
	return zae.add(zap.Uint64(key, value))
}

func (zae *zapEvent) Float64(key string, value float64) polylog.Event {
	return zae.add(zap.Float64(key, value))
}

func (zae *zapEvent) Err(err error) polylog.Event {
	return zae.add(zap.Error(err))
}

func (zae *zapEvent) Dur(key string, value time.Duration) polylog.Event {
	return zae.add(zap.Duration(key, value))
}

func (zae *zapEvent) Time(key string, value time.Time) polylog.Event {
	return zae.add(zap.Time(key, value))
}

// Fields accepts either a map[string]any or a flat slice of alternating keys
// and values, matching zerolog's Event#Fields().
func (zae *zapEvent) Fields(fields any) polylog.Event {
	switch fieldsT := fields.(type) {
	case map[string]any:
		for key, value := range fieldsT {
			zae.add(zap.Any(key, value))
		}
	case []any:
		zae.fields = append(zae.fields, keyValsToFields(fieldsT)...)
	default:
		zae.add(zap.Any("fields", fieldsT))
	}
	return zae
}

func (zae *zapEvent) Enabled() bool {
	return !zae.discarded
}

func (zae *zapEvent) Discard() polylog.Event {
	zae.discarded = true
	return zae
}

func (zae *zapEvent) Msg(msg string) {
	if zae.discarded {
		return
	}
	if checked := zae.logger.Check(zae.level, msg); checked != nil {
		checked.Write(zae.fields...)
	}
}

func (zae *zapEvent) Msgf(format string, args ...any) {
	zae.Msg(fmt.Sprintf(format, args...))
}

func (zae *zapEvent) Send() {
	zae.Msg("")
}

func (zae *zapEvent) add(field zap.Field) polylog.Event {
	zae.fields = append(zae.fields, field)
	return zae
}
