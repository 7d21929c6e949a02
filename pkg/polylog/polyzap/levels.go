package polyzap

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

const (
	// NB: zap log levels use -1 for Debug and 0 for Info.
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	WarnLevel  = Level(zapcore.WarnLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
)

var _ polylog.Level = Level(0)

type Level int

// Levels is a convenience function to return all supported levels.
func Levels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
	}
}

// ParseLevel converts a level name (debug|info|warn|error) into a Level.
// Unknown names map to InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (lvl Level) String() string {
	return zapcore.Level(lvl).String()
}

func (lvl Level) Int() int {
	return int(lvl)
}
