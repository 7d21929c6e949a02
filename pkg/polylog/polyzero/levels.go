package polyzero

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in
	// production.
	DebugLevel = Level(zerolog.DebugLevel)
	// InfoLevel is the default logging priority.
	InfoLevel = Level(zerolog.InfoLevel)
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = Level(zerolog.WarnLevel)
	// ErrorLevel logs are high-priority. If an application is running smoothly,
	// it shouldn't generate any error-level logs.
	ErrorLevel = Level(zerolog.ErrorLevel)
	// DisabledLevel turns the logger off.
	DisabledLevel = Level(zerolog.Disabled)
)

var _ polylog.Level = Level(0)

// Level implements the polylog.Level interface for zerolog levels.
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

// ParseLevel converts a level name (debug|info|warn|error|disabled) into a
// Level. Unknown names map to InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "disabled", "off":
		return DisabledLevel
	default:
		return InfoLevel
	}
}

func (lvl Level) String() string {
	return zerolog.Level(lvl).String()
}

func (lvl Level) Int() int {
	return int(lvl)
}
