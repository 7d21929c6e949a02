package polylog

import "context"

// CtxKey is the key used to store the polylog.Logger in a context.Context. It
// is independent of any logger-implementation-specific context key that may be
// used internally by the implementations.
const CtxKey = "polylog/context"

// DefaultContextLogger is the logger returned by Ctx when no logger is
// associated with the context. It is assigned in the implementation package's
// init() function (see pkg/polylog/polyzero) to avoid import cycles.
var DefaultContextLogger Logger

// Ctx returns the Logger associated with ctx. If no logger is associated,
// DefaultContextLogger is returned, unless it is nil, in which case a disabled
// logger is returned.
//
// Attach a logger to a context with Logger#WithContext().
func Ctx(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(CtxKey).(Logger); ok {
			return logger
		}
	}

	if DefaultContextLogger != nil {
		return DefaultContextLogger
	}
	return disabledLogger{}
}
