package testpolylog

import (
	"bytes"
	"context"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
	"github.com/pokt-network/rxsubjects/pkg/polylog/polyzero"
)

// NewLoggerWithCtx returns a zerolog-backed logger at the given level which is
// also attached to the returned context.
func NewLoggerWithCtx(
	ctx context.Context,
	level polyzero.Level,
) (polylog.Logger, context.Context) {
	logger := polyzero.NewLogger(polyzero.WithLevel(level))
	ctx = logger.WithContext(ctx)

	return logger, ctx
}

// NewBufferedLogger returns a debug-level logger which writes JSON lines into
// the returned buffer so that tests can assert on log output.
func NewBufferedLogger() (polylog.Logger, *bytes.Buffer) {
	output := new(bytes.Buffer)
	logger := polyzero.NewLogger(
		polyzero.WithLevel(polyzero.DebugLevel),
		polyzero.WithOutput(output),
	)
	return logger, output
}
