package polylog_test

import (
	"context"
	"os"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
	"github.com/pokt-network/rxsubjects/pkg/polylog/polyzero"
)

func ExampleCtx() {
	// Specify the lowest level to log. I.e.: calls to level methods "lower"
	// than this will be ignored.
	levelOpt := polyzero.WithLevel(polyzero.InfoLevel)

	// Construct a context, this is typically received as an argument.
	ctx := context.Background()

	// NB: adding WithOutput is optional; defaults to os.Stderr. It is needed
	// here to print to stdout for testable example purposes.
	expectedLogger := polyzero.NewLogger(levelOpt, polyzero.WithOutput(os.Stdout))

	// Add fields to the logger's context so that we can identify it in the output.
	expectedLogger = expectedLogger.With("label", "my_test_logger")

	// Associate the logger with the context and update the context reference.
	ctx = expectedLogger.WithContext(ctx)

	// Retrieve the logger from the context.
	retrievedLogger := polylog.Ctx(ctx)

	retrievedLogger.Debug().Msg("debug message")
	retrievedLogger.Info().Msg("info message")

	// Output:
	// {"level":"info","label":"my_test_logger","message":"info message"}
}
