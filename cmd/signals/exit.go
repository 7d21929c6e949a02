package signals

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

// GoOnExitSignal calls the given callback when the process receives an interrupt or terminate signal.
// It sets up a goroutine that listens for OS signals and invokes the callback.
// It returns a function which stops listening.
func GoOnExitSignal(logger polylog.Logger, onInterrupt func()) (stop func()) {
	// Set up sigCh to receive when this process receives an interrupt or
	// terminate signal.
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})

	// DEV_NOTE: SIGKILL cannot be trapped, so we don't listen for it.
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Info().Msgf("Received signal %s, stopping...", sig)
			onInterrupt()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
