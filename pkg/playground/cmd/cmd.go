package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"cosmossdk.io/depinject"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pokt-network/rxsubjects/cmd/signals"
	"github.com/pokt-network/rxsubjects/pkg/deps/config"
	"github.com/pokt-network/rxsubjects/pkg/playground"
	playgroundconfig "github.com/pokt-network/rxsubjects/pkg/playground/config"
	"github.com/pokt-network/rxsubjects/pkg/polylog"
	"github.com/pokt-network/rxsubjects/pkg/polylog/polyzap"
	"github.com/pokt-network/rxsubjects/pkg/polylog/polyzero"
)

const flagNameLogLevel = "log-level"

// playgroundFlags holds the values of one command's flags.
type playgroundFlags struct {
	// configPath is the playground config filepath sourced from the `--config` flag.
	configPath string
	// logLevel overrides the config file's log level.
	logLevel string
	// metrics enables the metrics dump; it overrides the config file.
	metrics bool
}

// PlaygroundCmd returns the Cobra command for running the subject examples.
func PlaygroundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rxplay [examples...]",
		Short: "Runs the reactive subject examples",
		Long: `Runs the reactive subject examples and prints one line per delivered event.

-- Examples --
publish:  a subject without buffer; late subscribers only see new values.
behavior: a subject with a current value, replayed to every new subscriber.
replay:   a subject which replays its last 'replay_buffer_size' values.
relay:    a behavior-style value holder which can never terminate.

Positional arguments select the examples to run, in order. If none are given,
the 'examples' configuration directive is used (default: all of them).`,
		Args:      cobra.OnlyValidArgs,
		ValidArgs: playgroundconfig.AllExamples(),
	}

	flags := new(playgroundFlags)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runPlayground(cmd, args, flags)
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "The path to the playground config file")
	cmd.Flags().StringVar(&flags.logLevel, flagNameLogLevel, playgroundconfig.DefaultLogLevel, "The logging level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&flags.metrics, "metrics", false, "Print the subject metrics after running the examples")

	return cmd
}

func runPlayground(cmd *cobra.Command, args []string, flags *playgroundFlags) error {
	// Create a context that is canceled when the command is interrupted
	ctx, cancelCtx := context.WithCancel(cmd.Context())
	defer cancelCtx()

	playgroundConfig, err := loadPlaygroundConfig(cmd, flags)
	if err != nil {
		return err
	}

	examples, err := playgroundconfig.ParseExamples(args)
	if err != nil {
		return err
	}

	// Construct a logger and associate it with the command context.
	logger := newLogger(playgroundConfig, cmd.ErrOrStderr())
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	// Handle interrupt and kill signals asynchronously.
	stopSignals := signals.GoOnExitSignal(logger, cancelCtx)
	defer stopSignals()

	deps, err := setupPlaygroundDependencies(ctx, cmd, playgroundConfig)
	if err != nil {
		return fmt.Errorf("failed to setup playground dependencies: %w", err)
	}

	runner, err := playground.NewRunner(deps, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to create playground runner: %w", err)
	}

	logger.Debug().
		Str("log_backend", playgroundConfig.LogBackend).
		Int("replay_buffer_size", playgroundConfig.ReplayBufferSize).
		Msg("Running examples...")

	if err := runner.Run(ctx, examples...); err != nil {
		return err
	}

	if !playgroundConfig.MetricsEnabled {
		return nil
	}

	var registry *prometheus.Registry
	if err := depinject.Inject(deps, &registry); err != nil {
		return err
	}
	return writeMetrics(cmd.OutOrStdout(), registry)
}

// loadPlaygroundConfig reads the `--config` file, if any, and applies the
// flags which override it.
func loadPlaygroundConfig(
	cmd *cobra.Command,
	flags *playgroundFlags,
) (*playgroundconfig.PlaygroundConfig, error) {
	playgroundConfig := playgroundconfig.DefaultPlaygroundConfig()

	if flags.configPath != "" {
		configContent, err := os.ReadFile(flags.configPath)
		if err != nil {
			return nil, err
		}

		if playgroundConfig, err = playgroundconfig.ParsePlaygroundConfigs(configContent); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed(flagNameLogLevel) {
		logLevel, err := playgroundconfig.ParseLogLevel(flags.logLevel)
		if err != nil {
			return nil, err
		}
		playgroundConfig.LogLevel = logLevel
	}

	if flags.metrics {
		playgroundConfig.MetricsEnabled = true
	}

	return playgroundConfig, nil
}

func newLogger(
	playgroundConfig *playgroundconfig.PlaygroundConfig,
	output io.Writer,
) polylog.Logger {
	if playgroundConfig.LogBackend == playgroundconfig.LogBackendZap {
		return polyzap.NewLogger(
			polyzap.WithLevel(polyzap.ParseLevel(playgroundConfig.LogLevel)),
			polyzap.WithOutput(output),
		)
	}

	return polyzero.NewLogger(
		polyzero.WithLevel(polyzero.ParseLevel(playgroundConfig.LogLevel)),
		polyzero.WithOutput(output),
	)
}

func setupPlaygroundDependencies(
	ctx context.Context,
	cmd *cobra.Command,
	playgroundConfig *playgroundconfig.PlaygroundConfig,
) (depinject.Config, error) {
	supplierFuncs := []config.SupplierFn{
		config.NewSupplyLoggerFromCtx(ctx),
		config.NewSupplyMetricsFn(),
		config.NewSupplyPlaygroundConfigFn(playgroundConfig),
	}

	return config.SupplyConfig(ctx, cmd, supplierFuncs)
}
