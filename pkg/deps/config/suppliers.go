package config

import (
	"context"

	"cosmossdk.io/depinject"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pokt-network/rxsubjects/pkg/observable/metrics"
	playgroundconfig "github.com/pokt-network/rxsubjects/pkg/playground/config"
	"github.com/pokt-network/rxsubjects/pkg/polylog"
)

// SupplierFn is a function that is used to supply a depinject config.
type SupplierFn func(
	context.Context,
	depinject.Config,
	*cobra.Command,
) (depinject.Config, error)

// SupplyConfig supplies a depinject config by calling each of the supplied
// supplier functions in order and passing the result of each supplier to the
// next supplier, chaining them together.
func SupplyConfig(
	ctx context.Context,
	cmd *cobra.Command,
	suppliers []SupplierFn,
) (deps depinject.Config, err error) {
	// Initialize deps to with empty depinject config.
	deps = depinject.Configs()
	for _, supplyFn := range suppliers {
		deps, err = supplyFn(ctx, deps, cmd)
		if err != nil {
			return nil, err
		}
	}
	return deps, nil
}

// NewSupplyLoggerFromCtx supplies a depinject config with a polylog.Logger instance
// populated from the given context.
func NewSupplyLoggerFromCtx(ctx context.Context) SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		return depinject.Configs(deps, depinject.Supply(polylog.Ctx(ctx))), nil
	}
}

// NewSupplyMetricsFn supplies a depinject config with a new prometheus registry
// and a subject metrics collector registered with it.
func NewSupplyMetricsFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		registry := prometheus.NewRegistry()
		collector := metrics.NewCollector(registry)

		return depinject.Configs(deps, depinject.Supply(registry, collector)), nil
	}
}

// NewSupplyPlaygroundConfigFn supplies a depinject config with the given
// playground config.
func NewSupplyPlaygroundConfigFn(
	playgroundConfig *playgroundconfig.PlaygroundConfig,
) SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		return depinject.Configs(deps, depinject.Supply(playgroundConfig)), nil
	}
}
