package config

import (
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	ExamplePublish  = "publish"
	ExampleBehavior = "behavior"
	ExampleReplay   = "replay"
	ExampleRelay    = "relay"

	LogBackendZerolog = "zerolog"
	LogBackendZap     = "zap"

	DefaultReplayBufferSize     = 2
	DefaultBehaviorInitialValue = "Initial value"
	DefaultRelayInitialValue    = "Initial Value"
	DefaultLogLevel             = "info"
	DefaultLogBackend           = LogBackendZerolog
)

// AllExamples returns the names of every runnable example, in run order.
func AllExamples() []string {
	return []string{ExamplePublish, ExampleBehavior, ExampleReplay, ExampleRelay}
}

// YAMLPlaygroundConfig is the structure used to unmarshal the playground config file
type YAMLPlaygroundConfig struct {
	Examples             []string                `yaml:"examples"`
	ReplayBufferSize     *int                    `yaml:"replay_buffer_size"`
	BehaviorInitialValue *string                 `yaml:"behavior_initial_value"`
	RelayInitialValue    *string                 `yaml:"relay_initial_value"`
	Log                  YAMLPlaygroundLogConfig `yaml:"log"`
	Metrics              YAMLPlaygroundMetrics   `yaml:"metrics"`
}

// YAMLPlaygroundLogConfig is the structure used to unmarshal the log section
// of the playground config file
type YAMLPlaygroundLogConfig struct {
	Level   string `yaml:"level"`
	Backend string `yaml:"backend"`
}

// YAMLPlaygroundMetrics is the structure used to unmarshal the metrics section
// of the playground config file
type YAMLPlaygroundMetrics struct {
	Enabled bool `yaml:"enabled"`
}

// PlaygroundConfig is the structure describing the playground config
type PlaygroundConfig struct {
	Examples             []string
	ReplayBufferSize     int
	BehaviorInitialValue string
	RelayInitialValue    string
	LogLevel             string
	LogBackend           string
	MetricsEnabled       bool
}

// DefaultPlaygroundConfig returns the config used when no config file is given.
func DefaultPlaygroundConfig() *PlaygroundConfig {
	return &PlaygroundConfig{
		Examples:             AllExamples(),
		ReplayBufferSize:     DefaultReplayBufferSize,
		BehaviorInitialValue: DefaultBehaviorInitialValue,
		RelayInitialValue:    DefaultRelayInitialValue,
		LogLevel:             DefaultLogLevel,
		LogBackend:           DefaultLogBackend,
	}
}

// ParsePlaygroundConfigs parses the playground config file into a PlaygroundConfig.
// NOTE: Fields which are not defined in the config file take their default
// values; an empty file yields DefaultPlaygroundConfig.
func ParsePlaygroundConfigs(configContent []byte) (*PlaygroundConfig, error) {
	var yamlPlaygroundConfig YAMLPlaygroundConfig

	// Unmarshal the config file into a yamlPlaygroundConfig
	if err := yaml.UnmarshalStrict(configContent, &yamlPlaygroundConfig); err != nil {
		return nil, ErrPlaygroundConfigUnmarshalYAML.Wrapf("%s", err)
	}

	playgroundConfig := DefaultPlaygroundConfig()

	if len(yamlPlaygroundConfig.Examples) > 0 {
		examples, err := ParseExamples(yamlPlaygroundConfig.Examples)
		if err != nil {
			return nil, err
		}
		playgroundConfig.Examples = examples
	}

	if yamlPlaygroundConfig.ReplayBufferSize != nil {
		if *yamlPlaygroundConfig.ReplayBufferSize < 1 {
			return nil, ErrPlaygroundConfigInvalidReplayBufferSize.Wrapf(
				"must be at least 1, got %d", *yamlPlaygroundConfig.ReplayBufferSize,
			)
		}
		playgroundConfig.ReplayBufferSize = *yamlPlaygroundConfig.ReplayBufferSize
	}

	if yamlPlaygroundConfig.BehaviorInitialValue != nil {
		playgroundConfig.BehaviorInitialValue = *yamlPlaygroundConfig.BehaviorInitialValue
	}

	if yamlPlaygroundConfig.RelayInitialValue != nil {
		playgroundConfig.RelayInitialValue = *yamlPlaygroundConfig.RelayInitialValue
	}

	if yamlPlaygroundConfig.Log.Level != "" {
		logLevel, err := ParseLogLevel(yamlPlaygroundConfig.Log.Level)
		if err != nil {
			return nil, err
		}
		playgroundConfig.LogLevel = logLevel
	}

	if yamlPlaygroundConfig.Log.Backend != "" {
		switch backend := strings.ToLower(yamlPlaygroundConfig.Log.Backend); backend {
		case LogBackendZerolog, LogBackendZap:
			playgroundConfig.LogBackend = backend
		default:
			return nil, ErrPlaygroundConfigInvalidLogBackend.Wrapf("%q", yamlPlaygroundConfig.Log.Backend)
		}
	}

	playgroundConfig.MetricsEnabled = yamlPlaygroundConfig.Metrics.Enabled

	return playgroundConfig, nil
}

// ParseExamples validates and normalizes example names.
func ParseExamples(names []string) ([]string, error) {
	examples := make([]string, 0, len(names))
	for _, name := range names {
		example := strings.ToLower(strings.TrimSpace(name))
		switch example {
		case ExamplePublish, ExampleBehavior, ExampleReplay, ExampleRelay:
			examples = append(examples, example)
		default:
			return nil, ErrPlaygroundConfigUnknownExample.Wrapf("%q", name)
		}
	}
	return examples, nil
}

// ParseLogLevel validates and normalizes a log level name.
func ParseLogLevel(level string) (string, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(level)); normalized {
	case "debug", "info", "warn", "error":
		return normalized, nil
	default:
		return "", ErrPlaygroundConfigInvalidLogLevel.Wrapf("%q", level)
	}
}
