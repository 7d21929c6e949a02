package config

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                                  = "playground_config"
	ErrPlaygroundConfigUnmarshalYAML           = sdkerrors.Register(codespace, 1, "config reader cannot unmarshal yaml content")
	ErrPlaygroundConfigUnknownExample          = sdkerrors.Register(codespace, 2, "unknown example in playground config")
	ErrPlaygroundConfigInvalidReplayBufferSize = sdkerrors.Register(codespace, 3, "invalid replay buffer size in playground config")
	ErrPlaygroundConfigInvalidLogLevel         = sdkerrors.Register(codespace, 4, "invalid log level in playground config")
	ErrPlaygroundConfigInvalidLogBackend       = sdkerrors.Register(codespace, 5, "invalid log backend in playground config")
)
