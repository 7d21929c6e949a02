package subject

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "subject"

	ErrInvalidReplayBufferSize = sdkerrors.Register(codespace, 1, "invalid replay buffer size")
)
