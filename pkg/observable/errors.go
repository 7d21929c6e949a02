package observable

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	codespace = "observable"

	ErrObserverClosed = sdkerrors.Register(codespace, 1, "observer is closed")
	ErrNilErrorEvent  = sdkerrors.Register(codespace, 2, "error event without an error")
)
