package playground

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "playground"

	ErrPlaygroundUnknownExample = sdkerrors.Register(codespace, 1, "unknown example")
	ErrPlaygroundWrite          = sdkerrors.Register(codespace, 2, "unable to write example output")

	// ErrAnError is the error which the examples terminate subjects with.
	ErrAnError = sdkerrors.Register(codespace, 3, "anError")
)
