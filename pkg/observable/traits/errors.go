package traits

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "traits"

	ErrSingleNoElements      = sdkerrors.Register(codespace, 1, "sequence completed without any element")
	ErrSingleTooManyElements = sdkerrors.Register(codespace, 2, "sequence emitted more than one element")
)
