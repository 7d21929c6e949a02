package either_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/rxsubjects/pkg/either"
)

func TestEither(t *testing.T) {
	success := either.Success("photo.png")
	value, err := success.ValueOrError()
	require.NoError(t, err)
	require.Equal(t, "photo.png", value)
	require.True(t, success.IsSuccess())
	require.False(t, success.IsError())

	expectedErr := errors.New("save failed")
	failure := either.Error[string](expectedErr)
	value, err = failure.ValueOrError()
	require.ErrorIs(t, err, expectedErr)
	require.Empty(t, value)
	require.False(t, failure.IsSuccess())
	require.True(t, failure.IsError())
}
