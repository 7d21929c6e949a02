package testchannel

import (
	"time"

	sdkerrors "cosmossdk.io/errors"
)

var ErrChannelNotClosed = sdkerrors.Register("testchannel", 1, "channel not closed")

// DrainChannel receives from the given channel, blocking, until it is closed,
// and returns every value received. It returns an error if the channel is not
// closed within timeout of the last receive.
func DrainChannel[V any](ch <-chan V, timeout time.Duration) ([]V, error) {
	var values []V
	for {
		select {
		case value, ok := <-ch:
			if !ok {
				return values, nil
			}
			values = append(values, value)
		case <-time.After(timeout):
			return values, ErrChannelNotClosed.Wrapf("after %s", timeout)
		}
	}
}
