package channel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/rxsubjects/pkg/observable/channel"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
	"github.com/pokt-network/rxsubjects/testutil/testchannel"
)

const drainTimeout = 50 * time.Millisecond

func TestObserve_ClosesOnCompletion(t *testing.T) {
	ctx := context.Background()
	subj := subject.NewBehaviorSubject(0)

	obsvr := channel.Observe[int](ctx, subj)
	subj.OnNext(1)
	subj.OnNext(2)
	subj.OnCompleted()

	values, err := testchannel.DrainChannel(obsvr.Ch(), drainTimeout)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, values)
	require.True(t, obsvr.IsClosed())
	require.NoError(t, obsvr.Err())
}

func TestObserve_SurfacesTerminalError(t *testing.T) {
	ctx := context.Background()
	subj := subject.NewPublishSubject[string]()
	expectedErr := errors.New("anError")

	obsvr := channel.Observe[string](ctx, subj)
	subj.OnNext("1")
	subj.OnError(expectedErr)

	values, err := testchannel.DrainChannel(obsvr.Ch(), drainTimeout)
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, values)
	require.ErrorIs(t, obsvr.Err(), expectedErr)
}

func TestObserve_TerminatedSource(t *testing.T) {
	subj := subject.NewPublishSubject[string]()
	subj.OnCompleted()

	obsvr := channel.Observe[string](context.Background(), subj)
	require.True(t, obsvr.IsClosed())

	_, err := testchannel.DrainChannel(obsvr.Ch(), drainTimeout)
	require.NoError(t, err)
}

func TestObserve_Unsubscribe(t *testing.T) {
	subj := subject.NewPublishSubject[int]()
	obsvr := channel.Observe[int](context.Background(), subj)
	require.True(t, subj.HasObservers())

	obsvr.Unsubscribe()
	require.True(t, obsvr.IsClosed())
	require.False(t, subj.HasObservers())
	require.NoError(t, obsvr.Err())

	// Redundant unsubscribe is logged but harmless.
	require.NotPanics(t, obsvr.Unsubscribe)

	subj.OnNext(1)
	_, err := testchannel.DrainChannel(obsvr.Ch(), drainTimeout)
	require.NoError(t, err)
}

func TestObserve_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	subj := subject.NewPublishSubject[int]()
	obsvr := channel.Observe[int](ctx, subj)

	cancel()

	require.Eventually(t, obsvr.IsClosed, time.Second, time.Millisecond)
	require.ErrorIs(t, obsvr.Err(), context.Canceled)
	require.Eventually(t, func() bool { return !subj.HasObservers() }, time.Second, time.Millisecond)
}

func TestObserve_FullBufferBlocksUntilReceived(t *testing.T) {
	ctx := context.Background()
	subj := subject.NewPublishSubject[int]()
	obsvr := channel.Observe[int](ctx, subj, channel.WithBufferSize(1))

	pushed := make(chan struct{})
	go func() {
		subj.OnNext(1)
		// Blocks until the first value has been received.
		subj.OnNext(2)
		close(pushed)
	}()

	select {
	case <-pushed:
		t.Fatal("expected second push to block on the full buffer")
	case <-time.After(drainTimeout):
	}

	require.Equal(t, 1, <-obsvr.Ch())
	require.Equal(t, 2, <-obsvr.Ch())
	<-pushed
	obsvr.Unsubscribe()
}

func TestObserve_ReplayLargerThanBuffer(t *testing.T) {
	subj := subject.NewUnboundedReplaySubject[int]()
	subj.OnNext(1)
	subj.OnNext(2)
	subj.OnNext(3)

	observed := make(chan channel.Observer[int], 1)
	go func() {
		observed <- channel.Observe[int](context.Background(), subj, channel.WithBufferSize(1))
	}()

	var obsvr channel.Observer[int]
	select {
	case obsvr = <-observed:
	case <-time.After(time.Second):
		t.Fatal("expected Observe to return before the replayed values are received")
	}

	subj.OnNext(4)
	subj.OnCompleted()

	var values []int
	for value := range obsvr.Ch() {
		values = append(values, value)
	}
	require.Equal(t, []int{1, 2, 3, 4}, values)
	require.NoError(t, obsvr.Err())
	require.False(t, subj.HasObservers())
}
