package operator_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/operator"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
)

func TestMap(t *testing.T) {
	src := subject.NewPublishSubject[int]()
	// Odd values are skipped, even ones are rendered as strings.
	dst := operator.Map[int, string](src, func(value int) (string, bool) {
		return strconv.Itoa(value * 10), value%2 != 0
	})

	var events []string
	sub := dst.Subscribe(observable.ObserverFunc[string](func(event observable.Event[string]) {
		events = append(events, event.String())
	}))

	for i := 1; i <= 4; i++ {
		src.OnNext(i)
	}
	src.OnError(errors.New("anError"))

	require.Equal(t, []string{"next(20)", "next(40)", "error(anError)"}, events)
	require.True(t, sub.IsDisposed())
}

func TestMap_DisposeUnsubscribesFromSource(t *testing.T) {
	src := subject.NewPublishSubject[int]()
	dst := operator.Map[int, int](src, func(value int) (int, bool) { return value, false })

	sub := dst.Subscribe(observable.ObserverFunc[int](func(observable.Event[int]) {}))
	require.True(t, src.HasObservers())

	sub.Dispose()
	require.False(t, src.HasObservers())
}

func TestFilter(t *testing.T) {
	src, err := subject.NewReplaySubject[int](5)
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		src.OnNext(i)
	}
	src.OnCompleted()

	// The replay buffer is not replayed once terminal.
	var events []string
	operator.Filter[int](src, func(value int) bool { return value > 2 }).
		Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
			events = append(events, event.String())
		}))
	require.Equal(t, []string{"completed"}, events)

	live := subject.NewPublishSubject[int]()
	events = nil
	operator.Filter[int](live, func(value int) bool { return value > 2 }).
		Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
			events = append(events, event.String())
		}))
	for i := 1; i <= 4; i++ {
		live.OnNext(i)
	}
	require.Equal(t, []string{"next(3)", "next(4)"}, events)
}

func TestForEach(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := subject.NewPublishSubject[int]()

	var values []int
	sub := operator.ForEach[int](ctx, src, func(_ context.Context, value int) {
		values = append(values, value)
	})

	src.OnNext(1)
	src.OnNext(2)
	require.Equal(t, []int{1, 2}, values)

	cancel()
	require.Eventually(t, sub.IsDisposed, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return !src.HasObservers() }, time.Second, time.Millisecond)

	src.OnNext(3)
	require.Equal(t, []int{1, 2}, values)
}

func TestForEach_TerminatedSource(t *testing.T) {
	src := subject.NewPublishSubject[int]()
	src.OnCompleted()

	sub := operator.ForEach[int](context.Background(), src, func(context.Context, int) {
		t.Fatal("unexpected value")
	})
	require.True(t, sub.IsDisposed())
}
