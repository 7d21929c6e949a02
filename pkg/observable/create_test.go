package observable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/disposable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
)

func TestCreate_StopsAfterTerminalEvent(t *testing.T) {
	var teardowns int
	obsvbl := observable.Create(func(observer observable.Observer[int]) observable.Disposable {
		observer.OnEvent(observable.Next(1))
		observer.OnEvent(observable.Completed[int]())
		// Ignored: the sequence has already terminated.
		observer.OnEvent(observable.Next(2))
		observer.OnEvent(observable.Error[int](errors.New("late")))
		return disposable.New(func() { teardowns++ })
	})

	var events []string
	sub := obsvbl.Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
		events = append(events, event.String())
	}))

	require.Equal(t, []string{"next(1)", "completed"}, events)
	require.True(t, sub.IsDisposed())
	// The teardown ran even though the terminal event arrived before the
	// subscribe function returned its disposable.
	require.Equal(t, 1, teardowns)

	sub.Dispose()
	require.Equal(t, 1, teardowns)
}

func TestCreate_DisposeStopsDeliveryAndTearsDownOnce(t *testing.T) {
	source := subject.NewPublishSubject[int]()
	var teardowns int
	obsvbl := observable.Create(func(observer observable.Observer[int]) observable.Disposable {
		upstream := source.Subscribe(observer)
		return disposable.New(func() {
			teardowns++
			upstream.Dispose()
		})
	})

	var events []string
	sub := obsvbl.Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
		events = append(events, event.String())
	}))

	source.OnNext(1)
	sub.Dispose()
	sub.Dispose()
	source.OnNext(2)
	source.OnCompleted()

	require.Equal(t, []string{"next(1)"}, events)
	require.Equal(t, 1, teardowns)
	require.False(t, source.HasObservers())
}

func TestCreate_NilDisposable(t *testing.T) {
	obsvbl := observable.Create(func(observer observable.Observer[string]) observable.Disposable {
		observer.OnEvent(observable.Next("only"))
		return nil
	})

	var values []string
	sub := observable.SubscribeWith(obsvbl, observable.Handlers[string]{
		OnNext: func(value string) { values = append(values, value) },
	})
	require.NotPanics(t, sub.Dispose)
	require.Equal(t, []string{"only"}, values)
}
