package subject_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
)

var errTest = errors.New("anError")

func TestPublishSubject_OrderedDelivery(t *testing.T) {
	subj := subject.NewPublishSubject[int]()
	rec := new(eventRecorder[int])
	subj.Subscribe(rec)

	for i := 1; i <= 5; i++ {
		subj.OnNext(i)
	}

	require.Equal(t, []string{"next(1)", "next(2)", "next(3)", "next(4)", "next(5)"}, rec.Events())
}

func TestPublishSubject_LateSubscriberMissesEarlierValues(t *testing.T) {
	subj := subject.NewPublishSubject[string]()
	subj.OnNext("1")
	subj.OnNext("2")

	rec := new(eventRecorder[string])
	subj.Subscribe(rec)
	require.Empty(t, rec.Events())

	subj.OnNext("3")
	require.Equal(t, []string{"next(3)"}, rec.Events())
}

func TestPublishSubject_TerminalIdempotence(t *testing.T) {
	tests := []struct {
		desc           string
		terminate      func(subj observable.Subject[string])
		expectedEvents []string
	}{
		{
			desc:           "completed",
			terminate:      func(subj observable.Subject[string]) { subj.OnCompleted() },
			expectedEvents: []string{"next(1)", "completed"},
		},
		{
			desc:           "error",
			terminate:      func(subj observable.Subject[string]) { subj.OnError(errTest) },
			expectedEvents: []string{"next(1)", "error(anError)"},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			subj := subject.NewPublishSubject[string]()
			rec := new(eventRecorder[string])
			subj.Subscribe(rec)

			subj.OnNext("1")
			test.terminate(subj)
			require.True(t, subj.IsTerminated())
			require.False(t, subj.HasObservers())

			// Further pushes, including a second terminal event, are no-ops.
			subj.OnNext("2")
			subj.OnError(errors.New("second error"))
			subj.OnCompleted()
			require.Equal(t, test.expectedEvents, rec.Events())

			// A new subscriber receives only the cached terminal event.
			lateRec := new(eventRecorder[string])
			sub := subj.Subscribe(lateRec)
			require.True(t, sub.IsDisposed())
			require.Equal(t, test.expectedEvents[1:], lateRec.Events())
		})
	}
}

func TestPublishSubject_NilErrorIsReplaced(t *testing.T) {
	subj := subject.NewPublishSubject[int]()

	var gotErr error
	observable.SubscribeWith[int](subj, observable.Handlers[int]{
		OnError: func(err error) { gotErr = err },
	})
	subj.OnError(nil)

	require.ErrorIs(t, gotErr, observable.ErrNilErrorEvent)
}

func TestPublishSubject_Dispose(t *testing.T) {
	subj := subject.NewPublishSubject[int]()
	rec1 := new(eventRecorder[int])
	rec2 := new(eventRecorder[int])
	sub1 := subj.Subscribe(rec1)
	subj.Subscribe(rec2)

	subj.OnNext(1)
	sub1.Dispose()
	require.True(t, sub1.IsDisposed())
	// Idempotent.
	sub1.Dispose()

	subj.OnNext(2)
	subj.OnCompleted()

	require.Equal(t, []string{"next(1)"}, rec1.Events())
	require.Equal(t, []string{"next(1)", "next(2)", "completed"}, rec2.Events())
}

func TestPublishSubject_DisposeDuringDelivery(t *testing.T) {
	subj := subject.NewPublishSubject[int]()

	var (
		sub2 observable.Disposable
		rec2 = new(eventRecorder[int])
		rec3 = new(eventRecorder[int])
	)
	// The first observer disposes the second one while the first value is
	// being fanned out.
	subj.Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
		if sub2 != nil {
			sub2.Dispose()
		}
	}))
	sub2 = subj.Subscribe(rec2)
	subj.Subscribe(rec3)

	subj.OnNext(1)
	subj.OnNext(2)

	require.Empty(t, rec2.Events())
	require.Equal(t, []string{"next(1)", "next(2)"}, rec3.Events())
}

func TestPublishSubject_ReentrantOnNext(t *testing.T) {
	subj := subject.NewPublishSubject[int]()

	var seen []int
	subj.Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
		value, ok := event.Value()
		if !ok {
			return
		}
		seen = append(seen, value)
		if value < 3 {
			subj.OnNext(value + 1)
		}
	}))
	rec := new(eventRecorder[int])
	subj.Subscribe(rec)

	subj.OnNext(1)

	require.Equal(t, []int{1, 2, 3}, seen)
	// Values pushed from within a callback are delivered once the running pass
	// has reached every observer, so all observers see the push order.
	require.Equal(t, []string{"next(1)", "next(2)", "next(3)"}, rec.Events())
}

func TestPublishSubject_SubscribeDuringDelivery(t *testing.T) {
	subj := subject.NewPublishSubject[int]()
	late := new(eventRecorder[int])

	subscribed := false
	subj.Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
		if !subscribed {
			subscribed = true
			subj.Subscribe(late)
		}
	}))

	subj.OnNext(1)
	subj.OnNext(2)

	// The observer registered mid-pass is not part of the first pass' snapshot.
	require.Equal(t, []string{"next(2)"}, late.Events())
}

func TestPublishSubject_Metrics(t *testing.T) {
	metrics := newCountingMetrics()
	subj := subject.NewPublishSubject[int](
		subject.WithName("test"),
		subject.WithMetrics(metrics),
	)

	sub1 := subj.Subscribe(new(eventRecorder[int]))
	subj.Subscribe(new(eventRecorder[int]))
	require.Equal(t, 2, metrics.observers)

	subj.OnNext(1)
	sub1.Dispose()
	require.Equal(t, 1, metrics.observers)

	subj.OnNext(2)
	subj.OnCompleted()
	// Disposing after the subject released the observer is not counted twice.
	sub1.Dispose()

	require.Equal(t, 0, metrics.observers)
	require.Equal(t, 2, metrics.emitted[observable.NextEvent])
	require.Equal(t, 1, metrics.emitted[observable.CompletedEvent])
	require.Equal(t, 4, metrics.deliveries)
}

func TestPublishSubject_NilObserver(t *testing.T) {
	subj := subject.NewPublishSubject[int]()
	sub := subj.Subscribe(nil)

	require.True(t, sub.IsDisposed())
	require.False(t, subj.HasObservers())
}

func TestPublishSubject_TerminateFromCallback(t *testing.T) {
	subj := subject.NewPublishSubject[int]()

	subj.Subscribe(observable.ObserverFunc[int](func(event observable.Event[int]) {
		if value, _ := event.Value(); value == 1 {
			subj.OnCompleted()
			subj.OnNext(2)
		}
	}))
	rec := new(eventRecorder[int])
	subj.Subscribe(rec)

	subj.OnNext(1)

	require.Equal(t, []string{"next(1)", "completed"}, rec.Events())
	require.True(t, subj.IsTerminated())
	require.False(t, subj.HasObservers())
}
