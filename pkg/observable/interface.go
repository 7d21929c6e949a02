package observable

// Observer is the capability of receiving events. It is the only thing an
// Observable needs from its subscribers; any type with an OnEvent method can
// subscribe.
type Observer[V any] interface {
	// OnEvent is called synchronously, on the goroutine which produced the
	// event. After a terminal (error or completed) event, OnEvent is not called
	// again for the same subscription.
	OnEvent(event Event[V])
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc[V any] func(event Event[V])

// OnEvent implements Observer.
func (fn ObserverFunc[V]) OnEvent(event Event[V]) {
	fn(event)
}

// Disposable is a cancellation handle for one subscription (or any other
// resource). Dispose is idempotent.
type Disposable interface {
	Dispose()
	IsDisposed() bool
}

// Observable is a sequence of events which can be subscribed to. Any replay
// which the implementation performs for new subscribers happens synchronously,
// within Subscribe, before it returns.
type Observable[V any] interface {
	Subscribe(observer Observer[V]) Disposable
}

// Subject is simultaneously an Observable and a push target. Values pushed with
// OnNext are fanned out, synchronously and in subscription order, to the
// observers which are subscribed at the time of the push.
//
// NB: a mutex guards the subject's internal state but the order in which
// concurrent producers' events are delivered is the caller's responsibility.
type Subject[V any] interface {
	Observable[V]

	// OnNext pushes a value. It is a no-op once the subject has terminated.
	OnNext(value V)
	// OnError terminates the subject with err.
	OnError(err error)
	// OnCompleted terminates the subject successfully.
	OnCompleted()
	// IsTerminated returns true once OnError or OnCompleted has been called.
	IsTerminated() bool
	// HasObservers returns true if at least one observer is subscribed.
	HasObservers() bool
}

// BehaviorSubject is a Subject which holds a current value. New subscribers
// receive the current value as their first event.
type BehaviorSubject[V any] interface {
	Subject[V]

	// Value returns the current value. Once the subject has failed, the
	// terminal error is returned instead.
	Value() (V, error)
}

// ReplaySubject is a Subject which replays buffered values to new subscribers,
// oldest first, before delivering new values.
type ReplaySubject[V any] interface {
	Subject[V]

	// Last returns up to the n most recently buffered values with LIFO
	// ordering (i.e. most recent first).
	Last(n int) []V
	// BufferSize returns the replay buffer capacity; 0 means unbounded.
	BufferSize() int
}

// Relay is a behavior-style value holder which can never terminate. It accepts
// values but has no error or completion API.
type Relay[V any] interface {
	Observable[V]

	// Accept updates the current value and delivers it to all subscribers.
	Accept(value V)
	// Value returns the current value.
	Value() V
	// HasObservers returns true if at least one observer is subscribed.
	HasObservers() bool
}
