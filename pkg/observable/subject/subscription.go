package subject

import (
	"sync"

	"github.com/pokt-network/rxsubjects/pkg/observable"
)

var _ observable.Disposable = (*subscription[any])(nil)

// subscription is the record of one observer registered with a subject. It is
// also the Disposable handed back to the subscriber.
type subscription[V any] struct {
	// mu protects all fields below; it is never held while calling the observer.
	mu       sync.Mutex
	observer observable.Observer[V]
	// disposed is set by Dispose or once a terminal event has been delivered.
	disposed bool
	// replaying is true while subscribe-time events (replay buffer or current
	// value) are being delivered. Live events which arrive meanwhile are queued
	// in pending and delivered afterwards, preserving order.
	replaying bool
	pending   []observable.Event[V]
	// onDispose removes this subscription from its subject.
	onDispose func(toRemove *subscription[V])
}

func newSubscription[V any](
	observer observable.Observer[V],
	replaying bool,
	onDispose func(toRemove *subscription[V]),
) *subscription[V] {
	return &subscription[V]{
		observer:  observer,
		replaying: replaying,
		onDispose: onDispose,
	}
}

// Dispose stops any further delivery and unregisters the observer.
func (sub *subscription[V]) Dispose() {
	sub.mu.Lock()
	if sub.disposed {
		sub.mu.Unlock()
		return
	}
	sub.disposed = true
	sub.observer = nil
	sub.pending = nil
	sub.mu.Unlock()

	sub.onDispose(sub)
}

func (sub *subscription[V]) IsDisposed() bool {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	return sub.disposed
}

// deliver passes a live event to the observer, or queues it if subscribe-time
// events are still being replayed.
func (sub *subscription[V]) deliver(event observable.Event[V]) {
	sub.mu.Lock()
	if sub.replaying && !sub.disposed {
		sub.pending = append(sub.pending, event)
		sub.mu.Unlock()
		return
	}
	sub.mu.Unlock()

	sub.emit(event)
}

// replay delivers the subscribe-time events followed by any live events which
// were queued in the meantime.
func (sub *subscription[V]) replay(events []observable.Event[V]) {
	for {
		for _, event := range events {
			sub.emit(event)
		}

		sub.mu.Lock()
		if sub.disposed || len(sub.pending) == 0 {
			sub.replaying = false
			sub.pending = nil
			sub.mu.Unlock()
			return
		}
		events = sub.pending
		sub.pending = nil
		sub.mu.Unlock()
	}
}

func (sub *subscription[V]) emit(event observable.Event[V]) {
	sub.mu.Lock()
	if sub.disposed {
		sub.mu.Unlock()
		return
	}
	observer := sub.observer
	if event.IsTerminal() {
		sub.disposed = true
		sub.observer = nil
	}
	sub.mu.Unlock()

	observer.OnEvent(event)
}
