package subject

import (
	"sync"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/disposable"
)

// subjectInternals holds the state which all subject variants share: the
// registered observers and the terminal event. Variants embed it and pass
// closures which read or update their own state under mu.
type subjectInternals[V any] struct {
	subjectConfig

	// mu protects observers, terminal and any variant state (current value,
	// replay buffer). It is never held while observers are notified.
	mu sync.Mutex
	// observers is the list of subscriptions, in subscription order, which are
	// notified of new events.
	observers []*subscription[V]
	// terminal is nil while the subject is active.
	terminal *observable.Event[V]
	// emitting is true while a notification pass is running. Events pushed
	// meanwhile, from an observer or another goroutine, are appended to queue
	// and delivered by that pass once it finishes, in push order.
	emitting bool
	queue    []queuedEvent[V]
}

// queuedEvent is an event waiting for the running notification pass, together
// with the observers registered when it was pushed.
type queuedEvent[V any] struct {
	event     observable.Event[V]
	observers []*subscription[V]
}

func newSubjectInternals[V any](variant string, opts []Option) *subjectInternals[V] {
	return &subjectInternals[V]{
		subjectConfig: newSubjectConfig(variant, opts),
	}
}

// subscribe registers observer. snapshot is called under mu and returns the
// events which the new observer receives before any live event. On a terminal
// subject, only the terminal event is delivered and an already-disposed handle
// is returned.
func (si *subjectInternals[V]) subscribe(
	observer observable.Observer[V],
	snapshot func() []observable.Event[V],
) observable.Disposable {
	if observer == nil {
		return disposable.Empty()
	}

	si.mu.Lock()
	if si.terminal != nil {
		terminal := *si.terminal
		si.mu.Unlock()

		observer.OnEvent(terminal)
		return disposable.Empty()
	}

	var replayEvents []observable.Event[V]
	if snapshot != nil {
		replayEvents = snapshot()
	}
	sub := newSubscription(observer, len(replayEvents) > 0, si.remove)
	si.observers = append(si.observers, sub)
	numObservers := len(si.observers)
	si.mu.Unlock()

	si.metrics.ObserverAdded(si.name)
	si.logger.Debug().
		Int("observers", numObservers).
		Int("replayed", len(replayEvents)).
		Msg("observer subscribed")

	sub.replay(replayEvents)

	return sub
}

// next records value via record (under mu) and notifies all current observers.
// It is a no-op on a terminal subject.
func (si *subjectInternals[V]) next(value V, record func(value V)) {
	si.mu.Lock()
	if si.terminal != nil {
		si.mu.Unlock()
		si.logger.Debug().Msg("dropping value pushed to a terminated subject")
		return
	}
	if record != nil {
		record(value)
	}
	si.emit(observable.Next(value), si.copyObservers())
}

// terminate transitions the subject to its terminal state, notifies and then
// releases all observers. Repeated calls are no-ops.
func (si *subjectInternals[V]) terminate(event observable.Event[V]) {
	si.mu.Lock()
	if si.terminal != nil {
		si.mu.Unlock()
		return
	}
	si.terminal = &event
	observers := si.observers
	si.observers = nil
	si.emit(event, observers)

	si.logger.Debug().
		Str("event", event.Kind().String()).
		Int("observers", len(observers)).
		Msg("subject terminated")

	for range observers {
		si.metrics.ObserverRemoved(si.name)
	}
}

// emit delivers event to observers, or queues it if a notification pass is
// already running. Callers MUST hold mu; emit releases it.
func (si *subjectInternals[V]) emit(event observable.Event[V], observers []*subscription[V]) {
	if si.emitting {
		si.queue = append(si.queue, queuedEvent[V]{event: event, observers: observers})
		si.mu.Unlock()
		return
	}
	si.emitting = true
	si.mu.Unlock()

	drained := false
	defer func() {
		// An observer panicked: let the next push start a new pass.
		if !drained {
			si.mu.Lock()
			si.emitting = false
			si.queue = nil
			si.mu.Unlock()
		}
	}()

	for {
		si.notifyAll(observers, event)

		si.mu.Lock()
		if len(si.queue) == 0 {
			si.emitting = false
			si.mu.Unlock()
			drained = true
			return
		}
		event, observers = si.queue[0].event, si.queue[0].observers
		si.queue[0] = queuedEvent[V]{}
		si.queue = si.queue[1:]
		si.mu.Unlock()
	}
}

// notifyAll delivers event to observers, a snapshot taken when the event was
// pushed. Observers may (un)subscribe while this notification is being fanned
// out; a subscription disposed mid-pass receives nothing further.
func (si *subjectInternals[V]) notifyAll(
	observers []*subscription[V],
	event observable.Event[V],
) {
	for _, sub := range observers {
		sub.deliver(event)
	}
	si.metrics.EventEmitted(si.name, event.Kind(), len(observers))
}

// remove unregisters toRemove. Subscriptions already released by terminate
// are not found and not counted again.
func (si *subjectInternals[V]) remove(toRemove *subscription[V]) {
	si.mu.Lock()
	removed := false
	for i, sub := range si.observers {
		if sub == toRemove {
			si.observers = append(si.observers[:i:i], si.observers[i+1:]...)
			removed = true
			break
		}
	}
	si.mu.Unlock()

	if removed {
		si.metrics.ObserverRemoved(si.name)
		si.logger.Debug().Msg("observer disposed")
	}
}

// copyObservers returns a copy of the current observers list. Callers MUST
// hold mu.
func (si *subjectInternals[V]) copyObservers() []*subscription[V] {
	observers := make([]*subscription[V], len(si.observers))
	copy(observers, si.observers)
	return observers
}

func (si *subjectInternals[V]) IsTerminated() bool {
	si.mu.Lock()
	defer si.mu.Unlock()

	return si.terminal != nil
}

func (si *subjectInternals[V]) HasObservers() bool {
	si.mu.Lock()
	defer si.mu.Unlock()

	return len(si.observers) > 0
}
