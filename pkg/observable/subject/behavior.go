package subject

import "github.com/pokt-network/rxsubjects/pkg/observable"

var _ observable.BehaviorSubject[any] = (*behaviorSubject[any])(nil)

// behaviorSubject holds a current value which is delivered to every new
// observer before any live event.
type behaviorSubject[V any] struct {
	*subjectInternals[V]
	// value is protected by subjectInternals.mu.
	value V
}

// NewBehaviorSubject returns a BehaviorSubject whose current value is initial.
func NewBehaviorSubject[V any](initial V, opts ...Option) observable.BehaviorSubject[V] {
	return newBehaviorSubject(initial, "behavior", opts)
}

func newBehaviorSubject[V any](initial V, variant string, opts []Option) *behaviorSubject[V] {
	return &behaviorSubject[V]{
		subjectInternals: newSubjectInternals[V](variant, opts),
		value:            initial,
	}
}

func (bs *behaviorSubject[V]) Subscribe(observer observable.Observer[V]) observable.Disposable {
	return bs.subscribe(observer, func() []observable.Event[V] {
		return []observable.Event[V]{observable.Next(bs.value)}
	})
}

func (bs *behaviorSubject[V]) OnNext(value V) {
	bs.next(value, func(value V) {
		bs.value = value
	})
}

func (bs *behaviorSubject[V]) OnError(err error) {
	bs.terminate(observable.Error[V](err))
}

func (bs *behaviorSubject[V]) OnCompleted() {
	bs.terminate(observable.Completed[V]())
}

// Value returns the current value, or the terminal error once the subject has
// failed. A completed subject keeps reporting its last value.
func (bs *behaviorSubject[V]) Value() (V, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if bs.terminal != nil && bs.terminal.Kind() == observable.ErrorEvent {
		var zero V
		return zero, bs.terminal.Err()
	}
	return bs.value, nil
}
