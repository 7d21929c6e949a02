package subject

import "github.com/pokt-network/rxsubjects/pkg/observable"

var _ observable.Relay[any] = (*relay[any])(nil)

// relay wraps a behaviorSubject and exposes no way to terminate it.
type relay[V any] struct {
	subject *behaviorSubject[V]
}

// NewRelay returns a Relay whose current value is initial.
func NewRelay[V any](initial V, opts ...Option) observable.Relay[V] {
	return &relay[V]{
		subject: newBehaviorSubject(initial, "relay", opts),
	}
}

func (r *relay[V]) Subscribe(observer observable.Observer[V]) observable.Disposable {
	return r.subject.Subscribe(observer)
}

func (r *relay[V]) Accept(value V) {
	r.subject.OnNext(value)
}

func (r *relay[V]) Value() V {
	// The wrapped subject never terminates, so it never returns an error.
	value, _ := r.subject.Value()
	return value
}

func (r *relay[V]) HasObservers() bool {
	return r.subject.HasObservers()
}
