package subject

import "github.com/pokt-network/rxsubjects/pkg/observable"

var _ observable.Subject[any] = (*publishSubject[any])(nil)

// publishSubject delivers only the events pushed after an observer subscribed.
type publishSubject[V any] struct {
	*subjectInternals[V]
}

// NewPublishSubject returns a Subject without any buffer.
func NewPublishSubject[V any](opts ...Option) observable.Subject[V] {
	return &publishSubject[V]{
		subjectInternals: newSubjectInternals[V]("publish", opts),
	}
}

func (ps *publishSubject[V]) Subscribe(observer observable.Observer[V]) observable.Disposable {
	return ps.subscribe(observer, nil)
}

func (ps *publishSubject[V]) OnNext(value V) {
	ps.next(value, nil)
}

func (ps *publishSubject[V]) OnError(err error) {
	ps.terminate(observable.Error[V](err))
}

func (ps *publishSubject[V]) OnCompleted() {
	ps.terminate(observable.Completed[V]())
}
