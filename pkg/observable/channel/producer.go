package channel

import (
	"context"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
)

// FromProducer returns an observable which emits every value received from
// producer. Values are fanned out by a publish subject, from a single goroutine,
// so values received before an observer subscribes are not delivered to it.
// The observable completes when producer is closed and fails with ctx.Err()
// if ctx is done first.
func FromProducer[V any](
	ctx context.Context,
	producer <-chan V,
	opts ...subject.Option,
) observable.Observable[V] {
	subj := subject.NewPublishSubject[V](opts...)
	go goListen(ctx, producer, subj)

	return observable.AsObservable[V](subj)
}

// goListen to the producer and notify the subject when values are received.
// This function is blocking and should be run in a goroutine.
func goListen[V any](
	ctx context.Context,
	producer <-chan V,
	subj observable.Subject[V],
) {
	for {
		select {
		case <-ctx.Done():
			subj.OnError(ctx.Err())
			return
		case value, ok := <-producer:
			if !ok {
				// The producer has been closed, all observers are released.
				subj.OnCompleted()
				return
			}
			subj.OnNext(value)
		}
	}
}
