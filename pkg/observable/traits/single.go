package traits

import (
	"sync"

	"github.com/pokt-network/rxsubjects/pkg/either"
	"github.com/pokt-network/rxsubjects/pkg/observable"
)

// Single is a sequence which emits exactly one result: either a value or an
// error. Its underlying observable emits one either.Either[V] followed by
// Completed.
type Single[V any] struct {
	source observable.Observable[either.Either[V]]
}

// NewSingle returns a Single which calls subscribe for every new subscriber.
// Only the first call to emit is delivered. The Disposable returned by
// subscribe (which MAY be nil) is disposed once the result has been delivered
// or the subscription is disposed.
func NewSingle[V any](
	subscribe func(emit func(result either.Either[V])) observable.Disposable,
) Single[V] {
	return Single[V]{
		source: observable.Create(func(observer observable.Observer[either.Either[V]]) observable.Disposable {
			return subscribe(func(result either.Either[V]) {
				emitResult(observer, result)
			})
		}),
	}
}

// AsSingle converts src into a Single. Exactly one Next followed by Completed
// yields that value; Completed without a Next yields ErrSingleNoElements; a
// second Next yields ErrSingleTooManyElements and disposes src's subscription;
// an Error yields that error.
func AsSingle[V any](src observable.Observable[V]) Single[V] {
	return Single[V]{
		source: observable.Create(func(observer observable.Observer[either.Either[V]]) observable.Disposable {
			var (
				mu        sync.Mutex
				element   V
				hasResult bool
			)

			return src.Subscribe(observable.ObserverFunc[V](func(event observable.Event[V]) {
				switch event.Kind() {
				case observable.NextEvent:
					value, _ := event.Value()

					mu.Lock()
					if hasResult {
						mu.Unlock()
						emitResult(observer, either.Error[V](ErrSingleTooManyElements))
						return
					}
					hasResult = true
					element = value
					mu.Unlock()
				case observable.ErrorEvent:
					emitResult(observer, either.Error[V](event.Err()))
				case observable.CompletedEvent:
					mu.Lock()
					value, ok := element, hasResult
					mu.Unlock()

					if !ok {
						emitResult(observer, either.Error[V](ErrSingleNoElements))
						return
					}
					emitResult(observer, either.Success(value))
				}
			}))
		}),
	}
}

// Subscribe calls onSuccess or onError, whichever applies, with the result.
// Nil callbacks are skipped.
func (s Single[V]) Subscribe(
	onSuccess func(value V),
	onError func(err error),
) observable.Disposable {
	handleError := func(err error) {
		if onError != nil {
			onError(err)
		}
	}

	return observable.SubscribeWith(s.source, observable.Handlers[either.Either[V]]{
		OnNext: func(result either.Either[V]) {
			value, err := result.ValueOrError()
			if err != nil {
				handleError(err)
				return
			}
			if onSuccess != nil {
				onSuccess(value)
			}
		},
		OnError: handleError,
	})
}

// AsObservable returns the underlying observable of results.
func (s Single[V]) AsObservable() observable.Observable[either.Either[V]] {
	return s.source
}

// emitResult delivers result followed by Completed.
func emitResult[V any](
	observer observable.Observer[either.Either[V]],
	result either.Either[V],
) {
	observer.OnEvent(observable.Next(result))
	observer.OnEvent(observable.Completed[either.Either[V]]())
}
