package traits

import (
	"github.com/pokt-network/rxsubjects/pkg/observable"
)

// Completable is a sequence which emits no values, only one completion or one
// error.
type Completable struct {
	source observable.Observable[struct{}]
}

// NewCompletable returns a Completable which calls subscribe for every new
// subscriber. emit(nil) completes the sequence, emit(err) fails it; only the
// first call is delivered. The Disposable returned by subscribe (which MAY be
// nil) is disposed once the sequence has terminated or the subscription is
// disposed, e.g. to dismiss whatever subscribe presented.
func NewCompletable(
	subscribe func(emit func(err error)) observable.Disposable,
) Completable {
	return Completable{
		source: observable.Create(func(observer observable.Observer[struct{}]) observable.Disposable {
			return subscribe(func(err error) {
				if err != nil {
					observer.OnEvent(observable.Error[struct{}](err))
					return
				}
				observer.OnEvent(observable.Completed[struct{}]())
			})
		}),
	}
}

// AsCompletable converts src into a Completable which ignores src's values.
func AsCompletable[V any](src observable.Observable[V]) Completable {
	return Completable{
		source: observable.Create(func(observer observable.Observer[struct{}]) observable.Disposable {
			return src.Subscribe(observable.ObserverFunc[V](func(event observable.Event[V]) {
				switch event.Kind() {
				case observable.ErrorEvent:
					observer.OnEvent(observable.Error[struct{}](event.Err()))
				case observable.CompletedEvent:
					observer.OnEvent(observable.Completed[struct{}]())
				}
			}))
		}),
	}
}

// Subscribe calls onCompleted or onError when the sequence terminates. Nil
// callbacks are skipped.
func (c Completable) Subscribe(
	onCompleted func(),
	onError func(err error),
) observable.Disposable {
	return observable.SubscribeWith(c.source, observable.Handlers[struct{}]{
		OnCompleted: onCompleted,
		OnError:     onError,
	})
}

// AsObservable returns the underlying observable, which only ever terminates.
func (c Completable) AsObservable() observable.Observable[struct{}] {
	return c.source
}
