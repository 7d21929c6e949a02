package operator

import (
	"github.com/pokt-network/rxsubjects/pkg/observable"
)

// Map transforms the given observable by applying the given transformFn to each
// value received from it. If the transformFn returns a skip bool of true, the
// value is skipped and not emitted to the resulting observable. Terminal events
// are forwarded as-is.
func Map[S, D any](
	srcObservable observable.Observable[S],
	transformFn func(src S) (dst D, skip bool),
) observable.Observable[D] {
	return observable.Create(func(dstObserver observable.Observer[D]) observable.Disposable {
		return srcObservable.Subscribe(observable.ObserverFunc[S](
			func(srcEvent observable.Event[S]) {
				srcValue, ok := srcEvent.Value()
				if !ok {
					dstObserver.OnEvent(convertTerminal[S, D](srcEvent))
					return
				}

				dstValue, skip := transformFn(srcValue)
				if skip {
					return
				}
				dstObserver.OnEvent(observable.Next(dstValue))
			},
		))
	})
}

// Filter emits only the values of srcObservable for which predicate is true.
func Filter[V any](
	srcObservable observable.Observable[V],
	predicate func(value V) bool,
) observable.Observable[V] {
	return Map(srcObservable, func(value V) (V, bool) {
		return value, !predicate(value)
	})
}

// convertTerminal re-types a terminal event.
func convertTerminal[S, D any](event observable.Event[S]) observable.Event[D] {
	if event.Kind() == observable.ErrorEvent {
		return observable.Error[D](event.Err())
	}
	return observable.Completed[D]()
}
