package observable

// AsObservable hides the identity of src (e.g. a Subject or Relay) so that
// consumers can only subscribe to it.
func AsObservable[V any](src Observable[V]) Observable[V] {
	return hiddenObservable[V]{source: src}
}

type hiddenObservable[V any] struct {
	source Observable[V]
}

func (obs hiddenObservable[V]) Subscribe(observer Observer[V]) Disposable {
	return obs.source.Subscribe(observer)
}
