package observable

import (
	"sync"
	"sync/atomic"
)

// Handlers holds per-kind callbacks for SubscribeWith. Nil callbacks are skipped.
type Handlers[V any] struct {
	OnNext      func(value V)
	OnError     func(err error)
	OnCompleted func()
	// OnDisposed is called exactly once, after a terminal event has been
	// handled or when the subscription is disposed, whichever happens first.
	OnDisposed func()
}

// SubscribeWith subscribes to src with the given per-kind handlers.
func SubscribeWith[V any](src Observable[V], handlers Handlers[V]) Disposable {
	hs := &handlerSubscription[V]{handlers: handlers}
	hs.upstream = src.Subscribe(ObserverFunc[V](hs.onEvent))
	return hs
}

type handlerSubscription[V any] struct {
	handlers     Handlers[V]
	upstream     Disposable
	finished     atomic.Bool
	disposedOnce sync.Once
}

func (hs *handlerSubscription[V]) onEvent(event Event[V]) {
	if hs.finished.Load() {
		return
	}

	switch event.Kind() {
	case NextEvent:
		if hs.handlers.OnNext != nil {
			value, _ := event.Value()
			hs.handlers.OnNext(value)
		}
	case ErrorEvent:
		hs.finished.Store(true)
		if hs.handlers.OnError != nil {
			hs.handlers.OnError(event.Err())
		}
		hs.runOnDisposed()
	case CompletedEvent:
		hs.finished.Store(true)
		if hs.handlers.OnCompleted != nil {
			hs.handlers.OnCompleted()
		}
		hs.runOnDisposed()
	}
}

func (hs *handlerSubscription[V]) Dispose() {
	hs.finished.Store(true)
	// upstream is nil only while src.Subscribe is still running.
	if hs.upstream != nil {
		hs.upstream.Dispose()
	}
	hs.runOnDisposed()
}

func (hs *handlerSubscription[V]) IsDisposed() bool {
	return hs.finished.Load()
}

func (hs *handlerSubscription[V]) runOnDisposed() {
	hs.disposedOnce.Do(func() {
		if hs.handlers.OnDisposed != nil {
			hs.handlers.OnDisposed()
		}
	})
}
