package observable

import "sync"

var (
	_ Observable[any] = anonymousObservable[any]{}
	_ Observer[any]   = (*sink[any])(nil)
	_ Disposable      = (*sink[any])(nil)
)

// Create returns an Observable which calls subscribe for every new subscriber.
// subscribe receives an observer which forwards events until the first terminal
// event or until the subscription is disposed, whichever comes first. The
// Disposable returned by subscribe (which MAY be nil) is disposed exactly once
// at that point, even if the terminal event is emitted before subscribe returns.
func Create[V any](subscribe func(observer Observer[V]) Disposable) Observable[V] {
	return anonymousObservable[V]{subscribe: subscribe}
}

type anonymousObservable[V any] struct {
	subscribe func(observer Observer[V]) Disposable
}

func (obs anonymousObservable[V]) Subscribe(observer Observer[V]) Disposable {
	s := &sink[V]{observer: observer}
	s.setUpstream(obs.subscribe(s))
	return s
}

// sink sits between a subscribe function and the downstream observer. It
// enforces the event grammar (nothing after a terminal event) and owns the
// upstream disposable.
type sink[V any] struct {
	// mu protects all fields below; it is never held while calling out.
	mu       sync.Mutex
	observer Observer[V]
	// done is set on the first terminal event or on Dispose.
	done bool
	// upstreamSet is false until the subscribe function has returned.
	upstreamSet      bool
	upstream         Disposable
	upstreamDisposed bool
}

func (s *sink[V]) OnEvent(event Event[V]) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	observer := s.observer
	if event.IsTerminal() {
		s.done = true
		s.observer = nil
	}
	s.mu.Unlock()

	observer.OnEvent(event)

	if event.IsTerminal() {
		s.disposeUpstream()
	}
}

func (s *sink[V]) Dispose() {
	s.mu.Lock()
	s.done = true
	s.observer = nil
	s.mu.Unlock()

	s.disposeUpstream()
}

func (s *sink[V]) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

func (s *sink[V]) setUpstream(upstream Disposable) {
	s.mu.Lock()
	s.upstream = upstream
	s.upstreamSet = true
	done := s.done
	s.mu.Unlock()

	if done {
		s.disposeUpstream()
	}
}

// disposeUpstream disposes the upstream disposable at most once. If the
// subscribe function has not returned yet, setUpstream picks it up later.
func (s *sink[V]) disposeUpstream() {
	s.mu.Lock()
	if !s.upstreamSet || s.upstreamDisposed {
		s.mu.Unlock()
		return
	}
	s.upstreamDisposed = true
	upstream := s.upstream
	s.upstream = nil
	s.mu.Unlock()

	if upstream != nil {
		upstream.Dispose()
	}
}
