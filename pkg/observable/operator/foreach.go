package operator

import (
	"context"
	"sync"

	"github.com/pokt-network/rxsubjects/pkg/observable"
)

// ForEach calls forEachFn with every value emitted by srcObservable until it
// terminates, the returned Disposable is disposed, or ctx is done.
func ForEach[V any](
	ctx context.Context,
	srcObservable observable.Observable[V],
	forEachFn func(ctx context.Context, value V),
) observable.Disposable {
	var (
		// mu protects stopAfterFunc and disposed, which are accessed from
		// whichever goroutine terminates or disposes the subscription.
		mu            sync.Mutex
		stopAfterFunc func() bool
		disposed      bool
	)

	sub := observable.SubscribeWith(srcObservable, observable.Handlers[V]{
		OnNext: func(value V) {
			forEachFn(ctx, value)
		},
		OnDisposed: func() {
			mu.Lock()
			disposed = true
			stop := stopAfterFunc
			mu.Unlock()

			if stop != nil {
				stop()
			}
		},
	})

	mu.Lock()
	defer mu.Unlock()
	if !disposed {
		stopAfterFunc = context.AfterFunc(ctx, sub.Dispose)
	}

	return sub
}
