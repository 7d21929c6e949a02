package disposable

import (
	"context"
	"sync"

	"github.com/pokt-network/rxsubjects/pkg/observable"
)

var _ observable.Disposable = (*Bag)(nil)

// Bag holds disposables in insertion order and disposes all of them together.
// Go has no destructors: tie a bag to a scope with `defer bag.Dispose()` or to
// a context with DisposeOnDone.
type Bag struct {
	// mu protects disposables, disposed and stopFns.
	mu          sync.Mutex
	disposables []observable.Disposable
	disposed    bool
	// stopFns unregister the context callbacks installed by DisposeOnDone.
	stopFns []func() bool
}

// NewBag returns an empty, active Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends the given disposables to the bag. If the bag has already been
// disposed, they are disposed immediately instead.
func (bag *Bag) Add(toAdd ...observable.Disposable) {
	bag.mu.Lock()
	if bag.disposed {
		bag.mu.Unlock()
		disposeAll(toAdd)
		return
	}
	for _, d := range toAdd {
		if d != nil {
			bag.disposables = append(bag.disposables, d)
		}
	}
	bag.mu.Unlock()
}

// Len returns the number of disposables currently held.
func (bag *Bag) Len() int {
	bag.mu.Lock()
	defer bag.mu.Unlock()

	return len(bag.disposables)
}

// Dispose disposes every held disposable, in insertion order, and clears the
// bag. Subsequent calls are no-ops.
func (bag *Bag) Dispose() {
	// Copy the members to avoid holding the lock while disposing them; a member
	// may add to (or dispose) this bag from its own Dispose.
	bag.mu.Lock()
	if bag.disposed {
		bag.mu.Unlock()
		return
	}
	bag.disposed = true
	toDispose := bag.disposables
	bag.disposables = nil
	stopFns := bag.stopFns
	bag.stopFns = nil
	bag.mu.Unlock()

	for _, stop := range stopFns {
		stop()
	}
	disposeAll(toDispose)
}

func (bag *Bag) IsDisposed() bool {
	bag.mu.Lock()
	defer bag.mu.Unlock()

	return bag.disposed
}

// DisposeOnDone disposes the bag when ctx is done. It returns immediately.
// Disposing the bag first unregisters the callback from ctx.
func (bag *Bag) DisposeOnDone(ctx context.Context) {
	bag.mu.Lock()
	defer bag.mu.Unlock()

	if bag.disposed {
		return
	}
	bag.stopFns = append(bag.stopFns, context.AfterFunc(ctx, bag.Dispose))
}

// DisposedBy adds d to bag and returns d, for use at the end of a subscription
// expression.
func DisposedBy(d observable.Disposable, bag *Bag) observable.Disposable {
	bag.Add(d)
	return d
}

func disposeAll(disposables []observable.Disposable) {
	for _, d := range disposables {
		if d != nil {
			d.Dispose()
		}
	}
}
