// Package disposable provides Disposable constructors and Bag, an ordered
// collection of disposables which are disposed together.
package disposable

import (
	"sync"
	"sync/atomic"

	"github.com/pokt-network/rxsubjects/pkg/observable"
)

var (
	_ observable.Disposable = (*actionDisposable)(nil)
	_ observable.Disposable = emptyDisposable{}
)

// actionDisposable runs its action once, on the first call to Dispose.
type actionDisposable struct {
	once     sync.Once
	disposed atomic.Bool
	action   func()
}

// New returns a Disposable which calls action exactly once, on the first call
// to Dispose. A nil action is allowed.
func New(action func()) observable.Disposable {
	return &actionDisposable{action: action}
}

func (d *actionDisposable) Dispose() {
	d.once.Do(func() {
		d.disposed.Store(true)
		if d.action != nil {
			d.action()
		}
	})
}

func (d *actionDisposable) IsDisposed() bool {
	return d.disposed.Load()
}

// emptyDisposable has nothing to release and is always disposed.
type emptyDisposable struct{}

// Empty returns an already-disposed Disposable which does nothing.
func Empty() observable.Disposable {
	return emptyDisposable{}
}

func (emptyDisposable) Dispose()         {}
func (emptyDisposable) IsDisposed() bool { return true }
