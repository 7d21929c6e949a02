package channel

import (
	"context"
	"sync"
	"time"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/polylog"
	_ "github.com/pokt-network/rxsubjects/pkg/polylog/polyzero"
)

const (
	// defaultSubscribeBufferSize is the buffer size of a channelObserver's channel.
	defaultSubscribeBufferSize = 50
	// sendRetryInterval is the duration between attempts to send on the observer's
	// channel in the event that it's full. It facilitates a branch in a for loop
	// which unlocks the observer's mutex and tries again.
	// NOTE: setting this too low can cause the send retry loop to "slip", giving
	// up on a send attempt before the channel is ready to receive for multiple
	// iterations of the loop.
	sendRetryInterval = 100 * time.Millisecond
)

var (
	_ observable.Observer[any] = (*channelObserver[any])(nil)
	_ Observer[any]            = (*channelObserver[any])(nil)
)

// Observer receives the Next values of an observable on a channel.
type Observer[V any] interface {
	// Ch returns a receive-only channel of Next values. It is closed on a
	// terminal event, when the context is done, or on Unsubscribe.
	Ch() <-chan V
	// Err returns the error which closed the channel: the observable's
	// terminal error, the context error, or nil.
	Err() error
	// Unsubscribe closes the channel and disposes the underlying subscription.
	Unsubscribe()
	// IsClosed returns true once the channel has been closed.
	IsClosed() bool
}

// ObserveOption configures Observe.
type ObserveOption func(cfg *observeConfig)

type observeConfig struct {
	bufferSize int
}

// WithBufferSize sets the observer's channel buffer size.
func WithBufferSize(bufferSize int) ObserveOption {
	return func(cfg *observeConfig) {
		cfg.bufferSize = bufferSize
	}
}

// channelObserver implements both observable.Observer, to be subscribed to the
// source, and Observer, to be consumed by the caller.
type channelObserver[V any] struct {
	ctx context.Context
	// observerMu protects all fields below.
	observerMu *sync.RWMutex
	// observerCh is the channel that is used to emit values to the observer.
	observerCh chan V
	// isClosed indicates whether the observer has been closed; closed
	// observers can't be reused.
	isClosed bool
	err      error
	// upstream is the subscription to the source observable; it is nil until
	// Subscribe returns.
	upstream      observable.Disposable
	stopAfterFunc func() bool

	// backlogMu protects spilling and backlog. It may be held while acquiring
	// observerMu, never the other way around.
	backlogMu sync.Mutex
	// spilling is true from construction until backlog has been drained.
	// Meanwhile, events are appended to backlog instead of being sent, so that
	// events which src replays within Subscribe can't block the caller.
	spilling bool
	backlog  []observable.Event[V]
}

// Observe subscribes to src and returns an Observer whose channel receives
// src's Next values. Values which src delivers within Subscribe (e.g. a replay
// buffer) are queued, and those which don't fit in the channel's buffer are
// sent from a separate goroutine. Afterwards, sends block, bounded by ctx,
// while the channel's buffer is full.
func Observe[V any](
	ctx context.Context,
	src observable.Observable[V],
	opts ...ObserveOption,
) Observer[V] {
	cfg := observeConfig{bufferSize: defaultSubscribeBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	obsvr := &channelObserver[V]{
		ctx:        ctx,
		observerMu: new(sync.RWMutex),
		observerCh: make(chan V, cfg.bufferSize),
		spilling:   true,
	}
	upstream := src.Subscribe(obsvr)

	obsvr.observerMu.Lock()
	if obsvr.isClosed {
		obsvr.observerMu.Unlock()
		upstream.Dispose()
		return obsvr
	}
	obsvr.upstream = upstream
	obsvr.stopAfterFunc = context.AfterFunc(ctx, func() {
		obsvr.close(ctx.Err())
	})
	obsvr.observerMu.Unlock()

	if !obsvr.drainBacklog(false) {
		go obsvr.drainBacklog(true)
	}

	return obsvr
}

// OnEvent implements observable.Observer.
func (obsvr *channelObserver[V]) OnEvent(event observable.Event[V]) {
	obsvr.backlogMu.Lock()
	if obsvr.spilling {
		obsvr.backlog = append(obsvr.backlog, event)
		obsvr.backlogMu.Unlock()
		return
	}
	obsvr.backlogMu.Unlock()

	obsvr.handle(event)
}

func (obsvr *channelObserver[V]) handle(event observable.Event[V]) {
	if value, ok := event.Value(); ok {
		obsvr.notify(value)
		return
	}
	obsvr.close(event.Err())
}

// drainBacklog handles the queued events in order, then stops spilling. If
// block is false, it returns false as soon as a value doesn't fit in the
// channel's buffer, leaving that value and the rest queued.
func (obsvr *channelObserver[V]) drainBacklog(block bool) bool {
	for {
		obsvr.backlogMu.Lock()
		if len(obsvr.backlog) == 0 || obsvr.IsClosed() {
			obsvr.backlog = nil
			obsvr.spilling = false
			obsvr.backlogMu.Unlock()
			return true
		}

		event := obsvr.backlog[0]
		if value, ok := event.Value(); ok && !block {
			if !obsvr.trySend(value) {
				obsvr.backlogMu.Unlock()
				return false
			}
			obsvr.backlog = obsvr.backlog[1:]
			obsvr.backlogMu.Unlock()
			continue
		}
		obsvr.backlog = obsvr.backlog[1:]
		obsvr.backlogMu.Unlock()

		obsvr.handle(event)
	}
}

// trySend sends value on the observer's channel if its buffer has room.
func (obsvr *channelObserver[V]) trySend(value V) bool {
	obsvr.observerMu.RLock()
	defer obsvr.observerMu.RUnlock()

	if obsvr.isClosed {
		return true
	}
	select {
	case obsvr.observerCh <- value:
		return true
	default:
		return false
	}
}

// Ch returns a receive-only subscription channel.
func (obsvr *channelObserver[V]) Ch() <-chan V {
	return obsvr.observerCh
}

func (obsvr *channelObserver[V]) Err() error {
	obsvr.observerMu.RLock()
	defer obsvr.observerMu.RUnlock()

	return obsvr.err
}

// Unsubscribe closes the subscription channel and disposes the subscription to
// the source observable.
func (obsvr *channelObserver[V]) Unsubscribe() {
	obsvr.observerMu.RLock()
	isClosed := obsvr.isClosed
	obsvr.observerMu.RUnlock()

	if isClosed {
		// log the fact that this case was encountered such that an extreme change
		// in its frequency would be obvious.
		polylog.Ctx(obsvr.ctx).Warn().
			Err(observable.ErrObserverClosed).
			Msg("redundant unsubscribe")
		return
	}
	obsvr.close(nil)
}

// IsClosed returns true if the observer has been closed.
// A closed observer cannot be reused.
func (obsvr *channelObserver[V]) IsClosed() bool {
	obsvr.observerMu.RLock()
	defer obsvr.observerMu.RUnlock()

	return obsvr.isClosed
}

// close closes the subscription channel, records err, and disposes the
// upstream subscription. It is a no-op if the observer is already closed.
func (obsvr *channelObserver[V]) close(err error) {
	obsvr.observerMu.Lock()
	if obsvr.isClosed {
		obsvr.observerMu.Unlock()
		return
	}
	close(obsvr.observerCh)
	obsvr.isClosed = true
	obsvr.err = err
	upstream := obsvr.upstream
	stopAfterFunc := obsvr.stopAfterFunc
	obsvr.upstream = nil
	obsvr.observerMu.Unlock()

	if stopAfterFunc != nil {
		stopAfterFunc()
	}
	if upstream != nil {
		upstream.Dispose()
	}
}

// notify sends value on the observer's channel. It blocks while the channel's
// buffer is full, retrying every sendRetryInterval so that a concurrent close
// can acquire the lock, until the value is sent, the observer is closed, or
// the context is done.
func (obsvr *channelObserver[V]) notify(value V) {
	sendRetryTicker := time.NewTicker(sendRetryInterval)
	defer sendRetryTicker.Stop()

	for {
		// observerMu must remain read-locked until the value is sent on observerCh
		// in the event that it would be closed concurrently (i.e. this observer
		// unsubscribes), which could cause a "send on closed channel" panic.
		obsvr.observerMu.RLock()
		if obsvr.isClosed {
			obsvr.observerMu.RUnlock()
			return
		}

		select {
		case <-obsvr.ctx.Done():
			obsvr.observerMu.RUnlock()
			return
		case obsvr.observerCh <- value:
			obsvr.observerMu.RUnlock()
			return
		// if the context isn't done and the channel is full (i.e. blocking),
		// release the read-lock to give write-lockers a turn, then try again.
		case <-sendRetryTicker.C:
			obsvr.observerMu.RUnlock()
		}
	}
}
