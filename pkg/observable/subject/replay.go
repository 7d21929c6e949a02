package subject

import (
	"github.com/pokt-network/rxsubjects/pkg/observable"
)

var _ observable.ReplaySubject[any] = (*replaySubject[any])(nil)

type replaySubject[V any] struct {
	*subjectInternals[V]
	// bufferSize is the number of values to buffer so that they can be
	// replayed to new observers; 0 means unbounded.
	bufferSize int
	// buffer holds the last bufferSize values pushed into this subject, oldest
	// first. It is protected by subjectInternals.mu.
	buffer []V
}

// NewReplaySubject returns a ReplaySubject which replays the last bufferSize
// values to new observers, before delivering new values.
func NewReplaySubject[V any](bufferSize int, opts ...Option) (observable.ReplaySubject[V], error) {
	if bufferSize < 1 {
		return nil, ErrInvalidReplayBufferSize.Wrapf("must be at least 1, got %d", bufferSize)
	}

	return &replaySubject[V]{
		subjectInternals: newSubjectInternals[V]("replay", opts),
		bufferSize:       bufferSize,
		buffer:           make([]V, 0, bufferSize),
	}, nil
}

// NewUnboundedReplaySubject returns a ReplaySubject which replays every value
// ever pushed into it.
func NewUnboundedReplaySubject[V any](opts ...Option) observable.ReplaySubject[V] {
	return &replaySubject[V]{
		subjectInternals: newSubjectInternals[V]("replay_unbounded", opts),
	}
}

func (rs *replaySubject[V]) Subscribe(observer observable.Observer[V]) observable.Disposable {
	return rs.subscribe(observer, func() []observable.Event[V] {
		events := make([]observable.Event[V], 0, len(rs.buffer))
		for _, value := range rs.buffer {
			events = append(events, observable.Next(value))
		}
		return events
	})
}

func (rs *replaySubject[V]) OnNext(value V) {
	rs.next(value, rs.bufferValue)
}

func (rs *replaySubject[V]) OnError(err error) {
	rs.terminate(observable.Error[V](err))
}

func (rs *replaySubject[V]) OnCompleted() {
	rs.terminate(observable.Completed[V]())
}

// Last returns up to the n most recently buffered values, most recent first.
// If n is greater than the number of buffered values, the entire buffer is
// returned.
func (rs *replaySubject[V]) Last(n int) []V {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if n > len(rs.buffer) {
		n = len(rs.buffer)
	}
	if n <= 0 {
		return []V{}
	}

	values := make([]V, 0, n)
	for i := len(rs.buffer) - 1; i >= len(rs.buffer)-n; i-- {
		values = append(values, rs.buffer[i])
	}
	return values
}

func (rs *replaySubject[V]) BufferSize() int {
	return rs.bufferSize
}

// bufferValue adds value to the buffer. Callers MUST hold mu.
func (rs *replaySubject[V]) bufferValue(value V) {
	if rs.bufferSize == 0 || len(rs.buffer) < rs.bufferSize {
		rs.buffer = append(rs.buffer, value)
		return
	}

	// Buffer full, make room for the new value by removing the oldest one.
	copy(rs.buffer, rs.buffer[1:])
	rs.buffer[len(rs.buffer)-1] = value
}
