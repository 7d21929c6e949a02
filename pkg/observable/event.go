package observable

import "fmt"

// EventKind discriminates the Event union.
type EventKind int

const (
	NextEvent EventKind = iota
	ErrorEvent
	CompletedEvent
)

func (kind EventKind) String() string {
	switch kind {
	case NextEvent:
		return "next"
	case ErrorEvent:
		return "error"
	case CompletedEvent:
		return "completed"
	default:
		return fmt.Sprintf("unknown(%d)", int(kind))
	}
}

// Event is a tagged union of Next(value), Error(err) and Completed.
type Event[V any] struct {
	kind  EventKind
	value V
	err   error
}

// Next constructs a Next event carrying value.
func Next[V any](value V) Event[V] {
	return Event[V]{kind: NextEvent, value: value}
}

// Error constructs an Error event. A nil err is replaced by ErrNilErrorEvent so
// that Err() is never nil for an error event.
func Error[V any](err error) Event[V] {
	if err == nil {
		err = ErrNilErrorEvent
	}
	return Event[V]{kind: ErrorEvent, err: err}
}

// Completed constructs a Completed event.
func Completed[V any]() Event[V] {
	return Event[V]{kind: CompletedEvent}
}

func (e Event[V]) Kind() EventKind {
	return e.kind
}

// Value returns the carried value and true for Next events; the zero value and
// false otherwise.
func (e Event[V]) Value() (V, bool) {
	return e.value, e.kind == NextEvent
}

// Err returns the carried error for Error events; nil otherwise.
func (e Event[V]) Err() error {
	return e.err
}

// IsTerminal returns true for Error and Completed events.
func (e Event[V]) IsTerminal() bool {
	return e.kind == ErrorEvent || e.kind == CompletedEvent
}

// String renders the event as next(value), error(message) or completed.
func (e Event[V]) String() string {
	switch e.kind {
	case NextEvent:
		return fmt.Sprintf("next(%v)", e.value)
	case ErrorEvent:
		return fmt.Sprintf("error(%s)", e.err)
	default:
		return e.kind.String()
	}
}
