package subject

import "github.com/pokt-network/rxsubjects/pkg/observable"

// Metrics receives subject lifecycle and fan-out measurements. Implementations
// MUST be safe for concurrent use; see pkg/observable/metrics for the
// prometheus implementation.
type Metrics interface {
	// EventEmitted is called once per event pushed into the subject, with the
	// number of observers it was fanned out to.
	EventEmitted(subject string, kind observable.EventKind, observers int)
	// ObserverAdded is called when an observer is registered.
	ObserverAdded(subject string)
	// ObserverRemoved is called when a registered observer is disposed or
	// released by the subject terminating.
	ObserverRemoved(subject string)
}

type noopMetrics struct{}

func (noopMetrics) EventEmitted(string, observable.EventKind, int) {}
func (noopMetrics) ObserverAdded(string)                           {}
func (noopMetrics) ObserverRemoved(string)                         {}
