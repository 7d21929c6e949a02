package subject_test

import (
	"sync"

	"github.com/pokt-network/rxsubjects/pkg/observable"
)

// eventRecorder is an observer which records the string rendering of every
// event it receives.
type eventRecorder[V any] struct {
	mu     sync.Mutex
	events []string
}

func (rec *eventRecorder[V]) OnEvent(event observable.Event[V]) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.events = append(rec.events, event.String())
}

func (rec *eventRecorder[V]) Events() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	events := make([]string, len(rec.events))
	copy(events, rec.events)
	return events
}

type countingMetrics struct {
	mu         sync.Mutex
	emitted    map[observable.EventKind]int
	deliveries int
	observers  int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{emitted: make(map[observable.EventKind]int)}
}

func (m *countingMetrics) EventEmitted(_ string, kind observable.EventKind, observers int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emitted[kind]++
	m.deliveries += observers
}

func (m *countingMetrics) ObserverAdded(string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.observers++
}

func (m *countingMetrics) ObserverRemoved(string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.observers--
}
