// Package metrics provides a prometheus-backed subject.Metrics implementation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pokt-network/rxsubjects/pkg/observable"
	"github.com/pokt-network/rxsubjects/pkg/observable/subject"
)

const (
	metricsNamespace = "rxsubjects"
	metricsSubsystem = "subject"

	subjectLabel = "subject"
	kindLabel    = "kind"
)

var _ subject.Metrics = (*Collector)(nil)

// Collector records subject fan-out metrics.
type Collector struct {
	// eventsTotal counts events pushed into subjects, labeled by subject name
	// and event kind.
	eventsTotal *prometheus.CounterVec
	// deliveriesTotal counts event deliveries to observers, i.e. events
	// multiplied by the number of observers they were fanned out to.
	deliveriesTotal *prometheus.CounterVec
	// observers tracks the number of observers registered per subject.
	observers *prometheus.GaugeVec
}

// NewCollector registers the subject metrics with reg and returns a Collector
// which updates them. It panics if the metrics are already registered with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		eventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "events_total",
				Help:      "Total number of events pushed into subjects",
			},
			[]string{subjectLabel, kindLabel},
		),
		deliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "deliveries_total",
				Help:      "Total number of events delivered to observers",
			},
			[]string{subjectLabel, kindLabel},
		),
		observers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "observers",
				Help:      "Number of observers currently registered",
			},
			[]string{subjectLabel},
		),
	}
}

func (c *Collector) EventEmitted(subjectName string, kind observable.EventKind, observers int) {
	c.eventsTotal.WithLabelValues(subjectName, kind.String()).Inc()
	c.deliveriesTotal.WithLabelValues(subjectName, kind.String()).Add(float64(observers))
}

func (c *Collector) ObserverAdded(subjectName string) {
	c.observers.WithLabelValues(subjectName).Inc()
}

func (c *Collector) ObserverRemoved(subjectName string) {
	c.observers.WithLabelValues(subjectName).Dec()
}
