package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// writeMetrics writes one `name{labels} value` line per gathered counter and
// gauge sample.
func writeMetrics(output io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(output, "\n--- Metrics ---"); err != nil {
		return err
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value, ok := sampleValue(family.GetType(), metric)
			if !ok {
				continue
			}

			line := fmt.Sprintf("%s%s %g", family.GetName(), formatLabels(metric.GetLabel()), value)
			if _, err := fmt.Fprintln(output, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func sampleValue(metricType dto.MetricType, metric *dto.Metric) (float64, bool) {
	switch metricType {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue(), true
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue(), true
	default:
		return 0, false
	}
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
	}
	sort.Strings(pairs)

	return "{" + strings.Join(pairs, ",") + "}"
}
