package petal

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts attribute writes, skips and custom declaration calls.
// Install one with SetMetrics; without it nothing is counted.
type Metrics struct {
	writes *prometheus.CounterVec
	skips  *prometheus.CounterVec
	custom prometheus.Counter
}

// NewMetrics creates the petal counters and registers them with reg. A nil
// reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petal",
			Name:      "attribute_writes_total",
			Help:      "Attribute writes that changed a node's live state.",
		}, []string{"attribute"}),
		skips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petal",
			Name:      "attribute_skips_total",
			Help:      "Attribute writes skipped because of a lock, a missing slot or a missing prerequisite.",
		}, []string{"attribute", "reason"}),
		custom: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "petal",
			Name:      "custom_invocations_total",
			Help:      "Custom declaration callbacks invoked.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.writes, m.skips, m.custom)
	}
	return m
}

// Writes returns the write counter for one attribute.
func (m *Metrics) Writes(kind AttributeKind) prometheus.Counter {
	return m.writes.WithLabelValues(kind.String())
}

// Skips returns the skip counter for one attribute and reason.
func (m *Metrics) Skips(kind AttributeKind, reason SkipReason) prometheus.Counter {
	return m.skips.WithLabelValues(kind.String(), reason.String())
}

// CustomInvocations returns the custom callback counter.
func (m *Metrics) CustomInvocations() prometheus.Counter {
	return m.custom
}

var globalMetrics *Metrics

// SetMetrics installs m for every subsequent apply. Pass nil to stop
// counting.
func SetMetrics(m *Metrics) {
	globalMetrics = m
}
