package rlzjb

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Decode result label values.
const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Failure reason label values.
const (
	reasonTruncated   = "truncated"
	reasonDistance    = "invalid_distance"
	reasonShortOutput = "short_output"
	reasonArgument    = "argument"
	reasonRead        = "read"
)

// Metrics holds Prometheus metrics for decode operations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	decodesTotal     *prometheus.CounterVec
	failuresTotal    *prometheus.CounterVec
	inputBytesTotal  prometheus.Counter
	outputBytesTotal prometheus.Counter

	registered bool
	mu         sync.Mutex
}

// NewMetrics creates a new Metrics instance under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		decodesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rlzjb",
			Name:      "decodes_total",
			Help:      "Total number of decoded blocks by result",
		}, []string{"result"}),
		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rlzjb",
			Name:      "failures_total",
			Help:      "Total number of failed decodes by reason",
		}, []string{"reason"}),
		inputBytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rlzjb",
			Name:      "input_bytes_total",
			Help:      "Total number of compressed bytes consumed",
		}),
		outputBytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rlzjb",
			Name:      "output_bytes_total",
			Help:      "Total number of decompressed bytes produced",
		}),
	}
}

// Register registers the metrics with the provided registerer.
// If registerer is nil, the default prometheus registerer is used.
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}

	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	collectors := m.collectors()
	for i, c := range collectors {
		if err := registerer.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				registerer.Unregister(registered)
			}

			return errors.Wrap(err, "failed to register rlzjb metrics")
		}
	}

	m.registered = true

	return nil
}

// Unregister unregisters the metrics from the provided registerer.
func (m *Metrics) Unregister(registerer prometheus.Registerer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.registered {
		return
	}

	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	for _, c := range m.collectors() {
		registerer.Unregister(c)
	}

	m.registered = false
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.decodesTotal,
		m.failuresTotal,
		m.inputBytesTotal,
		m.outputBytesTotal,
	}
}

// observeSuccess records a decoded block.
func (m *Metrics) observeSuccess(consumed int64, produced int) {
	if m == nil {
		return
	}

	m.decodesTotal.WithLabelValues(resultSuccess).Inc()
	m.inputBytesTotal.Add(float64(consumed))
	m.outputBytesTotal.Add(float64(produced))
}

// observeFailure records a failed block; consumed bytes still count as input.
func (m *Metrics) observeFailure(err error, consumed int64) {
	if m == nil {
		return
	}

	m.decodesTotal.WithLabelValues(resultFailure).Inc()
	m.failuresTotal.WithLabelValues(failureReason(err)).Inc()
	m.inputBytesTotal.Add(float64(consumed))
}

// failureReason maps an error to its failures_total label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrUnexpectedEOF):
		return reasonTruncated
	case errors.Is(err, ErrZeroDistance), errors.Is(err, ErrLookBehindUnderrun):
		return reasonDistance
	case errors.Is(err, ErrShortOutput):
		return reasonShortOutput
	case errors.Is(err, ErrNegativeOutLen), errors.Is(err, ErrOutLenTooLarge):
		return reasonArgument
	default:
		return reasonRead
	}
}
