package save_profile

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Save outcomes reported on the saves_total counter.
const (
	OutcomeSaved    = "saved"
	OutcomeNoop     = "noop"
	OutcomeBusy     = "busy"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
)

// Metrics exposes Prometheus collectors for profile saves.
type Metrics struct {
	saves       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	payloadKeys prometheus.Histogram
}

// MustNewMetrics registers the save collectors with reg, reusing collectors
// that are already registered. A nil reg uses the default registerer.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	saves := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partner_profile",
			Subsystem: "save",
			Name:      "saves_total",
			Help:      "Profile save attempts by outcome.",
		},
		[]string{"outcome"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "partner_profile",
			Subsystem: "save",
			Name:      "duration_seconds",
			Help:      "Time spent submitting a profile update to the task service.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	payloadKeys := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "partner_profile",
			Subsystem: "save",
			Name:      "payload_keys",
			Help:      "Number of top-level keys in submitted update payloads.",
			Buckets:   []float64{1, 2, 5, 10, 20, 40, 80},
		},
	)

	saves = register(reg, saves)
	duration = register(reg, duration)
	payloadKeys = register(reg, payloadKeys)

	return &Metrics{saves: saves, duration: duration, payloadKeys: payloadKeys}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Metrics) observeOutcome(outcome string) {
	if m == nil {
		return
	}
	m.saves.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeSubmit(outcome string, d time.Duration, keys int) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(outcome).Observe(d.Seconds())
	m.payloadKeys.Observe(float64(keys))
}
