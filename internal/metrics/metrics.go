package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels, one per exported entry point.
const (
	OpNormalize = "normalize_metric_series"
	OpCorrelate = "correlate_metric_series"
	OpShape     = "shape_resource_status"
)

const (
	// OutcomeSuccess labels calls that returned a result.
	OutcomeSuccess = "success"
	// OutcomeDecodeError labels calls rejected while decoding host input.
	OutcomeDecodeError = "decode_error"
	// OutcomeEncodeError labels calls whose result could not be encoded.
	OutcomeEncodeError = "encode_error"
)

var (
	callsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mirador_signal_core",
			Name:      "calls_total",
			Help:      "Total number of signal core calls, partitioned by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	callDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mirador_signal_core",
			Name:      "call_seconds",
			Help:      "Signal core call latency in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"operation"},
	)

	seriesLength = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mirador_signal_core",
			Name:      "series_length",
			Help:      "Number of points in decoded input series.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"operation"},
	)

	ruleReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mirador_signal_core",
			Name:      "rule_reloads_total",
			Help:      "Classifier rule pack reloads, partitioned by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register attaches signal core collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		callsTotal,
		callDurationSeconds,
		seriesLength,
		ruleReloadsTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveCall records a call duration and outcome label for operation.
func ObserveCall(operation string, duration time.Duration, outcome string) {
	switch outcome {
	case OutcomeDecodeError, OutcomeEncodeError:
	default:
		outcome = OutcomeSuccess
	}
	callsTotal.WithLabelValues(operation, outcome).Inc()
	if duration < 0 {
		duration = 0
	}
	callDurationSeconds.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveSeriesLength records the size of a decoded input series.
func ObserveSeriesLength(operation string, n int) {
	seriesLength.WithLabelValues(operation).Observe(float64(n))
}

// ObserveRuleReload counts a rule pack reload attempt.
func ObserveRuleReload(err error) {
	if err != nil {
		ruleReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	ruleReloadsTotal.WithLabelValues(OutcomeSuccess).Inc()
}
