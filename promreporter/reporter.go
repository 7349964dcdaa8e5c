package promreporter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Reporter counts validation outcomes in Prometheus counters partitioned by
// record type, field path and check type. It satisfies validkit.Reporter.
type Reporter struct {
	valid   *prometheus.CounterVec
	invalid *prometheus.CounterVec
}

// New creates a Reporter and registers its collectors with reg. Pass
// prometheus.DefaultRegisterer to use the default registry. Registration
// fails when a collector with the same fully-qualified name already exists.
func New(reg prometheus.Registerer, namespace string) (*Reporter, error) {
	labels := []string{"record_type", "field_path", "check_type"}

	r := &Reporter{
		valid: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_valid_total",
				Help:      "Total number of record fields that passed validation",
			},
			labels,
		),
		invalid: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_invalid_total",
				Help:      "Total number of record fields that failed validation",
			},
			labels,
		),
	}

	if err := reg.Register(r.valid); err != nil {
		return nil, err
	}
	if err := reg.Register(r.invalid); err != nil {
		return nil, err
	}
	return r, nil
}

// ReportValid counts a field that passed validation.
func (r *Reporter) ReportValid(recordType, fieldPath, checkType string) {
	r.valid.WithLabelValues(recordType, fieldPath, checkType).Inc()
}

// ReportInvalid counts a field that failed validation.
func (r *Reporter) ReportInvalid(recordType, fieldPath, checkType string) {
	r.invalid.WithLabelValues(recordType, fieldPath, checkType).Inc()
}
