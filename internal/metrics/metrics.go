package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EnvelopeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budgetd_envelope_ops_total",
			Help: "Envelope operation outcomes by operation",
		},
		[]string{"op", "outcome"}, // list|get|create|update|delete|transfer , ok|client_error|server_error
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		EnvelopeOps,
	)
}
