package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bmi"

// Prometheus records form submissions as Prometheus metrics.
type Prometheus struct {
	submissions *prometheus.CounterVec
	values      prometheus.Histogram
}

// New creates the submission metrics and registers them with reg.
func New(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Count of form submissions by outcome.",
		}, []string{"outcome"}),

		values: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "value",
			Help:      "Distribution of finite BMI results.",
			Buckets:   []float64{16, 18.5, 21, 25, 27.5, 30, 35, 40, 50},
		}),
	}
}

// ObserveSubmission counts one submission. Only finite values reach the histogram.
func (p *Prometheus) ObserveSubmission(outcome string, value float64) {
	p.submissions.WithLabelValues(outcome).Inc()
	if !math.IsNaN(value) && !math.IsInf(value, 0) {
		p.values.Observe(value)
	}
}
