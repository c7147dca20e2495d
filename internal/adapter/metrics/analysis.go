package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/reviewsense/internal/domain"
)

// AnalysisMetrics holds Prometheus metrics for sentiment analysis.
// It satisfies sentiment.Observer.
type AnalysisMetrics struct {
	AnalysesTotal *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	Confidence    *prometheus.HistogramVec
	ModelLoaded   prometheus.Gauge
}

// NewAnalysisMetrics creates and registers analysis metrics on the given registry.
func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of completed analyses, by scorer and label.",
		}, []string{"scorer", "label"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of a single analysis in seconds.",
			Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"scorer"}),
		Confidence: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_confidence",
			Help:      "Confidence of the chosen label.",
			Buckets:   []float64{0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1.0},
		}, []string{"scorer"}),
		ModelLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_loaded",
			Help:      "1 when trained artifacts are loaded, 0 in fallback mode.",
		}),
	}

	reg.MustRegister(m.AnalysesTotal, m.Duration, m.Confidence, m.ModelLoaded)
	return m
}

func (m *AnalysisMetrics) ObserveAnalysis(scorer string, label domain.Label, confidence float64, elapsed time.Duration) {
	m.AnalysesTotal.WithLabelValues(scorer, string(label)).Inc()
	m.Duration.WithLabelValues(scorer).Observe(elapsed.Seconds())
	m.Confidence.WithLabelValues(scorer).Observe(confidence)
}

// SetModelLoaded records whether the engine runs on trained artifacts.
func (m *AnalysisMetrics) SetModelLoaded(loaded bool) {
	if loaded {
		m.ModelLoaded.Set(1)
		return
	}
	m.ModelLoaded.Set(0)
}
