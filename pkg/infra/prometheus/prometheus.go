package prometheus

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds. Model inference on CPU sits in the hundreds of ms.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	HTTPRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toxicity_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toxicity_http_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"path"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toxicity_classifier_latency_ms",
			Help:    "Classifier prediction latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider"},
	)

	ClassifierErrors = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toxicity_classifier_errors_total",
			Help: "Total number of failed classifier predictions",
		},
		[]string{"provider"},
	)

	Verdicts = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "toxicity_verdicts_total",
			Help: "Total number of verdicts by outcome",
		},
		[]string{"toxic"},
	)
)

type MetricsConfig struct {
	Enabled bool
}

var (
	Config   MetricsConfig
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if !Config.Enabled {
		return
	}
	HTTPRequestTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestLatency.WithLabelValues(path).Observe(milliseconds(elapsed))
}

func ObservePrediction(provider string, elapsed time.Duration, err error) {
	if !Config.Enabled {
		return
	}
	ClassifierLatency.WithLabelValues(provider).Observe(milliseconds(elapsed))
	if err != nil {
		ClassifierErrors.WithLabelValues(provider).Inc()
	}
}

func ObserveVerdict(toxic bool) {
	if !Config.Enabled {
		return
	}
	Verdicts.WithLabelValues(strconv.FormatBool(toxic)).Inc()
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
