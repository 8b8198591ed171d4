package observability

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	SeedRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posterseed_records_total",
			Help: "Catalog records sent to the data store, by operation and result",
		},
		[]string{"operation", "result"},
	)

	SeedCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "posterseed_store_call_seconds",
			Help:    "Latency of data store calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ImageChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posterseed_image_checks_total",
			Help: "Image URL checks, by result",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(SeedRecordsTotal, SeedCallDuration, ImageChecksTotal)
}

// Recorder feeds store call outcomes into the seed metrics.
type Recorder struct{}

func (Recorder) ObserveCall(operation string, d time.Duration, err error) {
	SeedCallDuration.WithLabelValues(operation).Observe(d.Seconds())
	SeedRecordsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func (Recorder) ObserveImage(ok bool) {
	if ok {
		ImageChecksTotal.WithLabelValues("ok").Inc()
		return
	}
	ImageChecksTotal.WithLabelValues("broken").Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

// Start exposes /metrics on port in the background. An empty port disables it.
func Start(port string) {
	if port == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Printf("[Metrics] server stopped: %v", err)
		}
	}()
}
