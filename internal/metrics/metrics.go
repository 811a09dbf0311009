package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ff_collectibles"

// Probe outcomes
const (
	ProbeOutcomeOK           = "ok"
	ProbeOutcomeSniffed      = "sniffed"
	ProbeOutcomeInconclusive = "inconclusive"
	ProbeOutcomeError        = "error"
)

var (
	// FetchFailures counts failed per-wallet provider fetches by stream
	FetchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_failures_total",
		Help:      "Per-wallet provider fetches that failed, by stream.",
	}, []string{"stream"})

	// ProbeResults counts content-type probes by outcome
	ProbeResults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "probe_total",
		Help:      "Content-type probes, by outcome.",
	}, []string{"outcome"})

	// Classified counts classified assets by media type
	Classified = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classified_total",
		Help:      "Assets classified, by media type.",
	}, []string{"media_type"})

	// MappingFallbacks counts mappings that degraded to IMAGE after a panic or probe failure
	MappingFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mapping_fallbacks_total",
		Help:      "Asset mappings that fell back to IMAGE.",
	})

	// CycleDuration observes the wall time of a full fetch cycle
	CycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cycle_duration_seconds",
		Help:      "Duration of a GetAllCollectibles fetch cycle.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(FetchFailures, ProbeResults, Classified, MappingFallbacks, CycleDuration)
}

// Handler returns the HTTP handler exposing the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
