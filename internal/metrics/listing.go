package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "campushub"

// Listing Prometheus metrics.
var (
	ListingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_requests_total",
			Help:      "Total number of listing browse requests",
		},
		[]string{"kind", "filtered"},
	)

	ListingResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "listing_results",
			Help:      "Number of visible records per browse request",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"kind"},
	)
)

var listingMetricsRegistered bool

// RegisterListingMetrics registers Prometheus listing metrics. Must be called once from main.
func RegisterListingMetrics() {
	if listingMetricsRegistered {
		return
	}
	prometheus.MustRegister(ListingRequestsTotal)
	prometheus.MustRegister(ListingResults)
	listingMetricsRegistered = true
}

// ListingRecorder feeds browse observations into the listing metrics.
type ListingRecorder struct{}

// ObserveBrowse records one browse request.
func (ListingRecorder) ObserveBrowse(kind string, filtered bool, visible int) {
	ListingRequestsTotal.WithLabelValues(kind, strconv.FormatBool(filtered)).Inc()
	ListingResults.WithLabelValues(kind).Observe(float64(visible))
}
