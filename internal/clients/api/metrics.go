package api

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "finance_tracker",
		Subsystem: "api",
		Name:      "histogram_request_time_seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
	[]string{"endpoint", "status"},
)

func observeRequest(endpoint string, status int, elapsed time.Duration) {
	label := "transport_error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	histogramRequestTime.
		WithLabelValues(endpoint, label).
		Observe(elapsed.Seconds())
}
