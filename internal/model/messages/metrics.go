package messages

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"max.ks1230/finance-tracker/internal/utils"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "finance_tracker",
		Subsystem: "telegram",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	},
	[]string{"command", "error"},
)

func observeResponse(cmd string, elapsed time.Duration, err bool) {
	if !utils.Contains(allCommands, cmd) {
		cmd = "other"
	}
	histogramResponseTime.
		WithLabelValues(cmd, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
