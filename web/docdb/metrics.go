package docdbweb

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nori-stack/docdb/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestDuration tracks request latency by route, the "request latency
// by route" metric promised alongside pkg/docdb's write-outcome counters.
var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "docdb",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency, labeled by route and status.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "status"})

// instrument wraps an echo.HandlerFunc so every request through it is
// timed and counted, regardless of outcome.
func instrument(route string, h echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := h(c)
		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		elapsed := time.Since(start)
		requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())

		logger.WithNamespace("web").
			WithFields(logger.Fields{"route": route, "status": status, "elapsed_ms": elapsed.Milliseconds()}).
			Debug("request handled")

		return err
	}
}
