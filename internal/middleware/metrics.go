package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder records request counts and latencies per route
type MetricsBuilder struct {
	histogramVec *prometheus.HistogramVec
	counterVec   *prometheus.CounterVec
}

// NewMetricsBuilder registers the HTTP collectors on reg
func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)

	histogramVec := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "careerguide",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "careerguide",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	return &MetricsBuilder{
		histogramVec: histogramVec,
		counterVec:   counterVec,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		duration := time.Since(start).Seconds()
		method := ctx.Request.Method
		// route template keeps label cardinality bounded
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		b.histogramVec.WithLabelValues(method, path, statusCode).Observe(duration)
		b.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
