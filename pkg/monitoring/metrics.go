package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	QuizAnswersGraded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lls_quiz_answers_graded_total",
			Help: "Quiz answers graded, by outcome",
		},
		[]string{"outcome"},
	)

	SubmissionsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lls_submissions_recorded_total",
			Help: "Assignment submissions recorded, by write kind",
		},
		[]string{"kind"},
	)

	EvaluationsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lls_evaluations_recorded_total",
			Help: "Assignment evaluations recorded, by write kind and derived status",
		},
		[]string{"kind", "status"},
	)
)

var registerOnce sync.Once

// Init 注册指标，重复调用无副作用
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			QuizAnswersGraded,
			SubmissionsRecorded,
			EvaluationsRecorded,
		)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
