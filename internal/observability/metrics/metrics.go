package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	queueSendErrorCounter        prometheus.Counter
	pollerDurationHistogram      *prometheus.HistogramVec
	operationCounter             *prometheus.CounterVec
	donatedUnitsCounter          prometheus.Counter
	eventPublishDuration         *prometheus.HistogramVec
	dispatchBacklogGauge         prometheus.Gauge
	dbLatency                    *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(host string, metricsPort int) {
	once.Do(func() {
		registerMetrics()
		initMetricsRouter(host, metricsPort)
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(host string, metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf("%s:%d", host, metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	operationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fund_operations_total",
			Help: "Number of fund operations split by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	donatedUnitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "donated_units_total",
			Help: "Sum of units moved by successful donations",
		},
	)

	eventPublishDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "event_publish_duration_seconds",
			Help:    "Donation event publishing duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status", "attempt"},
	)

	dispatchBacklogGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_backlog_size",
			Help: "Number of events picked by the last dispatcher run",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		queueSendErrorCounter,
		pollerDurationHistogram,
		operationCounter,
		donatedUnitsCounter,
		eventPublishDuration,
		dispatchBacklogGauge,
		dbLatency,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	if dbLatency == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordOperation(operation string, failure bool) {
	if operationCounter == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	operationCounter.WithLabelValues(operation, status.String()).Inc()
}

func RecordDonatedUnits(amount uint64) {
	if donatedUnitsCounter == nil {
		return
	}
	donatedUnitsCounter.Add(float64(amount))
}

func RecordEventPublishDuration(d time.Duration, attempt int, failure bool) {
	if eventPublishDuration == nil {
		return
	}

	status := Success
	if failure {
		status = Error
	}

	eventPublishDuration.WithLabelValues(status.String(), strconv.Itoa(attempt)).Observe(d.Seconds())
}

func RecordDispatchBacklog(count int) {
	if dispatchBacklogGauge == nil {
		return
	}
	dispatchBacklogGauge.Set(float64(count))
}

func RecordHttpRequestDuration(d time.Duration, method, path string, statusCode int) {
	if httpRequestDurationHistogram == nil {
		return
	}

	httpRequestDurationHistogram.WithLabelValues(
		method,
		path,
		strconv.Itoa(statusCode),
	).Observe(d.Seconds())
}

func RecordQueueSendError() {
	if queueSendErrorCounter == nil {
		return
	}
	queueSendErrorCounter.Inc()
}
