// Package metrics exposes Prometheus counters for the HTTP surface and the
// mission/trial flows.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector in this package. It is separate from the
// default registerer so tests can build many apps in one process.
var Registry = prometheus.NewRegistry()

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	missionsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mischief_missions_submitted_total",
			Help: "Accepted mission submissions by flow.",
		},
		[]string{"flow"},
	)

	trialsOpened = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mischief_trials_opened_total",
		Help: "Trials opened on this device.",
	})

	trialsConcluded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mischief_trials_concluded_total",
			Help: "Trials concluded on this device by verdict.",
		},
		[]string{"verdict"},
	)

	remoteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mischief_remote_failures_total",
			Help: "Failed calls to the shared trial store by operation.",
		},
		[]string{"op"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight, httpRequestsTotal, httpRequestDuration,
		missionsSubmitted, trialsOpened, trialsConcluded, remoteFailures,
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// Instrument records in-flight, count and latency per matched route.
func Instrument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		// Route path keeps label cardinality bounded (":id" instead of the value).
		path := c.Route().Path
		labels := []string{c.Method(), path, strconv.Itoa(status)}

		httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(labels...).Inc()
		return err
	}
}

func MissionSubmitted(flow string) { missionsSubmitted.WithLabelValues(flow).Inc() }

func TrialOpened() { trialsOpened.Inc() }

func TrialConcluded(verdict string) { trialsConcluded.WithLabelValues(verdict).Inc() }

func RemoteFailure(op string) { remoteFailures.WithLabelValues(op).Inc() }
