package hooks

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/cascade/core/hook"
	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/pipeline"
)

const metricsStartedAtSlot = "metrics_started_at"

// MetricsConfig configures the Prometheus metrics hook.
type MetricsConfig struct {
	// Registerer receives the hook's collectors (default:
	// prometheus.DefaultRegisterer).
	Registerer prometheus.Registerer

	// Namespace prefixes all metric names.
	Namespace string
}

// Metrics creates a Prometheus metrics hook registered on the default
// registerer. Collectors are registered at construction, so create the
// hook once per process.
func Metrics() hook.Hook {
	return MetricsWithConfig(MetricsConfig{})
}

// MetricsWithConfig creates a Prometheus metrics hook with custom
// configuration. It counts requests by method, route pattern, and status,
// observes request durations, and counts errors that reach the final
// recovery level.
func MetricsWithConfig(cfg MetricsConfig) hook.Hook {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "pipeline_requests_total",
		Help:      "Requests dispatched, by method, route pattern, and status.",
	}, []string{"method", "route", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "pipeline_request_duration_seconds",
		Help:      "Request duration from first hook to response phase.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "pipeline_failures_total",
		Help:      "Errors that escalated to the final recovery level.",
	})

	cfg.Registerer.MustRegister(requests, duration, failures)

	return hook.Hook{
		OnRequest: func(ctx context.Context, s *inject.State) error {
			s.Set(metricsStartedAtSlot, time.Now())
			return nil
		},

		OnResponse: func(ctx context.Context, s *inject.State) error {
			req := pipeline.Request(s)

			// The route pattern keeps label cardinality bounded; raw paths
			// would not.
			routeLabel := "unmatched"
			if route := pipeline.CurrentRoute(s); route != nil {
				routeLabel = route.Pattern
			}

			status := 0
			if resp := pipeline.CurrentResponse(s); resp != nil {
				status = resp.Status()
			}
			requests.WithLabelValues(req.Method, routeLabel, strconv.Itoa(status)).Inc()

			if started, ok := inject.Slot[time.Time](s, metricsStartedAtSlot); ok {
				duration.WithLabelValues(req.Method, routeLabel).Observe(time.Since(started).Seconds())
			}
			return nil
		},

		OnError: func(ctx context.Context, s *inject.State) error {
			failures.Inc()
			return nil
		},
	}
}
