// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jessndots/express-jobly/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
)

// MustRegister registers all query and request metrics on the given registry.
func MustRegister(registry prometheus.Registerer) {
	registry.MustRegister(queryDuration, queryCounter, requestDuration, requestCounter)
}

// ObserveQuery samples a repository query. Errors carrying a client-facing
// kind (not found, bad request) are counted separately from failures.
func ObserveQuery(entity, operation string, start time.Time, err error) {
	labels := prometheus.Labels{
		"entity":    entity,
		"operation": operation,
		"status":    queryStatus(err),
	}
	queryDuration.With(labels).Observe(time.Since(start).Seconds())
	queryCounter.With(labels).Inc()
}

func queryStatus(err error) string {
	if err == nil {
		return "ok"
	}
	if apperrors.KindOf(err) == apperrors.KindInternal {
		return "error"
	}
	return apperrors.KindOf(err).String()
}

// Middleware samples every HTTP request by route pattern and status.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = apperrors.KindOf(err).Status()
			}
		}

		labels := prometheus.Labels{
			"method": c.Method(),
			"route":  c.Route().Path,
			"status": strconv.Itoa(status),
		}
		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestCounter.With(labels).Inc()
		return err
	}
}

var (
	queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobly_db_query_duration_seconds",
			Help:    "Duration of repository queries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity", "operation", "status"},
	)
	queryCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobly_db_queries_total",
			Help: "Count of repository queries",
		},
		[]string{"entity", "operation", "status"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobly_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobly_http_requests_total",
			Help: "Count of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)
