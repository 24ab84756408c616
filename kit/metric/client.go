// Package metric provides a RED-style (requests, errors, duration) metrics
// client that service middlewares use to record one observation per
// operation call.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/logiflow/logiflow/kit/platform/errors"
)

// REDClient records calls, errors and durations for a single service.
type REDClient struct {
	calls *prometheus.CounterVec
	errs  *prometheus.CounterVec
	durs  *prometheus.HistogramVec
}

// New creates a REDClient for the named service and registers its
// collectors with reg.
func New(reg prometheus.Registerer, service string) *REDClient {
	c := &REDClient{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "service",
			Subsystem: service,
			Name:      "call_total",
			Help:      "Number of calls",
		}, []string{"method"}),
		errs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "service",
			Subsystem: service,
			Name:      "error_total",
			Help:      "Number of errors encountered",
		}, []string{"method", "code"}),
		durs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "service",
			Subsystem: service,
			Name:      "duration",
			Help:      "Duration of calls",
			Buckets:   prometheus.ExponentialBuckets(0.001, 5, 7),
		}, []string{"method"}),
	}

	reg.MustRegister(c.calls, c.errs, c.durs)
	return c
}

// RecordFn records the result of one operation call.
type RecordFn func(err error) error

// Record starts a recording for the named operation. The returned function
// finishes the observation and passes the error through untouched.
func (c *REDClient) Record(method string) RecordFn {
	start := time.Now()
	return func(err error) error {
		c.calls.With(prometheus.Labels{"method": method}).Inc()

		if err != nil {
			c.errs.With(prometheus.Labels{
				"method": method,
				"code":   errors.ErrorCode(err),
			}).Inc()
		}

		c.durs.With(prometheus.Labels{"method": method}).Observe(time.Since(start).Seconds())

		return err
	}
}
