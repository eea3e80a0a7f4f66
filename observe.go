package campushub

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// libMetrics holds prometheus metrics registered for the library.
type libMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	visible    *prometheus.HistogramVec
}

func newLibMetrics(reg prometheus.Registerer) (*libMetrics, error) {
	m := &libMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campushub",
			Subsystem: "lib",
			Name:      "operations_total",
			Help:      "Total library operations by catalog, type and status.",
		}, []string{"catalog", "operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campushub",
			Subsystem: "lib",
			Name:      "operation_duration_seconds",
			Help:      "Library operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"catalog", "operation"}),
		visible: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campushub",
			Subsystem: "lib",
			Name:      "visible_records",
			Help:      "Records visible per browse.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}, []string{"catalog"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.visible); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("campushub: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("campushub: register metric: %w", err)
	}
	return nil
}

// observer provides logging and metrics for library operations.
type observer struct {
	logger  *slog.Logger
	metrics *libMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *libMetrics
	if reg != nil {
		var err error
		m, err = newLibMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(catalog, op string, start time.Time, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		o.metrics.operations.WithLabelValues(catalog, op, status).Inc()
		o.metrics.duration.WithLabelValues(catalog, op).Observe(dur.Seconds())
	}

	if o.logger != nil {
		if err != nil {
			o.logger.Warn("operation failed",
				"catalog", catalog,
				"op", op,
				"duration", dur,
				"error", err,
			)
		} else {
			o.logger.Debug("operation completed",
				"catalog", catalog,
				"op", op,
				"duration", dur,
			)
		}
	}
}

// observeVisible records how many records a browse returned.
func (o *observer) observeVisible(catalog string, n int) {
	if o == nil || o.metrics == nil {
		return
	}
	o.metrics.visible.WithLabelValues(catalog).Observe(float64(n))
}
