// Package telemetry wires metrics and tracing.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the Prometheus collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	OrdersCreated     prometheus.Counter
	StatusChanges     *prometheus.CounterVec
	CouponValidations *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "food_ordering_orders_created_total",
			Help: "The total number of placed orders",
		}),
		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "food_ordering_order_status_changes_total",
			Help: "Order status changes by resulting status",
		}, []string{"status"}),
		CouponValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "food_ordering_coupon_validations_total",
			Help: "Coupon validations by outcome",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "food_ordering_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
