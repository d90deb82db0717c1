// Package metrics expone contadores Prometheus del API y del dominio de inventario.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores registrados en un Registry propio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	history      *prometheus.CounterVec
	bulkOps      *prometheus.CounterVec
	bulkItems    *prometheus.CounterVec
}

// New crea y registra los colectores con el prefijo dado (ej. "thrift_inventory").
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		history: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_history_entries_total",
			Help: "Item history entries committed, by action",
		}, []string{"action"}),
		bulkOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_bulk_operations_total",
			Help: "Bulk operations committed, by operation",
		}, []string{"operation"}),
		bulkItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_bulk_items_total",
			Help: "Items affected by bulk operations, by operation",
		}, []string{"operation"}),
	}
	reg.MustRegister(
		m.httpRequests, m.httpDuration, m.history, m.bulkOps, m.bulkItems,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Registry para tests o para registrar colectores adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// HistoryRecorded implementa inventory.Metrics.
func (m *Metrics) HistoryRecorded(action string) {
	m.history.WithLabelValues(action).Inc()
}

// BulkApplied implementa inventory.Metrics.
func (m *Metrics) BulkApplied(operation string, items int) {
	m.bulkOps.WithLabelValues(operation).Inc()
	m.bulkItems.WithLabelValues(operation).Add(float64(items))
}

// Middleware registra cantidad y duración de cada request. path es la ruta registrada
// (ej. /items/:id), no la URL concreta, para acotar la cardinalidad.
// Si la cadena devuelve error lo resuelve con el ErrorHandler de la app para etiquetar el status final.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		labels := []string{c.Method(), c.Route().Path, strconv.Itoa(c.Response().StatusCode())}
		m.httpRequests.WithLabelValues(labels...).Inc()
		m.httpDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return nil
	}
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
