package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

// Metrics holds the Prometheus collectors of the catalog service
type Metrics struct {
	// HTTP requests by method, route template and status code
	Requests *prometheus.CounterVec

	RequestDuration *prometheus.HistogramVec

	// Successful write statements by table and operation
	Writes *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pokedex_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		Writes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_catalog_writes_total",
			Help: "Total catalog rows written by entity and operation",
		}, []string{"entity", "op"}),
	}
}

// Middleware counts every request under its route template, so /api/pokemon/1 and
// /api/pokemon/2 share a series. Unmatched paths are reported as "unmatched".
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.Requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// IncrementWrite records rows written to entity by op.
func (m *Metrics) IncrementWrite(entity, op string, rows int64) {
	if m != nil && rows > 0 {
		m.Writes.WithLabelValues(entity, op).Add(float64(rows))
	}
}

// InstrumentGorm registers after-callbacks on create, update and delete so every
// successful write through db is counted, whichever repository issued it.
func (m *Metrics) InstrumentGorm(db *gorm.DB) error {
	record := func(op string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			if tx.Error != nil || tx.Statement.Schema == nil {
				return
			}
			m.IncrementWrite(tx.Statement.Schema.Table, op, tx.RowsAffected)
		}
	}

	cb := db.Callback()
	if err := cb.Create().After("gorm:create").Register("metrics:create", record("create")); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:update", record("update")); err != nil {
		return err
	}
	return cb.Delete().After("gorm:delete").Register("metrics:delete", record("delete"))
}
