package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/arenasim/arena/internal/component"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics holds the simulation's Prometheus collectors on a private
// registry, so several instances can coexist (tests).
type Metrics struct {
	reg          *prometheus.Registry
	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	collisions   *prometheus.CounterVec
	deaths       *prometheus.CounterVec
	violations   prometheus.Counter
	entities     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "ticks_total",
			Help:      "Simulation ticks executed.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "arena",
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent running one tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		collisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "collisions_total",
			Help:      "Reported overlaps by pair policy.",
		}, []string{"policy"}),
		deaths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "deaths_total",
			Help:      "Death events by move type.",
		}, []string{"move_type"}),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "invariant_violations_total",
			Help:      "Invariant violations logged in non-strict mode.",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "arena",
			Name:      "entities",
			Help:      "Live entities after cleanup.",
		}),
	}
	m.reg.MustRegister(m.ticks, m.tickDuration, m.collisions, m.deaths, m.violations, m.entities)
	return m
}

// Registry exposes the collectors, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) ObserveTick(d time.Duration) {
	m.ticks.Inc()
	m.tickDuration.Observe(d.Seconds())
}

func (m *Metrics) AddCollisions(policy string, n int) {
	if n > 0 {
		m.collisions.WithLabelValues(policy).Add(float64(n))
	}
}

func (m *Metrics) AddDeath(t component.MoveType) {
	m.deaths.WithLabelValues(t.String()).Inc()
}

func (m *Metrics) AddViolations(n int) {
	if n > 0 {
		m.violations.Add(float64(n))
	}
}

func (m *Metrics) SetEntities(n int) {
	m.entities.Set(float64(n))
}

// Serve exposes /metrics on addr. Non-blocking: the HTTP server runs in its
// own goroutine and is stopped by the returned function.
func (m *Metrics) Serve(addr string, log *zap.Logger) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Info("metrics endpoint listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()
	return func() { _ = srv.Close() }
}
