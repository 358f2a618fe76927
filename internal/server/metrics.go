// Package server exposes an opt-in Prometheus metrics endpoint.
//
// The endpoint is only started when the user passes --metrics-addr; the
// default run involves no network listener at all.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jozeph555/coincalc/internal/logging"
	"github.com/Jozeph555/coincalc/internal/orchestration"
)

// Metrics holds the Prometheus collectors for solver runs. A dedicated
// registry is used instead of the global one so repeated construction in
// tests cannot trigger duplicate-registration panics.
type Metrics struct {
	registry      *prometheus.Registry
	solveTotal    *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	handler       http.Handler
}

// Verify that Metrics can be wired into the orchestrator.
var _ orchestration.MetricsRecorder = (*Metrics)(nil)

// NewMetrics creates and registers the solver collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	solveTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coincalc",
		Name:      "solve_total",
		Help:      "Total number of solver runs, labeled by solver and outcome.",
	}, []string{"solver", "status"})

	solveDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coincalc",
		Name:      "solve_duration_seconds",
		Help:      "Wall-clock duration of solver runs.",
		// Solves range from sub-microsecond (greedy) to milliseconds
		// (DP at amount 150,000).
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	}, []string{"solver"})

	registry.MustRegister(solveTotal, solveDuration)

	return &Metrics{
		registry:      registry,
		solveTotal:    solveTotal,
		solveDuration: solveDuration,
		handler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
}

// ObserveSolve records one completed solver run.
func (m *Metrics) ObserveSolve(solver string, _ int, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.solveTotal.WithLabelValues(solver, status).Inc()
	m.solveDuration.WithLabelValues(solver).Observe(d.Seconds())
}

// Handler returns the HTTP handler serving the /metrics payload.
func (m *Metrics) Handler() http.Handler { return m.handler }

// Serve runs an HTTP server exposing m at /metrics on addr until ctx is
// canceled. It is intended to be run in its own goroutine; listen errors
// are logged, not fatal, since metrics are auxiliary to the run.
func Serve(ctx context.Context, addr string, m *Metrics, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", logging.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("metrics endpoint failed", logging.Err(err))
	}
}
