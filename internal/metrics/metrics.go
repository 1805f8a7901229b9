// SPDX-License-Identifier: MIT

// Package metrics exposes pathboard activity as Prometheus collectors on a
// private registry.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Collector captures engine runs, editor commands and the current graph size.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry     *prometheus.Registry
	runsTotal    *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	commandTotal *prometheus.CounterVec
	graphNodes   prometheus.Gauge
	graphEdges   prometheus.Gauge
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "pathboard_engine_runs_total", Help: "Shortest-path runs by outcome"},
			[]string{"outcome"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathboard_engine_run_duration_seconds",
				Help:    "Shortest-path run duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"outcome"},
		),
		commandTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "pathboard_editor_commands_total", Help: "Editor commands by name and result"},
			[]string{"command", "result"},
		),
		graphNodes: prometheus.NewGauge(prometheus.GaugeOpts{Name: "pathboard_graph_nodes", Help: "Nodes in the edited graph"}),
		graphEdges: prometheus.NewGauge(prometheus.GaugeOpts{Name: "pathboard_graph_edges", Help: "Edges in the edited graph"}),
	}

	registry.MustRegister(c.runsTotal, c.runDuration, c.commandTotal, c.graphNodes, c.graphEdges)

	return c
}

// ObserveRun records one engine run.
func (c *Collector) ObserveRun(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.runsTotal.WithLabelValues(outcome).Inc()
	c.runDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveCommand records one editor command.
func (c *Collector) ObserveCommand(command, result string) {
	if c == nil {
		return
	}
	c.commandTotal.WithLabelValues(command, result).Inc()
}

// ObserveGraph records the current graph size.
func (c *Collector) ObserveGraph(nodes, edges int) {
	if c == nil {
		return
	}
	c.graphNodes.Set(float64(nodes))
	c.graphEdges.Set(float64(edges))
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, c *Collector, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics endpoint listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
