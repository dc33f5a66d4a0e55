package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder is the metrics surface used by the sync service.
type Recorder interface {
	RecordChangeSet(size int)
	RecordOutcome(path, status string)
	RecordRun(duration time.Duration, success bool)
}

// Collector records run metrics in a Prometheus registry.
type Collector struct {
	changeSet   prometheus.Gauge
	outcomes    *prometheus.CounterVec
	runDuration prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		changeSet: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_sync_changeset_size",
			Help: "Number of changed employees in the last run.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_sync_outcomes_total",
			Help: "Per-employee outcomes by sync path and status.",
		}, []string{"path", "status"}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_sync_run_duration_seconds",
			Help: "Wall time of the last run.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_sync_last_success_timestamp_seconds",
			Help: "Unix time of the last run that completed without a fatal error.",
		}),
	}

	reg.MustRegister(c.changeSet, c.outcomes, c.runDuration, c.lastSuccess)
	return c
}

// RecordChangeSet records the number of changed employees.
func (c *Collector) RecordChangeSet(size int) {
	c.changeSet.Set(float64(size))
}

// RecordOutcome counts one employee outcome.
func (c *Collector) RecordOutcome(path, status string) {
	c.outcomes.WithLabelValues(path, status).Inc()
}

// RecordRun records the run duration and, on success, the completion time.
func (c *Collector) RecordRun(duration time.Duration, success bool) {
	c.runDuration.Set(duration.Seconds())
	if success {
		c.lastSuccess.SetToCurrentTime()
	}
}

// Push sends everything in gatherer to the configured Pushgateway.
// It is a no-op when no Pushgateway is configured.
func Push(ctx context.Context, cfg Config, gatherer prometheus.Gatherer) error {
	if cfg.PushgatewayURL == "" {
		return nil
	}

	job := cfg.Job
	if job == "" {
		job = "roster_sync"
	}

	if err := push.New(cfg.PushgatewayURL, job).Gatherer(gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
