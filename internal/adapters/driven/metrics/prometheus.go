// Package metrics records planning runs as Prometheus metrics and can
// export them in the node exporter textfile format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
)

// Ensure PrometheusRecorder implements the interface.
var _ driven.MetricsRecorder = (*PrometheusRecorder)(nil)

// PrometheusRecorder implements driven.MetricsRecorder on a private registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	runsTotal      *prometheus.CounterVec
	overridesTotal *prometheus.CounterVec
	warningsTotal  prometheus.Counter
	stairs         *prometheus.GaugeVec
	maxLoad        *prometheus.GaugeVec
	overCapacity   *prometheus.GaugeVec
}

// NewPrometheusRecorder creates a recorder with its own registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusRecorder{
		registry: registry,
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "egress_runs_total",
				Help: "Total number of planning runs by outcome",
			},
			[]string{"project", "outcome"},
		),
		overridesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "egress_overrides_total",
				Help: "Total number of overrides processed by kind and status",
			},
			[]string{"kind", "status"},
		),
		warningsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "egress_occupancy_warnings_total",
				Help: "Total number of levels that fell back to the default occupancy",
			},
		),
		stairs: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "egress_stairs",
				Help: "Number of stairs produced by the latest run",
			},
			[]string{"project"},
		),
		maxLoad: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "egress_max_level_load",
				Help: "Largest level occupant load in the latest run",
			},
			[]string{"project"},
		),
		overCapacity: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "egress_stairs_over_capacity",
				Help: "Stairs whose assigned load exceeds their capacity in the latest run",
			},
			[]string{"project"},
		),
	}
}

// ObserveRun records the outcome of one planning pass.
func (p *PrometheusRecorder) ObserveRun(result *domain.RunResult) {
	if result == nil {
		return
	}

	if result.NoOp {
		p.runsTotal.WithLabelValues(result.Project, "noop").Inc()
		return
	}
	p.runsTotal.WithLabelValues(result.Project, "planned").Inc()

	for _, o := range result.Outcomes {
		p.overridesTotal.WithLabelValues(string(o.Kind), string(o.Status)).Inc()
	}
	for _, w := range result.Warnings {
		p.warningsTotal.Add(float64(w.Count))
	}

	over := 0
	for _, s := range result.Stairs {
		if s.Stair.IsOverCapacity() {
			over++
		}
	}
	p.stairs.WithLabelValues(result.Project).Set(float64(len(result.Stairs)))
	p.overCapacity.WithLabelValues(result.Project).Set(float64(over))
	if result.Global != nil {
		p.maxLoad.WithLabelValues(result.Project).Set(float64(result.Global.MaxLoad))
	}
}

// Registry returns the registry the recorder writes to.
func (p *PrometheusRecorder) Registry() *prometheus.Registry {
	return p.registry
}

// WriteTextfile writes the current metrics to path in the text exposition
// format.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
