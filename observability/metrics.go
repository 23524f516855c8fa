package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jsema_parsing_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jsema_stage_seconds",
		Help:    "Time spent in one pipeline stage over the whole working set.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	TypesInspected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jsema_types_inspected_total",
		Help: "Total number of primary source types whose signatures were inspected.",
	})

	TypeCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jsema_type_cycles_total",
		Help: "Total number of type cycles found by the dependency sorter.",
	})

	DiagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jsema_diagnostics_total",
		Help: "Total number of diagnostics reported, by severity and kind.",
	}, []string{"severity", "kind"})

	RelationsExported = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jsema_relations_exported",
		Help: "Number of dependency relations kept after noise filtering in the last run.",
	})
)
