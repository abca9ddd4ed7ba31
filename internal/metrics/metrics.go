package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// Generations counts dataset generation requests by document type and outcome
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dataset_generations_total", Help: "Dataset generations by document type and status."},
		[]string{"document", "status"},
	)
	// RowsGenerated tracks how many rows each generated document carries
	RowsGenerated = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "dataset_rows_generated", Help: "Rows per generated document.", Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000}},
		[]string{"document"},
	)
	// DirectoryLoads counts reference directory loads by resolved source
	DirectoryLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "directory_loads_total", Help: "Reference directory loads by source (sheet, local, empty)."},
		[]string{"source"},
	)
)

// RegisterDefault registers collectors to the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(Generations)
		Registry.MustRegister(RowsGenerated)
		Registry.MustRegister(DirectoryLoads)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
