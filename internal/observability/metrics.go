package observability

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	codecEncodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glyphgrid",
			Subsystem: "codec",
			Name:      "encodes_total",
			Help:      "Total grid encode operations.",
		},
		[]string{"grid_size"},
	)
	codecDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glyphgrid",
			Subsystem: "codec",
			Name:      "decodes_total",
			Help:      "Total grid decode attempts by outcome.",
		},
		[]string{"outcome"},
	)
	blocksCorrected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "glyphgrid",
			Subsystem: "codec",
			Name:      "blocks_corrected_total",
			Help:      "Hamming blocks repaired by single-bit correction.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(codecEncodes, codecDecodes, blocksCorrected)
	})
}

func RecordEncode(gridSize int) {
	RegisterMetrics()
	codecEncodes.WithLabelValues(strconv.Itoa(gridSize)).Inc()
}

// RecordDecode counts one decode attempt. Corrected blocks are tracked
// even for failed attempts so channel quality stays visible.
func RecordDecode(outcome string, corrected int) {
	RegisterMetrics()
	codecDecodes.WithLabelValues(outcome).Inc()
	if corrected > 0 {
		blocksCorrected.Add(float64(corrected))
	}
}
