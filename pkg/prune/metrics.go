package prune

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/Bct-crypto/reth/pkg/model"
)

type metrics struct {
	factory promauto.Factory

	runDurationSeconds prometheus.Histogram
	segments           *shrinkingmap.ShrinkingMap[model.PruneSegmentKind, *segmentMetrics]
}

type segmentMetrics struct {
	durationSeconds prometheus.Histogram
	prunedEntries   prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)

	return &metrics{
		factory: factory,
		runDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pruner",
			Name:      "run_duration_seconds",
			Help:      "Duration of one pruner run.",
		}),
		segments: shrinkingmap.New[model.PruneSegmentKind, *segmentMetrics](),
	}
}

func (m *metrics) forSegment(kind model.PruneSegmentKind) *segmentMetrics {
	segment, _ := m.segments.GetOrCreate(kind, func() *segmentMetrics {
		constLabels := prometheus.Labels{"segment": kind.String()}

		return &segmentMetrics{
			durationSeconds: m.factory.NewHistogram(prometheus.HistogramOpts{
				Namespace:   "pruner",
				Name:        "segment_duration_seconds",
				Help:        "Duration of one segment's prune call.",
				ConstLabels: constLabels,
			}),
			prunedEntries: m.factory.NewCounter(prometheus.CounterOpts{
				Namespace:   "pruner",
				Name:        "segment_pruned_entries_total",
				Help:        "Number of entries deleted by the segment.",
				ConstLabels: constLabels,
			}),
		}
	})

	return segment
}
