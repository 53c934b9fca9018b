package prune

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Bct-crypto/reth/pkg/model"
)

// WithMinBlockInterval sets the number of blocks the chain must advance
// between runs before ShouldRun schedules the next one.
func WithMinBlockInterval(interval model.BlockNumber) options.Option[Pruner] {
	return func(p *Pruner) {
		p.optsMinBlockInterval = interval
	}
}

// WithBaseDeleteLimit sets the per-block deletion budget; a run may delete up
// to baseDeleteLimit entries for every block the chain advanced since the
// previous run.
func WithBaseDeleteLimit(limit int) options.Option[Pruner] {
	return func(p *Pruner) {
		p.optsBaseDeleteLimit = limit
	}
}

// WithPruneMaxBlocksPerRun caps the number of advanced blocks a single run's
// budget may account for.
func WithPruneMaxBlocksPerRun(blocks model.BlockNumber) options.Option[Pruner] {
	return func(p *Pruner) {
		p.optsPruneMaxBlocksPerRun = blocks
	}
}

// WithArchiveBoundaryProvider attaches the cold-storage boundary source; when
// set, archive segments are synthesized ahead of the configured segments on
// every run.
func WithArchiveBoundaryProvider(provider ArchiveBoundaryProvider) options.Option[Pruner] {
	return func(p *Pruner) {
		p.archiveBoundaries = provider
	}
}

func WithLogger(logger log.Logger) options.Option[Pruner] {
	return func(p *Pruner) {
		p.logger = logger
	}
}

func WithMetricsRegisterer(registerer prometheus.Registerer) options.Option[Pruner] {
	return func(p *Pruner) {
		p.optsMetricsRegisterer = registerer
	}
}
