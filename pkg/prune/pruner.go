package prune

import (
	"time"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/storage"
)

// Pruner incrementally deletes historical chain data that is no longer
// required. Every run opens a single write transaction, walks the segments
// in priority order (archive-driven first, then configured) within a
// deletion budget that scales with how far the chain advanced since the
// previous run, persists each segment's checkpoint, and commits once.
//
// Run must not be invoked concurrently with itself; the pruner shares its
// store with the rest of the node, and the caller has to make sure no
// conflicting writer is active during a run.
type Pruner struct {
	// Events is triggered once per completed run. Subscribing never blocks
	// a run.
	Events *Events

	storage           *storage.Storage
	segments          []Segment
	archiveBoundaries ArchiveBoundaryProvider

	// previousTip is the tip of the most recent successful run, including
	// no-op runs. A failed run leaves it untouched so the next attempt
	// recomputes the same budget.
	previousTip    model.BlockNumber
	hasPreviousTip bool

	running atomic.Bool
	metrics *metrics
	logger  log.Logger

	optsMinBlockInterval     model.BlockNumber
	optsBaseDeleteLimit      int
	optsPruneMaxBlocksPerRun model.BlockNumber
	optsMetricsRegisterer    prometheus.Registerer
}

func New(storageInstance *storage.Storage, segments []Segment, opts ...options.Option[Pruner]) *Pruner {
	return options.Apply(&Pruner{
		Events:                   NewEvents(),
		storage:                  storageInstance,
		segments:                 segments,
		logger:                   log.NewLogger(),
		optsMinBlockInterval:     5,
		optsBaseDeleteLimit:      3500,
		optsPruneMaxBlocksPerRun: 100,
		optsMetricsRegisterer:    prometheus.NewRegistry(),
	}, opts, func(p *Pruner) {
		p.metrics = newMetrics(p.optsMetricsRegisterer)
	})
}

// ShouldRun reports whether pruning is due at the given tip: always on the
// very first call, afterwards once the chain advanced by at least the
// minimum block interval. It has no side effects.
func (p *Pruner) ShouldRun(tip model.BlockNumber) bool {
	if !p.hasPreviousTip {
		return true
	}

	// Plain subtraction: a regressed tip wraps around and still schedules a
	// run; Run collapses the budget to zero in that case.
	return tip-p.previousTip >= p.optsMinBlockInterval
}

// Run executes one pruning pass at the given tip. It returns
// ProgressFinished if every eligible segment reached its target within the
// budget, ProgressPartial if work remains for a future run. On error the
// whole run's transaction is rolled back and no checkpoint is persisted.
func (p *Pruner) Run(tip model.BlockNumber) (Progress, error) {
	if !p.running.CompareAndSwap(false, true) {
		return ProgressPartial, ErrAlreadyRunning
	}
	defer p.running.Store(false)

	if tip == 0 {
		p.previousTip = 0
		p.hasPreviousTip = true

		p.logger.LogDebug("nothing to prune yet", "tip", tip)

		return ProgressFinished, nil
	}

	p.logger.LogDebug("pruner started", "tip", tip)
	start := time.Now()

	deleteLimit := p.optsBaseDeleteLimit * int(p.blocksSinceLastRun(tip))

	txn, err := p.storage.NewTransaction()
	if err != nil {
		return ProgressPartial, ierrors.Wrap(err, "failed to open pruner transaction")
	}

	stats, progress, err := p.pruneSegments(txn, tip, deleteLimit)
	if err != nil {
		txn.Cancel()

		return ProgressPartial, err
	}

	if err := txn.Commit(); err != nil {
		return ProgressPartial, ierrors.Wrap(err, "failed to commit pruner transaction")
	}

	p.previousTip = tip
	p.hasPreviousTip = true

	elapsed := time.Since(start)
	p.metrics.runDurationSeconds.Observe(elapsed.Seconds())

	p.logger.LogDebug("pruner finished", "tip", tip, "elapsed", elapsed, "progress", progress.String())

	p.Events.RunFinished.Trigger(&RunFinishedEvent{
		Tip:     tip,
		Elapsed: elapsed,
		Stats:   stats,
	})

	return progress, nil
}

// blocksSinceLastRun is the budget multiplier: how many blocks the chain
// advanced since the previous run, capped by the per-run maximum. The
// subtraction saturates because a reorg can present a tip below the previous
// one; the multiplier then collapses to zero and no deletion happens on the
// regressed tip.
func (p *Pruner) blocksSinceLastRun(tip model.BlockNumber) model.BlockNumber {
	blocks := model.BlockNumber(1)
	if p.hasPreviousTip {
		if tip > p.previousTip {
			blocks = tip - p.previousTip
		} else {
			blocks = 0
		}
	}

	if blocks > p.optsPruneMaxBlocksPerRun {
		blocks = p.optsPruneMaxBlocksPerRun
	}

	return blocks
}

func (p *Pruner) pruneSegments(txn *storage.Transaction, tip model.BlockNumber, deleteLimit int) (RunStats, Progress, error) {
	archiveSegments, err := p.archiveSegments()
	if err != nil {
		return nil, ProgressPartial, err
	}

	segments := append(archiveSegments, p.segments...)

	done := true
	stats := make(RunStats)

	// Checkpoints staged during this run are not yet visible to store
	// reads; runCheckpoints carries them to later segments of the same
	// kind so progress within one run is never lost or rewound.
	runCheckpoints := make(map[model.PruneSegmentKind]*model.PruneCheckpoint)

	for _, segment := range segments {
		if deleteLimit == 0 {
			break
		}

		mode := segment.Mode()
		if mode == nil {
			continue
		}

		target, hasTarget, err := mode.TargetBlock(tip, segment.Kind(), segment.Purpose())
		if err != nil {
			if ierrors.Is(err, ErrUnsupportedMode) {
				// A misconfigured segment must not abort the others.
				p.logger.LogWarn("skipping prune segment", "segment", segment.Kind(), "mode", mode.String(), "err", err)

				continue
			}

			return nil, ProgressPartial, ierrors.Wrapf(err, "failed to evaluate retention mode of segment %s", segment.Kind())
		}
		if !hasTarget {
			p.logger.LogDebug("no target block to prune", "segment", segment.Kind())

			continue
		}

		previousCheckpoint, exists := runCheckpoints[segment.Kind()]
		if !exists {
			var err error
			if previousCheckpoint, err = p.storage.PruneCheckpoints().Load(segment.Kind()); err != nil {
				return nil, ProgressPartial, err
			}
		}

		segmentStart := time.Now()
		output, err := segment.Prune(txn, Input{
			PreviousCheckpoint: previousCheckpoint,
			TargetBlock:        target,
			DeleteLimit:        deleteLimit,
		})
		if err != nil {
			return nil, ProgressPartial, ierrors.Wrapf(err, "failed to prune segment %s", segment.Kind())
		}

		if output.Checkpoint != nil && output.Checkpoint.After(previousCheckpoint) {
			if err := p.storage.PruneCheckpoints().Store(txn, segment.Kind(), output.Checkpoint); err != nil {
				return nil, ProgressPartial, err
			}
			runCheckpoints[segment.Kind()] = output.Checkpoint
		}

		segmentMetrics := p.metrics.forSegment(segment.Kind())
		segmentMetrics.durationSeconds.Observe(time.Since(segmentStart).Seconds())
		segmentMetrics.prunedEntries.Add(float64(output.Pruned))

		done = done && output.Done
		if output.Pruned > deleteLimit {
			deleteLimit = 0
		} else {
			deleteLimit -= output.Pruned
		}

		stats[segment.Kind()] = SegmentRunStats{
			Progress:      ProgressFromDone(output.Done),
			PrunedEntries: output.Pruned,
		}
	}

	return stats, ProgressFromDone(done), nil
}

// archiveSegments synthesizes the transient segments for data that is
// already durably archived to cold storage. They run ahead of the configured
// segments: archived ranges are always safe to delete, and clearing them
// first frees budget for categories without archival.
func (p *Pruner) archiveSegments() ([]Segment, error) {
	if p.archiveBoundaries == nil {
		return nil, nil
	}

	boundaries := make(map[model.PruneSegmentKind]model.BlockNumber, len(ArchiveCapableKinds))
	for _, kind := range ArchiveCapableKinds {
		boundary, exists, err := p.archiveBoundaries.HighestArchivedBlock(kind)
		if err != nil {
			return nil, ierrors.Wrapf(err, "failed to read archive boundary for segment %s", kind)
		}
		if exists {
			boundaries[kind] = boundary
		}
	}

	return ArchiveSegments(p.storage, boundaries), nil
}
