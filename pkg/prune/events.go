package prune

import (
	"time"

	"github.com/iotaledger/hive.go/runtime/event"

	"github.com/Bct-crypto/reth/pkg/model"
)

type Events struct {
	// RunFinished is triggered once per completed run, after the run's
	// transaction has been committed. Delivery is best-effort; listeners
	// never block a run.
	RunFinished *event.Event1[*RunFinishedEvent]

	event.Group[Events, *Events]
}

var NewEvents = event.CreateGroupConstructor(func() (newEvents *Events) {
	return &Events{
		RunFinished: event.New1[*RunFinishedEvent](),
	}
})

type RunFinishedEvent struct {
	Tip     model.BlockNumber
	Elapsed time.Duration
	Stats   RunStats
}

// Progress states whether a run fully reached every segment's target or left
// residual work for a future run.
type Progress uint8

const (
	ProgressFinished Progress = iota
	ProgressPartial
)

func ProgressFromDone(done bool) Progress {
	if done {
		return ProgressFinished
	}

	return ProgressPartial
}

func (p Progress) String() string {
	if p == ProgressFinished {
		return "Finished"
	}

	return "Partial"
}

// RunStats maps every segment visited during a run to its outcome.
type RunStats map[model.PruneSegmentKind]SegmentRunStats

type SegmentRunStats struct {
	Progress      Progress
	PrunedEntries int
}
