package prune

import (
	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/storage"
)

// Purpose states why a segment prunes: because the user configured a
// retention mode, or because the data has already been archived to cold
// storage. Archive segments bypass minimum-retention checks.
type Purpose uint8

const (
	PurposeUser Purpose = iota
	PurposeArchive
)

// Input is the deletion request the pruner hands to a segment for one run.
type Input struct {
	// PreviousCheckpoint is the segment's durable progress from earlier
	// runs, nil if the segment never pruned.
	PreviousCheckpoint *model.PruneCheckpoint
	// TargetBlock is the inclusive upper bound of blocks eligible for
	// deletion in this run.
	TargetBlock model.BlockNumber
	// DeleteLimit caps the number of entries the segment may stage for
	// deletion.
	DeleteLimit int
}

// Output reports what a segment's Prune call achieved.
type Output struct {
	// Pruned is the number of entries staged for deletion.
	Pruned int
	// Done is true if the segment reached TargetBlock within DeleteLimit.
	Done bool
	// Checkpoint is the new durable progress marker, nil if no progress
	// that is safe to persist was made. Its block never exceeds TargetBlock.
	Checkpoint *model.PruneCheckpoint
}

// Segment is the deletion strategy of one prunable data category. Prune must
// stay within Input.DeleteLimit, must be resumable with respect to
// Input.PreviousCheckpoint, and stages all deletions on the given
// transaction; nothing becomes durable before the pruner commits the run.
type Segment interface {
	Kind() model.PruneSegmentKind
	// Mode returns the segment's retention mode, nil if the segment is
	// disabled.
	Mode() *Mode
	Purpose() Purpose
	Prune(txn *storage.Transaction, input Input) (Output, error)
}

// ArchiveBoundaryProvider reports, per segment kind, the highest block number
// already durably archived to cold storage.
type ArchiveBoundaryProvider interface {
	HighestArchivedBlock(kind model.PruneSegmentKind) (model.BlockNumber, bool, error)
}

// ArchiveCapableKinds are the kinds for which cold-storage archival exists.
// The pruner synthesizes archive segments for them ahead of the configured
// segments, in this order.
var ArchiveCapableKinds = []model.PruneSegmentKind{
	model.PruneSegmentHeaders,
	model.PruneSegmentTransactions,
	model.PruneSegmentReceipts,
}

// ArchiveSegments synthesizes the transient archive segments for the given
// boundaries, ordered by ArchiveCapableKinds. Kinds without a boundary are
// skipped.
func ArchiveSegments(storageInstance *storage.Storage, boundaries map[model.PruneSegmentKind]model.BlockNumber) []Segment {
	segments := make([]Segment, 0, len(ArchiveCapableKinds))

	for _, kind := range ArchiveCapableKinds {
		boundary, exists := boundaries[kind]
		if !exists {
			continue
		}

		mode := KeepBeforeOrAt(boundary)

		switch kind {
		case model.PruneSegmentHeaders:
			segments = append(segments, newHeadersSegment(storageInstance, mode, PurposeArchive))
		case model.PruneSegmentTransactions:
			segments = append(segments, newTransactionsSegment(storageInstance, mode, PurposeArchive))
		case model.PruneSegmentReceipts:
			segments = append(segments, newReceiptsSegment(storageInstance, mode, PurposeArchive))
		}
	}

	return segments
}
