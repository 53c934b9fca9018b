package prune

import (
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/storage"
)

// tableSegment prunes a single block-ordered table entry by entry. It covers
// every category whose deletion does not touch sibling tables; headers and
// transaction lookup carry their own strategies.
type tableSegment struct {
	storage     *storage.Storage
	kind        model.PruneSegmentKind
	tablePrefix byte
	txIndexed   bool
	mode        Mode
	purpose     Purpose
}

func (s *tableSegment) Kind() model.PruneSegmentKind {
	return s.kind
}

func (s *tableSegment) Mode() *Mode {
	return &s.mode
}

func (s *tableSegment) Purpose() Purpose {
	return s.purpose
}

func (s *tableSegment) Prune(txn *storage.Transaction, input Input) (Output, error) {
	if reachedTarget(input) {
		return Output{Done: true}, nil
	}

	walk := &tableWalk{
		table:        s.storage.Table(s.tablePrefix),
		target:       input.TargetBlock,
		limit:        input.DeleteLimit,
		resume:       input.PreviousCheckpoint,
		txIndexed:    s.txIndexed,
		rowsPerEntry: 1,
		deleteEntry: func(txn *storage.Transaction, key kvstore.Key, _ kvstore.Value) error {
			return txn.Delete(s.tablePrefix, key)
		},
	}

	return walk.run(txn)
}

// reachedTarget reports whether the previous checkpoint already covers the
// requested target, in which case a segment has nothing to do.
func reachedTarget(input Input) bool {
	return input.PreviousCheckpoint != nil && input.PreviousCheckpoint.Block >= input.TargetBlock
}

// NewTransactionsSegment prunes transaction bodies.
func NewTransactionsSegment(storageInstance *storage.Storage, mode Mode) Segment {
	return newTransactionsSegment(storageInstance, mode, PurposeUser)
}

func newTransactionsSegment(storageInstance *storage.Storage, mode Mode, purpose Purpose) Segment {
	return &tableSegment{
		storage:     storageInstance,
		kind:        model.PruneSegmentTransactions,
		tablePrefix: storage.StorePrefixTransactions,
		txIndexed:   true,
		mode:        mode,
		purpose:     purpose,
	}
}

// NewReceiptsSegment prunes transaction receipts.
func NewReceiptsSegment(storageInstance *storage.Storage, mode Mode) Segment {
	return newReceiptsSegment(storageInstance, mode, PurposeUser)
}

func newReceiptsSegment(storageInstance *storage.Storage, mode Mode, purpose Purpose) Segment {
	return &tableSegment{
		storage:     storageInstance,
		kind:        model.PruneSegmentReceipts,
		tablePrefix: storage.StorePrefixReceipts,
		txIndexed:   true,
		mode:        mode,
		purpose:     purpose,
	}
}

// NewSenderRecoverySegment prunes the recovered-sender cache.
func NewSenderRecoverySegment(storageInstance *storage.Storage, mode Mode) Segment {
	return &tableSegment{
		storage:     storageInstance,
		kind:        model.PruneSegmentSenderRecovery,
		tablePrefix: storage.StorePrefixSenderRecovery,
		txIndexed:   true,
		mode:        mode,
		purpose:     PurposeUser,
	}
}

// NewAccountHistorySegment prunes per-block account changesets.
func NewAccountHistorySegment(storageInstance *storage.Storage, mode Mode) Segment {
	return &tableSegment{
		storage:     storageInstance,
		kind:        model.PruneSegmentAccountHistory,
		tablePrefix: storage.StorePrefixAccountHistory,
		mode:        mode,
		purpose:     PurposeUser,
	}
}

// NewStorageHistorySegment prunes per-block storage slot changesets.
func NewStorageHistorySegment(storageInstance *storage.Storage, mode Mode) Segment {
	return &tableSegment{
		storage:     storageInstance,
		kind:        model.PruneSegmentStorageHistory,
		tablePrefix: storage.StorePrefixStorageHistory,
		mode:        mode,
		purpose:     PurposeUser,
	}
}
