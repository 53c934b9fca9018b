package prune

import (
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/storage"
)

// txLookupSegment prunes the transaction lookup index. The forward table
// (block‖index → hash) is block-ordered and drives the walk; the hash index
// entry (hash → block‖index) of each visited transaction is deleted in the
// same step, so both rows count against the delete limit.
type txLookupSegment struct {
	storage *storage.Storage
	mode    Mode
}

// NewTransactionLookupSegment prunes the transaction hash lookup index.
func NewTransactionLookupSegment(storageInstance *storage.Storage, mode Mode) Segment {
	return &txLookupSegment{
		storage: storageInstance,
		mode:    mode,
	}
}

func (s *txLookupSegment) Kind() model.PruneSegmentKind {
	return model.PruneSegmentTransactionLookup
}

func (s *txLookupSegment) Mode() *Mode {
	return &s.mode
}

func (s *txLookupSegment) Purpose() Purpose {
	return PurposeUser
}

func (s *txLookupSegment) Prune(txn *storage.Transaction, input Input) (Output, error) {
	if reachedTarget(input) {
		return Output{Done: true}, nil
	}

	walk := &tableWalk{
		table:        s.storage.Table(storage.StorePrefixTransactionLookup),
		target:       input.TargetBlock,
		limit:        input.DeleteLimit,
		resume:       input.PreviousCheckpoint,
		txIndexed:    true,
		rowsPerEntry: 2,
		deleteEntry: func(txn *storage.Transaction, key kvstore.Key, value kvstore.Value) error {
			if err := txn.Delete(storage.StorePrefixTransactionLookup, key); err != nil {
				return err
			}

			// value holds the transaction hash keying the reverse entry.
			return txn.Delete(storage.StorePrefixTransactionHashIndex, value)
		},
	}

	return walk.run(txn)
}
