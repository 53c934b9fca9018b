package prune

import (
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/storage"
)

// headersSegment prunes block headers together with the canonical hash index
// of the same block; both rows count against the delete limit.
type headersSegment struct {
	storage *storage.Storage
	mode    Mode
	purpose Purpose
}

// NewHeadersSegment prunes block headers and the canonical hash index.
func NewHeadersSegment(storageInstance *storage.Storage, mode Mode) Segment {
	return newHeadersSegment(storageInstance, mode, PurposeUser)
}

func newHeadersSegment(storageInstance *storage.Storage, mode Mode, purpose Purpose) Segment {
	return &headersSegment{
		storage: storageInstance,
		mode:    mode,
		purpose: purpose,
	}
}

func (s *headersSegment) Kind() model.PruneSegmentKind {
	return model.PruneSegmentHeaders
}

func (s *headersSegment) Mode() *Mode {
	return &s.mode
}

func (s *headersSegment) Purpose() Purpose {
	return s.purpose
}

func (s *headersSegment) Prune(txn *storage.Transaction, input Input) (Output, error) {
	if reachedTarget(input) {
		return Output{Done: true}, nil
	}

	walk := &tableWalk{
		table:        s.storage.Table(storage.StorePrefixHeaders),
		target:       input.TargetBlock,
		limit:        input.DeleteLimit,
		resume:       input.PreviousCheckpoint,
		rowsPerEntry: 2,
		deleteEntry: func(txn *storage.Transaction, key kvstore.Key, _ kvstore.Value) error {
			if err := txn.Delete(storage.StorePrefixHeaders, key); err != nil {
				return err
			}

			return txn.Delete(storage.StorePrefixCanonicalHashes, key[:model.BlockNumberLength])
		},
	}

	return walk.run(txn)
}
