package storage

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"

	"github.com/Bct-crypto/reth/pkg/model"
)

// CheckpointStore persists pruning progress per segment kind. Reads go
// directly to the store; writes are staged on the run's Transaction so that a
// checkpoint only becomes durable together with the deletions it describes.
type CheckpointStore struct {
	store kvstore.KVStore
}

func newCheckpointStore(store kvstore.KVStore) *CheckpointStore {
	return &CheckpointStore{
		store: lo.PanicOnErr(store.WithExtendedRealm(kvstore.Realm{StorePrefixPruneCheckpoints})),
	}
}

// Load returns the persisted checkpoint for the given kind, or nil if the
// kind has never been pruned.
func (c *CheckpointStore) Load(kind model.PruneSegmentKind) (*model.PruneCheckpoint, error) {
	bytes, err := c.store.Get(lo.PanicOnErr(kind.Bytes()))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, ierrors.Wrapf(err, "failed to load prune checkpoint for segment %s", kind)
	}

	checkpoint, _, err := model.PruneCheckpointFromBytes(bytes)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to decode prune checkpoint for segment %s", kind)
	}

	return checkpoint, nil
}

// Store stages the checkpoint for the given kind on the transaction.
func (c *CheckpointStore) Store(txn *Transaction, kind model.PruneSegmentKind, checkpoint *model.PruneCheckpoint) error {
	checkpointBytes, err := checkpoint.Bytes()
	if err != nil {
		return ierrors.Wrapf(err, "failed to encode prune checkpoint for segment %s", kind)
	}

	return txn.Set(StorePrefixPruneCheckpoints, lo.PanicOnErr(kind.Bytes()), checkpointBytes)
}
