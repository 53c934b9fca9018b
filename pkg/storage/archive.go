package storage

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"

	"github.com/Bct-crypto/reth/pkg/model"
)

// ArchiveMarkers tracks, per segment kind, the highest block number that has
// been durably copied to cold storage. Data at or below the marker is always
// safe to delete regardless of the configured retention mode. The markers
// are written by the cold-storage exporter and only read by the pruner.
type ArchiveMarkers struct {
	store kvstore.KVStore
}

func newArchiveMarkers(store kvstore.KVStore) *ArchiveMarkers {
	return &ArchiveMarkers{
		store: lo.PanicOnErr(store.WithExtendedRealm(kvstore.Realm{StorePrefixArchiveMarkers})),
	}
}

// HighestArchivedBlock returns the archive boundary for the given kind. The
// second return value is false if nothing has been archived for that kind.
func (a *ArchiveMarkers) HighestArchivedBlock(kind model.PruneSegmentKind) (model.BlockNumber, bool, error) {
	bytes, err := a.store.Get(lo.PanicOnErr(kind.Bytes()))
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return 0, false, nil
		}

		return 0, false, ierrors.Wrapf(err, "failed to load archive marker for segment %s", kind)
	}

	block, _, err := model.BlockNumberFromBytes(bytes)
	if err != nil {
		return 0, false, ierrors.Wrapf(err, "failed to decode archive marker for segment %s", kind)
	}

	return block, true, nil
}

// MarkArchived records that all data of the given kind up to and including
// block has been copied to cold storage. Markers never move backwards.
func (a *ArchiveMarkers) MarkArchived(kind model.PruneSegmentKind, block model.BlockNumber) error {
	current, exists, err := a.HighestArchivedBlock(kind)
	if err != nil {
		return err
	}
	if exists && block <= current {
		return nil
	}

	return a.store.Set(lo.PanicOnErr(kind.Bytes()), block.MustBytes())
}
