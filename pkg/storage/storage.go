package storage

import (
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"

	"github.com/Bct-crypto/reth/pkg/storage/database"
)

// Storage is an abstraction around the persistent store of the node. It
// exposes the chain tables as realm-scoped stores, the pruning checkpoints,
// the archive markers and the settings, and hands out the write transactions
// that pruner runs operate on.
type Storage struct {
	store kvstore.KVStore

	dbInstance  *database.DBInstance
	settings    *Settings
	checkpoints *CheckpointStore
	archive     *ArchiveMarkers
}

// New creates a storage instance on top of the given KVStore.
func New(store kvstore.KVStore) *Storage {
	return &Storage{
		store:       store,
		settings:    newSettings(store),
		checkpoints: newCheckpointStore(store),
		archive:     newArchiveMarkers(store),
	}
}

// Open creates a storage instance backed by a database opened from the given
// config.
func Open(dbConfig database.Config) *Storage {
	if dbConfig.PrefixHealth == nil {
		dbConfig.PrefixHealth = []byte{storePrefixHealth}
	}

	dbInstance := database.NewDBInstance(dbConfig)

	s := New(dbInstance.KVStore())
	s.dbInstance = dbInstance

	return s
}

func (s *Storage) Settings() *Settings {
	return s.settings
}

func (s *Storage) PruneCheckpoints() *CheckpointStore {
	return s.checkpoints
}

func (s *Storage) ArchiveMarkers() *ArchiveMarkers {
	return s.archive
}

// Table returns the realm-scoped store of the given table prefix. Keys seen
// through the returned store are realm-relative, matching the key helpers of
// this package and the keys accepted by Transaction.Set/Delete.
func (s *Storage) Table(tablePrefix byte) kvstore.KVStore {
	return lo.PanicOnErr(s.store.WithExtendedRealm(kvstore.Realm{tablePrefix}))
}

func (s *Storage) Flush() error {
	return s.store.Flush()
}

// Shutdown flushes and closes the underlying database if this storage owns
// one. Storages created on a caller-provided KVStore leave closing to the
// caller.
func (s *Storage) Shutdown() {
	if s.dbInstance != nil {
		s.dbInstance.Close()
	}
}
