package database

import (
	hivedb "github.com/iotaledger/hive.go/db"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/iotaledger/hive.go/kvstore/rocksdb"
)

// StoreWithDefaultSettings opens a KVStore with default settings for the
// given engine. EngineAuto resolves to RocksDB.
func StoreWithDefaultSettings(directory string, createDatabaseIfNotExists bool, dbEngine hivedb.Engine) (kvstore.KVStore, error) {
	switch dbEngine {
	case hivedb.EngineMapDB:
		return mapdb.NewMapDB(), nil

	case hivedb.EngineAuto, hivedb.EngineRocksDB:
		db, err := NewRocksDB(directory)
		if err != nil {
			return nil, err
		}

		return rocksdb.New(db), nil

	default:
		return nil, ierrors.Errorf("unknown database engine: %s, supported engines: mapdb/rocksdb", dbEngine)
	}
}

// NewRocksDB creates a new RocksDB instance with the default settings used
// for all stores of the node.
func NewRocksDB(path string) (*rocksdb.RocksDB, error) {
	opts := []rocksdb.Option{
		rocksdb.IncreaseParallelism(4),
		rocksdb.Custom([]string{
			"periodic_compaction_seconds=43200",
			"level_compaction_dynamic_level_bytes=true",
			"keep_log_file_num=2",
		}),
	}

	return rocksdb.CreateDB(path, opts...)
}
