package storage

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/syncutils"

	"github.com/Bct-crypto/reth/pkg/model"
)

const (
	latestBlockNumberKey = iota
)

// Settings holds the node-wide storage settings that survive restarts.
type Settings struct {
	mutex syncutils.RWMutex
	store kvstore.KVStore
}

func newSettings(store kvstore.KVStore) *Settings {
	return &Settings{
		store: lo.PanicOnErr(store.WithExtendedRealm(kvstore.Realm{StorePrefixSettings})),
	}
}

// LatestBlockNumber returns the highest block number the node considers
// canonical, 0 if none was stored yet.
func (s *Settings) LatestBlockNumber() model.BlockNumber {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	bytes, err := s.store.Get([]byte{latestBlockNumberKey})
	if err != nil {
		if ierrors.Is(err, kvstore.ErrKeyNotFound) {
			return 0
		}

		panic(err)
	}

	block, _, err := model.BlockNumberFromBytes(bytes)
	if err != nil {
		panic(err)
	}

	return block
}

func (s *Settings) SetLatestBlockNumber(block model.BlockNumber) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.store.Set([]byte{latestBlockNumberKey}, block.MustBytes()); err != nil {
		return ierrors.Wrap(err, "failed to store latest block number")
	}

	return nil
}
