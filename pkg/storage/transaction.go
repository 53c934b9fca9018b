package storage

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"
	"github.com/iotaledger/hive.go/serializer/v2/byteutils"
)

// Transaction is the single batched set of mutations a pruner run stages
// against the store. All deletions and checkpoint writes of a run go through
// one Transaction, so they become durable together on Commit or are dropped
// together on Cancel. Reads are served by the underlying store and do not
// observe staged mutations.
type Transaction struct {
	mutations kvstore.BatchedMutations
}

// NewTransaction opens a write transaction spanning all table realms.
func (s *Storage) NewTransaction() (*Transaction, error) {
	mutations, err := s.store.Batched()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to open batched mutations")
	}

	return &Transaction{mutations: mutations}, nil
}

// Set stages a write of the realm-relative key under the given table prefix.
func (t *Transaction) Set(tablePrefix byte, key []byte, value []byte) error {
	return t.mutations.Set(byteutils.ConcatBytes([]byte{tablePrefix}, key), value)
}

// Delete stages a deletion of the realm-relative key under the given table
// prefix.
func (t *Transaction) Delete(tablePrefix byte, key []byte) error {
	return t.mutations.Delete(byteutils.ConcatBytes([]byte{tablePrefix}, key))
}

// Commit makes all staged mutations durable.
func (t *Transaction) Commit() error {
	return t.mutations.Commit()
}

// Cancel drops all staged mutations.
func (t *Transaction) Cancel() {
	t.mutations.Cancel()
}
