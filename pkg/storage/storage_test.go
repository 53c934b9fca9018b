package storage_test

import (
	"testing"

	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/require"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/storage"
)

func TestCheckpointStore(t *testing.T) {
	testStorage := storage.New(mapdb.NewMapDB())
	checkpoints := testStorage.PruneCheckpoints()

	checkpoint, err := checkpoints.Load(model.PruneSegmentHeaders)
	require.NoError(t, err)
	require.Nil(t, checkpoint)

	txn, err := testStorage.NewTransaction()
	require.NoError(t, err)

	stored := &model.PruneCheckpoint{Block: 42, HasTxPosition: true, TxPosition: 7}
	require.NoError(t, checkpoints.Store(txn, model.PruneSegmentHeaders, stored))

	// The checkpoint only becomes visible once the transaction commits.
	checkpoint, err = checkpoints.Load(model.PruneSegmentHeaders)
	require.NoError(t, err)
	require.Nil(t, checkpoint)

	require.NoError(t, txn.Commit())

	checkpoint, err = checkpoints.Load(model.PruneSegmentHeaders)
	require.NoError(t, err)
	require.Equal(t, stored, checkpoint)
}

func TestTransaction_CancelDropsMutations(t *testing.T) {
	testStorage := storage.New(mapdb.NewMapDB())
	table := testStorage.Table(storage.StorePrefixHeaders)

	key := storage.BlockKey(1)
	require.NoError(t, table.Set(key, []byte{0x01}))

	txn, err := testStorage.NewTransaction()
	require.NoError(t, err)
	require.NoError(t, txn.Delete(storage.StorePrefixHeaders, key))
	txn.Cancel()

	has, err := table.Has(key)
	require.NoError(t, err)
	require.True(t, has)
}

func TestTransaction_DeleteMatchesTableKeys(t *testing.T) {
	testStorage := storage.New(mapdb.NewMapDB())
	table := testStorage.Table(storage.StorePrefixTransactions)

	key := storage.TxKey(3, 1)
	require.NoError(t, table.Set(key, []byte{0x01}))

	txn, err := testStorage.NewTransaction()
	require.NoError(t, err)
	require.NoError(t, txn.Delete(storage.StorePrefixTransactions, key))
	require.NoError(t, txn.Commit())

	has, err := table.Has(key)
	require.NoError(t, err)
	require.False(t, has)
}

func TestArchiveMarkers(t *testing.T) {
	testStorage := storage.New(mapdb.NewMapDB())
	markers := testStorage.ArchiveMarkers()

	_, exists, err := markers.HighestArchivedBlock(model.PruneSegmentHeaders)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, markers.MarkArchived(model.PruneSegmentHeaders, 10))

	block, exists, err := markers.HighestArchivedBlock(model.PruneSegmentHeaders)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, model.BlockNumber(10), block)

	// Markers never move backwards.
	require.NoError(t, markers.MarkArchived(model.PruneSegmentHeaders, 5))

	block, _, err = markers.HighestArchivedBlock(model.PruneSegmentHeaders)
	require.NoError(t, err)
	require.Equal(t, model.BlockNumber(10), block)

	require.NoError(t, markers.MarkArchived(model.PruneSegmentHeaders, 12))

	block, _, err = markers.HighestArchivedBlock(model.PruneSegmentHeaders)
	require.NoError(t, err)
	require.Equal(t, model.BlockNumber(12), block)
}

func TestSettings_LatestBlockNumber(t *testing.T) {
	testStorage := storage.New(mapdb.NewMapDB())
	settings := testStorage.Settings()

	require.Equal(t, model.BlockNumber(0), settings.LatestBlockNumber())

	require.NoError(t, settings.SetLatestBlockNumber(1234))
	require.Equal(t, model.BlockNumber(1234), settings.LatestBlockNumber())
}
