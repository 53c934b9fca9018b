package pruner

import (
	"testing"

	"github.com/iotaledger/hive.go/kvstore/mapdb"
	"github.com/stretchr/testify/require"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/prune"
	"github.com/Bct-crypto/reth/pkg/storage"
)

func TestRetentionMode(t *testing.T) {
	_, enabled := retentionMode(-1)
	require.False(t, enabled)

	mode, enabled := retentionMode(0)
	require.True(t, enabled)
	require.Equal(t, prune.KeepNone(), mode)

	mode, enabled = retentionMode(750)
	require.True(t, enabled)
	require.Equal(t, prune.KeepRecent(750), mode)
}

func TestConfiguredSegments(t *testing.T) {
	ParamsPruner.Retention.Headers = 1000
	ParamsPruner.Retention.Transactions = -1
	ParamsPruner.Retention.Receipts = -1
	ParamsPruner.Retention.TransactionLookup = -1
	ParamsPruner.Retention.SenderRecovery = -1
	ParamsPruner.Retention.AccountHistory = 0
	ParamsPruner.Retention.StorageHistory = -1

	segments := configuredSegments(storage.New(mapdb.NewMapDB()))
	require.Len(t, segments, 2)
	require.Equal(t, model.PruneSegmentHeaders, segments[0].Kind())
	require.Equal(t, model.PruneSegmentAccountHistory, segments[1].Kind())
}
