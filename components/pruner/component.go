package pruner

import (
	"context"
	"strings"

	"github.com/iotaledger/hive.go/app"
	hivedb "github.com/iotaledger/hive.go/db"
	"github.com/iotaledger/hive.go/runtime/timeutil"
	"go.uber.org/dig"

	"github.com/Bct-crypto/reth/pkg/daemon"
	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/prune"
	"github.com/Bct-crypto/reth/pkg/storage"
	"github.com/Bct-crypto/reth/pkg/storage/database"
)

func init() {
	Component = &app.Component{
		Name:     "Pruner",
		DepsFunc: func(cDeps dependencies) { deps = cDeps },
		Params:   params,
		Provide:  provide,
		Run:      run,
		IsEnabled: func(_ *dig.Container) bool {
			return ParamsPruner.Enabled
		},
	}
}

var (
	Component *app.Component
	deps      dependencies
)

type dependencies struct {
	dig.In

	Storage *storage.Storage
	Pruner  *prune.Pruner
}

func provide(c *dig.Container) error {
	if err := c.Provide(func() *storage.Storage {
		var engine hivedb.Engine
		switch strings.ToLower(ParamsDatabase.Engine) {
		case "rocksdb":
			engine = hivedb.EngineRocksDB
		case "mapdb":
			engine = hivedb.EngineMapDB
		default:
			Component.LogPanicf("unknown database engine: %s", ParamsDatabase.Engine)
		}

		return storage.Open(database.Config{
			Engine:    engine,
			Directory: ParamsDatabase.Directory,
			Version:   storage.DatabaseVersion,
		})
	}); err != nil {
		Component.LogPanic(err.Error())
	}

	if err := c.Provide(func(storageInstance *storage.Storage) *prune.Pruner {
		return prune.New(storageInstance,
			configuredSegments(storageInstance),
			prune.WithMinBlockInterval(model.BlockNumber(ParamsPruner.MinBlockInterval)),
			prune.WithBaseDeleteLimit(ParamsPruner.BaseDeleteLimit),
			prune.WithPruneMaxBlocksPerRun(model.BlockNumber(ParamsPruner.MaxBlocksPerRun)),
			prune.WithArchiveBoundaryProvider(storageInstance.ArchiveMarkers()),
			prune.WithLogger(Component.Logger),
		)
	}); err != nil {
		Component.LogPanic(err.Error())
	}

	return nil
}

// configuredSegments maps the retention parameters onto prune segments,
// skipping every category whose configured retention keeps the full history.
func configuredSegments(storageInstance *storage.Storage) []prune.Segment {
	segments := make([]prune.Segment, 0)

	addSegment := func(retention int64, newSegment func(*storage.Storage, prune.Mode) prune.Segment) {
		mode, enabled := retentionMode(retention)
		if !enabled {
			return
		}
		segments = append(segments, newSegment(storageInstance, mode))
	}

	addSegment(ParamsPruner.Retention.Headers, prune.NewHeadersSegment)
	addSegment(ParamsPruner.Retention.Transactions, prune.NewTransactionsSegment)
	addSegment(ParamsPruner.Retention.Receipts, prune.NewReceiptsSegment)
	addSegment(ParamsPruner.Retention.TransactionLookup, prune.NewTransactionLookupSegment)
	addSegment(ParamsPruner.Retention.SenderRecovery, prune.NewSenderRecoverySegment)
	addSegment(ParamsPruner.Retention.AccountHistory, prune.NewAccountHistorySegment)
	addSegment(ParamsPruner.Retention.StorageHistory, prune.NewStorageHistorySegment)

	return segments
}

func retentionMode(retention int64) (prune.Mode, bool) {
	switch {
	case retention < 0:
		return prune.Mode{}, false
	case retention == 0:
		return prune.KeepNone(), true
	default:
		return prune.KeepRecent(model.BlockNumber(retention)), true
	}
}

func run() error {
	if err := Component.Daemon().BackgroundWorker(Component.Name, func(ctx context.Context) {
		Component.LogInfo("Starting Pruner ... done")

		ticker := timeutil.NewTicker(func() {
			tip := deps.Storage.Settings().LatestBlockNumber()
			if !deps.Pruner.ShouldRun(tip) {
				return
			}

			progress, err := deps.Pruner.Run(tip)
			if err != nil {
				Component.LogWarnf("pruning run failed: %s", err)

				return
			}

			Component.LogDebugf("pruning run done: tip=%d progress=%s", tip, progress)
		}, ParamsPruner.Interval, ctx)
		ticker.WaitForGracefulShutdown()

		<-ctx.Done()
		Component.LogInfo("Stopping Pruner ... done")
	}, daemon.PriorityPruner); err != nil {
		Component.LogPanicf("failed to start worker: %s", err)
	}

	if err := Component.Daemon().BackgroundWorker("Close database", func(ctx context.Context) {
		<-ctx.Done()

		deps.Storage.Shutdown()
		Component.LogInfo("Closing database ... done")
	}, daemon.PriorityCloseDatabase); err != nil {
		Component.LogPanicf("failed to start worker: %s", err)
	}

	return nil
}
