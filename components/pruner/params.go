package pruner

import (
	"time"

	"github.com/iotaledger/hive.go/app"
)

// ParametersPruner contains the definition of the parameters used by the
// pruner component. Retention values follow one convention: -1 keeps the
// entire history (the segment is disabled), 0 keeps nothing beyond the tip,
// any positive value keeps that many trailing blocks.
type ParametersPruner struct {
	// Enabled defines whether the pruner component is enabled.
	Enabled bool `default:"true" usage:"whether the pruner component is enabled"`
	// Interval defines how often the pruner checks whether pruning is due.
	Interval time.Duration `default:"1m" usage:"interval at which the pruner checks whether pruning is due"`
	// MinBlockInterval defines by how many blocks the chain must advance between runs.
	MinBlockInterval uint64 `default:"5" usage:"number of blocks the chain must advance before the next run"`
	// BaseDeleteLimit defines the deletion budget per advanced block.
	BaseDeleteLimit int `default:"3500" usage:"number of entries that may be deleted per block the chain advanced"`
	// MaxBlocksPerRun caps the budget multiplier of a single run.
	MaxBlocksPerRun uint64 `default:"100" usage:"maximum number of advanced blocks a single run's budget accounts for"`

	Retention struct {
		Headers           int64 `default:"-1" usage:"blocks of header history to keep (-1 all, 0 none)"`
		Transactions      int64 `default:"-1" usage:"blocks of transaction history to keep (-1 all, 0 none)"`
		Receipts          int64 `default:"-1" usage:"blocks of receipt history to keep (-1 all, 0 none)"`
		TransactionLookup int64 `default:"-1" usage:"blocks of transaction lookup history to keep (-1 all, 0 none)"`
		SenderRecovery    int64 `default:"-1" usage:"blocks of recovered sender history to keep (-1 all, 0 none)"`
		AccountHistory    int64 `default:"-1" usage:"blocks of account changeset history to keep (-1 all, 0 none)"`
		StorageHistory    int64 `default:"-1" usage:"blocks of storage changeset history to keep (-1 all, 0 none)"`
	}
}

// ParametersDatabase contains the definition of the database parameters.
type ParametersDatabase struct {
	// Directory defines the directory of the database.
	Directory string `default:"chaindata" usage:"the directory of the database"`
	// Engine defines the database engine (rocksdb or mapdb).
	Engine string `default:"rocksdb" usage:"the database engine (rocksdb or mapdb)"`
}

var (
	ParamsPruner   = &ParametersPruner{}
	ParamsDatabase = &ParametersDatabase{}
)

var params = &app.ComponentParams{
	Params: map[string]any{
		"pruner":   ParamsPruner,
		"database": ParamsDatabase,
	},
}
