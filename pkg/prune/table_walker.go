package prune

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/kvstore"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/storage"
)

// tableWalk deletes the entries of one block-ordered table up to a target
// block, staying within a delete limit. Keys covered by the resume
// checkpoint are skipped even when still physically present: deletions
// staged earlier in the same run are not yet visible to store reads, and
// skipping keeps the walk resumable, idempotent, and honestly budgeted.
type tableWalk struct {
	table  kvstore.KVStore
	target model.BlockNumber
	limit  int
	// resume is the previous checkpoint of the segment, nil if it never
	// pruned before.
	resume *model.PruneCheckpoint
	// txIndexed tables carry a 4-byte transaction index after the block
	// number and report a fine-grained checkpoint on mid-block stops.
	txIndexed bool
	// rowsPerEntry is the number of rows deleting one visited entry stages,
	// sibling-table rows included. The limit is charged before the entry is
	// deleted, so a walk never stages more rows than the limit allows.
	rowsPerEntry int
	// deleteEntry stages the deletion of one table entry.
	deleteEntry func(txn *storage.Transaction, key kvstore.Key, value kvstore.Value) error
}

func (w *tableWalk) run(txn *storage.Transaction) (Output, error) {
	var (
		pruned       int
		lastBlock    model.BlockNumber
		lastTxIndex  model.TxIndex
		haveDeleted  bool
		limitReached bool
		// stopBlock is the block of the first key left behind when the
		// limit cut the walk short; it decides whether lastBlock completed.
		stopBlock model.BlockNumber
		innerErr  error
	)

	if storageErr := w.table.Iterate(kvstore.EmptyPrefix, func(key kvstore.Key, value kvstore.Value) bool {
		block, _, err := model.BlockNumberFromBytes(key)
		if err != nil {
			innerErr = ierrors.Wrap(err, "malformed table key")

			return false
		}

		if block > w.target {
			return false
		}

		var index model.TxIndex
		if w.txIndexed {
			if index, _, err = model.TxIndexFromBytes(key[model.BlockNumberLength:]); err != nil {
				innerErr = ierrors.Wrap(err, "malformed transaction index in table key")

				return false
			}
		}

		if w.covered(block, index) {
			return true
		}

		if pruned+w.rowsPerEntry > w.limit {
			limitReached = true
			stopBlock = block

			return false
		}

		if err := w.deleteEntry(txn, key, value); err != nil {
			innerErr = err

			return false
		}

		pruned += w.rowsPerEntry
		lastBlock = block
		lastTxIndex = index
		haveDeleted = true

		return true
	}); storageErr != nil {
		return Output{}, ierrors.Wrap(storageErr, "failed to iterate over table")
	}
	if innerErr != nil {
		return Output{}, innerErr
	}

	if !limitReached {
		return Output{
			Pruned:     pruned,
			Done:       true,
			Checkpoint: &model.PruneCheckpoint{Block: w.target},
		}, nil
	}

	output := Output{Pruned: pruned}
	if !haveDeleted {
		return output, nil
	}

	if stopBlock > lastBlock {
		// The limit hit exactly on a block boundary; lastBlock is complete.
		output.Checkpoint = &model.PruneCheckpoint{Block: lastBlock}
	} else if lastBlock > 0 {
		checkpoint := &model.PruneCheckpoint{Block: lastBlock - 1}
		if w.txIndexed {
			checkpoint.HasTxPosition = true
			checkpoint.TxPosition = lastTxIndex
		}
		output.Checkpoint = checkpoint
	}

	return output, nil
}

// covered reports whether the key is already accounted for by the resume
// checkpoint: its block is fully pruned, or it sits at or before the
// recorded transaction position of the partially pruned block.
func (w *tableWalk) covered(block model.BlockNumber, index model.TxIndex) bool {
	if w.resume == nil {
		return false
	}
	if block <= w.resume.Block {
		return true
	}

	return w.txIndexed && w.resume.HasTxPosition && block == w.resume.Block+1 && index <= w.resume.TxPosition
}
