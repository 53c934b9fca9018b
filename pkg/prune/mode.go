package prune

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/Bct-crypto/reth/pkg/model"
)

// MinRetentionBlocks is the minimum amount of trailing history that
// transaction-derived segments (receipts, transaction lookup, sender
// recovery) must keep under a user-configured mode, so that recent blocks
// can still be served and re-validated. Archive-driven pruning is exempt:
// data behind the archive boundary is durably available in cold storage.
const MinRetentionBlocks model.BlockNumber = 128

type modeKind uint8

const (
	modeKeepAll modeKind = iota
	modeKeepNone
	modeKeepRecent
	modeKeepBeforeOrAt
)

// Mode is the retention rule of one segment: how much trailing history must
// be kept for its category.
type Mode struct {
	kind   modeKind
	blocks model.BlockNumber
}

// KeepAll keeps the entire history; nothing is ever eligible for deletion.
func KeepAll() Mode {
	return Mode{kind: modeKeepAll}
}

// KeepNone keeps no history beyond the tip.
func KeepNone() Mode {
	return Mode{kind: modeKeepNone}
}

// KeepRecent keeps the most recent n blocks of history.
func KeepRecent(n model.BlockNumber) Mode {
	return Mode{kind: modeKeepRecent, blocks: n}
}

// KeepBeforeOrAt makes all blocks up to and including the boundary eligible
// for deletion, independent of the tip.
func KeepBeforeOrAt(boundary model.BlockNumber) Mode {
	return Mode{kind: modeKeepBeforeOrAt, blocks: boundary}
}

// TargetBlock evaluates the mode against the current tip and returns the
// inclusive upper bound of blocks eligible for deletion. hasTarget is false
// when nothing is eligible yet. ErrUnsupportedMode is returned when the mode
// would violate the kind's minimum retention under PurposeUser.
func (m Mode) TargetBlock(tip model.BlockNumber, kind model.PruneSegmentKind, purpose Purpose) (target model.BlockNumber, hasTarget bool, err error) {
	minRetention := minRetentionBlocks(kind)
	if purpose == PurposeArchive {
		minRetention = 0
	}

	switch m.kind {
	case modeKeepAll:
		return 0, false, nil

	case modeKeepNone:
		if minRetention > 0 {
			return 0, false, ierrors.Wrapf(ErrUnsupportedMode, "segment %s requires keeping at least %d blocks", kind, minRetention)
		}

		return tip, tip > 0, nil

	case modeKeepRecent:
		if m.blocks < minRetention {
			return 0, false, ierrors.Wrapf(ErrUnsupportedMode, "segment %s requires keeping at least %d blocks, configured %d", kind, minRetention, m.blocks)
		}
		if tip <= m.blocks {
			return 0, false, nil
		}

		return tip - m.blocks, true, nil

	case modeKeepBeforeOrAt:
		if minRetention > 0 && m.blocks+minRetention > tip {
			return 0, false, ierrors.Wrapf(ErrUnsupportedMode, "segment %s requires keeping at least %d blocks behind the tip", kind, minRetention)
		}

		// The boundary is a target regardless of the tip, genesis included.
		return m.blocks, true, nil

	default:
		return 0, false, ierrors.Wrapf(ErrUnsupportedMode, "unknown retention mode %d", m.kind)
	}
}

func (m Mode) String() string {
	switch m.kind {
	case modeKeepAll:
		return "KeepAll"
	case modeKeepNone:
		return "KeepNone"
	case modeKeepRecent:
		return fmt.Sprintf("KeepRecent(%d)", m.blocks)
	case modeKeepBeforeOrAt:
		return fmt.Sprintf("KeepBeforeOrAt(%d)", m.blocks)
	default:
		return "Unknown"
	}
}

func minRetentionBlocks(kind model.PruneSegmentKind) model.BlockNumber {
	switch kind {
	case model.PruneSegmentReceipts, model.PruneSegmentTransactionLookup, model.PruneSegmentSenderRecovery:
		return MinRetentionBlocks
	default:
		return 0
	}
}
