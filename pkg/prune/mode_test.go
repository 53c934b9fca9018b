package prune_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Bct-crypto/reth/pkg/model"
	"github.com/Bct-crypto/reth/pkg/prune"
)

func TestMode_TargetBlock(t *testing.T) {
	tests := []struct {
		name      string
		mode      prune.Mode
		tip       model.BlockNumber
		kind      model.PruneSegmentKind
		purpose   prune.Purpose
		target    model.BlockNumber
		hasTarget bool
		err       error
	}{
		{
			name: "keep all never yields a target",
			mode: prune.KeepAll(), tip: 1000, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
		},
		{
			name: "keep none at genesis",
			mode: prune.KeepNone(), tip: 0, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
		},
		{
			name: "keep none targets the tip",
			mode: prune.KeepNone(), tip: 5, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
			target: 5, hasTarget: true,
		},
		{
			name: "keep recent within retention window",
			mode: prune.KeepRecent(100), tip: 100, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
		},
		{
			name: "keep recent one block beyond the window",
			mode: prune.KeepRecent(100), tip: 101, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
			target: 1, hasTarget: true,
		},
		{
			name: "keep recent far beyond the window",
			mode: prune.KeepRecent(100), tip: 251, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
			target: 151, hasTarget: true,
		},
		{
			name: "keep none violates receipt retention",
			mode: prune.KeepNone(), tip: 1000, kind: model.PruneSegmentReceipts, purpose: prune.PurposeUser,
			err: prune.ErrUnsupportedMode,
		},
		{
			name: "keep recent undercuts receipt retention",
			mode: prune.KeepRecent(10), tip: 1000, kind: model.PruneSegmentReceipts, purpose: prune.PurposeUser,
			err: prune.ErrUnsupportedMode,
		},
		{
			name: "keep recent at exactly the receipt retention",
			mode: prune.KeepRecent(128), tip: 1000, kind: model.PruneSegmentReceipts, purpose: prune.PurposeUser,
			target: 872, hasTarget: true,
		},
		{
			name: "archived data is exempt from minimum retention",
			mode: prune.KeepRecent(10), tip: 1000, kind: model.PruneSegmentReceipts, purpose: prune.PurposeArchive,
			target: 990, hasTarget: true,
		},
		{
			name: "boundary of zero targets genesis",
			mode: prune.KeepBeforeOrAt(0), tip: 1000, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
			target: 0, hasTarget: true,
		},
		{
			name: "boundary targets the boundary",
			mode: prune.KeepBeforeOrAt(5), tip: 200, kind: model.PruneSegmentHeaders, purpose: prune.PurposeUser,
			target: 5, hasTarget: true,
		},
		{
			name: "boundary too close to the tip for receipts",
			mode: prune.KeepBeforeOrAt(5), tip: 130, kind: model.PruneSegmentReceipts, purpose: prune.PurposeUser,
			err: prune.ErrUnsupportedMode,
		},
		{
			name: "boundary far enough behind the tip for receipts",
			mode: prune.KeepBeforeOrAt(5), tip: 200, kind: model.PruneSegmentReceipts, purpose: prune.PurposeUser,
			target: 5, hasTarget: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			target, hasTarget, err := test.mode.TargetBlock(test.tip, test.kind, test.purpose)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.hasTarget, hasTarget)
			require.Equal(t, test.target, target)
		})
	}
}
