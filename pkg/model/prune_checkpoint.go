package model

import (
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/stream"
)

// PruneCheckpoint is the durable marker of pruning progress for one segment
// kind. Block is the highest block number whose data has been fully deleted.
// For transaction-indexed tables a run can stop inside a block; in that case
// HasTxPosition is set and TxPosition records the last deleted transaction
// index of the partially pruned block Block+1.
type PruneCheckpoint struct {
	Block         BlockNumber
	HasTxPosition bool
	TxPosition    TxIndex
}

func PruneCheckpointFromBytes(bytes []byte) (*PruneCheckpoint, int, error) {
	byteReader := stream.NewByteReader(bytes)

	c, err := PruneCheckpointFromReader(byteReader)
	if err != nil {
		return nil, 0, ierrors.Wrap(err, "failed to parse PruneCheckpoint")
	}

	return c, byteReader.BytesRead(), nil
}

func PruneCheckpointFromReader(reader io.ReadSeeker) (*PruneCheckpoint, error) {
	var err error
	c := new(PruneCheckpoint)

	var block uint64
	if block, err = stream.Read[uint64](reader); err != nil {
		return nil, ierrors.Wrap(err, "failed to read Block")
	}
	c.Block = BlockNumber(block)

	if c.HasTxPosition, err = stream.Read[bool](reader); err != nil {
		return nil, ierrors.Wrap(err, "failed to read HasTxPosition")
	}

	var txPosition uint32
	if txPosition, err = stream.Read[uint32](reader); err != nil {
		return nil, ierrors.Wrap(err, "failed to read TxPosition")
	}
	c.TxPosition = TxIndex(txPosition)

	return c, nil
}

// After reports whether c marks strictly more pruning progress than other.
// A nil other never marks progress. A checkpoint with a transaction position
// is ahead of a plain checkpoint of the same block, since it additionally
// covers part of the following block.
func (c *PruneCheckpoint) After(other *PruneCheckpoint) bool {
	if other == nil {
		return true
	}
	if c.Block != other.Block {
		return c.Block > other.Block
	}
	if c.HasTxPosition != other.HasTxPosition {
		return c.HasTxPosition
	}

	return c.HasTxPosition && c.TxPosition > other.TxPosition
}

func (c *PruneCheckpoint) Bytes() ([]byte, error) {
	byteBuffer := stream.NewByteBuffer()

	if err := stream.Write(byteBuffer, uint64(c.Block)); err != nil {
		return nil, ierrors.Wrap(err, "failed to write Block")
	}
	if err := stream.Write(byteBuffer, c.HasTxPosition); err != nil {
		return nil, ierrors.Wrap(err, "failed to write HasTxPosition")
	}
	if err := stream.Write(byteBuffer, uint32(c.TxPosition)); err != nil {
		return nil, ierrors.Wrap(err, "failed to write TxPosition")
	}

	return byteBuffer.Bytes()
}
