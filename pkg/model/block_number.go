package model

import (
	"encoding/binary"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	// BlockNumberLength is the byte size of a serialized BlockNumber.
	BlockNumberLength = 8
	// TxIndexLength is the byte size of a serialized TxIndex.
	TxIndexLength = 4
)

// BlockNumber is the height of a block in the canonical chain.
type BlockNumber uint64

// Bytes returns the big-endian serialization of the block number.
// Big-endian is required so that numeric order equals the lexicographic
// key order of the underlying KVStore.
func (b BlockNumber) Bytes() ([]byte, error) {
	bytes := make([]byte, BlockNumberLength)
	binary.BigEndian.PutUint64(bytes, uint64(b))

	return bytes, nil
}

func (b BlockNumber) MustBytes() []byte {
	bytes, _ := b.Bytes()

	return bytes
}

func BlockNumberFromBytes(bytes []byte) (BlockNumber, int, error) {
	if len(bytes) < BlockNumberLength {
		return 0, 0, ierrors.New("invalid block number length")
	}

	return BlockNumber(binary.BigEndian.Uint64(bytes)), BlockNumberLength, nil
}

// TxIndex is the position of a transaction within a block.
type TxIndex uint32

func (t TxIndex) Bytes() ([]byte, error) {
	bytes := make([]byte, TxIndexLength)
	binary.BigEndian.PutUint32(bytes, uint32(t))

	return bytes, nil
}

func (t TxIndex) MustBytes() []byte {
	bytes, _ := t.Bytes()

	return bytes
}

func TxIndexFromBytes(bytes []byte) (TxIndex, int, error) {
	if len(bytes) < TxIndexLength {
		return 0, 0, ierrors.New("invalid transaction index length")
	}

	return TxIndex(binary.BigEndian.Uint32(bytes)), TxIndexLength, nil
}
