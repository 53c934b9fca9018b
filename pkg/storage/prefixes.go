package storage

import (
	"github.com/iotaledger/hive.go/serializer/v2/byteutils"

	"github.com/Bct-crypto/reth/pkg/model"
)

// Store key prefixes of the chain tables. Each prefix spans one realm of the
// shared KVStore; all keys within a realm are block-ordered (big-endian
// block number first) so that prefix iteration visits oldest data first.
const (
	StorePrefixHeaders byte = iota + 1
	StorePrefixCanonicalHashes
	StorePrefixTransactions
	StorePrefixReceipts
	StorePrefixTransactionLookup
	StorePrefixTransactionHashIndex
	StorePrefixSenderRecovery
	StorePrefixAccountHistory
	StorePrefixStorageHistory
	StorePrefixPruneCheckpoints
	StorePrefixArchiveMarkers
	StorePrefixSettings

	storePrefixHealth byte = 255
)

// BlockKey is the realm-relative key of block-keyed tables (headers,
// canonical hashes).
func BlockKey(block model.BlockNumber) []byte {
	return block.MustBytes()
}

// TxKey is the realm-relative key of transaction-indexed tables
// (transactions, receipts, transaction lookup, sender recovery).
func TxKey(block model.BlockNumber, index model.TxIndex) []byte {
	return byteutils.ConcatBytes(block.MustBytes(), index.MustBytes())
}

// AccountHistoryKey addresses one account changeset of a block.
func AccountHistoryKey(block model.BlockNumber, address []byte) []byte {
	return byteutils.ConcatBytes(block.MustBytes(), address)
}

// StorageHistoryKey addresses one storage slot changeset of a block.
func StorageHistoryKey(block model.BlockNumber, address []byte, slot []byte) []byte {
	return byteutils.ConcatBytes(block.MustBytes(), address, slot)
}
