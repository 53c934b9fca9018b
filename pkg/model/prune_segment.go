package model

import "github.com/iotaledger/hive.go/ierrors"

// PruneSegmentKind identifies one prunable category of chain data. The set is
// closed; every kind maps to exactly one segment implementation and one
// checkpoint entry.
type PruneSegmentKind byte

const (
	PruneSegmentHeaders PruneSegmentKind = iota + 1
	PruneSegmentTransactions
	PruneSegmentReceipts
	PruneSegmentTransactionLookup
	PruneSegmentSenderRecovery
	PruneSegmentAccountHistory
	PruneSegmentStorageHistory
)

func (k PruneSegmentKind) Bytes() ([]byte, error) {
	return []byte{byte(k)}, nil
}

func PruneSegmentKindFromBytes(bytes []byte) (PruneSegmentKind, int, error) {
	if len(bytes) < 1 {
		return 0, 0, ierrors.New("invalid prune segment kind length")
	}

	return PruneSegmentKind(bytes[0]), 1, nil
}

func (k PruneSegmentKind) String() string {
	switch k {
	case PruneSegmentHeaders:
		return "Headers"
	case PruneSegmentTransactions:
		return "Transactions"
	case PruneSegmentReceipts:
		return "Receipts"
	case PruneSegmentTransactionLookup:
		return "TransactionLookup"
	case PruneSegmentSenderRecovery:
		return "SenderRecovery"
	case PruneSegmentAccountHistory:
		return "AccountHistory"
	case PruneSegmentStorageHistory:
		return "StorageHistory"
	default:
		return "Unknown"
	}
}
