package prune

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrUnsupportedMode is returned when a retention mode cannot be applied
	// to a segment kind (e.g. it would keep less trailing history than the
	// kind's minimum). The pruner confines it to that segment's evaluation;
	// the run continues with the remaining segments.
	ErrUnsupportedMode = ierrors.New("unsupported retention mode for prune segment")

	// ErrAlreadyRunning is returned when Run is invoked while another run is
	// still in progress. The pruner is not reentrant.
	ErrAlreadyRunning = ierrors.New("pruner run already in progress")
)
