package logscan

// accumulator maintains a per-chunk (then per-file, then per-query)
// partial result for one query shape. Every accumulator kind's merge is
// associative and commutative, and merging with a freshly-created
// accumulator of the same kind is the identity — this is what makes chunk
// fusion order-independent (§8's merge-algebra property).
//
// This mirrors the shape of the teacher's statsProcessor interface
// (lib/logstorage/stats_*.go: updateStatsForAllRows/mergeState/
// finalizeStats), specialized to one row at a time since this core has no
// columnar blockResult to batch over.
type accumulator interface {
	// updateForLine folds one accepted row into the accumulator. pos
	// carries the row's position for accumulators (RegexHits) whose
	// merge order matters.
	updateForLine(r *row, pos linePos)

	// mergeState folds another accumulator of the same concrete type
	// into this one.
	mergeState(other accumulator)
}

// linePos identifies where an accepted line came from, for accumulators
// whose result order is observable (RegexHits samples).
type linePos struct {
	fileIndex  int
	chunkBegin int64
	lineOffset int64
}

func (a linePos) less(b linePos) bool {
	if a.fileIndex != b.fileIndex {
		return a.fileIndex < b.fileIndex
	}
	if a.chunkBegin != b.chunkBegin {
		return a.chunkBegin < b.chunkBegin
	}
	return a.lineOffset < b.lineOffset
}

// accumulatorFactory produces a fresh, empty accumulator for a chunk scan.
type accumulatorFactory func() accumulator
