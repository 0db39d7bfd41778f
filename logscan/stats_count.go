package logscan

// countAccumulator counts accepted lines. Grounded on the teacher's
// statsCountProcessor (lib/logstorage/stats_count.go), reduced to the
// unconditional-count fast path since this core has no columnar
// null-tracking to fold in.
type countAccumulator struct {
	n uint64
}

func newCountAccumulator() accumulator {
	return &countAccumulator{}
}

func (a *countAccumulator) updateForLine(_ *row, _ linePos) {
	a.n++
}

func (a *countAccumulator) mergeState(other accumulator) {
	o := other.(*countAccumulator)
	a.n += o.n
}
