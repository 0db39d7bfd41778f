package logscan

// groupedCountAccumulator maps an owned-string group key to a
// non-negative count. Grounded on the teacher's stats_count_uniq.go/
// stats_uniq_values.go merge-by-key shape. The map is only ever written
// with an owned copy of the borrowed key bytes, so no stored key aliases
// the scanned line (a mapped file that is unmapped after the scan, or a
// reused JSON parser buffer); an already-seen key still costs that one
// copy per accepted line.
type groupedCountAccumulator struct {
	field  string
	counts map[string]uint64
}

func newGroupedCountAccumulator(field string) accumulatorFactory {
	return func() accumulator {
		return &groupedCountAccumulator{
			field:  field,
			counts: make(map[string]uint64),
		}
	}
}

func (a *groupedCountAccumulator) updateForLine(r *row, _ linePos) {
	key, ok := r.groupKey(a.field)
	if !ok {
		return
	}
	// string(key) copies the borrowed bytes; the copy is what the map
	// stores, whether the key is new or already present.
	a.counts[string(key)]++
}

func (a *groupedCountAccumulator) mergeState(other accumulator) {
	o := other.(*groupedCountAccumulator)
	for k, v := range o.counts {
		a.counts[k] += v
	}
}
