package logscan

import "github.com/forensiclog/logscan-core/internal/timeparse"

// timeBucketsAccumulator maps a truncated-timestamp bucket to a count.
// Grounded on the same merge-by-key shape as groupedCountAccumulator, but
// keyed by an int64 Unix bucket start rather than a string: bucketing a
// row is then allocation-free outright, and the human-readable key is
// only formatted once per bucket at shaping time.
type timeBucketsAccumulator struct {
	granularity timeparse.Bucket
	counts      map[int64]uint64
}

func newTimeBucketsAccumulator(granularity timeparse.Bucket) accumulatorFactory {
	return func() accumulator {
		return &timeBucketsAccumulator{
			granularity: granularity,
			counts:      make(map[int64]uint64),
		}
	}
}

func (a *timeBucketsAccumulator) updateForLine(r *row, _ linePos) {
	t, ok := r.timestamp()
	if !ok {
		return
	}
	bucket := timeparse.TruncateUnix(t, a.granularity)
	a.counts[bucket]++
}

func (a *timeBucketsAccumulator) mergeState(other accumulator) {
	o := other.(*timeBucketsAccumulator)
	for k, v := range o.counts {
		a.counts[k] += v
	}
}
