package logscan

import (
	"sort"

	"github.com/forensiclog/logscan-core/internal/timeparse"
)

// shapeOptions configures shapeResult's output for a given accumulator.
type shapeOptions struct {
	shape Shape
	limit int
	// chronological requests key-ascending order for time_buckets
	// instead of the default value-desc/key-asc top-N order.
	chronological bool
}

// shapeResult turns a final, fully-fused accumulator into a bounded,
// deterministically ordered Result, per §4.8. It is the only place scan
// order is discarded in favor of a presentation order.
func shapeResult(acc accumulator, opts shapeOptions) (Result, error) {
	res := Result{Shape: opts.shape}

	switch a := acc.(type) {
	case *countAccumulator:
		res.Count = a.n

	case *numericAggregateAccumulator:
		res.Sum = a.sum
		res.NAggr = a.count
		res.Min = a.min
		res.Max = a.max
		if a.count > 0 {
			res.Avg = a.sum / float64(a.count)
		}

	case *groupedCountAccumulator:
		res.Pairs = topNByCount(a.counts, opts.limit)

	case *timeBucketsAccumulator:
		res.Pairs = shapeTimeBuckets(a.counts, opts)

	case *regexHitsAccumulator:
		res.Total = a.total
		samples := make([]regexSample, len(a.samples))
		copy(samples, a.samples)
		sort.Slice(samples, func(i, j int) bool { return samples[i].pos.less(samples[j].pos) })
		if len(samples) > opts.limit && opts.limit > 0 {
			samples = samples[:opts.limit]
		}
		res.Samples = make([]string, len(samples))
		for i, s := range samples {
			res.Samples[i] = s.line
		}

	default:
		return Result{}, newError(KindInternal, "shapeResult: unknown accumulator type")
	}

	return res, nil
}

// topNByCount sorts a string-keyed count map by value descending, key
// ascending for ties, and truncates to limit — the unique ordering the
// top-N stability property requires.
func topNByCount(counts map[string]uint64, limit int) []KeyCount {
	pairs := make([]KeyCount, 0, len(counts))
	for k, v := range counts {
		pairs = append(pairs, KeyCount{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

// shapeTimeBuckets formats int64 Unix bucket keys into their canonical
// string form, then orders them per opts.
func shapeTimeBuckets(counts map[int64]uint64, opts shapeOptions) []KeyCount {
	pairs := make([]KeyCount, 0, len(counts))
	for k, v := range counts {
		pairs = append(pairs, KeyCount{Key: timeparse.FormatBucketKey(k), Value: v})
	}
	if opts.chronological {
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
		if opts.limit > 0 && len(pairs) > opts.limit {
			pairs = pairs[:opts.limit]
		}
		return pairs
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Value != pairs[j].Value {
			return pairs[i].Value > pairs[j].Value
		}
		return pairs[i].Key < pairs[j].Key
	})
	if opts.limit > 0 && len(pairs) > opts.limit {
		pairs = pairs[:opts.limit]
	}
	return pairs
}
