package logscan

import (
	"fmt"
	"runtime"
	"time"
)

// plan is the resolved fast-path tuple a query compiles down to: which
// files to read, how to interpret their lines, what to accept, and how
// to accumulate accepted lines.
type plan struct {
	files        []string
	format       Format
	pred         *predicateAnd
	factory      accumulatorFactory
	limit        int
	timeBucket   bool
	csvHasHeader bool
	refYear      int
	loc          *time.Location
	description  string

	// workers is the scan worker-pool size, defaulting to
	// runtime.GOMAXPROCS(0). Exposed on plan rather than read directly
	// from GOMAXPROCS inside the driver so a test can force P without
	// mutating the process-global setting.
	workers int

	// chunkSize overrides splitChunks' target chunk size; zero means
	// defaultChunkSize. Only ever set by tests wanting to force multiple
	// chunks over a small file, to exercise multi-worker merging without
	// writing a multi-megabyte fixture.
	chunkSize int
}

// defaultLimit bounds GroupedCount/TimeBuckets/RegexHits when the query
// doesn't specify one, and maxLimit is the hard ceiling on an explicit
// one, both per spec.md §6.
const (
	defaultLimit = 50
	maxLimit     = 10000
)

// groupableFields lists the group_by field names the fast path indexes
// per format, after alias resolution. Anything else is Unsupported: the
// core has no per-line extraction for it and the fallback engine must
// materialize the row instead.
var groupableFields = map[Format]map[string]bool{
	FormatApache: {"ip": true, "status": true, "method": true, "path": true, "referer": true, "user_agent": true},
	FormatNginx:  {"ip": true, "status": true, "method": true, "path": true, "referer": true, "user_agent": true},
	FormatSyslog: {"hostname": true, "process": true, "pid": true},
	// JSON and CSV accept any field name; the value is only known to
	// exist once a line is actually parsed.
}

// Plan resolves a Query into a fast-path plan, or a *QueryError with Kind
// Unsupported (fallback candidate) or MalformedQuery (never valid).
func Plan(q *Query) (*plan, error) {
	files, err := expandGlob(q.PathOrGlob)
	if err != nil {
		return nil, wrapError(KindBadPath, q.PathOrGlob, err)
	}
	if len(files) == 0 {
		return nil, newError(KindBadPath, "no files matched "+q.PathOrGlob)
	}

	pred, err := buildPredicate(q)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	loc := q.Location
	if loc == nil {
		loc = time.UTC
	}
	refYear := q.RefYear
	if refYear == 0 {
		refYear = time.Now().In(loc).Year()
	}

	p := &plan{
		files: files, format: q.Format, pred: pred, limit: limit,
		csvHasHeader: q.CSVHasHeader, refYear: refYear, loc: loc,
		workers: runtime.GOMAXPROCS(0),
	}

	switch q.Shape {
	case ShapeCount:
		p.factory = newCountAccumulator
		p.description = "count"

	case ShapeGroupCount:
		if q.GroupBy == "" {
			return nil, newError(KindMalformedQuery, "group_count requires group_by")
		}
		groupField := canonicalField(q.GroupBy)
		if q.Format != FormatAuto && q.Format != FormatJSON && q.Format != FormatCSV {
			allowed, ok := groupableFields[q.Format]
			if !ok || !allowed[groupField] {
				return nil, newError(KindUnsupported,
					fmt.Sprintf("group_by %q not indexed for format %s", q.GroupBy, q.Format))
			}
		}
		p.factory = newGroupedCountAccumulator(groupField)
		p.description = "group_count(" + groupField + ")"

	case ShapeNumAggregate:
		if !q.HasAggregateOp {
			return nil, newError(KindMalformedQuery, "num_aggregate requires aggregate_op")
		}
		if q.AggregateColumn == "" {
			return nil, newError(KindMalformedQuery, "num_aggregate requires aggregate_column")
		}
		aggField := canonicalField(q.AggregateColumn)
		p.factory = newNumericAggregateAccumulator(aggField, q.AggregateOp)
		p.description = fmt.Sprintf("num_aggregate(%s, %s)", q.AggregateOp, aggField)

	case ShapeTimeBuckets:
		p.factory = newTimeBucketsAccumulator(q.Bucket)
		p.timeBucket = true
		p.description = "time_buckets"

	case ShapeRegexSearch:
		p.factory = newRegexHitsAccumulator(limit)
		p.description = fmt.Sprintf("regex_search(limit=%d)", limit)

	default:
		return nil, newError(KindMalformedQuery, "unknown shape")
	}

	return p, nil
}

func (op AggregateOp) String() string {
	switch op {
	case AggSum:
		return "sum"
	case AggAvg:
		return "avg"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	default:
		return "unknown"
	}
}
