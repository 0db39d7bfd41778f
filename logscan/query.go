package logscan

import (
	"fmt"
	"time"

	"github.com/forensiclog/logscan-core/internal/timeparse"
)

// Shape names one of the five query shapes this core answers.
type Shape int

const (
	ShapeCount Shape = iota
	ShapeGroupCount
	ShapeNumAggregate
	ShapeTimeBuckets
	ShapeRegexSearch
)

// ParseShape parses a query's shape enum value.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "count":
		return ShapeCount, nil
	case "group_count":
		return ShapeGroupCount, nil
	case "num_aggregate":
		return ShapeNumAggregate, nil
	case "time_buckets":
		return ShapeTimeBuckets, nil
	case "regex_search":
		return ShapeRegexSearch, nil
	default:
		return 0, newError(KindMalformedQuery, "unknown shape "+s)
	}
}

// ParseTimeBound parses a filter_time_start/filter_time_end value using
// the same per-format grammar row.timestamp() applies on the hot path:
// Apache's bracketed layout, syslog's fixed 15-byte short form (anchored
// by refYear/loc, since the wire format carries neither), or ISO 8601 for
// JSON. FormatAuto tries each grammar in turn, most specific first, since
// a query's time bound must be resolvable before any file's format has
// been detected.
func ParseTimeBound(s string, format Format, refYear int, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	switch format {
	case FormatApache, FormatNginx:
		return timeparse.ParseApache(s)
	case FormatSyslog:
		return timeparse.ParseSyslog(s, refYear, loc)
	case FormatJSON:
		return timeparse.ParseISO8601(s)
	case FormatCSV:
		return time.Time{}, newError(KindUnsupported, "filter_time bounds are not supported for csv")
	default:
		if t, err := timeparse.ParseISO8601(s); err == nil {
			return t, nil
		}
		if t, err := timeparse.ParseApache(s); err == nil {
			return t, nil
		}
		if t, err := timeparse.ParseSyslog(s, refYear, loc); err == nil {
			return t, nil
		}
		return time.Time{}, newError(KindMalformedQuery, fmt.Sprintf("could not parse time bound %q against any known format", s))
	}
}

// Query is the structured query value consumed from the external
// tool-dispatch layer, per the design's external-interfaces surface.
type Query struct {
	// PathOrGlob names one file, a directory, or a glob pattern
	// (doublestar syntax, so "**" is supported).
	PathOrGlob string

	// Format is the format hint; FormatAuto triggers prefix-based
	// detection.
	Format Format

	Shape Shape

	// FilterStatus accepts "N", "=N", ">=N", ">N", "<=N", "<N", "Nxx".
	FilterStatus string
	// FilterText is a literal substring filter over the raw line.
	FilterText string
	// FilterRegex is used directly by regex_search and as a general
	// filter for other shapes.
	FilterRegex string
	// CaseSensitive governs FilterText and FilterRegex; default false.
	CaseSensitive bool

	// TimeStart/TimeEnd bound a half-open [start, end) timestamp range.
	// Zero values mean unbounded.
	TimeStart time.Time
	TimeEnd   time.Time

	// GroupBy names a field for group_count; format-specific aliases are
	// resolved by canonicalField.
	GroupBy string

	// AggregateOp/AggregateColumn configure num_aggregate.
	AggregateOp     AggregateOp
	HasAggregateOp  bool
	AggregateColumn string

	// Bucket configures time_buckets granularity.
	Bucket timeparse.Bucket
	// Chronological requests key-ascending order for time_buckets
	// results instead of the default value-desc/key-asc top-N order.
	Chronological bool

	// Limit bounds GroupedCount/TimeBuckets top-N and RegexHits samples.
	// Zero (or negative) means defaultLimit; Plan clamps values above
	// maxLimit.
	Limit int

	// CSVHasHeader marks the first line of a CSV/TSV file as a header
	// row: it is excluded from scanning and its column names become
	// available for group_by/aggregate_column lookups by name.
	CSVHasHeader bool

	// RefYear anchors syslog's yearless timestamps. Zero defaults to the
	// current year, resolved once at plan time (not per line); pass an
	// explicit value for a result that doesn't depend on wall-clock time.
	RefYear int
	// Location anchors syslog timestamps with no zone; nil means UTC.
	Location *time.Location

	// DryRun asks the planner to validate and describe the plan without
	// scanning any bytes. Not part of the distilled query surface; an
	// addition so a caller can cheaply check whether a query would be
	// Unsupported before paying for a scan.
	DryRun bool
}

// Result is the tagged result variant matching the query's shape, plus
// the scanned_files/warnings envelope every shape carries.
type Result struct {
	Shape Shape

	// Count is populated for ShapeCount.
	Count uint64

	// GroupedCount/TimeBuckets are populated for their respective
	// shapes, as an already-ordered top-N list per §4.8.
	Pairs []KeyCount

	// NumericAggregate fields, populated for ShapeNumAggregate.
	Sum   float64
	NAggr uint64
	Avg   float64
	Min   float64
	Max   float64

	// RegexHits fields, populated for ShapeRegexSearch.
	Total   uint64
	Samples []string

	// ScannedFiles lists, in scan order, every file the query actually
	// opened, with a per-file byte count and whether it was decompressed.
	ScannedFiles []ScannedFile
	// Warnings holds per-file failures after the first successful file;
	// the query still returns a result when non-empty.
	Warnings []string

	// Plan describes the chosen fast-path tuple; always populated,
	// including on a DryRun result where no scan happened.
	Plan string
}

// KeyCount is one (key, value) pair in a GroupedCount/TimeBuckets result.
type KeyCount struct {
	Key   string
	Value uint64
}

// ScannedFile records one file the query touched. Elapsed covers only the
// file's own scanFile call (mmap/decompress + chunked scan across its
// worker pool), letting a caller compute effective per-file throughput
// without that figure being skewed by other files' scan time.
type ScannedFile struct {
	Path       string
	Bytes      int64
	Compressed bool
	Elapsed    time.Duration
}
