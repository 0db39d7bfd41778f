// Package timeparse implements the small, fixed set of timestamp grammars
// the log-scan core recognizes: Apache/Nginx combined, syslog RFC 3164
// short form, and ISO 8601 (for JSON fields). Extending the set is a
// deliberate code change, not a runtime option, per the design's timestamp
// notes.
package timeparse

import (
	"fmt"
	"time"
)

// apacheLayout matches "10/Dec/2024:10:00:00 +0000", the text between the
// '[' and ']' of an Apache/Nginx combined log line.
const apacheLayout = "02/Jan/2006:15:04:05 -0700"

// ParseApache parses an Apache/Nginx combined-log timestamp.
func ParseApache(s string) (time.Time, error) {
	return time.Parse(apacheLayout, s)
}

// syslogLayout matches "Dec 10 10:00:00", RFC 3164's fixed-width,
// space-padded day form. RFC 3164 carries no year or zone; both are
// supplied by refYear so that a syslog file can be interpreted relative to
// the year it was collected (defaulting to the current year otherwise).
const syslogLayout = "Jan _2 15:04:05"

// ParseSyslog parses a 15-byte RFC 3164 timestamp, anchoring the year and
// location since the wire format carries neither.
func ParseSyslog(s string, refYear int, loc *time.Location) (time.Time, error) {
	if len(s) != 15 {
		return time.Time{}, fmt.Errorf("syslog timestamp must be 15 bytes, got %d: %q", len(s), s)
	}
	t, err := time.ParseInLocation(syslogLayout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(refYear, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
}

// isoLayouts are tried in order for JSON-lines timestamp fields.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseISO8601 parses a JSON-lines timestamp field against the accepted
// ISO 8601 variants, trying the most specific layout first.
func ParseISO8601(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Bucket granularities for TimeBuckets accumulation.
type Bucket int

const (
	// BucketMinute truncates to the start of the minute.
	BucketMinute Bucket = iota
	// BucketHour truncates to the start of the hour.
	BucketHour
	// BucketDay truncates to the start of the UTC day.
	BucketDay
)

// ParseBucket parses a bucket granularity name (minute|hour|day).
func ParseBucket(s string) (Bucket, error) {
	switch s {
	case "minute":
		return BucketMinute, nil
	case "hour":
		return BucketHour, nil
	case "day":
		return BucketDay, nil
	default:
		return 0, fmt.Errorf("unknown bucket granularity %q; want one of minute, hour, day", s)
	}
}

// TruncateUnix truncates t to the given bucket granularity and returns the
// bucket's start as a Unix timestamp (seconds). This is the map key
// TimeBuckets accumulates on: an int64 key means bucketing a line never
// allocates, unlike formatting a string key on every row would.
func TruncateUnix(t time.Time, b Bucket) int64 {
	t = t.UTC()
	switch b {
	case BucketMinute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC).Unix()
	case BucketHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC).Unix()
	case BucketDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix()
	default:
		return t.Unix()
	}
}

// FormatBucketKey renders a TruncateUnix bucket start as the canonical,
// sortable string key used in query results.
func FormatBucketKey(bucketUnix int64) string {
	return time.Unix(bucketUnix, 0).UTC().Format(time.RFC3339)
}
