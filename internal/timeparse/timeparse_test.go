package timeparse

import (
	"testing"
	"time"
)

func TestParseApache(t *testing.T) {
	tm, err := ParseApache("10/Dec/2024:10:00:00 +0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Year() != 2024 || tm.Month() != time.December || tm.Day() != 10 {
		t.Fatalf("got %v", tm)
	}
}

func TestParseSyslog(t *testing.T) {
	tm, err := ParseSyslog("Dec 10 10:00:00", 2024, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Year() != 2024 || tm.Month() != time.December || tm.Day() != 10 {
		t.Fatalf("got %v", tm)
	}
}

func TestParseSyslogWrongLength(t *testing.T) {
	if _, err := ParseSyslog("short", 2024, time.UTC); err == nil {
		t.Fatalf("expected error for wrong-length timestamp")
	}
}

func TestParseISO8601Variants(t *testing.T) {
	for _, s := range []string{
		"2024-12-10T10:00:00Z",
		"2024-12-10T10:00:00.123456789Z",
		"2024-12-10T10:00:00",
		"2024-12-10 10:00:00",
	} {
		if _, err := ParseISO8601(s); err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
	}
}

func TestTruncateUnix(t *testing.T) {
	tm := time.Date(2024, 12, 10, 10, 30, 45, 0, time.UTC)
	minute := TruncateUnix(tm, BucketMinute)
	if got := time.Unix(minute, 0).UTC(); got.Second() != 0 || got.Minute() != 30 {
		t.Fatalf("got %v", got)
	}
	hour := TruncateUnix(tm, BucketHour)
	if got := time.Unix(hour, 0).UTC(); got.Minute() != 0 {
		t.Fatalf("got %v", got)
	}
	day := TruncateUnix(tm, BucketDay)
	if got := time.Unix(day, 0).UTC(); got.Hour() != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestFormatBucketKey(t *testing.T) {
	got := FormatBucketKey(0)
	want := "1970-01-01T00:00:00Z"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseBucket(t *testing.T) {
	for _, s := range []string{"minute", "hour", "day"} {
		if _, err := ParseBucket(s); err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
	}
	if _, err := ParseBucket("fortnight"); err == nil {
		t.Fatalf("expected error for unknown bucket")
	}
}
