package logscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestPlanBadPath(t *testing.T) {
	_, err := Plan(&Query{PathOrGlob: filepath.Join(t.TempDir(), "does-not-exist.log"), Shape: ShapeCount})
	if !IsKind(err, KindBadPath) {
		t.Fatalf("expected KindBadPath, got %v", err)
	}
}

func TestPlanGroupCountRequiresGroupBy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Plan(&Query{PathOrGlob: path, Shape: ShapeGroupCount})
	if !IsKind(err, KindMalformedQuery) {
		t.Fatalf("expected KindMalformedQuery, got %v", err)
	}
}

func TestPlanUnsupportedGroupByField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Plan(&Query{PathOrGlob: path, Format: FormatApache, Shape: ShapeGroupCount, GroupBy: "not_a_field"})
	if !IsKind(err, KindUnsupported) {
		t.Fatalf("expected KindUnsupported, got %v", err)
	}
}

func TestPlanNumAggregateRequiresColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Plan(&Query{PathOrGlob: path, Shape: ShapeNumAggregate, HasAggregateOp: true, AggregateOp: AggSum})
	if !IsKind(err, KindMalformedQuery) {
		t.Fatalf("expected KindMalformedQuery, got %v", err)
	}
}

func TestPlanRegexSearchRequiresPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Plan(&Query{PathOrGlob: path, Shape: ShapeRegexSearch})
	if !IsKind(err, KindMalformedQuery) {
		t.Fatalf("expected KindMalformedQuery, got %v", err)
	}
}

func TestPlanLimitDefaultsAndClamps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Plan(&Query{PathOrGlob: path, Shape: ShapeRegexSearch, FilterRegex: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.limit != 50 {
		t.Fatalf("expected default limit 50, got %d", p.limit)
	}

	p, err = Plan(&Query{PathOrGlob: path, Shape: ShapeRegexSearch, FilterRegex: "x", Limit: 999999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.limit != maxLimit {
		t.Fatalf("expected limit clamped to %d, got %d", maxLimit, p.limit)
	}
}

func TestPlanDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.log")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	q := &Query{PathOrGlob: path, Format: FormatCSV, Shape: ShapeCount, DryRun: true}
	p, err := Plan(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := Run(context.Background(), q, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.ScannedFiles) != 0 {
		t.Fatalf("dry run should not scan files, got %v", res.ScannedFiles)
	}
	if res.Plan == "" {
		t.Fatalf("expected plan description to be populated")
	}
}
