package logscan

import (
	"testing"
	"time"
)

func TestParseStatusFilter(t *testing.T) {
	cases := []struct {
		in      string
		wantOp  statusOp
		wantVal int
	}{
		{"200", statusEq, 200},
		{"=404", statusEq, 404},
		{">=400", statusGe, 400},
		{">399", statusGt, 399},
		{"<=299", statusLe, 299},
		{"<300", statusLt, 300},
		{"4xx", statusClass, 4},
	}
	for _, c := range cases {
		p, err := parseStatusFilter(c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if p.op != c.wantOp || p.operand != c.wantVal {
			t.Fatalf("%q: got op=%v val=%d, want op=%v val=%d", c.in, p.op, p.operand, c.wantOp, c.wantVal)
		}
	}
}

func TestParseStatusFilterInvalid(t *testing.T) {
	for _, in := range []string{"abc", "0xx", "9xxx"} {
		if _, err := parseStatusFilter(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestStatusPredicateClass(t *testing.T) {
	p := &statusPredicate{op: statusClass, operand: 4}
	r := &row{format: FormatApache, apache: apacheFields{Status: 404}}
	if !p.accept(r) {
		t.Fatalf("expected 404 to match class 4xx")
	}
	r.apache.Status = 500
	if p.accept(r) {
		t.Fatalf("expected 500 not to match class 4xx")
	}
}

func TestStatusPredicateMissing(t *testing.T) {
	p := &statusPredicate{op: statusEq, operand: 200}
	r := &row{format: FormatApache, apache: apacheFields{Status: -1}}
	if p.accept(r) {
		t.Fatalf("expected missing status not to match")
	}
}

// calledPredicate accepts every row and records that it was consulted.
type calledPredicate struct{ called bool }

func (p *calledPredicate) accept(*row) bool {
	p.called = true
	return true
}

func TestPredicateAndShortCircuitOrder(t *testing.T) {
	text := &calledPredicate{}
	p := &predicateAnd{
		status: &statusPredicate{op: statusEq, operand: 200},
		text:   text,
	}
	r := &row{format: FormatApache, line: []byte("whatever"), apache: apacheFields{Status: 500}}
	if p.accept(r) {
		t.Fatalf("expected status mismatch to reject the line")
	}
	if text.called {
		t.Fatalf("expected status mismatch to short-circuit before text check")
	}
}

func TestPredicateAndEmpty(t *testing.T) {
	p := &predicateAnd{}
	if !p.empty() {
		t.Fatalf("expected empty predicate")
	}
}

func TestTextPredicateCaseFold(t *testing.T) {
	p := &textPredicate{pattern: []byte("ERROR"), caseSensitive: false}
	r := &row{line: []byte("something error happened")}
	if !p.accept(r) {
		t.Fatalf("expected case-insensitive match")
	}
	p.caseSensitive = true
	if p.accept(r) {
		t.Fatalf("expected case-sensitive mismatch")
	}
}

func apacheRow(t *testing.T) *row {
	t.Helper()
	line := []byte(apacheLine)
	f, ok := findApacheFields(line)
	if !ok {
		t.Fatalf("failed to parse apacheLine fixture")
	}
	return &row{format: FormatApache, line: line, apache: f}
}

func TestTimeRangePredicateWithinBounds(t *testing.T) {
	r := apacheRow(t)
	start := time.Date(2024, time.October, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.October, 11, 0, 0, 0, 0, time.UTC)
	p := &timeRangePredicate{start: start, end: end}
	if !p.accept(r) {
		t.Fatalf("expected timestamp inside [start, end) to match")
	}
}

func TestTimeRangePredicateBeforeStart(t *testing.T) {
	r := apacheRow(t)
	p := &timeRangePredicate{start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
	if p.accept(r) {
		t.Fatalf("expected timestamp before start to be rejected")
	}
}

func TestTimeRangePredicateAtOrAfterEnd(t *testing.T) {
	r := apacheRow(t)
	p := &timeRangePredicate{end: time.Date(2024, time.October, 10, 20, 55, 36, 0, time.UTC)}
	if p.accept(r) {
		t.Fatalf("expected timestamp at or after end to be rejected")
	}
}

func TestTimeRangePredicateUnboundedZeroValues(t *testing.T) {
	r := apacheRow(t)
	p := &timeRangePredicate{}
	if !p.accept(r) {
		t.Fatalf("expected zero-value start/end to mean unbounded")
	}
}

func TestTimeRangePredicateMissingTimestamp(t *testing.T) {
	r := &row{format: FormatJSON}
	p := &timeRangePredicate{start: time.Now()}
	if p.accept(r) {
		t.Fatalf("expected a row with no parsable timestamp to be rejected")
	}
}

func TestCompileRegexCaseInsensitive(t *testing.T) {
	re, err := compileRegex("post|delete", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !re.MatchString("POST /x HTTP/1.1") {
		t.Fatalf("expected case-insensitive match")
	}
}
