package logscan

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/forensiclog/logscan-core/internal/asciifold"
)

// predicate is a compiled, side-effect-free accept/reject test over a row,
// mirroring the shape of the teacher's filter interface
// (lib/logstorage/filter.go) but line-oriented rather than columnar.
type predicate interface {
	accept(r *row) bool
}

// predicateAnd combines predicates by short-circuit conjunction in the
// fixed, cheapest-first order the design specifies: status, timestamp
// range, text substring, regex.
type predicateAnd struct {
	status  predicate
	tsRange predicate
	text    predicate
	regex   predicate
}

func (p *predicateAnd) accept(r *row) bool {
	if p.status != nil && !p.status.accept(r) {
		return false
	}
	if p.tsRange != nil && !p.tsRange.accept(r) {
		return false
	}
	if p.text != nil && !p.text.accept(r) {
		return false
	}
	if p.regex != nil && !p.regex.accept(r) {
		return false
	}
	return true
}

func (p *predicateAnd) empty() bool {
	return p.status == nil && p.tsRange == nil && p.text == nil && p.regex == nil
}

// statusOp is a status-comparison operator.
type statusOp int

const (
	statusEq statusOp = iota
	statusGe
	statusLe
	statusLt
	statusGt
	statusClass
)

type statusPredicate struct {
	op      statusOp
	operand int // for statusClass, this is the hundreds digit (4 for "4xx")
}

func (p *statusPredicate) accept(r *row) bool {
	s, ok := r.status()
	if !ok {
		return false
	}
	switch p.op {
	case statusEq:
		return s == p.operand
	case statusGe:
		return s >= p.operand
	case statusLe:
		return s <= p.operand
	case statusLt:
		return s < p.operand
	case statusGt:
		return s > p.operand
	case statusClass:
		lo := p.operand * 100
		return s >= lo && s < lo+100
	default:
		return false
	}
}

// parseStatusFilter parses the filter_status query field: "N", "=N",
// ">=N", ">N", "<=N", "<N", "Nxx".
func parseStatusFilter(s string) (*statusPredicate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if len(s) == 3 && s[1] == 'x' && s[2] == 'x' {
		if s[0] < '1' || s[0] > '9' {
			return nil, fmt.Errorf("invalid status class %q", s)
		}
		return &statusPredicate{op: statusClass, operand: int(s[0] - '0')}, nil
	}
	op := statusEq
	rest := s
	switch {
	case strings.HasPrefix(s, ">="):
		op, rest = statusGe, s[2:]
	case strings.HasPrefix(s, "<="):
		op, rest = statusLe, s[2:]
	case strings.HasPrefix(s, ">"):
		op, rest = statusGt, s[1:]
	case strings.HasPrefix(s, "<"):
		op, rest = statusLt, s[1:]
	case strings.HasPrefix(s, "="):
		op, rest = statusEq, s[1:]
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return nil, fmt.Errorf("invalid status filter %q: %w", s, err)
	}
	return &statusPredicate{op: op, operand: n}, nil
}

// timeRangePredicate rejects a line if its timestamp is missing/unparsable
// or falls outside the half-open [start, end) range. Either bound may be
// the zero time, meaning -inf/+inf respectively.
type timeRangePredicate struct {
	start time.Time
	end   time.Time
}

func (p *timeRangePredicate) accept(r *row) bool {
	t, ok := r.timestamp()
	if !ok {
		return false
	}
	if !p.start.IsZero() && t.Before(p.start) {
		return false
	}
	if !p.end.IsZero() && !t.Before(p.end) {
		return false
	}
	return true
}

// textPredicate matches a literal substring against the whole raw line
// (not field-aware).
type textPredicate struct {
	pattern       []byte
	caseSensitive bool
}

func (p *textPredicate) accept(r *row) bool {
	if p.caseSensitive {
		return bytes.Contains(r.line, p.pattern)
	}
	return asciifold.ContainsFold(r.line, p.pattern)
}

// regexPredicate matches a compiled regular expression against the whole
// raw line. Anchors in the pattern are line-relative.
type regexPredicate struct {
	re *regexp.Regexp
}

func (p *regexPredicate) accept(r *row) bool {
	return p.re.Match(r.line)
}

// compileRegex compiles a query's regex, folding it to case-insensitive
// with the standard "(?i)" flag when requested (Go's regexp/RE2 has no
// separate ASCII-only fold mode; combined with byte input this is
// effectively ASCII case folding for the byte ranges these formats use).
func compileRegex(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return re, nil
}
