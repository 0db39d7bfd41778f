package logscan

import (
	"strconv"
	"sync"

	"github.com/valyala/fastjson"

	"github.com/forensiclog/logscan-core/internal/bytesutil"
)

// jsonScanner parses one JSON-lines line at a time via a pooled
// fastjson.Parser, matching the teacher's own lazy, allocation-light
// approach to per-line JSON field lookup (lib/logstorage/json_parser.go).
// There is no FieldOffsets precomputation for JSON: field lookup is by key
// against the parsed value tree.
type jsonScanner struct {
	p *fastjson.Parser
}

var jsonScannerPool = sync.Pool{
	New: func() interface{} { return &jsonScanner{p: &fastjson.Parser{}} },
}

func getJSONScanner() *jsonScanner {
	return jsonScannerPool.Get().(*jsonScanner)
}

func putJSONScanner(s *jsonScanner) {
	jsonScannerPool.Put(s)
}

// parseJSONLine parses line as a JSON value. Lines that are not a valid
// object are ignored (returns ok=false), per the format's contract.
func (s *jsonScanner) parseJSONLine(line []byte) (*fastjson.Value, bool) {
	v, err := s.p.ParseBytes(line)
	if err != nil {
		return nil, false
	}
	if v.Type() != fastjson.TypeObject {
		return nil, false
	}
	return v, true
}

// jsonKeyType is the typed scalar shape a JSON value collapses to for
// grouping/aggregate/filter purposes.
type jsonKeyType int

const (
	jsonMissing jsonKeyType = iota
	jsonNull
	jsonString
	jsonNumber
	jsonBool
)

// jsonValueAsKey renders v's value at the given top-level key as the
// canonical grouping-key text used by GroupedCount: strings verbatim,
// numbers as canonical decimal text (integers in base 10, other numbers in
// shortest plain decimal form), and a distinct kind for null/missing. The
// returned bytes are borrowed from the fastjson arena (or, for numbers and
// bools, freshly formatted) and must be copied by the caller before
// they're used as a map key beyond the current line's scan.
func jsonValueAsKey(v *fastjson.Value, key string) ([]byte, jsonKeyType) {
	fv := v.Get(key)
	if fv == nil {
		return nil, jsonMissing
	}
	switch fv.Type() {
	case fastjson.TypeNull:
		return nil, jsonNull
	case fastjson.TypeString:
		sb, _ := fv.StringBytes()
		return sb, jsonString
	case fastjson.TypeNumber:
		if n, err := fv.Int64(); err == nil {
			return strconv.AppendInt(nil, n, 10), jsonNumber
		}
		if f, err := fv.Float64(); err == nil {
			return strconv.AppendFloat(nil, f, 'f', -1, 64), jsonNumber
		}
		return bytesutil.ToUnsafeBytes(fv.String()), jsonNumber
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return bytesutil.ToUnsafeBytes(fv.String()), jsonBool
	default:
		return nil, jsonMissing
	}
}

// jsonValueAsFloat extracts a numeric field for NumericAggregate.
func jsonValueAsFloat(v *fastjson.Value, key string) (float64, bool) {
	fv := v.Get(key)
	if fv == nil || fv.Type() != fastjson.TypeNumber {
		return 0, false
	}
	f, err := fv.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// jsonValueAsString extracts a field's text for the JSON timestamp lookup
// in row.timestamp, using the unsafe conversion since the bytes are
// borrowed from the fastjson arena for the duration of the scan only.
func jsonValueAsString(v *fastjson.Value, key string) ([]byte, bool) {
	fv := v.Get(key)
	if fv == nil {
		return nil, false
	}
	switch fv.Type() {
	case fastjson.TypeString:
		sb, err := fv.StringBytes()
		if err != nil {
			return nil, false
		}
		return sb, true
	default:
		return bytesutil.ToUnsafeBytes(fv.String()), true
	}
}
