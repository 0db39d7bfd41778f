package logscan

import (
	"time"

	"github.com/valyala/fastjson"

	"github.com/forensiclog/logscan-core/internal/timeparse"
)

// row is a scanned line together with its format-specific field offsets.
// It borrows line from the chunk's byte source and must not outlive the
// scan of that chunk.
type row struct {
	format Format
	line   []byte

	apache apacheFields
	syslog syslogFields
	json   *fastjson.Value

	csvFields []fieldRange
	csvDelim  byte
	csvHeader map[string]int

	refYear int
	loc     *time.Location
}

// status returns the parsed 3-digit HTTP status for Apache/Nginx rows.
func (r *row) status() (int, bool) {
	if r.format != FormatApache && r.format != FormatNginx {
		return 0, false
	}
	if r.apache.Status < 0 {
		return 0, false
	}
	return r.apache.Status, true
}

// timestamp returns the row's parsed timestamp, per format.
func (r *row) timestamp() (time.Time, bool) {
	switch r.format {
	case FormatApache, FormatNginx:
		if !r.apache.Ts.present() {
			return time.Time{}, false
		}
		t, err := timeparse.ParseApache(string(r.apache.Ts.slice(r.line)))
		return t, err == nil
	case FormatSyslog:
		if !r.syslog.Ts.present() {
			return time.Time{}, false
		}
		loc := r.loc
		if loc == nil {
			loc = time.UTC
		}
		t, err := timeparse.ParseSyslog(string(r.syslog.Ts.slice(r.line)), r.refYear, loc)
		return t, err == nil
	case FormatJSON:
		if r.json == nil {
			return time.Time{}, false
		}
		s, ok := jsonValueAsString(r.json, "timestamp")
		if !ok {
			s, ok = jsonValueAsString(r.json, "time")
		}
		if !ok {
			return time.Time{}, false
		}
		t, err := timeparse.ParseISO8601(string(s))
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

// groupKeyAlias maps a query's group_by field name to a format-specific
// canonical field name, per §4.5's alias table (e.g. remote_addr -> ip).
var groupKeyAlias = map[string]string{
	"remote_addr": "ip",
	"client_ip":   "ip",
	"host":        "hostname",
	"proc":        "process",
}

func canonicalField(name string) string {
	if c, ok := groupKeyAlias[name]; ok {
		return c
	}
	return name
}

// jsonNullKey is the sentinel key used when a JSON/CSV group_by value is
// null or missing, per §4.5.
var jsonNullKey = []byte("\x00<null>")

// groupKey extracts the group_by key text for name, and whether it was
// resolvable at all (a resolvable-but-null value still returns ok=true
// with the null sentinel, since it must appear in the grouping). The
// returned bytes are borrowed from the line (or, for JSON/CSV, from the
// row's parse arena) and must not be retained past the current line —
// an accumulator that keeps a key past this call must copy it.
func (r *row) groupKey(name string) ([]byte, bool) {
	name = canonicalField(name)
	switch r.format {
	case FormatApache, FormatNginx:
		switch name {
		case "ip":
			return r.apache.IP.slice(r.line), r.apache.IP.present()
		case "status":
			if r.apache.Status < 0 {
				return nil, false
			}
			return statusTextBytes(r.apache.Status), true
		case "method":
			m, _ := apacheMethodPath(r.line, r.apache.Request)
			return m.slice(r.line), m.present()
		case "path":
			_, p := apacheMethodPath(r.line, r.apache.Request)
			return p.slice(r.line), p.present()
		case "referer":
			return r.apache.Referer.slice(r.line), r.apache.Referer.present()
		case "user_agent":
			return r.apache.UserAgent.slice(r.line), r.apache.UserAgent.present()
		default:
			return nil, false
		}
	case FormatSyslog:
		switch name {
		case "hostname":
			return r.syslog.Hostname.slice(r.line), r.syslog.Hostname.present()
		case "process":
			return r.syslog.Process.slice(r.line), r.syslog.Process.present()
		case "pid":
			return r.syslog.Pid.slice(r.line), r.syslog.Pid.present()
		default:
			return nil, false
		}
	case FormatJSON:
		if r.json == nil {
			return nil, false
		}
		v, kind := jsonValueAsKey(r.json, name)
		switch kind {
		case jsonMissing, jsonNull:
			return jsonNullKey, true
		default:
			return v, true
		}
	case FormatCSV:
		idx, ok := r.csvColumnIndex(name)
		if !ok {
			return nil, false
		}
		if idx >= len(r.csvFields) {
			return jsonNullKey, true
		}
		v := csvFieldValue(r.line, r.csvFields[idx])
		if len(v) == 0 {
			return jsonNullKey, true
		}
		return v, true
	default:
		return nil, false
	}
}

// numericField extracts a numeric value for NumericAggregate.
func (r *row) numericField(name string) (float64, bool) {
	name = canonicalField(name)
	switch r.format {
	case FormatApache, FormatNginx:
		switch name {
		case "size":
			v, ok := apacheSize(r.line, r.apache.SizeText)
			return float64(v), ok
		case "status":
			if r.apache.Status < 0 {
				return 0, false
			}
			return float64(r.apache.Status), true
		default:
			return 0, false
		}
	case FormatJSON:
		if r.json == nil {
			return 0, false
		}
		return jsonValueAsFloat(r.json, name)
	case FormatCSV:
		idx, ok := r.csvColumnIndex(name)
		if !ok || idx >= len(r.csvFields) {
			return 0, false
		}
		return parseFloatBytes(csvFieldValue(r.line, r.csvFields[idx]))
	default:
		return 0, false
	}
}

// csvColumnIndex resolves name to a column index: numeric index literal,
// else a header-name lookup if a header map was supplied.
func (r *row) csvColumnIndex(name string) (int, bool) {
	if r.csvHeader != nil {
		if idx, ok := r.csvHeader[name]; ok {
			return idx, true
		}
	}
	return parseColumnIndex(name)
}

func parseColumnIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	n := 0
	for _, c := range name {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// statusTextBytes renders a status code as decimal digits, freshly
// allocated per call — status is a fixed 3-digit code so this is a tiny,
// bounded allocation.
func statusTextBytes(status int) []byte {
	return itoa3(status)
}

func itoa3(n int) []byte {
	if n < 0 {
		return nil
	}
	if n == 0 {
		return []byte("0")
	}
	buf := [8]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out
}
