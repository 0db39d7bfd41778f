package logscan

// fieldRange is a byte range [Start, End) into a LineSlice identifying one
// semantic field. Start == -1 means the field was not found: absent, not
// empty. 0 <= Start <= End <= len(line) always holds for a present field.
type fieldRange struct {
	Start int32
	End   int32
}

// noField is the sentinel for "not found".
var noField = fieldRange{Start: -1, End: -1}

func (f fieldRange) present() bool { return f.Start >= 0 }

func (f fieldRange) slice(line []byte) []byte {
	if !f.present() {
		return nil
	}
	return line[f.Start:f.End]
}

func field(start, end int) fieldRange {
	return fieldRange{Start: int32(start), End: int32(end)}
}

// Format identifies which per-line scanner interprets a log line.
type Format int

const (
	// FormatAuto defers to detection against a small file prefix.
	FormatAuto Format = iota
	FormatApache
	FormatNginx
	FormatSyslog
	FormatJSON
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatApache:
		return "apache"
	case FormatNginx:
		return "nginx"
	case FormatSyslog:
		return "syslog"
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ParseFormat parses a query's format enum value.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "auto":
		return FormatAuto, nil
	case "apache":
		return FormatApache, nil
	case "nginx":
		return FormatNginx, nil
	case "syslog":
		return FormatSyslog, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatAuto, newError(KindMalformedQuery, "unknown format "+s)
	}
}
