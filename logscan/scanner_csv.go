package logscan

import "bytes"

// splitCSVFields splits one line into ordered column ranges on delim
// (',' or '\t'), honoring one level of quoting: a field starting with '"'
// ends at the matching unescaped '"'; a delimiter or quote inside a quoted
// field does not end the field. The returned ranges include the
// surrounding quotes verbatim (unquoting happens lazily in csvFieldValue,
// only for columns a query actually reads).
func splitCSVFields(line []byte, delim byte) []fieldRange {
	var fields []fieldRange
	i := 0
	n := len(line)
	for {
		start := i
		if i < n && line[i] == '"' {
			i++
			for i < n {
				if line[i] == '"' {
					if i+1 < n && line[i+1] == '"' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
		} else {
			for i < n && line[i] != delim {
				i++
			}
		}
		fields = append(fields, field(start, i))
		if i >= n || line[i] != delim {
			break
		}
		i++ // skip delimiter
	}
	return fields
}

// csvFieldValue returns the unquoted value of a column range produced by
// splitCSVFields. Allocates only when the field is quoted and contains an
// escaped quote ("") that must be collapsed to a literal '"'.
func csvFieldValue(line []byte, fr fieldRange) []byte {
	raw := fr.slice(line)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return raw
	}
	inner := raw[1 : len(raw)-1]
	if !bytes.Contains(inner, []byte(`""`)) {
		return inner
	}
	return bytes.ReplaceAll(inner, []byte(`""`), []byte(`"`))
}

// detectDelimiter picks ',' or '\t' from the first line: tab whenever it
// appears at all, comma otherwise (TSV rarely mixes commas
// meaningfully into a header row, while CSV values often contain commas
// only inside quotes).
func detectDelimiter(firstLine []byte) byte {
	if bytes.IndexByte(firstLine, '\t') >= 0 {
		return '\t'
	}
	return ','
}

// csvHeader maps column names to indexes from a header line.
func csvHeader(line []byte, delim byte) map[string]int {
	fields := splitCSVFields(line, delim)
	m := make(map[string]int, len(fields))
	for i, fr := range fields {
		m[string(csvFieldValue(line, fr))] = i
	}
	return m
}
