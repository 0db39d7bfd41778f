package logscan

import (
	"bytes"
	"time"
)

// lineScanner turns raw line bytes into a row, using per-format setup
// resolved once per file (CSV header/delimiter, JSON parser, syslog
// year/location) rather than per line.
type lineScanner struct {
	format Format

	csvDelim  byte
	csvHeader map[string]int

	json *jsonScanner

	refYear int
	loc     *time.Location
}

func newLineScanner(format Format, firstLine []byte, loc *time.Location, refYear int) *lineScanner {
	ls := &lineScanner{format: format, refYear: refYear, loc: loc}
	if format == FormatCSV {
		ls.csvDelim = detectDelimiter(firstLine)
	}
	if format == FormatJSON {
		ls.json = getJSONScanner()
	}
	return ls
}

func (ls *lineScanner) setCSVHeader(header map[string]int) {
	ls.csvHeader = header
}

func (ls *lineScanner) close() {
	if ls.json != nil {
		putJSONScanner(ls.json)
		ls.json = nil
	}
}

// scan parses line according to the scanner's format. It never fails: a
// line that doesn't match its format's grammar simply yields a row with
// no recognized fields, which every predicate/accumulator already treats
// as non-matching. Empty lines are always skipped (ok=false).
func (ls *lineScanner) scan(line []byte) (*row, bool) {
	if len(line) == 0 {
		return nil, false
	}
	r := &row{format: ls.format, line: line, refYear: ls.refYear, loc: ls.loc}
	switch ls.format {
	case FormatApache, FormatNginx:
		af, ok := findApacheFields(line)
		if !ok {
			af = apacheFields{IP: noField, Ts: noField, Request: noField, Status: -1,
				SizeText: noField, Referer: noField, UserAgent: noField}
		}
		r.apache = af
	case FormatSyslog:
		sf, ok := findSyslogFields(line)
		if !ok {
			sf = syslogFields{Priority: noField, Ts: noField, Hostname: noField,
				Process: noField, Pid: noField, Message: noField}
		}
		r.syslog = sf
	case FormatJSON:
		v, ok := ls.json.parseJSONLine(line)
		if ok {
			r.json = v
		}
	case FormatCSV:
		r.csvFields = splitCSVFields(line, ls.csvDelim)
		r.csvDelim = ls.csvDelim
		r.csvHeader = ls.csvHeader
	}
	return r, true
}

// resolveFormat detects the format when the caller asked for FormatAuto,
// against the first detectPrefixSize bytes of data.
func resolveFormat(requested Format, data []byte) (Format, error) {
	if requested != FormatAuto {
		return requested, nil
	}
	prefix := data
	if len(prefix) > detectPrefixSize {
		prefix = prefix[:detectPrefixSize]
	}
	f := detectFormat(prefix)
	if f == FormatAuto {
		return FormatAuto, newError(KindUnknownFormat, "could not detect format from file prefix")
	}
	return f, nil
}

func firstLineOf(data []byte) []byte {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		return data
	}
	return data[:i]
}
