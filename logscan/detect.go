package logscan

import "bytes"

// detectPrefixSize bounds how many leading bytes of a file are inspected
// for FormatAuto detection: format tells apart on the very first line, so
// there is no reason to look further.
const detectPrefixSize = 4096

// detectFormat guesses a file's format from its first line, in the fixed
// priority order JSON, syslog, Apache/Nginx, CSV — JSON and syslog have
// unambiguous leading-byte signatures, so they're checked before the more
// permissive Apache/CSV heuristics. A line matching none of the four
// grammars (an empty prefix, binary data, or free text with no delimiter)
// returns FormatAuto unresolved, letting the caller surface
// KindUnknownFormat rather than silently guessing CSV.
func detectFormat(prefix []byte) Format {
	line := firstLine(prefix)
	if len(line) == 0 {
		return FormatAuto
	}
	if looksLikeJSON(line) {
		return FormatJSON
	}
	if looksLikeSyslog(line) {
		return FormatSyslog
	}
	if looksLikeApache(line) {
		return FormatApache
	}
	if looksLikeCSV(line) {
		return FormatCSV
	}
	return FormatAuto
}

func firstLine(b []byte) []byte {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	return bytes.TrimSuffix(b, []byte("\r"))
}

func looksLikeJSON(line []byte) bool {
	line = bytes.TrimLeft(line, " \t")
	return len(line) > 0 && line[0] == '{'
}

// looksLikeSyslog checks for RFC 3164's fixed "Mon _2 HH:MM:SS " prefix,
// optionally preceded by a "<NNN>" priority tag.
func looksLikeSyslog(line []byte) bool {
	if len(line) > 0 && line[0] == '<' {
		if i := bytes.IndexByte(line, '>'); i > 0 && i < 5 {
			line = line[i+1:]
		}
	}
	if len(line) < 15 {
		return false
	}
	ts := line[:15]
	return ts[3] == ' ' && (ts[4] == ' ' || isDigit(ts[4])) && ts[6] == ' ' &&
		isDigit(ts[7]) && isDigit(ts[8]) && ts[9] == ':' &&
		isDigit(ts[10]) && isDigit(ts[11]) && ts[12] == ':' &&
		isDigit(ts[13]) && isDigit(ts[14])
}

// looksLikeApache checks for the combined-log shape: an address token
// followed eventually by " - - [" or " - <ident> [".
func looksLikeApache(line []byte) bool {
	i := bytes.IndexByte(line, '[')
	if i <= 0 {
		return false
	}
	head := bytes.Fields(line[:i])
	n := len(head)
	dash := []byte("-")
	return n >= 2 && (bytes.Equal(head[n-1], dash) || bytes.Equal(head[n-2], dash))
}

// looksLikeCSV requires an actual delimiter on the line: CSV/TSV is the
// most permissive grammar of the four, so it only wins when the line
// carries a real field separator rather than matching everything that
// falls through the other three checks.
func looksLikeCSV(line []byte) bool {
	return bytes.IndexByte(line, ',') >= 0 || bytes.IndexByte(line, '\t') >= 0 || bytes.IndexByte(line, ';') >= 0
}
