package logscan

import "bytes"

// apacheFields holds the byte ranges of an Apache/Nginx combined log
// line's semantic fields. Method and path are sub-extracted from Request
// on demand rather than stored separately, per the data model.
type apacheFields struct {
	IP       fieldRange
	Ts       fieldRange
	Request  fieldRange
	Status   int // parsed 3-digit status, or -1 if unparsable
	SizeText fieldRange
	Referer  fieldRange
	UserAgent fieldRange
}

// findApacheFields locates the semantic fields of one Apache/Nginx
// combined-format line using vectorized byte search (bytes.IndexByte /
// bytes.Index, which the Go runtime already implements with SIMD where
// available). Returns ok=false if any required field cannot be located.
func findApacheFields(line []byte) (apacheFields, bool) {
	var f apacheFields

	// 1. IP ends at first space.
	sp := bytes.IndexByte(line, ' ')
	if sp < 0 {
		return f, false
	}
	f.IP = field(0, sp)

	// 2. Timestamp begins at first '[' after IP; ends at next ']'.
	lb := bytes.IndexByte(line[sp:], '[')
	if lb < 0 {
		return f, false
	}
	lb += sp
	rb := bytes.IndexByte(line[lb:], ']')
	if rb < 0 {
		return f, false
	}
	rb += lb
	f.Ts = field(lb+1, rb)

	// 3. Request: between first '"' after ']' and the next '"' followed
	// by a space.
	q0 := bytes.IndexByte(line[rb:], '"')
	if q0 < 0 {
		return f, false
	}
	q0 += rb
	reqEnd := -1
	for i := q0 + 1; i < len(line)-1; i++ {
		if line[i] == '"' && line[i+1] == ' ' {
			reqEnd = i
			break
		}
	}
	if reqEnd < 0 {
		// Request may be the final quoted field on the line (rare, but
		// tolerate a trailing quote with no following space).
		if q1 := bytes.IndexByte(line[q0+1:], '"'); q1 >= 0 {
			reqEnd = q0 + 1 + q1
		} else {
			return f, false
		}
	}
	f.Request = field(q0+1, reqEnd)

	// 4. Status: three digit bytes at the first non-space position after
	// the closing quote.
	pos := reqEnd + 1
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}
	if pos+3 > len(line) {
		return f, false
	}
	d0, d1, d2 := line[pos], line[pos+1], line[pos+2]
	if !isDigit(d0) || !isDigit(d1) || !isDigit(d2) {
		return f, false
	}
	f.Status = 100*int(d0-'0') + 10*int(d1-'0') + int(d2-'0')
	pos += 3

	// 5. Size: token after status; '-' means unknown.
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}
	sizeEnd := pos
	for sizeEnd < len(line) && line[sizeEnd] != ' ' {
		sizeEnd++
	}
	if sizeEnd > pos {
		f.SizeText = field(pos, sizeEnd)
	} else {
		f.SizeText = noField
	}

	// 6. Referer and user-agent: next two quoted strings, in order.
	rest := line[sizeEnd:]
	refStart, refEnd, ok := nextQuoted(rest)
	if ok {
		f.Referer = field(sizeEnd+refStart+1, sizeEnd+refEnd)
		rest = rest[refEnd+1:]
		uaOffset := sizeEnd + refEnd + 1
		uaStart, uaEnd, ok := nextQuoted(rest)
		if ok {
			f.UserAgent = field(uaOffset+uaStart+1, uaOffset+uaEnd)
		} else {
			f.UserAgent = noField
		}
	} else {
		f.Referer = noField
		f.UserAgent = noField
	}

	return f, true
}

// nextQuoted returns the byte offsets of the first quoted substring in b
// (start of opening quote, index of closing quote), not including either
// quote in [start+1, end).
func nextQuoted(b []byte) (start, end int, ok bool) {
	q0 := bytes.IndexByte(b, '"')
	if q0 < 0 {
		return 0, 0, false
	}
	q1 := bytes.IndexByte(b[q0+1:], '"')
	if q1 < 0 {
		return 0, 0, false
	}
	return q0, q0 + 1 + q1, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// apacheMethodPath sub-extracts method and path from a Request field on
// demand, per the data model ("from which method/path are sub-extracted
// on demand").
func apacheMethodPath(line []byte, req fieldRange) (method, path fieldRange) {
	if !req.present() {
		return noField, noField
	}
	r := line[req.Start:req.End]
	sp := bytes.IndexByte(r, ' ')
	if sp < 0 {
		return field(int(req.Start), int(req.End)), noField
	}
	method = field(int(req.Start), int(req.Start)+sp)
	rest := r[sp+1:]
	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 < 0 {
		path = field(int(req.Start)+sp+1, int(req.End))
	} else {
		path = field(int(req.Start)+sp+1, int(req.Start)+sp+1+sp2)
	}
	return method, path
}

// apacheSize parses the size field, treating '-' as unknown (excluded
// from numeric aggregates).
func apacheSize(line []byte, sz fieldRange) (int64, bool) {
	if !sz.present() {
		return 0, false
	}
	b := sz.slice(line)
	if len(b) == 1 && b[0] == '-' {
		return 0, false
	}
	return parseUintBytes(b)
}
