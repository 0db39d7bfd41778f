// Package asciifold implements ASCII-only case folding for the
// case-insensitive text-substring predicate (the regex predicate folds
// case through regexp's "(?i)" flag instead).
//
// Unicode case folding is deliberately out of scope: it would require a
// dependency on unicode tables and a decision about locale, neither of
// which the log formats this repo scans (Apache/Nginx, syslog, JSON,
// CSV/TSV) depend on for their structural bytes. Values inside JSON
// strings or CSV fields may still contain multibyte UTF-8; those bytes are
// passed through unfolded, exactly as spec'd.
package asciifold

// Fold lowercases the ASCII letters in b in place and returns b.
func Fold(b []byte) []byte {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return b
}

// FoldByte folds a single ASCII byte.
func FoldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// EqualFold reports whether a and b are equal, ASCII case-insensitively.
func EqualFold(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if FoldByte(a[i]) != FoldByte(b[i]) {
			return false
		}
	}
	return true
}

// ContainsFold reports whether pattern occurs in s, ASCII case-insensitively.
func ContainsFold(s, pattern []byte) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(pattern) > len(s) {
		return false
	}
	first := FoldByte(pattern[0])
	for i := 0; i+len(pattern) <= len(s); i++ {
		if FoldByte(s[i]) != first {
			continue
		}
		if EqualFold(s[i:i+len(pattern)], pattern) {
			return true
		}
	}
	return false
}
