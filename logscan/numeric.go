package logscan

// parseUintBytes parses an unsigned decimal integer from b without
// allocating. Leading '+' is rejected (per the design's numeric-format
// notes); a leading '-' is the caller's responsibility to special-case
// where the column allows it (e.g. Apache's size "-" for unknown).
func parseUintBytes(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var v int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int64(c-'0')
	}
	return v, true
}

// parseIntBytes parses a decimal integer allowing exactly one leading '-'.
func parseIntBytes(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	neg := false
	if b[0] == '-' {
		neg = true
		b = b[1:]
	}
	v, ok := parseUintBytes(b)
	if !ok {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// parseFloatBytes parses a decimal float without locale-sensitive
// separators and without allocating: integers go through parseIntBytes,
// anything else through parseDecimal (ASCII digits, at most one '.', an
// optional leading '-'; no exponent form).
func parseFloatBytes(b []byte) (float64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	if i, ok := parseIntBytes(b); ok {
		return float64(i), true
	}
	return parseDecimal(b)
}

func parseDecimal(b []byte) (float64, bool) {
	neg := false
	i := 0
	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}
	start := i
	var intPart, fracPart int64
	fracDigits := 0
	sawDot := false
	sawDigit := false
	for ; i < len(b); i++ {
		c := b[i]
		switch {
		case c == '.' && !sawDot:
			sawDot = true
		case c >= '0' && c <= '9':
			sawDigit = true
			if sawDot {
				fracPart = fracPart*10 + int64(c-'0')
				fracDigits++
			} else {
				intPart = intPart*10 + int64(c-'0')
			}
		default:
			return 0, false
		}
	}
	if !sawDigit || i == start {
		return 0, false
	}
	v := float64(intPart)
	if fracDigits > 0 {
		div := 1.0
		for j := 0; j < fracDigits; j++ {
			div *= 10
		}
		v += float64(fracPart) / div
	}
	if neg {
		v = -v
	}
	return v, true
}
