package logscan

// buildPredicate compiles a Query's filter fields into a predicateAnd, in
// the fixed cheapest-first order the design requires. A nil field is
// simply omitted rather than compiled to an always-true predicate, so
// predicateAnd.accept never does unnecessary work on the hot path.
func buildPredicate(q *Query) (*predicateAnd, error) {
	p := &predicateAnd{}

	if q.FilterStatus != "" {
		sp, err := parseStatusFilter(q.FilterStatus)
		if err != nil {
			return nil, wrapError(KindMalformedQuery, "filter_status", err)
		}
		p.status = sp
	}

	if !q.TimeStart.IsZero() || !q.TimeEnd.IsZero() {
		p.tsRange = &timeRangePredicate{start: q.TimeStart, end: q.TimeEnd}
	}

	if q.FilterText != "" {
		p.text = &textPredicate{
			pattern:       []byte(q.FilterText),
			caseSensitive: q.CaseSensitive,
		}
	}

	// filter_regex doubles as the match criterion for regex_search itself
	// and as a general filter for the other shapes; either way it's the
	// same compiled predicate.
	if q.FilterRegex != "" {
		re, err := compileRegex(q.FilterRegex, q.CaseSensitive)
		if err != nil {
			return nil, wrapError(KindMalformedQuery, "filter_regex", err)
		}
		p.regex = &regexPredicate{re: re}
	} else if q.Shape == ShapeRegexSearch {
		return nil, newError(KindMalformedQuery, "regex_search requires filter_regex")
	}

	return p, nil
}
