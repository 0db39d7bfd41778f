package logscan

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a QueryError per the error taxonomy: BadPath,
// UnreadableFile, UnknownFormat, MalformedQuery, Unsupported, Canceled,
// Internal.
type ErrorKind int

const (
	// KindBadPath: the path/glob resolves to zero files, or a named file
	// does not exist.
	KindBadPath ErrorKind = iota
	// KindUnreadableFile: a file exists but cannot be opened or mapped.
	KindUnreadableFile
	// KindUnknownFormat: format is "auto" and detection failed.
	KindUnknownFormat
	// KindMalformedQuery: invalid filter syntax, unknown field, missing
	// required parameter, or an incompatible combination of parameters.
	KindMalformedQuery
	// KindUnsupported: the query is well-formed but the fast path does
	// not cover it. Not user-visible: the outer system escalates to the
	// fallback engine.
	KindUnsupported
	// KindCanceled: deadline hit or external cancellation.
	KindCanceled
	// KindInternal: invariant violation. Never expected in practice.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadPath:
		return "BadPath"
	case KindUnreadableFile:
		return "UnreadableFile"
	case KindUnknownFormat:
		return "UnknownFormat"
	case KindMalformedQuery:
		return "MalformedQuery"
	case KindUnsupported:
		return "Unsupported"
	case KindCanceled:
		return "Canceled"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// QueryError is the error surface returned in-band by Plan and Run.
type QueryError struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, reason string) *QueryError {
	return &QueryError{Kind: kind, Reason: reason}
}

func wrapError(kind ErrorKind, reason string, err error) *QueryError {
	return &QueryError{Kind: kind, Reason: reason, Err: err}
}

// IsKind reports whether err is a *QueryError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind == kind
	}
	return false
}

// ErrCanceled is a stable sentinel wrapped into every KindCanceled
// QueryError, alongside whatever context.Context.Err() actually returned
// (context.Canceled or context.DeadlineExceeded). Callers that only care
// that a query was interrupted can match on it with errors.Is without
// depending on which of the two context reasons applied.
var ErrCanceled = errors.New("query canceled")

// cancelCause wraps a context error so errors.Is sees both it and the
// stable ErrCanceled sentinel, while Error() stays a single line (unlike
// errors.Join's, which would embed a newline in a "reason: err" message).
type cancelCause struct {
	ctxErr error
}

func (c *cancelCause) Error() string   { return c.ctxErr.Error() }
func (c *cancelCause) Unwrap() []error { return []error{ErrCanceled, c.ctxErr} }

// canceledError builds a KindCanceled QueryError for reason, wrapping
// both ErrCanceled and the context error that triggered it.
func canceledError(reason string, ctxErr error) *QueryError {
	return wrapError(KindCanceled, reason, &cancelCause{ctxErr: ctxErr})
}
