package logscan

import (
	"context"
	"errors"
	"testing"
)

func TestIsKind(t *testing.T) {
	err := newError(KindUnsupported, "grouping on referer")
	if !IsKind(err, KindUnsupported) {
		t.Fatalf("expected KindUnsupported")
	}
	if IsKind(err, KindMalformedQuery) {
		t.Fatalf("expected not to match a different kind")
	}
}

func TestIsKindNonQueryError(t *testing.T) {
	if IsKind(errors.New("plain"), KindInternal) {
		t.Fatalf("expected plain errors not to match any kind")
	}
}

func TestQueryErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := wrapError(KindUnreadableFile, "x.log", inner)
	if !errors.Is(err, inner) {
		t.Fatalf("expected errors.Is to see through the wrapper")
	}
}

func TestQueryErrorMessage(t *testing.T) {
	err := newError(KindBadPath, "no files matched")
	if err.Error() == "" {
		t.Fatalf("expected non-empty message")
	}
}

func TestCanceledErrorMatchesSentinelAndContextErr(t *testing.T) {
	err := canceledError("canceled mid-chunk", context.Canceled)
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected errors.Is to match ErrCanceled")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected errors.Is to still see the underlying context.Canceled")
	}
	if !IsKind(err, KindCanceled) {
		t.Fatalf("expected KindCanceled")
	}
}

func TestCanceledErrorSingleLineMessage(t *testing.T) {
	err := canceledError("canceled mid-scan", context.DeadlineExceeded)
	if strings := err.Error(); strings == "" || containsNewline(strings) {
		t.Fatalf("expected a single-line message, got %q", strings)
	}
}

func containsNewline(s string) bool {
	for _, c := range s {
		if c == '\n' {
			return true
		}
	}
	return false
}
