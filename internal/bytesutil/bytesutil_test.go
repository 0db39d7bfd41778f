package bytesutil

import "testing"

func TestToUnsafeStringRoundTrip(t *testing.T) {
	b := []byte("hello")
	s := ToUnsafeString(b)
	if s != "hello" {
		t.Fatalf("got %q", s)
	}
}

func TestToUnsafeBytesRoundTrip(t *testing.T) {
	s := "hello"
	b := ToUnsafeBytes(s)
	if string(b) != s {
		t.Fatalf("got %q", b)
	}
}

func TestToUnsafeStringEmpty(t *testing.T) {
	if got := ToUnsafeString(nil); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
