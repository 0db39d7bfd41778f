package logscan

import "testing"

const apacheLine = `10.0.0.1 - - [10/Oct/2024:13:55:36 -0700] "GET /index.html HTTP/1.1" 200 1024 "http://ref.example/" "Mozilla/5.0"`

func TestFindApacheFields(t *testing.T) {
	line := []byte(apacheLine)
	f, ok := findApacheFields(line)
	if !ok {
		t.Fatalf("expected fields to be found")
	}
	if got := string(f.IP.slice(line)); got != "10.0.0.1" {
		t.Fatalf("IP = %q", got)
	}
	if got := string(f.Ts.slice(line)); got != "10/Oct/2024:13:55:36 -0700" {
		t.Fatalf("Ts = %q", got)
	}
	if got := string(f.Request.slice(line)); got != "GET /index.html HTTP/1.1" {
		t.Fatalf("Request = %q", got)
	}
	if f.Status != 200 {
		t.Fatalf("Status = %d", f.Status)
	}
	if got := string(f.SizeText.slice(line)); got != "1024" {
		t.Fatalf("SizeText = %q", got)
	}
	if got := string(f.Referer.slice(line)); got != "http://ref.example/" {
		t.Fatalf("Referer = %q", got)
	}
	if got := string(f.UserAgent.slice(line)); got != "Mozilla/5.0" {
		t.Fatalf("UserAgent = %q", got)
	}

	method, path := apacheMethodPath(line, f.Request)
	if got := string(method.slice(line)); got != "GET" {
		t.Fatalf("method = %q", got)
	}
	if got := string(path.slice(line)); got != "/index.html" {
		t.Fatalf("path = %q", got)
	}
}

func TestApacheSizeDash(t *testing.T) {
	line := []byte(`10.0.0.1 - - [10/Oct/2024:13:55:36 -0700] "GET / HTTP/1.1" 304 - "-" "-"`)
	f, ok := findApacheFields(line)
	if !ok {
		t.Fatalf("expected fields to be found")
	}
	if _, ok := apacheSize(line, f.SizeText); ok {
		t.Fatalf("expected dash size to be unknown")
	}
}

func TestFindApacheFieldsMalformed(t *testing.T) {
	if _, ok := findApacheFields([]byte("not an apache line")); ok {
		t.Fatalf("expected malformed line to fail")
	}
}
