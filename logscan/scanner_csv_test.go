package logscan

import "testing"

func TestSplitCSVFieldsBasic(t *testing.T) {
	line := []byte("a,b,c")
	fields := splitCSVFields(line, ',')
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := string(fields[i].slice(line)); got != want {
			t.Fatalf("field %d = %q, want %q", i, got, want)
		}
	}
}

func TestSplitCSVFieldsQuoted(t *testing.T) {
	line := []byte(`1,"hello, world",3`)
	fields := splitCSVFields(line, ',')
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}
	if got := string(csvFieldValue(line, fields[1])); got != "hello, world" {
		t.Fatalf("field 1 = %q", got)
	}
}

func TestSplitCSVFieldsEscapedQuote(t *testing.T) {
	line := []byte(`"she said ""hi""",2`)
	fields := splitCSVFields(line, ',')
	if got := string(csvFieldValue(line, fields[0])); got != `she said "hi"` {
		t.Fatalf("field 0 = %q", got)
	}
}

func TestDetectDelimiter(t *testing.T) {
	if d := detectDelimiter([]byte("a\tb\tc")); d != '\t' {
		t.Fatalf("got %q, want tab", d)
	}
	if d := detectDelimiter([]byte("a,b,c")); d != ',' {
		t.Fatalf("got %q, want comma", d)
	}
}

func TestCSVHeader(t *testing.T) {
	m := csvHeader([]byte("ts,level,service"), ',')
	if m["service"] != 2 {
		t.Fatalf("service index = %d, want 2", m["service"])
	}
}
