package record

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeExtractsFields(t *testing.T) {
	rec, err := Decode(`{"texts":["p q r"],"tags":["t1","t2"],"id":7}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(rec.Texts, []string{"p q r"}) {
		t.Fatalf("unexpected texts: %v", rec.Texts)
	}
	if !reflect.DeepEqual(rec.Tags, []string{"t1", "t2"}) {
		t.Fatalf("unexpected tags: %v", rec.Tags)
	}
}

func TestDecodeMissingFieldsDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty object", line: `{}`},
		{name: "wrong types", line: `{"texts":"a b","tags":{"k":"v"}}`},
		{name: "null fields", line: `{"texts":null,"tags":null}`},
		{name: "top-level array", line: `["texts","tags"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Decode(tt.line)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(rec.Texts) != 0 || len(rec.Tags) != 0 {
				t.Fatalf("expected empty record, got %+v", rec)
			}
		})
	}
}

func TestDecodeDuplicateKeysKeepLast(t *testing.T) {
	rec, err := Decode(`{"texts":["a"],"tags":["t1"],"texts":["b c d"],"tags":null}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(rec.Texts, []string{"b c d"}) {
		t.Fatalf("unexpected texts: %v", rec.Texts)
	}
	if len(rec.Tags) != 0 {
		t.Fatalf("expected no tags, got %v", rec.Tags)
	}
	if got := CountWords(rec.Texts); got != 3 {
		t.Fatalf("unexpected word count: %d", got)
	}
}

func TestDecodeDropsNonStringMembers(t *testing.T) {
	rec, err := Decode(`{"texts":["a b",3,null,"c"],"tags":[true,"t"]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(rec.Texts, []string{"a b", "c"}) {
		t.Fatalf("unexpected texts: %v", rec.Texts)
	}
	if !reflect.DeepEqual(rec.Tags, []string{"t"}) {
		t.Fatalf("unexpected tags: %v", rec.Tags)
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	for _, line := range []string{"", "not json", `{"texts":["a"]`, `{"tags":[1,]}`} {
		if _, err := Decode(line); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed for %q, got %v", line, err)
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  int
	}{
		{name: "nil", texts: nil, want: 0},
		{name: "empty strings", texts: []string{"", "   "}, want: 0},
		{name: "single", texts: []string{"x y"}, want: 2},
		{name: "multiple", texts: []string{"p q r", " one\ttwo\nthree  "}, want: 6},
		{name: "unicode space", texts: []string{"a\u00a0b\u2003c"}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.texts); got != tt.want {
				t.Fatalf("CountWords(%q) = %d, want %d", tt.texts, got, tt.want)
			}
		})
	}
}
