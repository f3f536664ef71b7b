package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/tagstat/internal/record"
)

func TestRecordBounds(t *testing.T) {
	g := New(1)
	for i := 0; i < 200; i++ {
		rec := g.Record(Options{})
		if len(rec.Texts) < 1 || len(rec.Texts) > MaxTexts {
			t.Fatalf("unexpected text count %d", len(rec.Texts))
		}
		if len(rec.Tags) > MaxTags {
			t.Fatalf("unexpected tag count %d", len(rec.Tags))
		}
		if words := record.CountWords(rec.Texts); words < len(rec.Texts) || words > len(rec.Texts)*MaxTextWords {
			t.Fatalf("unexpected word count %d for %d texts", words, len(rec.Texts))
		}
	}
}

func TestRecordUsesVocabulary(t *testing.T) {
	g := New(7)
	opts := Options{Words: []string{"only"}, Tags: []string{"solo"}}
	for i := 0; i < 50; i++ {
		rec := g.Record(opts)
		for _, text := range rec.Texts {
			for _, word := range strings.Fields(text) {
				if word != "only" {
					t.Fatalf("unexpected word %q", word)
				}
			}
		}
		for _, tag := range rec.Tags {
			if tag != "solo" {
				t.Fatalf("unexpected tag %q", tag)
			}
		}
	}
}

func TestWriteCorpusIsDeterministic(t *testing.T) {
	opts := Options{Files: 2, Records: 5, CapsPct: 0.5, PunctPct: 0.5}
	dirA, dirB := t.TempDir(), t.TempDir()

	pathsA, err := New(42).WriteCorpus(dirA, opts)
	if err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	if _, err := New(42).WriteCorpus(dirB, opts); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	wantNames := []string{"site-01.jsonl", "site-02.jsonl"}
	gotNames := []string{filepath.Base(pathsA[0]), filepath.Base(pathsA[1])}
	if !reflect.DeepEqual(gotNames, wantNames) {
		t.Fatalf("unexpected file names: %v", gotNames)
	}

	for _, name := range wantNames {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%s differs between equal seeds", name)
		}
		lines := strings.Split(strings.TrimSuffix(string(a), "\n"), "\n")
		if len(lines) != opts.Records {
			t.Fatalf("expected %d lines, got %d", opts.Records, len(lines))
		}
		for _, line := range lines {
			if _, err := record.Decode(line); err != nil {
				t.Fatalf("generated line does not decode: %v", err)
			}
		}
	}
}

func TestWriteCorpusValidation(t *testing.T) {
	if _, err := New(1).WriteCorpus(t.TempDir(), Options{Files: 0, Records: 1}); err == nil {
		t.Fatalf("expected error for zero files")
	}
	if _, err := New(1).WriteCorpus(t.TempDir(), Options{Files: 1, Records: -1}); err == nil {
		t.Fatalf("expected error for negative records")
	}
}
