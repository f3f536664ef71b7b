package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListInputsFiltersEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.jsonl")
	writeFile(t, dir, "a.jsonl")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, ".jsonl")
	writeFile(t, dir, "archive.jsonl.gz")
	if err := os.Mkdir(filepath.Join(dir, "nested.jsonl"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := ListInputs(dir, "jsonl")
	if err != nil {
		t.Fatalf("list inputs: %v", err)
	}
	want := []string{filepath.Join(dir, "a.jsonl"), filepath.Join(dir, "b.jsonl")}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("unexpected paths: %v", paths)
	}
}

func TestListInputsFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jsonl")
	target := t.TempDir()
	writeFile(t, target, "real.jsonl")
	links := map[string]string{
		"dir.jsonl":    target,
		"file.jsonl":   filepath.Join(target, "real.jsonl"),
		"broken.jsonl": filepath.Join(target, "missing.jsonl"),
	}
	for name, dest := range links {
		if err := os.Symlink(dest, filepath.Join(dir, name)); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}
	}

	paths, err := ListInputs(dir, DefaultExt)
	if err != nil {
		t.Fatalf("list inputs: %v", err)
	}
	want := []string{filepath.Join(dir, "a.jsonl"), filepath.Join(dir, "file.jsonl")}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("unexpected paths: %v", paths)
	}
}

func TestListInputsMissingDirectory(t *testing.T) {
	if _, err := ListInputs(filepath.Join(t.TempDir(), "nope"), DefaultExt); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := map[string]string{
		"":        ".jsonl",
		"jsonl":   ".jsonl",
		".ndjson": ".ndjson",
		" json ":  ".json",
	}
	for in, want := range tests {
		if got := NormalizeExt(in); got != want {
			t.Fatalf("NormalizeExt(%q) = %q, want %q", in, got, want)
		}
	}
}
