//go:build unix

package pipeline

import (
	"path/filepath"
	"reflect"
	"syscall"
	"testing"
)

func TestListInputsSkipsFIFO(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jsonl")
	if err := syscall.Mkfifo(filepath.Join(dir, "pipe.jsonl"), 0o644); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	paths, err := ListInputs(dir, DefaultExt)
	if err != nil {
		t.Fatalf("list inputs: %v", err)
	}
	if want := []string{filepath.Join(dir, "a.jsonl")}; !reflect.DeepEqual(paths, want) {
		t.Fatalf("unexpected paths: %v", paths)
	}
}
