package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultExt is the extension of input files.
const DefaultExt = ".jsonl"

// NormalizeExt returns ext with a leading dot.
func NormalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ListInputs returns the regular files in dir whose name ends in ext, sorted
// by name. Symlinks are followed. Directories and other non-regular entries
// are skipped, as are names without a stem or that are not valid UTF-8.
func ListInputs(dir, ext string) ([]string, error) {
	ext = NormalizeExt(ext)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !utf8.ValidString(name) {
			continue
		}
		if filepath.Ext(name) != ext || name == ext {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}
