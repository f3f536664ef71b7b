package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tagstat/internal/pool"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newPool(t *testing.T, size int) *pool.Pool {
	t.Helper()
	p, err := pool.New(size)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	return p
}
