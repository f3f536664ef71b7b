package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/tagstat/internal/model"
	"github.com/verte-zerg/tagstat/internal/pool"
	"github.com/verte-zerg/tagstat/internal/record"
)

// ErrInvalidUTF8 reports file content that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// Processor aggregates input files on a shared worker pool.
type Processor struct {
	pool   *pool.Pool
	logger *slog.Logger
	parts  int
}

// NewProcessor returns a processor that splits every file into one partition
// per pool worker. A nil logger discards output.
func NewProcessor(p *pool.Pool, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Processor{pool: p, logger: logger, parts: p.Size()}
}

// AggregateLines decodes and folds lines split into parts partitions.
func AggregateLines(ctx context.Context, p *pool.Pool, lines []string, parts int) (*Accumulator, error) {
	return pool.Reduce(ctx, p, lines, parts,
		NewAccumulator,
		func(acc *Accumulator, index int, line string) (*Accumulator, error) {
			rec, err := record.Decode(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", index+1, err)
			}
			acc.Add(rec)
			return acc, nil
		},
		(*Accumulator).Merge,
	)
}

// ProcessFile reads one file and returns its statistics with TopTags empty.
func (pr *Processor) ProcessFile(ctx context.Context, path string) (model.FileStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FileStats{}, fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(data) {
		return model.FileStats{}, fmt.Errorf("failed to read file %s: %w", path, ErrInvalidUTF8)
	}
	lines, err := splitLines(data)
	if err != nil {
		return model.FileStats{}, fmt.Errorf("failed to split %s: %w", path, err)
	}

	acc, err := AggregateLines(ctx, pr.pool, lines, pr.parts)
	if err != nil {
		return model.FileStats{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	name := filepath.Base(path)
	pr.logger.Debug("file aggregated",
		"file", name,
		"size", humanize.Bytes(uint64(len(data))),
		"records", acc.Records,
		"words", acc.Words,
		"tags", len(acc.Tags),
	)
	return model.FileStats{
		Name:         name,
		TotalWords:   acc.Words,
		TotalRecords: acc.Records,
		Tags:         acc.Tags,
		TopTags:      []string{},
	}, nil
}

// ProcessFiles aggregates every path concurrently. The first failure cancels
// the remaining files and is returned. Results are index-aligned with paths.
func (pr *Processor) ProcessFiles(ctx context.Context, paths []string) ([]model.FileStats, error) {
	files := make([]model.FileStats, len(paths))
	err := pr.pool.Each(ctx, len(paths), func(ctx context.Context, i int) error {
		stats, err := pr.ProcessFile(ctx, paths[i])
		if err != nil {
			return err
		}
		files[i] = stats
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func splitLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
