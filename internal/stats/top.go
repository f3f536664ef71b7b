// Package stats contains ranking and report assembly.
package stats

import (
	"context"
	"sort"

	"github.com/verte-zerg/tagstat/internal/model"
	"github.com/verte-zerg/tagstat/internal/pool"
)

type ranked struct {
	name  string
	ratio float64
}

// topByRatio orders items by descending ratio, ties by ascending name, and
// keeps the first n names.
func topByRatio(items []ranked, n int) []string {
	if n <= 0 || len(items) == 0 {
		return []string{}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ratio == items[j].ratio {
			return items[i].name < items[j].name
		}
		return items[i].ratio > items[j].ratio
	})
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[i].name)
	}
	return out
}

// TopTags returns the n tags with the highest words-per-record ratio.
func TopTags(counts map[string]model.TagCount, n int) []string {
	items := make([]ranked, 0, len(counts))
	for tag, count := range counts {
		items = append(items, ranked{name: tag, ratio: count.Ratio()})
	}
	return topByRatio(items, n)
}

// TopFiles returns the names of the n files with the highest words-per-record ratio.
func TopFiles(files []model.FileStats, n int) []string {
	items := make([]ranked, 0, len(files))
	for _, f := range files {
		items = append(items, ranked{name: f.Name, ratio: f.Ratio()})
	}
	return topByRatio(items, n)
}

// AssignTopTags ranks the tags of every file concurrently and stores the
// result in its TopTags. Each worker writes only the file at its own index.
func AssignTopTags(ctx context.Context, p *pool.Pool, files []model.FileStats, n int) error {
	return p.Each(ctx, len(files), func(_ context.Context, i int) error {
		files[i].TopTags = TopTags(files[i].Tags, n)
		return nil
	})
}

// AggregateTags sums the tag counts of every file into one map.
func AggregateTags(ctx context.Context, p *pool.Pool, files []model.FileStats) (model.GlobalTagStats, error) {
	return pool.Reduce(ctx, p, files, p.Size(),
		func() model.GlobalTagStats { return model.GlobalTagStats{} },
		func(acc model.GlobalTagStats, _ int, f model.FileStats) (model.GlobalTagStats, error) {
			model.MergeTagCounts(acc, f.Tags)
			return acc, nil
		},
		func(dst, src model.GlobalTagStats) model.GlobalTagStats {
			model.MergeTagCounts(dst, src)
			return dst
		},
	)
}
