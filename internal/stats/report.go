package stats

import (
	"context"
	"fmt"

	"github.com/verte-zerg/tagstat/internal/model"
	"github.com/verte-zerg/tagstat/internal/pool"
)

// Options controls report assembly.
type Options struct {
	ID   string
	TopN int
}

// BuildReport ranks the tags of every file, aggregates and ranks global tags,
// and ranks files. It mutates the TopTags of files and keeps them in the report.
func BuildReport(ctx context.Context, p *pool.Pool, files []model.FileStats, opts Options) (model.Report, error) {
	if opts.TopN <= 0 {
		opts.TopN = model.DefaultTopN
	}
	if opts.ID == "" {
		opts.ID = model.DefaultReportID
	}
	if err := AssignTopTags(ctx, p, files, opts.TopN); err != nil {
		return model.Report{}, fmt.Errorf("failed to rank file tags: %w", err)
	}
	global, err := AggregateTags(ctx, p, files)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to aggregate tags: %w", err)
	}
	return model.Report{
		ID:    opts.ID,
		Files: files,
		Tags:  global,
		Totals: model.Rankings{
			ChattyFiles: TopFiles(files, opts.TopN),
			ChattyTags:  TopTags(global, opts.TopN),
		},
	}, nil
}
