package stats

import (
	"context"
	"reflect"
	"testing"

	"github.com/verte-zerg/tagstat/internal/model"
)

func TestBuildReport(t *testing.T) {
	files := []model.FileStats{
		{
			Name: "a.jsonl", TotalWords: 2, TotalRecords: 1,
			Tags: map[string]model.TagCount{"t1": {Records: 1, Words: 2}},
		},
		{
			Name: "b.jsonl", TotalWords: 3, TotalRecords: 1,
			Tags: map[string]model.TagCount{
				"t1": {Records: 1, Words: 3},
				"t2": {Records: 1, Words: 3},
			},
		},
	}
	report, err := BuildReport(context.Background(), newPool(t, 2), files, Options{})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.ID != model.DefaultReportID {
		t.Fatalf("expected default id, got %q", report.ID)
	}
	wantTags := model.GlobalTagStats{
		"t1": {Records: 2, Words: 5},
		"t2": {Records: 1, Words: 3},
	}
	if !reflect.DeepEqual(report.Tags, wantTags) {
		t.Fatalf("unexpected global tags: %v", report.Tags)
	}
	if !reflect.DeepEqual(report.Totals.ChattyFiles, []string{"b.jsonl", "a.jsonl"}) {
		t.Fatalf("unexpected chatty files: %v", report.Totals.ChattyFiles)
	}
	if !reflect.DeepEqual(report.Totals.ChattyTags, []string{"t2", "t1"}) {
		t.Fatalf("unexpected chatty tags: %v", report.Totals.ChattyTags)
	}
	if !reflect.DeepEqual(report.Files[0].TopTags, []string{"t1"}) {
		t.Fatalf("unexpected top tags for a: %v", report.Files[0].TopTags)
	}
	if !reflect.DeepEqual(report.Files[1].TopTags, []string{"t1", "t2"}) {
		t.Fatalf("unexpected top tags for b: %v", report.Files[1].TopTags)
	}
}

func TestBuildReportNoFiles(t *testing.T) {
	report, err := BuildReport(context.Background(), newPool(t, 1), nil, Options{ID: "x", TopN: 3})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.ID != "x" || len(report.Tags) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Totals.ChattyFiles) != 0 || len(report.Totals.ChattyTags) != 0 {
		t.Fatalf("expected empty rankings, got %+v", report.Totals)
	}
}
