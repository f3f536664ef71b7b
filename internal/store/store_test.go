package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/verte-zerg/tagstat/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "tagstat.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return st
}

func testReport() model.Report {
	return model.Report{
		ID: model.DefaultReportID,
		Files: []model.FileStats{
			{
				Name: "a.jsonl", TotalWords: 2, TotalRecords: 1,
				Tags:    map[string]model.TagCount{"t1": {Records: 1, Words: 2}},
				TopTags: []string{"t1"},
			},
			{
				Name: "b.jsonl", TotalWords: 3, TotalRecords: 1,
				Tags: map[string]model.TagCount{
					"t1": {Records: 1, Words: 3},
					"t2": {Records: 1, Words: 3},
				},
				TopTags: []string{"t1", "t2"},
			},
		},
		Tags: model.GlobalTagStats{
			"t1": {Records: 2, Words: 5},
			"t2": {Records: 1, Words: 3},
		},
		Totals: model.Rankings{
			ChattyFiles: []string{"b.jsonl", "a.jsonl"},
			ChattyTags:  []string{"t2", "t1"},
		},
	}
}

func TestSaveReportRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.SaveReport(ctx, "run-1", testReport()); err != nil {
		t.Fatalf("save: %v", err)
	}

	rankings, err := st.ListRankings(ctx, "run-1")
	if err != nil {
		t.Fatalf("list rankings: %v", err)
	}
	want := model.Rankings{
		ChattyFiles: []string{"b.jsonl", "a.jsonl"},
		ChattyTags:  []string{"t2", "t1"},
	}
	if !reflect.DeepEqual(rankings, want) {
		t.Fatalf("unexpected rankings: %+v", rankings)
	}

	top, err := st.ListFileTopTags(ctx, "run-1", "b.jsonl")
	if err != nil {
		t.Fatalf("list file top tags: %v", err)
	}
	if !reflect.DeepEqual(top, []string{"t1", "t2"}) {
		t.Fatalf("unexpected file top tags: %v", top)
	}

	c, ok, err := st.GetTag(ctx, "run-1", "t1")
	if err != nil {
		t.Fatalf("get tag: %v", err)
	}
	if !ok || c != (model.TagCount{Records: 2, Words: 5}) {
		t.Fatalf("unexpected tag: %+v ok=%v", c, ok)
	}

	if _, ok, err := st.GetTag(ctx, "run-1", "missing"); err != nil || ok {
		t.Fatalf("expected missing tag, got ok=%v err=%v", ok, err)
	}

	runs, err := st.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" || runs[0].ReportID != model.DefaultReportID || runs[0].Files != 2 {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}

func TestSaveReportKeepsRunsApart(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.SaveReport(ctx, "run-1", testReport()); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := testReport()
	second.Tags = model.GlobalTagStats{"t9": {Records: 1, Words: 1}}
	second.Totals = model.Rankings{ChattyFiles: []string{"a.jsonl"}, ChattyTags: []string{"t9"}}
	if err := st.SaveReport(ctx, "run-2", second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	if _, ok, err := st.GetTag(ctx, "run-2", "t1"); err != nil || ok {
		t.Fatalf("expected t1 absent from run-2, got ok=%v err=%v", ok, err)
	}
	rankings, err := st.ListRankings(ctx, "run-1")
	if err != nil {
		t.Fatalf("list rankings: %v", err)
	}
	if !reflect.DeepEqual(rankings.ChattyTags, []string{"t2", "t1"}) {
		t.Fatalf("run-1 rankings changed: %+v", rankings)
	}
}

func TestSaveReportDuplicateRunRollsBack(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.SaveReport(ctx, "run-1", testReport()); err != nil {
		t.Fatalf("save: %v", err)
	}
	changed := testReport()
	changed.Tags = model.GlobalTagStats{"t3": {Records: 4, Words: 4}}
	if err := st.SaveReport(ctx, "run-1", changed); err == nil {
		t.Fatalf("expected duplicate run error")
	}
	if _, ok, err := st.GetTag(ctx, "run-1", "t3"); err != nil || ok {
		t.Fatalf("expected rollback, got ok=%v err=%v", ok, err)
	}
}

func TestSaveReportRejectsEmptyRunID(t *testing.T) {
	st := openTestStore(t)
	if err := st.SaveReport(context.Background(), "", testReport()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListRankingsUnknownRun(t *testing.T) {
	st := openTestStore(t)
	rankings, err := st.ListRankings(context.Background(), "nope")
	if err != nil {
		t.Fatalf("list rankings: %v", err)
	}
	if len(rankings.ChattyFiles) != 0 || len(rankings.ChattyTags) != 0 {
		t.Fatalf("expected empty rankings, got %+v", rankings)
	}
}
