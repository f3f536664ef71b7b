package pipeline

import (
	"testing"

	"github.com/verte-zerg/tagstat/internal/model"
)

func TestAccumulatorCountsTagWordsPerTag(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(model.Record{Texts: []string{"one two", "three four five"}, Tags: []string{"A", "B"}})

	if acc.Words != 5 {
		t.Fatalf("expected 5 words, got %d", acc.Words)
	}
	if acc.Records != 1 {
		t.Fatalf("expected 1 record, got %d", acc.Records)
	}
	for _, tag := range []string{"A", "B"} {
		if got := acc.Tags[tag]; got != (model.TagCount{Records: 1, Words: 5}) {
			t.Fatalf("tag %s: got %+v", tag, got)
		}
	}
}

func TestAccumulatorRecordWithoutTags(t *testing.T) {
	acc := NewAccumulator()
	acc.Add(model.Record{Texts: []string{"lonely words here"}})
	acc.Add(model.Record{})
	if acc.Words != 3 || acc.Records != 2 || len(acc.Tags) != 0 {
		t.Fatalf("unexpected accumulator: %+v", acc)
	}
}

func TestAccumulatorMerge(t *testing.T) {
	left := NewAccumulator()
	left.Add(model.Record{Texts: []string{"x y"}, Tags: []string{"t1"}})
	right := NewAccumulator()
	right.Add(model.Record{Texts: []string{"p q r"}, Tags: []string{"t1", "t2"}})

	merged := left.Merge(right)
	if merged.Words != 5 || merged.Records != 2 {
		t.Fatalf("unexpected totals: %+v", merged)
	}
	want := map[string]model.TagCount{
		"t1": {Records: 2, Words: 5},
		"t2": {Records: 1, Words: 3},
	}
	for tag, count := range want {
		if merged.Tags[tag] != count {
			t.Fatalf("tag %s: got %+v, want %+v", tag, merged.Tags[tag], count)
		}
	}
	if merged.Merge(NewAccumulator()).Words != 5 {
		t.Fatalf("merging the identity changed the totals")
	}
}
