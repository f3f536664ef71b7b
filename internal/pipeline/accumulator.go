// Package pipeline turns input files into per-file statistics.
package pipeline

import (
	"github.com/verte-zerg/tagstat/internal/model"
	"github.com/verte-zerg/tagstat/internal/record"
)

// Accumulator is the fold state of one partition of records.
type Accumulator struct {
	Words   int
	Records int
	Tags    map[string]model.TagCount
}

// NewAccumulator returns the identity accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{Tags: map[string]model.TagCount{}}
}

// Add folds one record in. The record's word count is added once to the
// totals and once per tag occurrence to that tag.
func (a *Accumulator) Add(rec model.Record) {
	words := record.CountWords(rec.Texts)
	a.Words += words
	a.Records++
	for _, tag := range rec.Tags {
		a.Tags[tag] = a.Tags[tag].Add(model.TagCount{Records: 1, Words: words})
	}
}

// Merge adds other into a and returns a. other must not be used afterwards.
func (a *Accumulator) Merge(other *Accumulator) *Accumulator {
	if other == nil {
		return a
	}
	a.Words += other.Words
	a.Records += other.Records
	model.MergeTagCounts(a.Tags, other.Tags)
	return a
}
