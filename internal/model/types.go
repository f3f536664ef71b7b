// Package model defines shared data structures.
package model

// DefaultTopN is the cutoff applied to every ranking.
const DefaultTopN = 10

// DefaultReportID is the fixed identifier emitted at the top of every report.
const DefaultReportID = "102676"

// Config defines the settings of one analysis run.
type Config struct {
	Dir       string
	Ext       string
	Workers   int
	TopN      int
	Format    string
	ReportID  string
	SQLite    string
	LogLevel  string
	LogFormat string
}

// TagCount pairs the number of records carrying a tag with the words of those records.
type TagCount struct {
	Records int
	Words   int
}

// Add returns the pairwise sum of two counts.
func (c TagCount) Add(other TagCount) TagCount {
	return TagCount{
		Records: c.Records + other.Records,
		Words:   c.Words + other.Words,
	}
}

// Ratio returns words per record, or 0 when there are no records.
func (c TagCount) Ratio() float64 {
	return Ratio(c.Words, c.Records)
}

// MergeTagCounts adds every count of src into dst by per-key pairwise sum.
func MergeTagCounts(dst, src map[string]TagCount) {
	for tag, count := range src {
		dst[tag] = dst[tag].Add(count)
	}
}

// Ratio divides words by records. A zero denominator yields 0.
func Ratio(words, records int) float64 {
	if records <= 0 {
		return 0
	}
	return float64(words) / float64(records)
}

// FileStats holds the statistics of one input file.
type FileStats struct {
	Name         string
	TotalWords   int
	TotalRecords int
	Tags         map[string]TagCount
	// TopTags stays empty until the ranking pass assigns it.
	TopTags []string
}

// Ratio returns the words-per-record ratio of the file.
func (f FileStats) Ratio() float64 {
	return Ratio(f.TotalWords, f.TotalRecords)
}

// GlobalTagStats maps a tag to its counts summed over every file.
type GlobalTagStats map[string]TagCount

// Rankings holds the chattiest files and tags of a run.
type Rankings struct {
	ChattyFiles []string
	ChattyTags  []string
}

// Report is the assembled result of a run.
type Report struct {
	ID     string
	Files  []FileStats
	Tags   GlobalTagStats
	Totals Rankings
}

// Record is one decoded input line.
type Record struct {
	Texts []string
	Tags  []string
}
