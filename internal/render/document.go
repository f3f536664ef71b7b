package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tagstat/internal/model"
)

// document is the structured shape of a report. Maps are emitted with sorted
// keys by both encoders, which keeps the output stable across runs.
type document struct {
	Padron string           `json:"padron" yaml:"padron"`
	Sites  map[string]site  `json:"sites" yaml:"sites"`
	Tags   map[string]count `json:"tags" yaml:"tags"`
	Totals totals           `json:"totals" yaml:"totals"`
}

type site struct {
	Questions  int              `json:"questions" yaml:"questions"`
	Words      int              `json:"words" yaml:"words"`
	Tags       map[string]count `json:"tags" yaml:"tags"`
	ChattyTags []string         `json:"chatty_tags" yaml:"chatty_tags"`
}

type count struct {
	Questions int `json:"questions" yaml:"questions"`
	Words     int `json:"words" yaml:"words"`
}

type totals struct {
	ChattySites []string `json:"chatty_sites" yaml:"chatty_sites"`
	ChattyTags  []string `json:"chatty_tags" yaml:"chatty_tags"`
}

func newDocument(report model.Report) document {
	doc := document{
		Padron: report.ID,
		Sites:  make(map[string]site, len(report.Files)),
		Tags:   counts(report.Tags),
		Totals: totals{
			ChattySites: nonNil(report.Totals.ChattyFiles),
			ChattyTags:  nonNil(report.Totals.ChattyTags),
		},
	}
	for _, f := range report.Files {
		doc.Sites[f.Name] = site{
			Questions:  f.TotalRecords,
			Words:      f.TotalWords,
			Tags:       counts(f.Tags),
			ChattyTags: nonNil(f.TopTags),
		}
	}
	return doc
}

func counts(tags map[string]model.TagCount) map[string]count {
	out := make(map[string]count, len(tags))
	for tag, c := range tags {
		out[tag] = count{Questions: c.Records, Words: c.Words}
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func writeJSON(w io.Writer, report model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(report)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, report model.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(report)); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML report: %w", err)
	}
	return nil
}
