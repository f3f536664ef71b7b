package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour/v2"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/tagstat/internal/model"
)

func writeMarkdown(w io.Writer, report model.Report) error {
	doc := markdownDocument(report)
	if width, ok := terminalWidth(w); ok {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
			glamour.WithPreservedNewLines(),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		styled, err := r.Render(doc)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		doc = styled
	}
	if _, err := io.WriteString(w, doc); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	return nil
}

func markdownDocument(report model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Report %s\n\n", escapeCell(report.ID))

	b.WriteString("## Files\n\n")
	b.WriteString("| File | Records | Words | Ratio | Chatty tags |\n")
	b.WriteString("|---|---:|---:|---:|---|\n")
	for _, f := range report.Files {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			escapeCell(f.Name),
			humanize.Comma(int64(f.TotalRecords)),
			humanize.Comma(int64(f.TotalWords)),
			formatRatio(f.Ratio()),
			escapeCell(joinNames(f.TopTags)),
		)
	}

	b.WriteString("\n## Tags\n\n")
	b.WriteString("| Tag | Records | Words | Ratio |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, name := range sortedTags(report.Tags) {
		c := report.Tags[name]
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(name),
			humanize.Comma(int64(c.Records)),
			humanize.Comma(int64(c.Words)),
			formatRatio(c.Ratio()),
		)
	}

	b.WriteString("\n## Totals\n\n")
	fmt.Fprintf(&b, "- Chatty sites: %s\n", escapeCell(joinNames(report.Totals.ChattyFiles)))
	fmt.Fprintf(&b, "- Chatty tags: %s\n", escapeCell(joinNames(report.Totals.ChattyTags)))
	return b.String()
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}
