package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tagstat/internal/model"
)

var (
	fileHeaders = []string{"FILE", "RECORDS", "WORDS", "RATIO", "CHATTY TAGS"}
	tagHeaders  = []string{"TAG", "RECORDS", "WORDS", "RATIO"}
	numericCols = map[int]bool{1: true, 2: true, 3: true}
)

func writeTable(w io.Writer, report model.Report) error {
	maxWidth, capped := terminalWidth(w)
	lines := tableLines(lipgloss.NewRenderer(w), report, maxWidth, capped)
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write table report: %w", err)
	}
	return nil
}

// tableLines lays out the table report. When capped, every line is cut to
// maxWidth cells before any style is applied.
func tableLines(renderer *lipgloss.Renderer, report model.Report, maxWidth int, capped bool) []string {
	titleStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	headerStyle := renderer.NewStyle().Bold(true)
	mutedStyle := renderer.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	clip := func(line string) string {
		if !capped {
			return line
		}
		return runewidth.Truncate(line, maxWidth, "…")
	}
	labeled := func(label, value string) string {
		line := clip(label + value)
		if !strings.HasPrefix(line, label) {
			return mutedStyle.Render(line)
		}
		return mutedStyle.Render(label) + line[len(label):]
	}

	var out []string
	out = append(out, titleStyle.Render(clip("Report "+report.ID)), "")

	out = append(out, titleStyle.Render(clip("Files")))
	out = appendTable(out, fileHeaders, fileRows(report.Files), headerStyle, clip)
	if len(report.Files) > 1 {
		out = append(out, labeled("Ratio spread: ", "["+sparkline(fileRatios(report.Files))+"]"))
	}
	out = append(out, "")

	out = append(out, titleStyle.Render(clip("Tags")))
	out = appendTable(out, tagHeaders, tagRows(report.Tags), headerStyle, clip)
	out = append(out, "")

	out = append(out,
		labeled("Chatty sites: ", joinNames(report.Totals.ChattyFiles)),
		labeled("Chatty tags:  ", joinNames(report.Totals.ChattyTags)),
	)
	return out
}

func appendTable(out []string, headers []string, rows [][]string, headerStyle lipgloss.Style, clip func(string) string) []string {
	lines := formatTable(headers, rows, numericCols)
	for i, line := range lines {
		line = clip(line)
		if i == 0 {
			line = headerStyle.Render(line)
		}
		out = append(out, line)
	}
	return out
}

func fileRows(files []model.FileStats) [][]string {
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{
			f.Name,
			humanize.Comma(int64(f.TotalRecords)),
			humanize.Comma(int64(f.TotalWords)),
			formatRatio(f.Ratio()),
			joinNames(f.TopTags),
		})
	}
	return rows
}

func tagRows(tags model.GlobalTagStats) [][]string {
	names := sortedTags(tags)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		c := tags[name]
		rows = append(rows, []string{
			name,
			humanize.Comma(int64(c.Records)),
			humanize.Comma(int64(c.Words)),
			formatRatio(c.Ratio()),
		})
	}
	return rows
}

func sortedTags(tags map[string]model.TagCount) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := runewidth.StringWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := strings.Repeat(" ", width-valueWidth)
	if rightAlign {
		return padding + value
	}
	return value + padding
}
