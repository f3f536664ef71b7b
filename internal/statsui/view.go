package statsui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/tagstat/internal/model"
)

type tagOrder int

const (
	orderByRatio tagOrder = iota
	orderByName
	orderByRecords
)

func (o tagOrder) next() tagOrder {
	return (o + 1) % 3
}

func (o tagOrder) String() string {
	switch o {
	case orderByName:
		return "name"
	case orderByRecords:
		return "records"
	default:
		return "ratio"
	}
}

func renderOverview(report model.Report, width int) string {
	if len(report.Files) == 0 {
		return "No input files found."
	}
	var words, records int
	for _, f := range report.Files {
		words += f.TotalWords
		records += f.TotalRecords
	}
	cards := []string{
		metricCard("Files", humanize.Comma(int64(len(report.Files)))),
		metricCard("Records", humanize.Comma(int64(records))),
		metricCard("Words", humanize.Comma(int64(words))),
		metricCard("Tags", humanize.Comma(int64(len(report.Tags)))),
		metricCard("Words/Record", fmt.Sprintf("%.2f", model.Ratio(words, records))),
	}
	var summary string
	if width < 80 {
		summary = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
		summary = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}

	lines := []string{summary, "", headerStyle.Render("Chattiest sites")}
	lines = append(lines, numbered(report.Totals.ChattyFiles)...)
	lines = append(lines, "", headerStyle.Render("Chattiest tags"))
	lines = append(lines, numbered(report.Totals.ChattyTags)...)
	return strings.Join(lines, "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func numbered(names []string) []string {
	if len(names) == 0 {
		return []string{"  -"}
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = fmt.Sprintf("%3d. %s", i+1, name)
	}
	return out
}

func newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(1),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func fileColumns() []table.Column {
	return []table.Column{
		{Title: "File", Width: 24},
		{Title: "Records", Width: 9},
		{Title: "Words", Width: 11},
		{Title: "Ratio", Width: 8},
		{Title: "Top Tags", Width: 40},
	}
}

func fileRows(files []model.FileStats) []table.Row {
	rows := make([]table.Row, 0, len(files))
	for _, f := range files {
		rows = append(rows, table.Row{
			f.Name,
			humanize.Comma(int64(f.TotalRecords)),
			humanize.Comma(int64(f.TotalWords)),
			fmt.Sprintf("%.2f", f.Ratio()),
			strings.Join(f.TopTags, ", "),
		})
	}
	return rows
}

func tagColumns() []table.Column {
	return []table.Column{
		{Title: "Tag", Width: 24},
		{Title: "Records", Width: 9},
		{Title: "Words", Width: 11},
		{Title: "Ratio", Width: 8},
	}
}

func tagRows(tags model.GlobalTagStats, order tagOrder, filter string) []table.Row {
	filter = strings.ToLower(filter)
	names := make([]string, 0, len(tags))
	for name := range tags {
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := tags[names[i]], tags[names[j]]
		switch order {
		case orderByRatio:
			if a.Ratio() != b.Ratio() {
				return a.Ratio() > b.Ratio()
			}
		case orderByRecords:
			if a.Records != b.Records {
				return a.Records > b.Records
			}
		}
		return names[i] < names[j]
	})
	rows := make([]table.Row, 0, len(names))
	for _, name := range names {
		c := tags[name]
		rows = append(rows, table.Row{
			name,
			humanize.Comma(int64(c.Records)),
			humanize.Comma(int64(c.Words)),
			fmt.Sprintf("%.2f", c.Ratio()),
		})
	}
	return rows
}
