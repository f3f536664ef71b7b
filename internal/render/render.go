// Package render serializes reports to the output stream.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/tagstat/internal/model"
)

// Format selects the report encoding.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTable, FormatMarkdown}

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return FormatJSON, nil
	case "md":
		return FormatMarkdown, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (available: %s)", s, formatNames())
}

// Write encodes report to w in the given format.
func Write(w io.Writer, report model.Report, format Format) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	case FormatTable:
		return writeTable(w, report)
	case FormatMarkdown:
		return writeMarkdown(w, report)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
