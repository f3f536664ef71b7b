package render

import (
	"math"
	"strings"

	"github.com/verte-zerg/tagstat/internal/model"
)

const sparkChars = " .:-=+*#%@"

// sparkline renders one ASCII cell per value, scaled between the minimum and maximum.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func fileRatios(files []model.FileStats) []float64 {
	ratios := make([]float64, len(files))
	for i, f := range files {
		ratios[i] = f.Ratio()
	}
	return ratios
}
