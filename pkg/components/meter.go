package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Eighth-block characters give the meter sub-cell resolution.
var meterBlocks = [9]rune{
	' ',
	'▏', // 1/8
	'▎', // 2/8
	'▍', // 3/8
	'▌', // 4/8
	'▋', // 5/8
	'▊', // 6/8
	'▉', // 7/8
	'█', // full
}

// Meter is a horizontal bar for the gauge-cluster hero: humidity, cloud
// cover, wind relative to a reference, and similar 0-to-max readings.
type Meter struct {
	Label      string
	LabelWidth int
	FillColor  string // palette color string, "#rrggbb" or ANSI index
	TrackColor string
}

// Render draws the meter at the given bar width. value is clamped to
// [0, max]; a non-positive max renders an empty bar.
func (m Meter) Render(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio := 0.0
	if max > 0 {
		ratio = math.Min(math.Max(value/max, 0), 1)
	}

	totalEighths := width * 8
	filled := int(math.Round(ratio * float64(totalEighths)))

	fullCells := filled / 8
	partial := filled % 8
	emptyCells := width - fullCells
	if partial > 0 {
		emptyCells--
	}

	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(m.FillColor))
	track := lipgloss.NewStyle().Foreground(lipgloss.Color(m.TrackColor))

	var b strings.Builder
	if m.Label != "" {
		b.WriteString(PadRight(m.Label, max2(m.LabelWidth, len(m.Label)+1)))
	}
	if fullCells > 0 {
		b.WriteString(fill.Render(strings.Repeat(string(meterBlocks[8]), fullCells)))
	}
	if partial > 0 {
		b.WriteString(fill.Render(string(meterBlocks[partial])))
	}
	if emptyCells > 0 {
		b.WriteString(track.Render(strings.Repeat(string(meterBlocks[8]), emptyCells)))
	}
	return b.String()
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}
