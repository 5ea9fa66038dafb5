package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a series of readings as a single row of block
// characters, used for the hourly temperature chart.
type Sparkline struct {
	Color string
	// Min and Max fix the vertical range when Fixed is true; otherwise
	// the range is taken from the data.
	Min, Max float64
	Fixed    bool
}

// Render draws up to width samples from values. With fewer values than
// width the line is left-aligned and padded.
func (s Sparkline) Render(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return strings.Repeat(" ", max2(width, 0))
	}
	if len(values) > width {
		values = values[:width]
	}

	lo, hi := s.Min, s.Max
	if !s.Fixed {
		lo, hi = values[0], values[0]
		for _, v := range values[1:] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		ratio := math.Min(math.Max((v-lo)/span, 0), 1)
		idx := int(math.Round(ratio * float64(len(sparkBlocks)-1)))
		b.WriteRune(sparkBlocks[idx])
	}
	line := b.String()
	if pad := width - len(values); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	if s.Color == "" {
		return line
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(line)
}
