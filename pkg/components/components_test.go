package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"Stockholm", 20, "Stockholm"},
		{"Stockholm", 9, "Stockholm"},
		{"Stockholm", 5, "Stoc…"},
		{"Stockholm", 1, "…"},
		{"Stockholm", 0, ""},
		{"", 5, ""},
	}
	for _, tc := range cases {
		got := Truncate(tc.in, tc.width)
		if got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
		if w := ansi.StringWidth(got); w > tc.width {
			t.Errorf("Truncate(%q, %d) width = %d", tc.in, tc.width, w)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("hi", 5); got != "hi   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("hi", 5); got != "   hi" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := Center("hi", 6); got != "  hi  " {
		t.Errorf("Center = %q", got)
	}
	// Already wide enough: unchanged.
	if got := PadRight("hello", 3); got != "hello" {
		t.Errorf("PadRight overflow = %q", got)
	}
}

func TestMeterWidths(t *testing.T) {
	m := Meter{FillColor: "#ff0000", TrackColor: "#333333"}
	for _, width := range []int{1, 4, 10, 24} {
		for _, ratio := range []float64{0, 0.25, 0.5, 0.99, 1} {
			out := m.Render(ratio*100, 100, width)
			if w := ansi.StringWidth(out); w != width {
				t.Errorf("width=%d ratio=%.2f rendered width %d", width, ratio, w)
			}
		}
	}
}

func TestMeterClamps(t *testing.T) {
	m := Meter{FillColor: "1", TrackColor: "8"}
	full := m.Render(150, 100, 8)
	if !strings.Contains(ansi.Strip(full), strings.Repeat("█", 8)) {
		t.Errorf("over-max should render full bar, got %q", ansi.Strip(full))
	}
	empty := m.Render(-5, 100, 8)
	if strings.ContainsAny(ansi.Strip(empty), "▏▎▍▌▋▊▉") {
		t.Errorf("below-zero should render no fill, got %q", ansi.Strip(empty))
	}
	zero := m.Render(50, 0, 8)
	if w := ansi.StringWidth(zero); w != 8 {
		t.Errorf("zero max width = %d", w)
	}
}

func TestMeterLabel(t *testing.T) {
	m := Meter{Label: "Wind", LabelWidth: 10, FillColor: "#00ff00", TrackColor: "#222222"}
	out := ansi.Strip(m.Render(30, 100, 6))
	if !strings.HasPrefix(out, "Wind      ") {
		t.Errorf("label prefix missing: %q", out)
	}
}

func TestSparklineShape(t *testing.T) {
	s := Sparkline{}
	out := ansi.Strip(s.Render([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8))
	if out != "▁▂▃▄▅▆▇█" {
		t.Errorf("ramp = %q", out)
	}
	flat := ansi.Strip(s.Render([]float64{5, 5, 5}, 3))
	if flat != "▁▁▁" {
		t.Errorf("flat series = %q", flat)
	}
}

func TestSparklineFixedRange(t *testing.T) {
	s := Sparkline{Fixed: true, Min: -10, Max: 30}
	out := []rune(ansi.Strip(s.Render([]float64{-10, 10, 30}, 3)))
	if out[0] != '▁' || out[2] != '█' {
		t.Errorf("fixed range endpoints = %q", string(out))
	}
}

func TestSparklinePadsAndTruncates(t *testing.T) {
	s := Sparkline{}
	padded := ansi.Strip(s.Render([]float64{1, 2}, 5))
	if len([]rune(padded)) != 5 {
		t.Errorf("padded length = %d", len([]rune(padded)))
	}
	cut := ansi.Strip(s.Render([]float64{1, 2, 3, 4, 5}, 3))
	if len([]rune(cut)) != 3 {
		t.Errorf("truncated length = %d", len([]rune(cut)))
	}
}
