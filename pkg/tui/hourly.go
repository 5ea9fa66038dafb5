package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/skycast/pkg/app"
	"gitlab.com/tinyland/lab/skycast/pkg/components"
	"gitlab.com/tinyland/lab/skycast/pkg/theme"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

const hourColumnWidth = 6

// renderHourly paints the scrollable hourly strip in the active view mode.
func (m Model) renderHourly(pal theme.Palette, width int) string {
	b := m.state.Weather
	if b == nil || len(b.Hourly) == 0 {
		return panelStyle(pal).Render("No hourly data")
	}
	visible := app.VisibleHourCount(width)
	start := m.state.HourlyOffset
	if start > len(b.Hourly)-1 {
		start = len(b.Hourly) - 1
	}
	end := start + visible
	if end > len(b.Hourly) {
		end = len(b.Hourly)
	}
	window := b.Hourly[start:end]

	var body string
	switch m.state.HourlyViewMode {
	case weather.HourlyViewChart:
		body = m.renderHourlyChart(pal, window, width)
	case weather.HourlyViewHybrid:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderHourlyTable(pal, window, start),
			m.renderHourlyChart(pal, window, width))
	default:
		body = m.renderHourlyTable(pal, window, start)
	}
	return panelStyle(pal).Render(body)
}

func (m Model) renderHourlyTable(pal theme.Palette, window []weather.HourlyForecast, start int) string {
	iconStyle := m.state.Settings.IconMode.Style()
	units := m.state.Units
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.MutedText))
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(pal.PopupText)).
		Background(lipgloss.Color(pal.SurfaceAlt)).
		Bold(true)

	var times, icons, temps, rain []string
	for i, h := range window {
		timeCell := components.Center(h.Time.Format("15"), hourColumnWidth)
		iconCell := " "
		if h.WeatherCode != nil {
			isDay := true
			if h.IsDay != nil {
				isDay = *h.IsDay
			}
			iconCell = weather.CodeIcon(*h.WeatherCode, iconStyle, isDay)
		}
		iconCell = components.Center(iconCell, hourColumnWidth)
		tempCell := components.Center("--", hourColumnWidth)
		tempColor := pal.MutedText
		if h.Temperature != nil {
			tempCell = components.Center(fmt.Sprintf("%d°", weather.RoundTemp(weather.ConvertTemp(*h.Temperature, units))), hourColumnWidth)
			tempColor = pal.TempColor(*h.Temperature)
		}
		rainCell := components.Center(" ", hourColumnWidth)
		if h.PrecipitationProbability != nil && *h.PrecipitationProbability >= 5 {
			rainCell = components.Center(fmt.Sprintf("%d%%", int(*h.PrecipitationProbability)), hourColumnWidth)
		}

		if start+i == m.state.HourlyCursor {
			times = append(times, selected.Render(timeCell))
			icons = append(icons, selected.Render(iconCell))
			temps = append(temps, selected.Render(tempCell))
			rain = append(rain, selected.Render(rainCell))
			continue
		}
		times = append(times, muted.Render(timeCell))
		icons = append(icons, lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Text)).Render(iconCell))
		temps = append(temps, lipgloss.NewStyle().Foreground(lipgloss.Color(tempColor)).Render(tempCell))
		rain = append(rain, lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Info)).Render(rainCell))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(times, ""),
		strings.Join(icons, ""),
		strings.Join(temps, ""),
		strings.Join(rain, ""))
}

func (m Model) renderHourlyChart(pal theme.Palette, window []weather.HourlyForecast, width int) string {
	units := m.state.Units
	values := make([]float64, 0, len(window))
	lo, hi := 0.0, 0.0
	for _, h := range window {
		if h.Temperature == nil {
			continue
		}
		v := weather.ConvertTemp(*h.Temperature, units)
		if len(values) == 0 || v < lo {
			lo = v
		}
		if len(values) == 0 || v > hi {
			hi = v
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return "No temperature data"
	}
	spark := components.Sparkline{Color: pal.Accent}
	chartWidth := len(window) * hourColumnWidth
	if chartWidth > width-4 {
		chartWidth = width - 4
	}
	line := spark.Render(stretch(values, chartWidth), chartWidth)
	labels := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.MutedText)).Render(
		components.PadRight(fmt.Sprintf("%d°", weather.RoundTemp(lo)), chartWidth-4) +
			fmt.Sprintf("%d°", weather.RoundTemp(hi)))
	return lipgloss.JoinVertical(lipgloss.Left, line, labels)
}

// stretch resamples values to exactly n points with nearest-neighbor
// picking, so the chart fills its row regardless of the window size.
func stretch(values []float64, n int) []float64 {
	if n <= 0 || len(values) == 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		idx := i * len(values) / n
		out[i] = values[idx]
	}
	return out
}

func (m Model) renderDaily(pal theme.Palette, width int) string {
	b := m.state.Weather
	if b == nil || len(b.Daily) == 0 {
		return panelStyle(pal).Render("No daily data")
	}
	iconStyle := m.state.Settings.IconMode.Style()
	units := m.state.Units
	days := b.Daily
	if len(days) > 7 {
		days = days[:7]
	}
	colWidth := (width - 4) / len(days)
	if colWidth < 8 {
		colWidth = 8
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.MutedText))
	var cols []string
	for _, d := range days {
		rows := []string{muted.Render(components.Center(d.Date.Format("Mon"), colWidth))}
		icon := " "
		if d.WeatherCode != nil {
			icon = weather.CodeIcon(*d.WeatherCode, iconStyle, true)
		}
		rows = append(rows, components.Center(icon, colWidth))
		span := "--"
		if d.TemperatureMax != nil && d.TemperatureMin != nil {
			span = fmt.Sprintf("%d°/%d°",
				weather.RoundTemp(weather.ConvertTemp(*d.TemperatureMax, units)),
				weather.RoundTemp(weather.ConvertTemp(*d.TemperatureMin, units)))
		}
		rows = append(rows, lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Text)).Render(components.Center(span, colWidth)))
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
	return panelStyle(pal).Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}
