package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/skycast/pkg/components"
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/theme"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// renderMainRow lays the current-conditions panel beside the hero visual.
// Narrow terminals drop the hero rather than squeezing both.
func (m Model) renderMainRow(pal theme.Palette, width int) string {
	current := m.renderCurrent(pal)
	if width < 70 {
		return current
	}
	heroWidth := width - lipgloss.Width(current) - 1
	if heroWidth < 24 {
		return current
	}
	hero := m.renderHero(pal, heroWidth-4)
	return lipgloss.JoinHorizontal(lipgloss.Top, current, " ", hero)
}

func (m Model) renderCurrent(pal theme.Palette) string {
	b := m.state.Weather
	if b == nil {
		return panelStyle(pal).Render("No forecast yet")
	}
	cur := b.Current
	units := m.state.Units
	iconStyle := m.state.Settings.IconMode.Style()

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Text))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.MutedText))
	tempStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.TempColor(cur.Temperature))).Bold(true)

	icon := weather.CodeIcon(cur.WeatherCode, iconStyle, cur.IsDay)
	label := weather.CodeLabelForTime(cur.WeatherCode, cur.IsDay)
	headline := fmt.Sprintf("%s %s  %s",
		icon, tempStyle.Render(fmt.Sprintf("%d°%s", b.CurrentTemp(units), units.Symbol())), text.Render(label))

	rows := []string{headline}
	feels := weather.RoundTemp(weather.ConvertTemp(cur.ApparentTemperature, units))
	rows = append(rows, muted.Render(fmt.Sprintf("Feels like %d°%s", feels, units.Symbol())))
	if high, low, ok := b.HighLow(units); ok {
		rows = append(rows, fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color(pal.TempWarm)).Render(fmt.Sprintf("H %d°", high)),
			lipgloss.NewStyle().Foreground(lipgloss.Color(pal.TempCold)).Render(fmt.Sprintf("L %d°", low))))
	}
	rows = append(rows, muted.Render(fmt.Sprintf("Humidity  %d%%", int(cur.RelativeHumidity))))
	rows = append(rows, muted.Render(fmt.Sprintf("Wind      %s %s", windText(cur.WindSpeed, units), windArrow(cur.WindDirection))))
	rows = append(rows, muted.Render(fmt.Sprintf("Pressure  %d hPa", int(cur.PressureMSL))))
	if b.AirQuality != nil {
		rows = append(rows, muted.Render("Air       "+b.AirQuality.DisplayValue()))
	}

	return panelStyle(pal).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderHero(pal theme.Palette, width int) string {
	const heroHeight = 8
	var body string
	switch m.state.Settings.HeroVisual {
	case settings.HeroGaugeCluster:
		body = m.renderGaugeCluster(pal, width)
	case settings.HeroSkyObservatory:
		body = m.renderSkyObservatory(pal, width, heroHeight)
	default:
		body = m.renderAtmosCanvas(pal, width, heroHeight)
	}
	return panelStyle(pal).Width(width + 2).Render(body)
}

// renderAtmosCanvas projects the normalized particle field onto a text
// canvas. A thunder flash brightens the whole pane for a frame or two.
func (m Model) renderAtmosCanvas(pal theme.Palette, width, height int) string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}
	if m.engine != nil {
		for _, p := range m.engine.Field() {
			x := int(p.X * float64(width))
			y := int(p.Y * float64(height))
			if x >= 0 && x < width && y >= 0 && y < height {
				grid[y][x] = p.Glyph
			}
		}
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Particle))
	if m.engine != nil && m.engine.FlashActive() {
		style = style.Foreground(lipgloss.Color(pal.Warning)).Bold(true)
	}
	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderGaugeCluster(pal theme.Palette, width int) string {
	b := m.state.Weather
	if b == nil {
		return "No data"
	}
	barWidth := width - 14
	if barWidth < 6 {
		barWidth = 6
	}
	meter := func(label, color string, value, max float64, suffix string) string {
		g := components.Meter{Label: label, LabelWidth: 10, FillColor: color, TrackColor: pal.RangeTrack}
		return g.Render(value, max, barWidth) + " " + suffix
	}
	cur := b.Current
	rows := []string{
		meter("Humidity", pal.Info, cur.RelativeHumidity, 100, fmt.Sprintf("%d%%", int(cur.RelativeHumidity))),
		meter("Clouds", pal.MutedText, cur.CloudCover, 100, fmt.Sprintf("%d%%", int(cur.CloudCover))),
		meter("Wind", pal.Accent, cur.WindSpeed, 120, windText(cur.WindSpeed, m.state.Units)),
		meter("Gusts", pal.Warning, cur.WindGusts, 160, windText(cur.WindGusts, m.state.Units)),
	}
	if len(b.Daily) > 0 && b.Daily[0].UVIndexMax != nil {
		uv := *b.Daily[0].UVIndexMax
		rows = append(rows, meter("UV Index", pal.Danger, uv, 11, fmt.Sprintf("%.1f", uv)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSkyObservatory sketches the sun's (or moon's) position between
// sunrise and sunset along a flat horizon.
func (m Model) renderSkyObservatory(pal theme.Palette, width, height int) string {
	b := m.state.Weather
	if b == nil || len(b.Daily) == 0 || b.Daily[0].Sunrise == nil || b.Daily[0].Sunset == nil {
		return "No sun data"
	}
	sunrise, sunset := *b.Daily[0].Sunrise, *b.Daily[0].Sunset
	now := m.state.Now()

	frac := 0.0
	if span := sunset.Sub(sunrise); span > 0 {
		frac = float64(now.Sub(sunrise)) / float64(span)
	}
	night := frac < 0 || frac > 1
	if night {
		// Rough moon track: reuse the arc with the remaining fraction.
		frac = clamp01(frac - 1)
	}
	frac = clamp01(frac)

	skyHeight := height - 2
	grid := make([][]rune, skyHeight)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}
	// Parabolic arc peaks mid-pane.
	x := int(frac * float64(width-1))
	arcY := float64(skyHeight-1) * (1 - 4*frac*(1-frac))
	y := int(arcY)
	if y >= 0 && y < skyHeight && x >= 0 && x < width {
		glyph := '☀'
		if night {
			glyph = '☾'
		}
		grid[y][x] = glyph
	}

	bodyColor := pal.LandmarkWarm
	if night {
		bodyColor = pal.LandmarkCool
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(bodyColor))
	lines := make([]string, 0, height)
	for _, row := range grid {
		lines = append(lines, style.Render(string(row)))
	}
	horizon := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.Border)).Render(strings.Repeat("─", width))
	times := lipgloss.NewStyle().Foreground(lipgloss.Color(pal.MutedText)).Render(
		components.PadRight("↑ "+sunrise.Format("15:04"), width-8) + "↓ " + sunset.Format("15:04"))
	lines = append(lines, horizon, times)
	return strings.Join(lines, "\n")
}

func windText(kmh float64, units weather.Units) string {
	if units == weather.UnitsFahrenheit {
		return fmt.Sprintf("%d mph", weather.RoundTemp(weather.ConvertWindSpeed(kmh)))
	}
	return fmt.Sprintf("%d km/h", weather.RoundWindSpeed(kmh))
}

var windArrows = []rune("↓↙←↖↑↗→↘")

// windArrow points where the wind blows toward; direction is the meteorological
// "coming from" bearing.
func windArrow(degrees float64) string {
	idx := int((degrees+22.5)/45) % 8
	if idx < 0 {
		idx += 8
	}
	return string(windArrows[idx])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
