package tui

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// RenderOneShot formats a forecast as plain text for the non-interactive
// path, suitable for piping. No ANSI styling is applied.
func RenderOneShot(b *weather.ForecastBundle, units weather.Units, iconMode settings.IconMode) string {
	var sb strings.Builder
	cur := b.Current
	style := iconMode.Style()

	fmt.Fprintf(&sb, "%s\n", b.Location.DisplayName())
	fmt.Fprintf(&sb, "%s %d°%s  %s\n",
		weather.CodeIcon(cur.WeatherCode, style, cur.IsDay),
		b.CurrentTemp(units), units.Symbol(),
		weather.CodeLabelForTime(cur.WeatherCode, cur.IsDay))
	fmt.Fprintf(&sb, "Feels like %d°%s",
		weather.RoundTemp(weather.ConvertTemp(cur.ApparentTemperature, units)), units.Symbol())
	if high, low, ok := b.HighLow(units); ok {
		fmt.Fprintf(&sb, "  H %d° L %d°", high, low)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Humidity %d%%  Wind %s %s  Pressure %d hPa\n",
		int(cur.RelativeHumidity), windText(cur.WindSpeed, units),
		windArrow(cur.WindDirection), int(cur.PressureMSL))
	if b.AirQuality != nil {
		fmt.Fprintf(&sb, "Air quality %s\n", b.AirQuality.DisplayValue())
	}

	if len(b.Daily) == 0 {
		return sb.String()
	}
	sb.WriteByte('\n')
	days := b.Daily
	if len(days) > 7 {
		days = days[:7]
	}
	for _, d := range days {
		icon := " "
		label := ""
		if d.WeatherCode != nil {
			icon = weather.CodeIcon(*d.WeatherCode, style, true)
			label = weather.CodeLabel(*d.WeatherCode)
		}
		span := "   --   "
		if d.TemperatureMax != nil && d.TemperatureMin != nil {
			span = fmt.Sprintf("%4d°/%4d°",
				weather.RoundTemp(weather.ConvertTemp(*d.TemperatureMax, units)),
				weather.RoundTemp(weather.ConvertTemp(*d.TemperatureMin, units)))
		}
		fmt.Fprintf(&sb, "%s  %s %s  %s\n", d.Date.Format("Mon Jan 02"), icon, span, label)
	}
	return sb.String()
}
