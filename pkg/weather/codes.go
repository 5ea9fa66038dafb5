package weather

// Category buckets WMO weather codes into the handful of states the
// renderer and particle layer care about.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryClear
	CategoryCloudy
	CategoryRain
	CategorySnow
	CategoryFog
	CategoryThunder
)

// CodeCategory maps a WMO weather code to its Category.
func CodeCategory(code int) Category {
	switch {
	case code == 0 || code == 1:
		return CategoryClear
	case code == 2 || code == 3:
		return CategoryCloudy
	case code == 45 || code == 48:
		return CategoryFog
	case (code >= 51 && code <= 57) || (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return CategoryRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return CategorySnow
	case code == 95 || code == 96 || code == 99:
		return CategoryThunder
	default:
		return CategoryUnknown
	}
}

var codeLabels = map[int]string{
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm + light hail",
	99: "Thunderstorm + heavy hail",
}

// CodeLabel returns the daytime label for a WMO weather code.
func CodeLabel(code int) string {
	return CodeLabelForTime(code, true)
}

// CodeLabelForTime returns the label for a code, distinguishing clear day
// from clear night.
func CodeLabelForTime(code int, isDay bool) string {
	switch code {
	case 0:
		if isDay {
			return "Clear sky"
		}
		return "Clear night"
	case 1:
		if isDay {
			return "Mainly clear"
		}
		return "Mainly clear night"
	}
	if label, ok := codeLabels[code]; ok {
		return label
	}
	return "Unknown"
}

// IconStyle selects which glyph set CodeIcon draws from.
type IconStyle int

const (
	IconUnicode IconStyle = iota
	IconASCII
	IconEmoji
)

// CodeIcon returns a short glyph for a weather code in the requested style.
func CodeIcon(code int, style IconStyle, isDay bool) string {
	ascii, emoji, unicode := iconTokens(CodeCategory(code), isDay)
	switch style {
	case IconASCII:
		return ascii
	case IconEmoji:
		return emoji
	default:
		return unicode
	}
}

func iconTokens(category Category, isDay bool) (ascii, emoji, unicode string) {
	switch category {
	case CategoryClear:
		if isDay {
			return "SUN", "☀️", "☀"
		}
		return "MON", "🌙", "☾"
	case CategoryCloudy:
		return "CLD", "☁️", "☁"
	case CategoryRain:
		return "RAN", "🌧️", "☂"
	case CategorySnow:
		return "SNW", "🌨️", "❄"
	case CategoryFog:
		return "FOG", "🌫️", "░"
	case CategoryThunder:
		return "THN", "⛈️", "⚡"
	default:
		return "---", "☁️", "☁"
	}
}
