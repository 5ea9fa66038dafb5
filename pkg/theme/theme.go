// Package theme derives complete terminal color palettes from compact
// three-color seeds. Every built-in theme, and the weather-adaptive auto
// theme, is defined as a gradient pair plus an accent; the rest of the
// palette is computed with WCAG contrast enforcement so text stays
// readable on every surface the dashboard paints.
package theme

import (
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// RGB is a 24-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Seed is the compact definition a full palette is derived from: the
// gradient endpoints and the accent color.
type Seed struct {
	Top    RGB
	Bottom RGB
	Accent RGB
}

// Palette is the complete color set the render layer draws with. Every
// field is a color string lipgloss accepts: "#rrggbb" for direct colors or
// a decimal index for ANSI palettes.
type Palette struct {
	Top          string
	Bottom       string
	Surface      string
	SurfaceAlt   string
	PopupSurface string

	Accent     string
	Text       string
	MutedText  string
	PopupText  string
	PopupMuted string
	Particle   string

	Border      string
	PopupBorder string

	Info    string
	Success string
	Warning string
	Danger  string

	TempFreezing string
	TempCold     string
	TempMild     string
	TempWarm     string
	TempHot      string

	RangeTrack      string
	LandmarkWarm    string
	LandmarkCool    string
	LandmarkNeutral string
}

// For returns the palette for the given theme setting, current weather
// category, and time of day. The auto theme follows the weather; explicit
// themes ignore it.
func For(t settings.Theme, category weather.Category, isDay bool, capability Capability) Palette {
	seed := seedFor(t, category, isDay)
	if capability == CapabilityBasic16 {
		return basic16Palette(t, category, seed)
	}
	return derivePalette(seed, capability)
}

func seedFor(t settings.Theme, category weather.Category, isDay bool) Seed {
	if t == settings.ThemeAuto {
		if seed, ok := autoSeeds[autoKey{category, isDay}]; ok {
			return seed
		}
		return autoFallbackSeed
	}
	if seed, ok := presetSeeds[t]; ok {
		return seed
	}
	return autoFallbackSeed
}

// TempColor buckets a Celsius temperature into the palette's five-band
// temperature scale.
func (p Palette) TempColor(celsius float64) string {
	switch {
	case celsius <= -8:
		return p.TempFreezing
	case celsius <= 2:
		return p.TempCold
	case celsius <= 16:
		return p.TempMild
	case celsius <= 28:
		return p.TempWarm
	default:
		return p.TempHot
	}
}

// ConditionColor picks the accent for a weather category, used for both
// condition labels and icons.
func (p Palette) ConditionColor(category weather.Category) string {
	switch category {
	case weather.CategoryClear:
		return p.Warning
	case weather.CategoryCloudy:
		return p.MutedText
	case weather.CategoryRain:
		return p.Info
	case weather.CategorySnow:
		return p.Text
	case weather.CategoryFog:
		return p.LandmarkNeutral
	case weather.CategoryThunder:
		return p.Danger
	default:
		return p.Accent
	}
}
