// Package settings holds the user-adjustable runtime preferences for the
// dashboard and their on-disk TOML representation. Everything in here is
// plain data: the application state machine decides when values change and
// when they are persisted.
package settings

import (
	"fmt"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// Theme names a color palette for the dashboard.
type Theme int

const (
	ThemeAuto Theme = iota
	ThemeAurora
	ThemeMidnightCyan
	ThemeAubergine
	ThemeHoth
	ThemeMonument
	ThemeNord
	ThemeCatppuccinMocha
	ThemeMono
	ThemeHighContrast
	ThemeDracula
	ThemeGruvboxMaterialDark
	ThemeKanagawaWave
	ThemeAyuMirage
	ThemeAyuLight
	ThemePoimandresStorm
	ThemeSelenizedDark
	ThemeNoClownFiesta
)

// AllThemes is the cycle order for the settings panel and demo sweep.
var AllThemes = []Theme{
	ThemeAuto,
	ThemeAurora,
	ThemeMidnightCyan,
	ThemeAubergine,
	ThemeHoth,
	ThemeMonument,
	ThemeNord,
	ThemeCatppuccinMocha,
	ThemeMono,
	ThemeHighContrast,
	ThemeDracula,
	ThemeGruvboxMaterialDark,
	ThemeKanagawaWave,
	ThemeAyuMirage,
	ThemeAyuLight,
	ThemePoimandresStorm,
	ThemeSelenizedDark,
	ThemeNoClownFiesta,
}

var themeNames = map[Theme]struct{ value, label string }{
	ThemeAuto:                {"auto", "Auto"},
	ThemeAurora:              {"aurora", "Aurora"},
	ThemeMidnightCyan:        {"midnight-cyan", "Midnight Cyan"},
	ThemeAubergine:           {"aubergine", "Aubergine"},
	ThemeHoth:                {"hoth", "Hoth"},
	ThemeMonument:            {"monument", "Monument"},
	ThemeNord:                {"nord", "Nord"},
	ThemeCatppuccinMocha:     {"catppuccin-mocha", "Catppuccin Mocha"},
	ThemeMono:                {"mono", "Mono"},
	ThemeHighContrast:        {"high-contrast", "High contrast"},
	ThemeDracula:             {"dracula", "Dracula"},
	ThemeGruvboxMaterialDark: {"gruvbox-material-dark", "Gruvbox Material"},
	ThemeKanagawaWave:        {"kanagawa-wave", "Kanagawa Wave"},
	ThemeAyuMirage:           {"ayu-mirage", "Ayu Mirage"},
	ThemeAyuLight:            {"ayu-light", "Ayu Light"},
	ThemePoimandresStorm:     {"poimandres-storm", "Poimandres Storm"},
	ThemeSelenizedDark:       {"selenized-dark", "Selenized Dark"},
	ThemeNoClownFiesta:       {"no-clown-fiesta", "No Clown Fiesta"},
}

func (t Theme) String() string { return themeNames[t].value }

// Label returns the human-readable name shown in the settings panel.
func (t Theme) Label() string {
	if n, ok := themeNames[t]; ok {
		return n.label
	}
	return "Auto"
}

func (t Theme) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Theme) UnmarshalText(text []byte) error {
	for theme, n := range themeNames {
		if n.value == string(text) {
			*t = theme
			return nil
		}
	}
	return fmt.Errorf("unknown theme %q", text)
}

// ParseTheme resolves a CLI theme flag value.
func ParseTheme(value string) (Theme, error) {
	var t Theme
	if err := t.UnmarshalText([]byte(value)); err != nil {
		return ThemeAuto, err
	}
	return t, nil
}

// MotionSetting controls how much animation the render layer runs.
type MotionSetting int

const (
	MotionFull MotionSetting = iota
	MotionReduced
	MotionOff
)

// AllMotionSettings is the cycle order for the settings panel.
var AllMotionSettings = []MotionSetting{MotionFull, MotionReduced, MotionOff}

func (m MotionSetting) String() string {
	switch m {
	case MotionReduced:
		return "reduced"
	case MotionOff:
		return "off"
	default:
		return "full"
	}
}

// Label returns the settings-panel display name.
func (m MotionSetting) Label() string {
	switch m {
	case MotionReduced:
		return "Reduced"
	case MotionOff:
		return "Off"
	default:
		return "Full"
	}
}

func (m MotionSetting) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *MotionSetting) UnmarshalText(text []byte) error {
	switch string(text) {
	case "full":
		*m = MotionFull
	case "reduced":
		*m = MotionReduced
	case "off":
		*m = MotionOff
	default:
		return fmt.Errorf("unknown motion setting %q", text)
	}
	return nil
}

// IconMode selects the glyph set for weather icons.
type IconMode int

const (
	IconsUnicode IconMode = iota
	IconsASCII
	IconsEmoji
)

// AllIconModes is the cycle order for the settings panel.
var AllIconModes = []IconMode{IconsUnicode, IconsASCII, IconsEmoji}

func (m IconMode) String() string {
	switch m {
	case IconsASCII:
		return "ascii"
	case IconsEmoji:
		return "emoji"
	default:
		return "unicode"
	}
}

// Label returns the settings-panel display name.
func (m IconMode) Label() string {
	switch m {
	case IconsASCII:
		return "ASCII"
	case IconsEmoji:
		return "Emoji"
	default:
		return "Unicode"
	}
}

// Style maps the mode onto the icon table in the weather package.
func (m IconMode) Style() weather.IconStyle {
	switch m {
	case IconsASCII:
		return weather.IconASCII
	case IconsEmoji:
		return weather.IconEmoji
	default:
		return weather.IconUnicode
	}
}

func (m IconMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *IconMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unicode":
		*m = IconsUnicode
	case "ascii":
		*m = IconsASCII
	case "emoji":
		*m = IconsEmoji
	default:
		return fmt.Errorf("unknown icon mode %q", text)
	}
	return nil
}

// HeroVisual selects which large visual the hero panel renders.
type HeroVisual int

const (
	HeroAtmosCanvas HeroVisual = iota
	HeroGaugeCluster
	HeroSkyObservatory
)

// AllHeroVisuals is the cycle order for the settings panel and demo sweep.
var AllHeroVisuals = []HeroVisual{HeroAtmosCanvas, HeroGaugeCluster, HeroSkyObservatory}

func (h HeroVisual) String() string {
	switch h {
	case HeroGaugeCluster:
		return "gauge-cluster"
	case HeroSkyObservatory:
		return "sky-observatory"
	default:
		return "atmos-canvas"
	}
}

// Label returns the settings-panel display name.
func (h HeroVisual) Label() string {
	switch h {
	case HeroGaugeCluster:
		return "Gauge Cluster"
	case HeroSkyObservatory:
		return "Sky Observatory"
	default:
		return "Atmos Canvas"
	}
}

func (h HeroVisual) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *HeroVisual) UnmarshalText(text []byte) error {
	switch string(text) {
	case "atmos-canvas":
		*h = HeroAtmosCanvas
	case "gauge-cluster":
		*h = HeroGaugeCluster
	case "sky-observatory":
		*h = HeroSkyObservatory
	default:
		return fmt.Errorf("unknown hero visual %q", text)
	}
	return nil
}

// RefreshOptions are the selectable auto-refresh intervals, in seconds.
var RefreshOptions = []int{300, 600, 900, 1800}

// DefaultRefreshIntervalSecs is the out-of-the-box auto-refresh interval.
const DefaultRefreshIntervalSecs = 600

// RuntimeSettings is everything the settings panel can change plus the
// recent-location history. It round-trips through settings.toml.
type RuntimeSettings struct {
	Units               weather.Units          `toml:"units"`
	Theme               Theme                  `toml:"theme"`
	Motion              MotionSetting          `toml:"motion"`
	NoFlash             bool                   `toml:"no_flash"`
	IconMode            IconMode               `toml:"icon_mode"`
	HourlyView          weather.HourlyViewMode `toml:"hourly_view"`
	HeroVisual          HeroVisual             `toml:"hero_visual"`
	RefreshIntervalSecs int                    `toml:"refresh_interval_secs"`
	RecentLocations     []RecentLocation       `toml:"recent_locations"`
}

// Default returns the settings used when nothing is persisted and no CLI
// flag overrides apply.
func Default() RuntimeSettings {
	return RuntimeSettings{
		Units:               weather.UnitsCelsius,
		Theme:               ThemeAuto,
		Motion:              MotionFull,
		IconMode:            IconsUnicode,
		HourlyView:          weather.HourlyViewTable,
		HeroVisual:          HeroAtmosCanvas,
		RefreshIntervalSecs: DefaultRefreshIntervalSecs,
	}
}
