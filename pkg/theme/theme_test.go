package theme

import (
	"regexp"
	"testing"

	"gitlab.com/tinyland/lab/skycast/pkg/config"
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)
var indexPattern = regexp.MustCompile(`^\d{1,3}$`)

func paletteColors(p Palette) []string {
	return []string{
		p.Top, p.Bottom, p.Surface, p.SurfaceAlt, p.PopupSurface,
		p.Accent, p.Text, p.MutedText, p.PopupText, p.PopupMuted, p.Particle,
		p.Border, p.PopupBorder,
		p.Info, p.Success, p.Warning, p.Danger,
		p.TempFreezing, p.TempCold, p.TempMild, p.TempWarm, p.TempHot,
		p.RangeTrack, p.LandmarkWarm, p.LandmarkCool, p.LandmarkNeutral,
	}
}

func TestEveryThemeProducesCompleteTruecolorPalette(t *testing.T) {
	for _, th := range settings.AllThemes {
		p := For(th, weather.CategoryClear, true, CapabilityTrueColor)
		for i, c := range paletteColors(p) {
			if !hexPattern.MatchString(c) {
				t.Errorf("theme %v color %d = %q, want #rrggbb", th, i, c)
			}
		}
	}
}

func TestEveryThemeProducesIndexedColorsOnBasic16(t *testing.T) {
	for _, th := range settings.AllThemes {
		p := For(th, weather.CategoryRain, false, CapabilityBasic16)
		for i, c := range paletteColors(p) {
			if !indexPattern.MatchString(c) {
				t.Errorf("theme %v color %d = %q, want ANSI index", th, i, c)
			}
		}
	}
}

func TestAutoThemeFollowsWeather(t *testing.T) {
	clear := For(settings.ThemeAuto, weather.CategoryClear, true, CapabilityTrueColor)
	thunder := For(settings.ThemeAuto, weather.CategoryThunder, true, CapabilityTrueColor)
	if clear.Top == thunder.Top {
		t.Errorf("clear and thunder share top %q, want distinct gradients", clear.Top)
	}

	day := For(settings.ThemeAuto, weather.CategoryClear, true, CapabilityTrueColor)
	night := For(settings.ThemeAuto, weather.CategoryClear, false, CapabilityTrueColor)
	if day.Top == night.Top {
		t.Error("day and night clear themes are identical")
	}
}

func TestExplicitThemeIgnoresWeather(t *testing.T) {
	a := For(settings.ThemeNord, weather.CategoryClear, true, CapabilityTrueColor)
	b := For(settings.ThemeNord, weather.CategoryThunder, false, CapabilityTrueColor)
	if a != b {
		t.Error("explicit theme changed with the weather")
	}
}

func TestTextContrastOnEverySurface(t *testing.T) {
	for _, th := range settings.AllThemes {
		seed := seedFor(th, weather.CategoryClear, true)
		sc := buildScaffold(seed)
		p := derivePalette(seed, CapabilityTrueColor)

		text, err := parseHex("text", p.Text)
		if err != nil {
			t.Fatalf("theme %v: %v", th, err)
		}
		for _, bg := range sc.allBackgrounds {
			if ratio := contrastRatio(text, bg); ratio < 4.0 {
				t.Errorf("theme %v: text contrast %.2f on %v, want >= 4.0", th, ratio, bg)
			}
		}
	}
}

func TestTempColorBands(t *testing.T) {
	p := For(settings.ThemeNord, weather.CategoryClear, true, CapabilityTrueColor)
	cases := []struct {
		celsius float64
		want    string
	}{
		{-20, p.TempFreezing},
		{-8, p.TempFreezing},
		{-7.9, p.TempCold},
		{2, p.TempCold},
		{10, p.TempMild},
		{16, p.TempMild},
		{20, p.TempWarm},
		{28, p.TempWarm},
		{28.1, p.TempHot},
		{40, p.TempHot},
	}
	for _, tc := range cases {
		if got := p.TempColor(tc.celsius); got != tc.want {
			t.Errorf("TempColor(%.1f) = %q, want %q", tc.celsius, got, tc.want)
		}
	}
}

func TestQuantize(t *testing.T) {
	c := RGB{255, 0, 0}
	if got := quantize(c, CapabilityTrueColor); got != "#ff0000" {
		t.Errorf("truecolor = %q", got)
	}
	if got := quantize(c, CapabilityXterm256); got != "196" {
		t.Errorf("256-color red = %q, want cube index 196", got)
	}
	if got := quantize(c, CapabilityBasic16); got != ansiRed {
		t.Errorf("basic16 red = %q, want %q", got, ansiRed)
	}
	if got := quantize(RGB{250, 250, 250}, CapabilityBasic16); got != ansiWhite {
		t.Errorf("basic16 near-white = %q, want %q", got, ansiWhite)
	}
}

func TestDetectCapability(t *testing.T) {
	cases := []struct {
		name      string
		mode      config.ColorMode
		term      string
		colorterm string
		noColor   string
		want      Capability
	}{
		{"truecolor env", config.ColorAuto, "xterm-256color", "truecolor", "", CapabilityTrueColor},
		{"24bit env", config.ColorAuto, "xterm", "24bit", "", CapabilityTrueColor},
		{"256color term", config.ColorAuto, "xterm-256color", "", "", CapabilityXterm256},
		{"no_color wins", config.ColorAuto, "xterm-256color", "truecolor", "1", CapabilityBasic16},
		{"always ignores no_color", config.ColorAlways, "xterm-256color", "truecolor", "1", CapabilityTrueColor},
		{"never", config.ColorNever, "xterm-256color", "truecolor", "", CapabilityBasic16},
		{"dumb term", config.ColorAlways, "dumb", "truecolor", "", CapabilityBasic16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := detectCapabilityFrom(tc.mode, tc.term, tc.colorterm, tc.noColor); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseSeedTOML(t *testing.T) {
	seed, err := ParseSeedTOML([]byte(`
top = "#101820"
bottom = "#202830"
accent = "#66e8f2"
`))
	if err != nil {
		t.Fatal(err)
	}
	if seed.Accent != (RGB{0x66, 0xe8, 0xf2}) {
		t.Errorf("accent = %+v", seed.Accent)
	}

	if _, err := ParseSeedTOML([]byte(`top = "red"`)); err == nil {
		t.Error("invalid hex accepted")
	}
}

func TestWarningAvoidsWarmAccentCollision(t *testing.T) {
	// High-contrast's gold accent must not produce an amber warning.
	warm := warningSeedFor(RGB{255, 210, 0}, false)
	if warm == (RGB{251, 191, 36}) {
		t.Error("warm accent kept the amber warning seed")
	}
	cool := warningSeedFor(RGB{102, 232, 242}, false)
	if cool != (RGB{251, 191, 36}) {
		t.Errorf("cool accent warning seed = %+v, want amber", cool)
	}
}
