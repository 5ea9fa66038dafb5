// Package config carries the CLI-facing configuration for a single run and
// its mapping onto runtime settings defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// FPS bounds for the frame clock. Values outside the range are rejected at
// startup rather than clamped.
const (
	MinFPS = 15
	MaxFPS = 60
)

// MinRefreshIntervalSecs is the lowest accepted auto-refresh interval.
const MinRefreshIntervalSecs = 10

// DefaultCityName is used when neither a city argument nor coordinates are
// given and GeoIP detection fails.
const DefaultCityName = "Stockholm"

// ColorMode is the CLI color output policy.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode resolves the -color flag value.
func ParseColorMode(value string) (ColorMode, error) {
	switch value {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", value)
	}
}

// Config is the parsed command line for one run.
type Config struct {
	City        string
	Lat, Lon    *float64
	CountryCode string

	Units      weather.Units
	Theme      settings.Theme
	HeroVisual settings.HeroVisual
	HourlyView *weather.HourlyViewMode

	FPS                 int
	RefreshIntervalSecs int

	NoAnimation   bool
	ReducedMotion bool
	NoFlash       bool
	ASCIIIcons    bool
	EmojiIcons    bool

	Color   ColorMode
	NoColor bool

	Demo    bool
	OneShot bool
	Verbose bool
}

// Default returns a Config with flag defaults applied.
func Default() Config {
	return Config{
		FPS:                 30,
		RefreshIntervalSecs: settings.DefaultRefreshIntervalSecs,
	}
}

// Validate rejects flag combinations the rest of the program must never see.
func (c *Config) Validate() error {
	if (c.Lat == nil) != (c.Lon == nil) {
		return errors.New("-lat and -lon must be provided together")
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("-fps must be between %d and %d, got %d", MinFPS, MaxFPS, c.FPS)
	}
	if c.RefreshIntervalSecs < MinRefreshIntervalSecs {
		return fmt.Errorf("-refresh-interval must be at least %d seconds, got %d",
			MinRefreshIntervalSecs, c.RefreshIntervalSecs)
	}
	return nil
}

// DefaultCity returns the city to resolve at startup.
func (c *Config) DefaultCity() string {
	if c.City != "" {
		return c.City
	}
	return DefaultCityName
}

// HasCoords reports whether explicit coordinates were given.
func (c *Config) HasCoords() bool {
	return c.Lat != nil && c.Lon != nil
}

// EffectiveColorMode folds the -no-color alias into the color policy.
func (c *Config) EffectiveColorMode() ColorMode {
	if c.NoColor {
		return ColorNever
	}
	return c.Color
}

// EffectiveFPS caps the configured frame rate by the motion setting. Reduced
// motion caps at 20 fps, animations off idles at the floor.
func (c *Config) EffectiveFPS(motion settings.MotionSetting) int {
	switch motion {
	case settings.MotionOff:
		return MinFPS
	case settings.MotionReduced:
		return min(c.FPS, 20)
	default:
		return c.FPS
	}
}

// DefaultSettings maps the flags onto the runtime settings that apply when
// nothing is persisted.
func (c *Config) DefaultSettings() settings.RuntimeSettings {
	s := settings.Default()
	s.Units = c.Units
	s.Theme = c.Theme
	s.HeroVisual = c.HeroVisual
	s.NoFlash = c.NoFlash
	s.RefreshIntervalSecs = c.RefreshIntervalSecs
	switch {
	case c.NoAnimation:
		s.Motion = settings.MotionOff
	case c.ReducedMotion:
		s.Motion = settings.MotionReduced
	}
	switch {
	case c.ASCIIIcons:
		s.IconMode = settings.IconsASCII
	case c.EmojiIcons:
		s.IconMode = settings.IconsEmoji
	}
	if c.HourlyView != nil {
		s.HourlyView = *c.HourlyView
	}
	return s
}

// ApplyOverrides lets non-default flags win over persisted settings. A flag
// left at its default does not disturb what the user saved in a previous
// session.
func (c *Config) ApplyOverrides(s settings.RuntimeSettings) settings.RuntimeSettings {
	if c.Units != weather.UnitsCelsius {
		s.Units = c.Units
	}
	if c.Theme != settings.ThemeAuto {
		s.Theme = c.Theme
	}
	switch {
	case c.NoAnimation:
		s.Motion = settings.MotionOff
	case c.ReducedMotion:
		s.Motion = settings.MotionReduced
	}
	if c.NoFlash {
		s.NoFlash = true
	}
	switch {
	case c.ASCIIIcons:
		s.IconMode = settings.IconsASCII
	case c.EmojiIcons:
		s.IconMode = settings.IconsEmoji
	}
	if c.HourlyView != nil {
		s.HourlyView = *c.HourlyView
	}
	if c.HeroVisual != settings.HeroAtmosCanvas {
		s.HeroVisual = c.HeroVisual
	}
	if c.RefreshIntervalSecs != settings.DefaultRefreshIntervalSecs {
		s.RefreshIntervalSecs = c.RefreshIntervalSecs
	}
	return s
}

// Endpoints are the outbound service base URLs, overridable through the
// environment (a .env file is loaded best-effort at startup).
type Endpoints struct {
	Forecast   string
	Geocode    string
	AirQuality string
	GeoIP      string
}

// EndpointsFromEnv returns the production endpoints with any environment
// overrides applied.
func EndpointsFromEnv() Endpoints {
	e := Endpoints{
		Forecast:   "https://api.open-meteo.com/v1/forecast",
		Geocode:    "https://geocoding-api.open-meteo.com/v1/search",
		AirQuality: "https://air-quality-api.open-meteo.com/v1/air-quality",
		GeoIP:      "https://ipapi.co/json/",
	}
	if v := os.Getenv("SKYCAST_FORECAST_URL"); v != "" {
		e.Forecast = v
	}
	if v := os.Getenv("SKYCAST_GEOCODE_URL"); v != "" {
		e.Geocode = v
	}
	if v := os.Getenv("SKYCAST_AIR_QUALITY_URL"); v != "" {
		e.AirQuality = v
	}
	if v := os.Getenv("SKYCAST_GEOIP_URL"); v != "" {
		e.GeoIP = v
	}
	return e
}
