package app

import (
	"context"
	"fmt"

	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// SettingsSelection identifies one row of the settings panel.
type SettingsSelection int

const (
	SelUnits SettingsSelection = iota
	SelTheme
	SelMotion
	SelFlash
	SelIcons
	SelHourlyView
	SelHeroVisual
	SelRefreshInterval
	SelRefreshNow
	SelClose
)

var settingsOrder = []SettingsSelection{
	SelUnits,
	SelTheme,
	SelMotion,
	SelFlash,
	SelIcons,
	SelHourlyView,
	SelHeroVisual,
	SelRefreshInterval,
	SelRefreshNow,
	SelClose,
}

// Next moves one row down. The cursor stops at the bottom rather than
// wrapping.
func (sel SettingsSelection) Next() SettingsSelection {
	if int(sel) >= len(settingsOrder)-1 {
		return sel
	}
	return sel + 1
}

// Prev moves one row up, stopping at the top.
func (sel SettingsSelection) Prev() SettingsSelection {
	if sel <= 0 {
		return sel
	}
	return sel - 1
}

// SettingsEntry is one rendered row of the settings panel.
type SettingsEntry struct {
	Label    string
	Value    string
	Editable bool
}

var hourlyViewOptions = []weather.HourlyViewMode{
	weather.HourlyViewTable,
	weather.HourlyViewHybrid,
	weather.HourlyViewChart,
}

func hourlyViewLabel(mode weather.HourlyViewMode) string {
	switch mode {
	case weather.HourlyViewTable:
		return "Table"
	case weather.HourlyViewChart:
		return "Chart"
	default:
		return "Hybrid"
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "On"
	}
	return "Off"
}

// SettingsEntries builds the rows in display order from the live settings.
func (s *AppState) SettingsEntries() []SettingsEntry {
	unitsValue := "Celsius"
	if s.Settings.Units == weather.UnitsFahrenheit {
		unitsValue = "Fahrenheit"
	}
	return []SettingsEntry{
		{Label: "Units", Value: unitsValue, Editable: true},
		{Label: "Theme", Value: s.Settings.Theme.Label(), Editable: true},
		{Label: "Motion", Value: s.Settings.Motion.Label(), Editable: true},
		{Label: "Thunder Flash", Value: onOff(!s.Settings.NoFlash), Editable: true},
		{Label: "Icons", Value: s.Settings.IconMode.Label(), Editable: true},
		{Label: "Hourly View", Value: hourlyViewLabel(s.HourlyViewMode), Editable: true},
		{Label: "Hero Visual", Value: s.Settings.HeroVisual.Label(), Editable: true},
		{Label: "Auto Refresh", Value: fmt.Sprintf("%d min", s.Settings.RefreshIntervalSecs/60), Editable: true},
		{Label: "Refresh now", Editable: false},
		{Label: "Close", Editable: false},
	}
}

// SettingsHint returns the help line for the highlighted row.
func (s *AppState) SettingsHint() string {
	switch s.SettingsSelected {
	case SelUnits:
		return "Temperature and wind speed units"
	case SelTheme:
		return "Color palette for the whole dashboard"
	case SelMotion:
		return "Animation intensity; Off also lowers the frame rate"
	case SelFlash:
		return "Screen flashes during thunderstorms"
	case SelIcons:
		return "Glyph set for condition icons"
	case SelHourlyView:
		return "Layout of the hourly forecast strip"
	case SelHeroVisual:
		switch s.Settings.HeroVisual {
		case settings.HeroGaugeCluster:
			return "Dial gauges for the current conditions"
		case settings.HeroSkyObservatory:
			return "Sky scene that follows the sun and moon"
		default:
			return "Animated atmosphere canvas"
		}
	case SelRefreshInterval:
		return "How often the forecast refreshes on its own"
	case SelRefreshNow:
		return "Fetch fresh data immediately"
	default:
		return "Close the settings panel"
	}
}

func (s *AppState) handleSettingsKey(ctx context.Context, key KeyEvent) {
	if key.Code == KeyEsc {
		s.SettingsOpen = false
		return
	}
	if cmd, ok := commandRune(key); ok && (cmd == 's' || cmd == 'q') {
		s.SettingsOpen = false
		return
	}

	switch key.Code {
	case KeyUp:
		s.SettingsSelected = s.SettingsSelected.Prev()
	case KeyDown:
		s.SettingsSelected = s.SettingsSelected.Next()
	case KeyLeft:
		s.adjustSelectedSetting(ctx, -1)
	case KeyRight:
		s.adjustSelectedSetting(ctx, 1)
	case KeyEnter:
		switch s.SettingsSelected {
		case SelRefreshNow:
			s.SettingsOpen = false
			s.startFetch(ctx)
		case SelClose:
			s.SettingsOpen = false
		default:
			s.adjustSelectedSetting(ctx, 1)
		}
	}
}

// cycleFrom steps through values relative to current, wrapping at either
// end. An unknown current value lands on the first entry.
func cycleFrom[T comparable](values []T, current T, direction int) T {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + direction + len(values)) % len(values)
	return values[idx]
}

func (s *AppState) adjustSelectedSetting(ctx context.Context, direction int) {
	changed := true
	switch s.SettingsSelected {
	case SelUnits:
		if s.Settings.Units == weather.UnitsCelsius {
			s.Settings.Units = weather.UnitsFahrenheit
		} else {
			s.Settings.Units = weather.UnitsCelsius
		}
	case SelTheme:
		s.Settings.Theme = cycleFrom(settings.AllThemes, s.Settings.Theme, direction)
	case SelMotion:
		s.Settings.Motion = cycleFrom(settings.AllMotionSettings, s.Settings.Motion, direction)
	case SelFlash:
		s.Settings.NoFlash = !s.Settings.NoFlash
	case SelIcons:
		s.Settings.IconMode = cycleFrom(settings.AllIconModes, s.Settings.IconMode, direction)
	case SelHourlyView:
		s.Settings.HourlyView = cycleFrom(hourlyViewOptions, s.HourlyViewMode, direction)
	case SelHeroVisual:
		s.Settings.HeroVisual = cycleFrom(settings.AllHeroVisuals, s.Settings.HeroVisual, direction)
	case SelRefreshInterval:
		s.Settings.RefreshIntervalSecs = cycleFrom(settings.RefreshOptions, s.Settings.RefreshIntervalSecs, direction)
	default:
		changed = false
	}
	if !changed {
		return
	}
	s.applyRuntimeSettings()
	s.persistSettings()
}
