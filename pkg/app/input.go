package app

import (
	"context"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// handleInput routes one terminal event. Key presses flow through a strict
// priority order: global control shortcuts, then whichever modal is open,
// then the main-screen bindings.
func (s *AppState) handleInput(ctx context.Context, term TermEvent) {
	switch term := term.(type) {
	case KeyEvent:
		s.handleKeyPress(ctx, term)
	case ResizeEvent:
		s.ViewportWidth = term.Width
		s.particles.Reset()
	}
}

func (s *AppState) handleKeyPress(ctx context.Context, key KeyEvent) {
	if s.handleControlShortcuts(ctx, key) {
		return
	}
	if s.handleModalKeyPress(ctx, key) {
		return
	}
	s.handleMainKeyPress(ctx, key)
}

func (s *AppState) handleControlShortcuts(ctx context.Context, key KeyEvent) bool {
	if isCtrl(key, 'c') {
		s.Enqueue(ctx, Quit{})
		return true
	}
	if isCtrl(key, 'l') {
		s.Enqueue(ctx, ForceRedraw{})
		return true
	}
	return false
}

func (s *AppState) handleModalKeyPress(ctx context.Context, key KeyEvent) bool {
	if s.SettingsOpen {
		s.handleSettingsKey(ctx, key)
		return true
	}
	if s.CityPickerOpen {
		s.handleCityPickerKey(ctx, key)
		return true
	}
	if s.HelpOpen {
		s.handleHelpKey(ctx, key)
		return true
	}
	return false
}

func (s *AppState) handleMainKeyPress(ctx context.Context, key KeyEvent) {
	switch key.Code {
	case KeyF1:
		s.openHelpOverlay()
		return
	case KeyEsc:
		s.Enqueue(ctx, Quit{})
		return
	case KeyLeft:
		s.moveHourlyCursorLeft()
		return
	case KeyRight:
		s.moveHourlyCursorRight()
		return
	}

	if key.Code == KeyRune && key.Rune == '?' && !key.Ctrl && !key.Alt {
		s.openHelpOverlay()
		return
	}
	if s.trySelectPendingLocation(ctx, key) {
		return
	}

	cmd, ok := commandRune(key)
	if !ok {
		return
	}
	switch cmd {
	case 'q':
		s.Enqueue(ctx, Quit{})
	case 's':
		if s.Mode != ModeSelectingLocation {
			s.openSettingsPanel()
		}
	case 'l':
		if s.Mode != ModeSelectingLocation {
			s.openCityPicker()
		}
	case 'r':
		s.startFetch(ctx)
	case 'f':
		s.setUnits(weather.UnitsFahrenheit)
	case 'c':
		s.setUnits(weather.UnitsCelsius)
	case 'v':
		s.cycleHourlyView()
	}
}

// trySelectPendingLocation consumes digits 1-5 while the disambiguation
// prompt is up.
func (s *AppState) trySelectPendingLocation(ctx context.Context, key KeyEvent) bool {
	if s.Mode != ModeSelectingLocation || key.Code != KeyRune {
		return false
	}
	if key.Rune < '1' || key.Rune > '5' {
		return false
	}
	idx := int(key.Rune - '1')
	if idx >= len(s.PendingLocations) {
		return true
	}
	selected := s.PendingLocations[idx]
	s.SelectedLocation = &selected
	s.PendingLocations = nil
	s.Mode = ModeLoading
	s.fetchForecast(ctx, selected)
	return true
}

func (s *AppState) handleHelpKey(ctx context.Context, key KeyEvent) {
	if key.Code == KeyEsc || key.Code == KeyF1 ||
		(key.Code == KeyRune && key.Rune == '?' && !key.Ctrl) {
		s.HelpOpen = false
		return
	}
	if isCtrl(key, 'c') {
		s.Enqueue(ctx, Quit{})
		return
	}
	if isCtrl(key, 'l') {
		s.Enqueue(ctx, ForceRedraw{})
	}
}

func (s *AppState) openHelpOverlay() {
	s.HelpOpen = true
	s.SettingsOpen = false
	s.CityPickerOpen = false
}

func (s *AppState) openSettingsPanel() {
	s.CityPickerOpen = false
	s.HelpOpen = false
	s.SettingsOpen = true
	s.SettingsSelected = SelUnits
}

func (s *AppState) openCityPicker() {
	s.SettingsOpen = false
	s.HelpOpen = false
	s.CityPickerOpen = true
	s.CityQuery = ""
	s.CitySelected = 0
	s.CityStatus = "Type a city and press Enter, or pick from history"
}

func (s *AppState) setUnits(units weather.Units) {
	if s.Settings.Units == units {
		return
	}
	s.Settings.Units = units
	s.applyRuntimeSettings()
	s.persistSettings()
}

func (s *AppState) cycleHourlyView() {
	s.Settings.HourlyView = cycleFrom(hourlyViewOptions, s.HourlyViewMode, 1)
	s.applyRuntimeSettings()
	s.persistSettings()
}

func (s *AppState) moveHourlyCursorLeft() {
	if s.HourlyCursor == 0 {
		return
	}
	s.HourlyCursor--
	if s.HourlyCursor < s.HourlyOffset {
		s.HourlyOffset = s.HourlyCursor
	}
}

func (s *AppState) moveHourlyCursorRight() {
	if s.Weather == nil {
		return
	}
	maxCursor := len(s.Weather.Hourly) - 1
	if s.HourlyCursor >= maxCursor {
		return
	}
	s.HourlyCursor++
	visible := VisibleHourCount(s.ViewportWidth)
	if s.HourlyCursor >= s.HourlyOffset+visible {
		s.HourlyOffset = s.HourlyCursor - (visible - 1)
	}
}
