package app

import (
	"context"
	"fmt"
	"strings"
)

// cityPickerVisibleMax caps how many recent locations the picker lists.
// Entries past the cap stay in history but are not selectable by digit.
const cityPickerVisibleMax = 9

func (s *AppState) visibleRecentCount() int {
	n := len(s.Settings.RecentLocations)
	if n > cityPickerVisibleMax {
		return cityPickerVisibleMax
	}
	return n
}

// cityPickerActionIndex is the index of the "clear all" action row, shown
// only when there is history to clear. Returns -1 otherwise.
func (s *AppState) cityPickerActionIndex() int {
	if s.visibleRecentCount() == 0 {
		return -1
	}
	return s.visibleRecentCount()
}

func (s *AppState) cityPickerMaxIndex() int {
	if idx := s.cityPickerActionIndex(); idx >= 0 {
		return idx
	}
	return 0
}

func (s *AppState) handleCityPickerKey(ctx context.Context, key KeyEvent) {
	if max := s.cityPickerMaxIndex(); s.CitySelected > max {
		s.CitySelected = max
	}

	switch key.Code {
	case KeyEsc:
		s.CityPickerOpen = false
		s.CityStatus = ""
		return
	case KeyEnter:
		s.submitCityPicker(ctx)
		return
	case KeyUp:
		if s.CitySelected > 0 {
			s.CitySelected--
		}
		return
	case KeyDown:
		if s.CitySelected < s.cityPickerMaxIndex() {
			s.CitySelected++
		}
		return
	case KeyBackspace:
		if s.CityQuery != "" {
			runes := []rune(s.CityQuery)
			s.CityQuery = string(runes[:len(runes)-1])
		}
		return
	case KeyDelete:
		s.clearRecentLocations()
		return
	}

	if key.Code != KeyRune || key.Ctrl || key.Super {
		return
	}
	if key.Rune >= '1' && key.Rune <= '9' && s.CityQuery == "" {
		s.selectRecentByIndex(ctx, int(key.Rune-'1'))
		return
	}
	if isCityRune(key.Rune) {
		s.CityQuery += string(key.Rune)
	}
}

// submitCityPicker resolves Enter. A typed query always wins over the
// highlighted history row.
func (s *AppState) submitCityPicker(ctx context.Context) {
	query := strings.TrimSpace(s.CityQuery)
	if query != "" {
		s.CityPickerOpen = false
		s.CityStatus = fmt.Sprintf("Searching %s...", query)
		s.startCitySearch(ctx, query)
		return
	}
	if s.CitySelected == s.cityPickerActionIndex() {
		s.clearRecentLocations()
		return
	}
	s.selectRecentByIndex(ctx, s.CitySelected)
}

func (s *AppState) selectRecentByIndex(ctx context.Context, idx int) {
	if idx < 0 || idx >= s.visibleRecentCount() {
		return
	}
	loc := s.Settings.RecentLocations[idx].ToLocation()
	s.CityPickerOpen = false
	s.switchToLocation(ctx, loc)
}

func (s *AppState) clearRecentLocations() {
	if len(s.Settings.RecentLocations) == 0 {
		s.CityStatus = "No recent locations to clear"
		s.CitySelected = 0
		return
	}
	s.Settings.RecentLocations = nil
	s.CitySelected = 0
	s.CityStatus = "Cleared all recent locations"
	s.persistSettings()
}
