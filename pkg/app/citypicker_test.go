package app

import (
	"testing"

	"gitlab.com/tinyland/lab/skycast/pkg/config"
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

func seedHistory(s *AppState, names ...string) {
	for i := len(names) - 1; i >= 0; i-- {
		s.Settings.RecentLocations = settings.Remember(s.Settings.RecentLocations, settings.RecentLocation{
			Name:      names[i],
			Latitude:  float64(10 + i),
			Longitude: float64(20 + i),
			Country:   "Testland",
		})
	}
}

func TestCityPickerOpenState(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	s.CityQuery = "leftover"
	s.CitySelected = 3

	press(t, s, keyRune('l'))

	if !s.CityPickerOpen || s.CityQuery != "" || s.CitySelected != 0 {
		t.Errorf("open=%v query=%q selected=%d", s.CityPickerOpen, s.CityQuery, s.CitySelected)
	}
	if s.CityStatus != "Type a city and press Enter, or pick from history" {
		t.Errorf("status = %q", s.CityStatus)
	}
}

func TestCityPickerTyping(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	press(t, s, keyRune('l'))

	for _, r := range "Åre" {
		press(t, s, keyRune(r))
	}
	if s.CityQuery != "Åre" {
		t.Fatalf("query = %q", s.CityQuery)
	}

	press(t, s, key(KeyBackspace))
	if s.CityQuery != "År" {
		t.Errorf("query after backspace = %q, want one rune fewer", s.CityQuery)
	}

	// Control chords never reach the query buffer.
	press(t, s, Input{Term: KeyEvent{Code: KeyRune, Rune: 'x', Super: true}})
	if s.CityQuery != "År" {
		t.Errorf("super chord mutated the query: %q", s.CityQuery)
	}
}

func TestCityPickerEnterSubmitsQuery(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	seedHistory(s, "Oslo")
	press(t, s, keyRune('l'))

	for _, r := range "  Berlin  " {
		press(t, s, keyRune(r))
	}
	s.CitySelected = 0 // a highlighted history row must lose to the typed query
	press(t, s, key(KeyEnter))

	if s.CityPickerOpen {
		t.Fatal("picker still open after submit")
	}
	if s.CityStatus != "Searching Berlin..." {
		t.Errorf("status = %q", s.CityStatus)
	}
	if !s.FetchInFlight || s.Mode != ModeLoading {
		t.Errorf("inflight=%v mode=%v", s.FetchInFlight, s.Mode)
	}
	if _, ok := nextEvent(t, s).(GeocodeResolved); !ok {
		t.Fatal("expected a GeocodeResolved from the search")
	}
}

func TestCityPickerEnterOnHistoryRow(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	seedHistory(s, "Oslo", "Bergen")
	press(t, s, keyRune('l'))

	press(t, s, key(KeyDown))
	press(t, s, key(KeyEnter))

	if s.CityPickerOpen {
		t.Fatal("picker still open")
	}
	if s.SelectedLocation == nil || s.SelectedLocation.Name != "Bergen" {
		t.Errorf("selected = %+v, want Bergen", s.SelectedLocation)
	}
}

func TestCityPickerDigitSelection(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	seedHistory(s, "Oslo", "Bergen", "Tromsø")
	press(t, s, keyRune('l'))

	press(t, s, keyRune('3'))

	if s.CityPickerOpen {
		t.Fatal("picker still open")
	}
	if s.SelectedLocation == nil || s.SelectedLocation.Name != "Tromsø" {
		t.Errorf("selected = %+v, want Tromsø", s.SelectedLocation)
	}
}

func TestCityPickerDigitBecomesQueryTextWhenTyping(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	seedHistory(s, "Oslo")
	press(t, s, keyRune('l'))

	press(t, s, keyRune('a'))
	press(t, s, keyRune('1'))

	if s.CityPickerOpen != true {
		t.Fatal("picker closed")
	}
	if s.CityQuery != "a1" {
		t.Errorf("query = %q, want digits appended once typing started", s.CityQuery)
	}
}

func TestCityPickerNavigationBounds(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	seedHistory(s, "Oslo", "Bergen")
	press(t, s, keyRune('l'))

	press(t, s, key(KeyUp))
	if s.CitySelected != 0 {
		t.Errorf("up at top moved to %d", s.CitySelected)
	}
	for i := 0; i < 10; i++ {
		press(t, s, key(KeyDown))
	}
	// Two history rows plus the clear-all action row.
	if s.CitySelected != 2 {
		t.Errorf("selected = %d, want to saturate at the action row", s.CitySelected)
	}
}

func TestCityPickerActionRowClearsHistory(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	seedHistory(s, "Oslo", "Bergen")
	press(t, s, keyRune('l'))

	s.CitySelected = s.cityPickerActionIndex()
	press(t, s, key(KeyEnter))

	if len(s.Settings.RecentLocations) != 0 {
		t.Fatalf("history = %d entries, want 0", len(s.Settings.RecentLocations))
	}
	if s.CityStatus != "Cleared all recent locations" {
		t.Errorf("status = %q", s.CityStatus)
	}
	if !s.CityPickerOpen {
		t.Error("clearing history should keep the picker open")
	}
}

func TestCityPickerDeleteClearsHistory(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	seedHistory(s, "Oslo")
	press(t, s, keyRune('l'))

	press(t, s, key(KeyDelete))
	if len(s.Settings.RecentLocations) != 0 {
		t.Fatal("delete did not clear history")
	}

	press(t, s, key(KeyDelete))
	if s.CityStatus != "No recent locations to clear" {
		t.Errorf("status = %q", s.CityStatus)
	}
}

func TestCityPickerVisibleRowsCapped(t *testing.T) {
	s, _ := newTestState(t, nil)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}
	seedHistory(s, names...)

	if got := s.visibleRecentCount(); got != cityPickerVisibleMax {
		t.Errorf("visible = %d, want %d", got, cityPickerVisibleMax)
	}
	if got := s.cityPickerActionIndex(); got != cityPickerVisibleMax {
		t.Errorf("action index = %d, want %d", got, cityPickerVisibleMax)
	}
}

func TestCityPickerEscClosesAndClearsStatus(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	press(t, s, keyRune('l'))
	press(t, s, key(KeyEsc))

	if s.CityPickerOpen || s.CityStatus != "" {
		t.Errorf("open=%v status=%q", s.CityPickerOpen, s.CityStatus)
	}
}

func TestCursorClampedAfterHistoryShrinks(t *testing.T) {
	s, _ := newTestState(t, nil)
	seedHistory(s, "Oslo", "Bergen", "Tromsø")
	s.CitySelected = 3

	// A successful fetch dedupes history and may shorten the visible list.
	s.Settings.RecentLocations = s.Settings.RecentLocations[:1]
	s.pushRecentLocation(weather.Location{Name: "Oslo", Latitude: 12, Longitude: 22, Country: "Testland"})

	if max := s.cityPickerMaxIndex(); s.CitySelected > max {
		t.Errorf("selected = %d beyond max %d", s.CitySelected, max)
	}
}

func TestHistoryDedupeAndCap(t *testing.T) {
	s, _ := newTestState(t, nil)
	for i := 0; i < 15; i++ {
		s.pushRecentLocation(weather.Location{
			Name:      "City" + string(rune('A'+i)),
			Latitude:  float64(i),
			Longitude: float64(i),
			Country:   "Testland",
		})
	}
	if len(s.Settings.RecentLocations) != settings.MaxRecentLocations {
		t.Fatalf("history = %d, want cap %d", len(s.Settings.RecentLocations), settings.MaxRecentLocations)
	}

	// Revisiting moves an entry to the front instead of duplicating it.
	s.pushRecentLocation(weather.Location{Name: "CityM", Latitude: 12, Longitude: 12, Country: "Testland"})
	if len(s.Settings.RecentLocations) != settings.MaxRecentLocations {
		t.Errorf("revisit grew history to %d", len(s.Settings.RecentLocations))
	}
	if s.Settings.RecentLocations[0].Name != "CityM" {
		t.Errorf("front = %q, want CityM", s.Settings.RecentLocations[0].Name)
	}
}

func TestInitialLocationRestoredFromHistory(t *testing.T) {
	rs := settings.Default()
	rs.RecentLocations = []settings.RecentLocation{{Name: "Oslo", Latitude: 59.91, Longitude: 10.75, Country: "Norway"}}

	cfg := config.Default()
	if loc := initialSelectedLocation(&cfg, rs); loc == nil || loc.Name != "Oslo" {
		t.Errorf("restored = %+v, want Oslo", loc)
	}

	withCity := config.Default()
	withCity.City = "Berlin"
	if loc := initialSelectedLocation(&withCity, rs); loc != nil {
		t.Errorf("explicit city should suppress restore, got %+v", loc)
	}

	demo := config.Default()
	demo.Demo = true
	if loc := initialSelectedLocation(&demo, rs); loc != nil {
		t.Errorf("demo mode should suppress restore, got %+v", loc)
	}
}
