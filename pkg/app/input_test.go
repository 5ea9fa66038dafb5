package app

import (
	"context"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

func press(t *testing.T, s *AppState, input Input) {
	t.Helper()
	if err := s.HandleEvent(context.Background(), input); err != nil {
		t.Fatal(err)
	}
}

func TestResizeUpdatesViewport(t *testing.T) {
	s, _ := newTestState(t, nil)
	press(t, s, Input{Term: ResizeEvent{Width: 64, Height: 20}})
	if s.ViewportWidth != 64 {
		t.Errorf("width = %d, want 64", s.ViewportWidth)
	}
}

func TestVisibleHourCount(t *testing.T) {
	for _, tc := range []struct {
		width, want int
	}{
		{120, 12}, {80, 12}, {79, 8}, {60, 8}, {59, 6}, {40, 6},
	} {
		if got := VisibleHourCount(tc.width); got != tc.want {
			t.Errorf("VisibleHourCount(%d) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestHourlyCursorWindowing(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	s.Weather = testBundle(stockholm(), time.Now())
	s.ViewportWidth = 80 // 12 visible

	for i := 0; i < 12; i++ {
		press(t, s, key(KeyRight))
	}
	if s.HourlyCursor != 12 {
		t.Fatalf("cursor = %d, want 12", s.HourlyCursor)
	}
	if s.HourlyOffset != 1 {
		t.Errorf("offset = %d, want 1 after scrolling past the window", s.HourlyOffset)
	}

	for i := 0; i < 20; i++ {
		press(t, s, key(KeyLeft))
	}
	if s.HourlyCursor != 0 || s.HourlyOffset != 0 {
		t.Errorf("cursor/offset = %d/%d, want 0/0", s.HourlyCursor, s.HourlyOffset)
	}

	for i := 0; i < 100; i++ {
		press(t, s, key(KeyRight))
	}
	if s.HourlyCursor != 47 {
		t.Errorf("cursor = %d, want to saturate at 47", s.HourlyCursor)
	}
}

func TestUnitShortcuts(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady

	press(t, s, keyRune('f'))
	if s.Settings.Units != weather.UnitsFahrenheit || s.Units != weather.UnitsFahrenheit {
		t.Errorf("units after f: settings=%v runtime=%v", s.Settings.Units, s.Units)
	}
	press(t, s, keyRune('c'))
	if s.Units != weather.UnitsCelsius {
		t.Errorf("units after c = %v", s.Units)
	}
	// Pressing the active unit again is a no-op.
	press(t, s, keyRune('c'))
	if s.Units != weather.UnitsCelsius {
		t.Errorf("units after repeated c = %v", s.Units)
	}
}

func TestHourlyViewShortcutCycles(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	start := s.HourlyViewMode

	seen := map[weather.HourlyViewMode]bool{start: true}
	press(t, s, keyRune('v'))
	seen[s.HourlyViewMode] = true
	press(t, s, keyRune('v'))
	seen[s.HourlyViewMode] = true
	press(t, s, keyRune('v'))

	if s.HourlyViewMode != start {
		t.Errorf("three presses should return to %v, got %v", start, s.HourlyViewMode)
	}
	if len(seen) != 3 {
		t.Errorf("cycle visited %d modes, want 3", len(seen))
	}
}

func TestModalShortcutsBlockedWhileSelecting(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeSelectingLocation
	s.PendingLocations = []weather.Location{{Name: "London"}}

	press(t, s, keyRune('s'))
	if s.SettingsOpen {
		t.Error("settings opened over the disambiguation prompt")
	}
	press(t, s, keyRune('l'))
	if s.CityPickerOpen {
		t.Error("city picker opened over the disambiguation prompt")
	}
}

func TestHelpOverlay(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady

	press(t, s, keyRune('?'))
	if !s.HelpOpen {
		t.Fatal("help did not open")
	}

	// Esc closes help instead of quitting.
	press(t, s, key(KeyEsc))
	if s.HelpOpen {
		t.Error("help did not close on esc")
	}
	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event %T while closing help", ev)
	default:
	}

	press(t, s, key(KeyF1))
	if !s.HelpOpen {
		t.Fatal("help did not open on F1")
	}
	press(t, s, key(KeyF1))
	if s.HelpOpen {
		t.Error("help did not toggle closed on F1")
	}
}

func TestHelpClosesOtherModals(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	press(t, s, keyRune('s'))
	if !s.SettingsOpen {
		t.Fatal("settings did not open")
	}
	// Help is reachable only from the main screen; closing settings first.
	press(t, s, key(KeyEsc))
	press(t, s, keyRune('?'))
	if !s.HelpOpen || s.SettingsOpen || s.CityPickerOpen {
		t.Errorf("help=%v settings=%v picker=%v", s.HelpOpen, s.SettingsOpen, s.CityPickerOpen)
	}
}

func TestManualRefreshShortcut(t *testing.T) {
	s, _ := newTestState(t, nil)
	s.Mode = ModeReady
	loc := stockholm()
	s.SelectedLocation = &loc

	press(t, s, keyRune('r'))

	if _, ok := nextEvent(t, s).(FetchStarted); !ok {
		t.Fatal("expected a FetchStarted")
	}
	if _, ok := nextEvent(t, s).(FetchSucceeded); !ok {
		t.Fatal("expected a FetchSucceeded")
	}
}

func TestRefreshIgnoredWhileInFlight(t *testing.T) {
	s, forecaster := newTestState(t, nil)
	s.Mode = ModeReady
	s.FetchInFlight = true
	loc := stockholm()
	s.SelectedLocation = &loc

	press(t, s, keyRune('r'))

	if forecaster.calls != 0 {
		t.Errorf("forecaster called %d times while a fetch was in flight", forecaster.calls)
	}
	select {
	case ev := <-s.Events():
		t.Fatalf("unexpected event %T", ev)
	default:
	}
}
