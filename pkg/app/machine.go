package app

import (
	"context"
	"fmt"

	"gitlab.com/tinyland/lab/skycast/pkg/resilience"
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// HandleEvent executes one state transition. It is the sole mutator of
// AppState and must only ever run on the update-loop goroutine. The only
// error it can return is the fatal Bootstrap validation failure.
func (s *AppState) HandleEvent(ctx context.Context, ev Event) error {
	switch ev := ev.(type) {
	case Bootstrap:
		return s.handleBootstrap(ctx)
	case TickFrame:
		s.handleTickFrame()
	case TickRefresh:
		s.handleTickRefresh(ctx)
	case ForceRedraw:
		// Render-layer concern; no state to touch.
	case Input:
		s.handleInput(ctx, ev.Term)
	case FetchStarted:
		s.handleFetchStarted()
	case GeocodeResolved:
		s.handleGeocodeResolved(ctx, ev.Resolution)
	case FetchSucceeded:
		s.handleFetchSucceeded(ev.Bundle)
	case FetchFailed:
		s.handleFetchFailed(ctx, ev.Message)
	case Demo:
		s.handleDemoAction(ctx, ev.Action)
	case Quit:
		s.Mode = ModeQuit
	}
	return nil
}

func (s *AppState) handleBootstrap(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	StartFrameClock(ctx, s.events, s.cfg.EffectiveFPS(s.Settings.Motion))
	StartRefreshClock(ctx, s.events, s.refreshSecs)
	if s.cfg.Demo {
		StartDemo(ctx, s.events)
	}
	s.logger.Info("bootstrap complete",
		"fps", s.cfg.EffectiveFPS(s.Settings.Motion),
		"refresh_secs", s.Settings.RefreshIntervalSecs,
		"demo", s.cfg.Demo)

	s.startFetch(ctx)
	return nil
}

func (s *AppState) handleTickFrame() {
	now := s.now()
	delta := now.Sub(s.lastFrameAt)
	s.lastFrameAt = now
	s.FrameTick++

	var (
		code     *int
		wind     *float64
		windDir  *float64
	)
	if s.Weather != nil {
		code = &s.Weather.Current.WeatherCode
		wind = &s.Weather.Current.WindSpeed
		windDir = &s.Weather.Current.WindDirection
	}
	s.particles.Update(code, wind, windDir, delta)

	s.RefreshMeta.State = resilience.EvaluateFreshness(
		s.RefreshMeta.LastSuccess, s.RefreshMeta.ConsecutiveFailures, now)
}

func (s *AppState) handleTickRefresh(ctx context.Context) {
	switch s.Mode {
	case ModeReady, ModeError, ModeLoading:
		s.startFetch(ctx)
	default:
		// Never fetch behind the disambiguation prompt.
	}
}

func (s *AppState) handleFetchStarted() {
	s.FetchInFlight = true
	s.LoadingMessage = "Fetching weather..."
	if s.Weather == nil {
		s.Mode = ModeLoading
	}
	s.RefreshMeta.LastAttempt = s.now()
	s.RefreshMeta.ClearRetry()
}

func (s *AppState) handleGeocodeResolved(ctx context.Context, resolution weather.GeocodeResolution) {
	switch res := resolution.(type) {
	case weather.Selected:
		loc := res.Location
		s.SelectedLocation = &loc
		s.PendingLocations = nil
		s.fetchForecast(ctx, loc)
	case weather.NeedsDisambiguation:
		s.PendingLocations = res.Options
		s.FetchInFlight = false
		s.Mode = ModeSelectingLocation
		s.LoadingMessage = "Choose a location (1-5)"
		s.CityPickerOpen = false
	case weather.NotFound:
		s.FetchInFlight = false
		s.Mode = ModeError
		s.LastError = fmt.Sprintf("No geocoding result for %s", res.Query)
	}
}

func (s *AppState) handleFetchSucceeded(bundle *weather.ForecastBundle) {
	s.FetchInFlight = false
	s.Weather = bundle
	s.forecastCache[keyFor(bundle.Location)] = bundle
	s.Mode = ModeReady
	s.LastError = ""
	s.RefreshMeta.MarkSuccess(s.now())
	s.backoff.Reset()
	s.HourlyOffset = 0
	s.HourlyCursor = 0
	s.pushRecentLocation(bundle.Location)
	s.persistSettings()
	s.CityStatus = ""
}

func (s *AppState) handleFetchFailed(ctx context.Context, message string) {
	s.FetchInFlight = false
	s.LastError = message
	s.Mode = ModeError
	s.CityStatus = "Search failed; keeping last successful weather"
	s.RefreshMeta.MarkFailure(s.now())
	s.RefreshMeta.State = resilience.EvaluateFreshness(
		s.RefreshMeta.LastSuccess, s.RefreshMeta.ConsecutiveFailures, s.now())

	delay := s.backoff.NextDelay()
	s.RefreshMeta.ScheduleRetryIn(s.now(), delay)
	s.logger.Warn("fetch failed", "error", message,
		"failures", s.RefreshMeta.ConsecutiveFailures, "retry_in", delay)
	ScheduleRetry(ctx, s.events, delay)
}

// pushRecentLocation records a successful visit in history and keeps the
// picker cursor in range.
func (s *AppState) pushRecentLocation(loc weather.Location) {
	s.Settings.RecentLocations = settings.Remember(
		s.Settings.RecentLocations, settings.FromLocation(loc))
	if maxIdx := s.cityPickerMaxIndex(); s.CitySelected > maxIdx {
		s.CitySelected = maxIdx
	}
}

// persistSettings writes settings to disk. Failures become a user-visible
// warning, never an abort. Demo runs skip persistence entirely.
func (s *AppState) persistSettings() {
	if s.DemoMode || s.settingsPath == "" {
		return
	}
	if err := settings.Save(s.settingsPath, s.Settings); err != nil {
		s.LastError = fmt.Sprintf("Failed to save settings: %v", err)
		s.logger.Warn("settings save failed", "path", s.settingsPath, "error", err)
	}
}

// applyRuntimeSettings re-derives the runtime fields that depend on the
// settings bundle after any settings change.
func (s *AppState) applyRuntimeSettings() {
	s.Units = s.Settings.Units
	s.HourlyViewMode = s.Settings.HourlyView
	s.AnimateUI = s.Settings.Motion == settings.MotionFull
	s.refreshSecs.Store(int64(s.Settings.RefreshIntervalSecs))
	s.particles.SetOptions(
		s.Settings.Motion == settings.MotionOff,
		s.Settings.Motion == settings.MotionReduced,
		s.Settings.NoFlash)
}
