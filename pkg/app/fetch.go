package app

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/tinyland/lab/skycast/pkg/config"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// cacheStaleAfter is the cached-bundle age beyond which a cache hit still
// renders immediately but also triggers a silent background refresh.
const cacheStaleAfter = 10 * time.Minute

// startFetch begins a foreground fetch for whatever location the
// configuration and current state imply. Silently refuses while a fetch is
// already in flight or the user is choosing between candidates.
func (s *AppState) startFetch(ctx context.Context) {
	if s.FetchInFlight || s.Mode == ModeSelectingLocation {
		return
	}
	s.Enqueue(ctx, FetchStarted{})

	if s.SelectedLocation != nil {
		s.fetchForecast(ctx, *s.SelectedLocation)
		return
	}
	if s.cfg.HasCoords() {
		s.startCoordsLookup(ctx, *s.cfg.Lat, *s.cfg.Lon)
		return
	}
	if s.cfg.City == "" {
		s.startAutoLocationLookup(ctx)
		return
	}
	s.startCityLookup(ctx, s.cfg.DefaultCity())
}

// startCoordsLookup turns explicit coordinates into a location, asking the
// geocoder for a display name and falling back to a coordinate label.
func (s *AppState) startCoordsLookup(ctx context.Context, lat, lon float64) {
	geocoder := s.geocoder
	go func() {
		loc := weather.FromCoords(lat, lon)
		if geocoder != nil {
			if named, err := geocoder.ReverseResolve(ctx, lat, lon); err == nil && named != nil {
				loc = *named
			}
		}
		send(ctx, s.events, GeocodeResolved{Resolution: weather.Selected{Location: loc}})
	}()
}

// startAutoLocationLookup tries GeoIP first and falls back to the default
// city lookup when detection fails.
func (s *AppState) startAutoLocationLookup(ctx context.Context) {
	s.LoadingMessage = "Detecting location..."
	locator, geocoder := s.locator, s.geocoder
	countryCode := s.cfg.CountryCode
	go func() {
		if locator != nil {
			if loc := locator.Detect(ctx); loc != nil {
				send(ctx, s.events, GeocodeResolved{Resolution: weather.Selected{Location: *loc}})
				return
			}
		}
		resolveCity(ctx, s.events, geocoder, config.DefaultCityName, countryCode)
	}()
}

func (s *AppState) startCityLookup(ctx context.Context, city string) {
	geocoder := s.geocoder
	countryCode := s.cfg.CountryCode
	go func() {
		resolveCity(ctx, s.events, geocoder, city, countryCode)
	}()
}

// startCitySearch is the city-picker submit path: an explicit foreground
// search that discards any pending disambiguation.
func (s *AppState) startCitySearch(ctx context.Context, city string) {
	s.PendingLocations = nil
	s.Mode = ModeLoading
	s.FetchInFlight = true
	s.LoadingMessage = fmt.Sprintf("Searching %s...", city)
	s.RefreshMeta.LastAttempt = s.now()

	s.startCityLookup(ctx, city)
}

func resolveCity(ctx context.Context, ch chan<- Event, geocoder Geocoder, city, countryCode string) {
	if geocoder == nil {
		send(ctx, ch, FetchFailed{Message: "no geocoder configured"})
		return
	}
	resolution, err := geocoder.Resolve(ctx, city, countryCode)
	if err != nil {
		send(ctx, ch, FetchFailed{Message: err.Error()})
		return
	}
	send(ctx, ch, GeocodeResolved{Resolution: resolution})
}

// fetchForecast launches the forecast round trip for a known location.
func (s *AppState) fetchForecast(ctx context.Context, loc weather.Location) {
	forecaster := s.forecaster
	go func() {
		if forecaster == nil {
			send(ctx, s.events, FetchFailed{Message: "no forecaster configured"})
			return
		}
		bundle, err := forecaster.Fetch(ctx, loc)
		if err != nil {
			send(ctx, s.events, FetchFailed{Message: err.Error()})
			return
		}
		send(ctx, s.events, FetchSucceeded{Bundle: bundle})
	}()
}

// switchToLocation is the cache-aware jump used by history selection and
// the demo. A fresh cache hit renders immediately with no network call; a
// stale hit renders immediately and refreshes silently in the background; a
// miss falls back to a normal foreground fetch.
func (s *AppState) switchToLocation(ctx context.Context, loc weather.Location) {
	s.SelectedLocation = &loc
	s.PendingLocations = nil

	if bundle, ok := s.forecastCache[keyFor(loc)]; ok {
		s.handleFetchSucceeded(bundle)
		if s.now().Sub(bundle.FetchedAt) > cacheStaleAfter {
			s.Enqueue(ctx, FetchStarted{})
			s.fetchForecast(ctx, loc)
		}
		return
	}

	s.Mode = ModeLoading
	s.CityStatus = fmt.Sprintf("Switching to %s", loc.DisplayName())
	s.fetchForecast(ctx, loc)
}

func (s *AppState) handleDemoAction(ctx context.Context, action DemoAction) {
	switch action := action.(type) {
	case DemoOpenCityPicker:
		s.SettingsOpen = false
		s.CityPickerOpen = true
		s.CityQuery = action.Query
		s.CitySelected = 0
		s.CityStatus = fmt.Sprintf("Demo: search for %s", action.Query)
	case DemoSwitchCity:
		s.SettingsOpen = false
		s.CityStatus = fmt.Sprintf("Demo: selected %s", action.Location.DisplayName())
		s.CityQuery = ""
		s.CityPickerOpen = false
		s.switchToLocation(ctx, action.Location)
	case DemoOpenSettings:
		s.CityPickerOpen = false
		s.SettingsOpen = true
		s.SettingsSelected = SelHeroVisual
	case DemoSetHeroVisual:
		s.SettingsOpen = true
		s.SettingsSelected = SelHeroVisual
		if s.Settings.HeroVisual != action.Visual {
			s.Settings.HeroVisual = action.Visual
			s.applyRuntimeSettings()
			s.persistSettings()
		}
	case DemoSetTheme:
		s.SettingsOpen = true
		s.SettingsSelected = SelTheme
		if s.Settings.Theme != action.Theme {
			s.Settings.Theme = action.Theme
			s.applyRuntimeSettings()
			s.persistSettings()
		}
	case DemoCloseSettings:
		s.SettingsOpen = false
	case DemoQuit:
		s.Enqueue(ctx, Quit{})
	}
}
