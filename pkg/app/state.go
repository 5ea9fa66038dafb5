package app

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"gitlab.com/tinyland/lab/skycast/pkg/config"
	"gitlab.com/tinyland/lab/skycast/pkg/resilience"
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// AppMode is the coarse state of the dashboard. Exactly one mode is active;
// ModeQuit is terminal.
type AppMode int

const (
	ModeLoading AppMode = iota
	ModeSelectingLocation
	ModeReady
	ModeError
	ModeQuit
)

func (m AppMode) String() string {
	switch m {
	case ModeSelectingLocation:
		return "selecting-location"
	case ModeReady:
		return "ready"
	case ModeError:
		return "error"
	case ModeQuit:
		return "quit"
	default:
		return "loading"
	}
}

// LocationKey is the cache identity of a location: name plus exact
// coordinate bits plus region fields. Float bits make the key hashable
// without equality surprises.
type LocationKey struct {
	name    string
	latBits uint64
	lonBits uint64
	country string
	admin1  string
}

func keyFor(loc weather.Location) LocationKey {
	return LocationKey{
		name:    loc.Name,
		latBits: math.Float64bits(loc.Latitude),
		lonBits: math.Float64bits(loc.Longitude),
		country: loc.Country,
		admin1:  loc.Admin1,
	}
}

// Geocoder resolves city names and reverse-resolves coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, city, countryCode string) (weather.GeocodeResolution, error)
	ReverseResolve(ctx context.Context, latitude, longitude float64) (*weather.Location, error)
}

// Forecaster fetches a forecast bundle for a location.
type Forecaster interface {
	Fetch(ctx context.Context, loc weather.Location) (*weather.ForecastBundle, error)
}

// Locator guesses a location without user input, e.g. from the caller's IP.
// A nil result means no guess.
type Locator interface {
	Detect(ctx context.Context) *weather.Location
}

// ParticleSink is the animation subsystem's view of the state machine: it
// receives weather-driven updates on every frame but never reads AppState.
type ParticleSink interface {
	Update(weatherCode *int, windSpeed, windDirection *float64, delta time.Duration)
	Reset()
	SetOptions(disabled, reduced, noFlash bool)
}

type noopParticles struct{}

func (noopParticles) Update(*int, *float64, *float64, time.Duration) {}
func (noopParticles) Reset()                                         {}
func (noopParticles) SetOptions(bool, bool, bool)                    {}

// Deps are the external collaborators the state machine drives. Zero-value
// fields get safe defaults in New.
type Deps struct {
	Geocoder     Geocoder
	Forecaster   Forecaster
	Locator      Locator
	Particles    ParticleSink
	Logger       *slog.Logger
	SettingsPath string           // empty disables persistence
	Now          func() time.Time // defaults to time.Now
}

// AppState is the aggregate the render layer paints from. It is mutated
// exclusively through HandleEvent on the update-loop goroutine; background
// work communicates through the event channel only.
type AppState struct {
	Mode             AppMode
	LoadingMessage   string
	LastError        string // empty when no error is being shown
	SelectedLocation *weather.Location
	PendingLocations []weather.Location
	Weather          *weather.ForecastBundle
	RefreshMeta      resilience.RefreshMetadata
	Units            weather.Units
	HourlyOffset     int
	HourlyCursor     int
	FetchInFlight    bool
	FrameTick        uint64
	AnimateUI        bool
	ViewportWidth    int
	DemoMode         bool
	Settings         settings.RuntimeSettings
	SettingsOpen     bool
	HelpOpen         bool
	SettingsSelected SettingsSelection
	CityPickerOpen   bool
	CityQuery        string
	CitySelected     int
	CityStatus       string
	HourlyViewMode   weather.HourlyViewMode

	cfg           *config.Config
	forecastCache map[LocationKey]*weather.ForecastBundle
	backoff       resilience.Backoff
	lastFrameAt   time.Time
	refreshSecs   *atomic.Int64
	events        chan Event
	geocoder      Geocoder
	forecaster    Forecaster
	locator       Locator
	particles     ParticleSink
	logger        *slog.Logger
	settingsPath  string
	now           func() time.Time
}

// New builds the initial state from validated-ish configuration and the
// already-loaded runtime settings. Validation itself happens at Bootstrap.
func New(cfg *config.Config, rs settings.RuntimeSettings, deps Deps) *AppState {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Particles == nil {
		deps.Particles = noopParticles{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	refreshSecs := &atomic.Int64{}
	refreshSecs.Store(int64(rs.RefreshIntervalSecs))

	hourlyView := rs.HourlyView
	if cfg.HourlyView != nil {
		hourlyView = *cfg.HourlyView
	}

	s := &AppState{
		Mode:           ModeLoading,
		LoadingMessage: "Initializing...",
		Units:          rs.Units,
		AnimateUI:      rs.Motion == settings.MotionFull,
		ViewportWidth:  80,
		DemoMode:       cfg.Demo,
		Settings:       rs,
		HourlyViewMode: hourlyView,
		RefreshMeta:    resilience.NewRefreshMetadata(),

		cfg:           cfg,
		forecastCache: make(map[LocationKey]*weather.ForecastBundle),
		backoff:       resilience.NewBackoff(10*time.Second, 300*time.Second),
		lastFrameAt:   deps.Now(),
		refreshSecs:   refreshSecs,
		events:        make(chan Event, EventChannelCapacity),
		geocoder:      deps.Geocoder,
		forecaster:    deps.Forecaster,
		locator:       deps.Locator,
		particles:     deps.Particles,
		logger:        deps.Logger,
		settingsPath:  deps.SettingsPath,
		now:           deps.Now,
	}
	s.SelectedLocation = initialSelectedLocation(cfg, rs)
	s.particles.SetOptions(rs.Motion == settings.MotionOff, rs.Motion == settings.MotionReduced, rs.NoFlash)
	return s
}

// initialSelectedLocation restores the last visited place, but only when
// the command line expressed no location preference of its own.
func initialSelectedLocation(cfg *config.Config, rs settings.RuntimeSettings) *weather.Location {
	if cfg.City != "" || cfg.HasCoords() || cfg.Demo {
		return nil
	}
	if len(rs.RecentLocations) == 0 {
		return nil
	}
	loc := rs.RecentLocations[0].ToLocation()
	return &loc
}

// Events exposes the channel the render layer drains.
func (s *AppState) Events() <-chan Event { return s.events }

// Enqueue delivers an event from the update-loop side without blocking the
// caller's goroutine on a full channel.
func (s *AppState) Enqueue(ctx context.Context, ev Event) {
	send(ctx, s.events, ev)
}

// Running reports whether the state machine has not yet reached its
// terminal mode.
func (s *AppState) Running() bool { return s.Mode != ModeQuit }

// Now reads the state machine's clock, so the render layer computes ages
// against the same time source the tests inject.
func (s *AppState) Now() time.Time { return s.now() }

// CachedBundle returns the cached bundle for a location, if any.
func (s *AppState) CachedBundle(loc weather.Location) (*weather.ForecastBundle, bool) {
	b, ok := s.forecastCache[keyFor(loc)]
	return b, ok
}

// VisibleHourCount is how many hourly columns fit the current viewport.
func VisibleHourCount(width int) int {
	switch {
	case width >= 80:
		return 12
	case width >= 60:
		return 8
	default:
		return 6
	}
}
