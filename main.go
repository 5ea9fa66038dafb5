// skycast is an interactive terminal weather dashboard.
//
// It resolves a location from a city name, explicit coordinates, the most
// recently viewed place, or IP geolocation, fetches forecast and air
// quality data from Open-Meteo, and renders an animated dashboard with
// hourly and daily outlooks.
//
// Usage:
//
//	skycast [flags] [city]
//
// Flags:
//
//	-lat, -lon float      Explicit coordinates (must be given together)
//	-country string       Two-letter country code biasing city search
//	-units string         Temperature units (celsius|fahrenheit)
//	-theme string         Color theme (auto, aurora, nord, dracula, ...)
//	-hero string          Hero visual (atmos|gauges|sky)
//	-hourly-view string   Hourly strip layout (table|hybrid|chart)
//	-fps int              Animation frame rate (15-60)
//	-refresh-interval int Auto refresh interval in seconds
//	-no-animation         Disable all animation
//	-reduced-motion       Calmer animation and lower frame rate
//	-no-flash             Never flash the screen during thunderstorms
//	-ascii-icons          ASCII condition icons
//	-emoji-icons          Emoji condition icons
//	-color string         Color output policy (auto|always|never)
//	-no-color             Alias for -color never
//	-demo                 Run the scripted demo tour
//	-one-shot             Print the forecast once and exit
//	-verbose              Debug logging
//	-version              Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/skycast/pkg/app"
	"gitlab.com/tinyland/lab/skycast/pkg/config"
	"gitlab.com/tinyland/lab/skycast/pkg/forecast"
	"gitlab.com/tinyland/lab/skycast/pkg/geocode"
	"gitlab.com/tinyland/lab/skycast/pkg/geoip"
	"gitlab.com/tinyland/lab/skycast/pkg/particles"
	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/theme"
	"gitlab.com/tinyland/lab/skycast/pkg/tui"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Endpoint overrides may live in a .env next to the binary.
	_ = godotenv.Load()
	endpoints := config.EndpointsFromEnv()

	logger, closeLog, err := setupLogging(cfg.Verbose, cfg.OneShot)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	geocoder := geocode.New(endpoints.Geocode)
	forecaster := forecast.New(endpoints.Forecast, endpoints.AirQuality)

	if cfg.OneShot {
		if err := runOneShot(ctx, cfg, geocoder, forecaster, endpoints.GeoIP); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "skycast: stdout is not a terminal; use -one-shot for plain output")
		os.Exit(1)
	}

	settingsPath, havePath := settings.DefaultPath()
	rs := cfg.DefaultSettings()
	switch {
	case cfg.Demo:
		// The demo tour always starts from a clean slate and leaves no
		// trace behind.
		if havePath {
			_ = settings.Clear(settingsPath)
		}
		settingsPath = ""
	case havePath:
		rs = cfg.ApplyOverrides(settings.Load(settingsPath, rs))
	}

	capability := theme.DetectCapability(cfg.EffectiveColorMode())
	engine := particles.New(
		rs.Motion == settings.MotionOff,
		rs.Motion == settings.MotionReduced,
		rs.NoFlash)

	state := app.New(&cfg, rs, app.Deps{
		Geocoder:     geocoder,
		Forecaster:   forecaster,
		Locator:      locatorFunc(endpoints.GeoIP),
		Particles:    engine,
		Logger:       logger,
		SettingsPath: settingsPath,
	})

	model := tui.NewModel(ctx, state, engine, capability)
	if seed, ok := loadCustomSeed(logger); ok {
		model = model.WithCustomSeed(seed)
	}

	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		_ = state.HandleEvent(ctx, app.Input{Term: app.ResizeEvent{Width: w}})
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		fmt.Fprintln(os.Stderr, m.Err())
		os.Exit(1)
	}
}

func parseFlags(args []string) (config.Config, error) {
	cfg := config.Default()
	fs := flag.NewFlagSet("skycast", flag.ContinueOnError)

	lat := fs.Float64("lat", 0, "Latitude")
	lon := fs.Float64("lon", 0, "Longitude")
	fs.StringVar(&cfg.CountryCode, "country", "", "Two-letter country code biasing city search")
	unitsFlag := fs.String("units", "celsius", "Temperature units (celsius|fahrenheit)")
	themeFlag := fs.String("theme", "auto", "Color theme")
	heroFlag := fs.String("hero", "atmos", "Hero visual (atmos|gauges|sky)")
	hourlyFlag := fs.String("hourly-view", "", "Hourly strip layout (table|hybrid|chart)")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Animation frame rate")
	fs.IntVar(&cfg.RefreshIntervalSecs, "refresh-interval", cfg.RefreshIntervalSecs, "Auto refresh interval in seconds")
	fs.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable all animation")
	fs.BoolVar(&cfg.ReducedMotion, "reduced-motion", false, "Calmer animation")
	fs.BoolVar(&cfg.NoFlash, "no-flash", false, "Never flash during thunderstorms")
	fs.BoolVar(&cfg.ASCIIIcons, "ascii-icons", false, "ASCII condition icons")
	fs.BoolVar(&cfg.EmojiIcons, "emoji-icons", false, "Emoji condition icons")
	colorFlag := fs.String("color", "auto", "Color output policy (auto|always|never)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&cfg.Demo, "demo", false, "Run the scripted demo tour")
	fs.BoolVar(&cfg.OneShot, "one-shot", false, "Print the forecast once and exit")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Debug logging")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if *showVersion {
		fmt.Printf("skycast %s (%s)\n", version, commit)
		os.Exit(0)
	}

	cfg.City = fs.Arg(0)
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if seen["lat"] {
		cfg.Lat = lat
	}
	if seen["lon"] {
		cfg.Lon = lon
	}

	switch *unitsFlag {
	case "celsius", "c", "":
		cfg.Units = weather.UnitsCelsius
	case "fahrenheit", "f":
		cfg.Units = weather.UnitsFahrenheit
	default:
		return cfg, fmt.Errorf("unknown units %q", *unitsFlag)
	}

	var err error
	if cfg.Theme, err = settings.ParseTheme(*themeFlag); err != nil {
		return cfg, err
	}
	if cfg.Color, err = config.ParseColorMode(*colorFlag); err != nil {
		return cfg, err
	}

	switch *heroFlag {
	case "atmos", "":
		cfg.HeroVisual = settings.HeroAtmosCanvas
	case "gauges":
		cfg.HeroVisual = settings.HeroGaugeCluster
	case "sky":
		cfg.HeroVisual = settings.HeroSkyObservatory
	default:
		return cfg, fmt.Errorf("unknown hero visual %q", *heroFlag)
	}

	switch *hourlyFlag {
	case "":
	case "table":
		mode := weather.HourlyViewTable
		cfg.HourlyView = &mode
	case "hybrid":
		mode := weather.HourlyViewHybrid
		cfg.HourlyView = &mode
	case "chart":
		mode := weather.HourlyViewChart
		cfg.HourlyView = &mode
	default:
		return cfg, fmt.Errorf("unknown hourly view %q", *hourlyFlag)
	}

	return cfg, nil
}

// setupLogging writes structured logs to a state file. The interactive
// dashboard owns the terminal, so stderr stays quiet unless the one-shot
// path runs.
func setupLogging(verbose, oneShot bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if oneShot {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		return logger, func() {}, nil
	}

	dir := stateDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	path := filepath.Join(dir, "skycast.log")
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	return logger, func() { logFile.Close() }, nil
}

func stateDir() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return filepath.Join(v, "skycast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "skycast")
}

// loadCustomSeed reads an optional user gradient from the config directory.
func loadCustomSeed(logger *slog.Logger) (theme.Seed, bool) {
	var path string
	if base := os.Getenv("SKYCAST_CONFIG_DIR"); base != "" {
		path = filepath.Join(base, "theme.toml")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return theme.Seed{}, false
		}
		path = filepath.Join(home, ".config", "skycast", "theme.toml")
	}
	if _, err := os.Stat(path); err != nil {
		return theme.Seed{}, false
	}
	seed, err := theme.LoadSeedFile(path)
	if err != nil {
		logger.Warn("ignoring invalid theme seed file", "path", path, "error", err)
		return theme.Seed{}, false
	}
	return seed, true
}

// locatorFunc adapts the geoip package to the state machine's Locator.
type locatorFunc string

func (endpoint locatorFunc) Detect(ctx context.Context) *weather.Location {
	return geoip.Detect(ctx, string(endpoint))
}

// runOneShot resolves a location, fetches once, and prints plain text.
func runOneShot(ctx context.Context, cfg config.Config, geocoder *geocode.Client, forecaster *forecast.Client, geoipURL string) error {
	loc, err := resolveOnce(ctx, cfg, geocoder, geoipURL)
	if err != nil {
		return err
	}
	bundle, err := forecaster.Fetch(ctx, loc)
	if err != nil {
		return fmt.Errorf("fetch forecast: %w", err)
	}
	rs := cfg.DefaultSettings()
	fmt.Print(tui.RenderOneShot(bundle, rs.Units, rs.IconMode))
	return nil
}

func resolveOnce(ctx context.Context, cfg config.Config, geocoder *geocode.Client, geoipURL string) (weather.Location, error) {
	if cfg.HasCoords() {
		if loc, err := geocoder.ReverseResolve(ctx, *cfg.Lat, *cfg.Lon); err == nil && loc != nil {
			return *loc, nil
		}
		return weather.FromCoords(*cfg.Lat, *cfg.Lon), nil
	}

	city := cfg.City
	if city == "" {
		if loc := geoip.Detect(ctx, geoipURL); loc != nil {
			return *loc, nil
		}
		city = config.DefaultCityName
	}

	res, err := geocoder.Resolve(ctx, city, cfg.CountryCode)
	if err != nil {
		return weather.Location{}, fmt.Errorf("resolve %q: %w", city, err)
	}
	switch res := res.(type) {
	case weather.Selected:
		return res.Location, nil
	case weather.NeedsDisambiguation:
		// Non-interactive: take the best-ranked candidate.
		return res.Options[0], nil
	default:
		return weather.Location{}, fmt.Errorf("no location found for %q", city)
	}
}
