package app

import (
	"time"

	"gitlab.com/tinyland/lab/skycast/pkg/settings"
	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// DemoAction is one step of the scripted demo: the same transitions a user
// would trigger by hand, driven on a timer.
type DemoAction interface {
	demoAction()
}

// DemoOpenCityPicker opens the city picker with a preset query typed in.
type DemoOpenCityPicker struct {
	Query string
}

// DemoSwitchCity jumps straight to a known location.
type DemoSwitchCity struct {
	Location weather.Location
}

// DemoOpenSettings opens the settings panel on the hero-visual row.
type DemoOpenSettings struct{}

// DemoSetHeroVisual selects a hero visual if it differs from the current one.
type DemoSetHeroVisual struct {
	Visual settings.HeroVisual
}

// DemoSetTheme selects a theme if it differs from the current one.
type DemoSetTheme struct {
	Theme settings.Theme
}

// DemoCloseSettings closes the settings panel.
type DemoCloseSettings struct{}

// DemoQuit ends the demo run.
type DemoQuit struct{}

func (DemoOpenCityPicker) demoAction() {}
func (DemoSwitchCity) demoAction()     {}
func (DemoOpenSettings) demoAction()   {}
func (DemoSetHeroVisual) demoAction()  {}
func (DemoSetTheme) demoAction()       {}
func (DemoCloseSettings) demoAction()  {}
func (DemoQuit) demoAction()           {}

// DemoStep pairs a delay with the action fired after it.
type DemoStep struct {
	Delay  time.Duration
	Action DemoAction
}

// DemoScript returns the fixed tour: four city switches, a hero-visual
// sweep, the full theme sweep, then quit.
func DemoScript() []DemoStep {
	var steps []DemoStep
	steps = append(steps, demoCitySteps()...)
	steps = append(steps, demoVisualSteps()...)
	steps = append(steps, demoThemeSteps()...)
	steps = append(steps,
		DemoStep{time.Second, DemoCloseSettings{}},
		DemoStep{time.Second, DemoQuit{}},
	)
	return steps
}

func demoCitySteps() []DemoStep {
	stops := []struct {
		openDelay time.Duration
		query     string
		location  weather.Location
	}{
		{1 * time.Second, "New York", demoCity("New York", 40.7128, -74.0060, "United States", "New York", "America/New_York")},
		{3 * time.Second, "Miami", demoCity("Miami", 25.7617, -80.1918, "United States", "Florida", "America/New_York")},
		{3 * time.Second, "Sydney", demoCity("Sydney", -33.8688, 151.2093, "Australia", "New South Wales", "Australia/Sydney")},
		{3 * time.Second, "Peking", demoCity("Peking", 39.9042, 116.4074, "China", "Beijing", "Asia/Shanghai")},
	}

	steps := make([]DemoStep, 0, len(stops)*2)
	for _, stop := range stops {
		steps = append(steps,
			DemoStep{stop.openDelay, DemoOpenCityPicker{Query: stop.query}},
			DemoStep{2 * time.Second, DemoSwitchCity{Location: stop.location}},
		)
	}
	return steps
}

func demoVisualSteps() []DemoStep {
	return []DemoStep{
		{3 * time.Second, DemoOpenSettings{}},
		{time.Second, DemoSetHeroVisual{Visual: settings.HeroGaugeCluster}},
		{time.Second, DemoCloseSettings{}},
		{5 * time.Second, DemoOpenSettings{}},
		{time.Second, DemoSetHeroVisual{Visual: settings.HeroSkyObservatory}},
		{time.Second, DemoCloseSettings{}},
		{5 * time.Second, DemoOpenSettings{}},
	}
}

func demoThemeSteps() []DemoStep {
	steps := make([]DemoStep, 0, len(settings.AllThemes))
	for _, theme := range settings.AllThemes {
		steps = append(steps, DemoStep{time.Second, DemoSetTheme{Theme: theme}})
	}
	return steps
}

func demoCity(name string, lat, lon float64, country, admin1, tz string) weather.Location {
	return weather.Location{
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		Country:   country,
		Admin1:    admin1,
		Timezone:  tz,
	}
}
