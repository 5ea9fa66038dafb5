// Package weather holds the domain model shared by the fetch clients and the
// application state machine: locations, forecast bundles, unit handling, and
// the WMO weather-code vocabulary.
package weather

import (
	"fmt"
	"time"
)

// Units selects the temperature scale used for display.
type Units int

const (
	UnitsCelsius Units = iota
	UnitsFahrenheit
)

func (u Units) String() string {
	if u == UnitsFahrenheit {
		return "Fahrenheit"
	}
	return "Celsius"
}

// Symbol returns the single-letter unit suffix ("C" or "F").
func (u Units) Symbol() string {
	if u == UnitsFahrenheit {
		return "F"
	}
	return "C"
}

// MarshalText implements encoding.TextMarshaler so Units round-trips through
// the TOML settings file.
func (u Units) MarshalText() ([]byte, error) {
	if u == UnitsFahrenheit {
		return []byte("fahrenheit"), nil
	}
	return []byte("celsius"), nil
}

func (u *Units) UnmarshalText(text []byte) error {
	switch string(text) {
	case "celsius", "":
		*u = UnitsCelsius
	case "fahrenheit":
		*u = UnitsFahrenheit
	default:
		return fmt.Errorf("weather: unknown units %q", text)
	}
	return nil
}

// HourlyViewMode selects how the hourly panel is rendered.
type HourlyViewMode int

const (
	HourlyViewTable HourlyViewMode = iota
	HourlyViewHybrid
	HourlyViewChart
)

func (m HourlyViewMode) String() string {
	switch m {
	case HourlyViewHybrid:
		return "Hybrid"
	case HourlyViewChart:
		return "Chart"
	default:
		return "Table"
	}
}

func (m HourlyViewMode) MarshalText() ([]byte, error) {
	switch m {
	case HourlyViewHybrid:
		return []byte("hybrid"), nil
	case HourlyViewChart:
		return []byte("chart"), nil
	default:
		return []byte("table"), nil
	}
}

func (m *HourlyViewMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "table", "":
		*m = HourlyViewTable
	case "hybrid":
		*m = HourlyViewHybrid
	case "chart":
		*m = HourlyViewChart
	default:
		return fmt.Errorf("weather: unknown hourly view %q", text)
	}
	return nil
}

// Location identifies a place a forecast can be fetched for. Empty string
// fields mean "unknown"; Population zero means "not reported". Values are
// never mutated after construction.
type Location struct {
	Name       string
	Latitude   float64
	Longitude  float64
	Country    string
	Admin1     string
	Timezone   string
	Population int64
}

// FromCoords synthesizes a Location for a raw coordinate pair when no
// resolved name exists.
func FromCoords(lat, lon float64) Location {
	return Location{
		Name:      fmt.Sprintf("%.4f, %.4f", lat, lon),
		Latitude:  lat,
		Longitude: lon,
	}
}

// DisplayName returns the most specific human-readable form available,
// e.g. "Stockholm, Stockholm County, Sweden".
func (l Location) DisplayName() string {
	switch {
	case l.Admin1 != "" && l.Country != "":
		return fmt.Sprintf("%s, %s, %s", l.Name, l.Admin1, l.Country)
	case l.Country != "":
		return fmt.Sprintf("%s, %s", l.Name, l.Country)
	default:
		return l.Name
	}
}

// CurrentConditions is the instantaneous weather block of a bundle.
// Temperatures are Celsius, wind speeds km/h, pressure hPa, visibility m.
type CurrentConditions struct {
	Temperature         float64
	RelativeHumidity    float64
	ApparentTemperature float64
	DewPoint            float64
	WeatherCode         int
	Precipitation       float64
	CloudCover          float64
	PressureMSL         float64
	Visibility          float64
	WindSpeed           float64
	WindGusts           float64
	WindDirection       float64
	IsDay               bool
	HighToday           *float64
	LowToday            *float64
}

// HourlyForecast is one hour of forecast data. Nil pointers mark values the
// provider did not report for that hour.
type HourlyForecast struct {
	Time                     time.Time
	Temperature              *float64
	WeatherCode              *int
	IsDay                    *bool
	RelativeHumidity         *float64
	PrecipitationProbability *float64
	Precipitation            *float64
	Rain                     *float64
	Snowfall                 *float64
	WindSpeed                *float64
	WindGusts                *float64
	PressureMSL              *float64
	Visibility               *float64
	CloudCover               *float64
}

// DailyForecast is one day of forecast data.
type DailyForecast struct {
	Date                        time.Time
	WeatherCode                 *int
	TemperatureMax              *float64
	TemperatureMin              *float64
	Sunrise                     *time.Time
	Sunset                      *time.Time
	UVIndexMax                  *float64
	PrecipitationProbabilityMax *float64
	PrecipitationSum            *float64
	RainSum                     *float64
	SnowfallSum                 *float64
	PrecipitationHours          *float64
	WindGustsMax                *float64
}

// ForecastBundle is everything fetched for one location in one round trip.
// The state machine treats it as opaque beyond Location and FetchedAt.
type ForecastBundle struct {
	Location   Location
	Current    CurrentConditions
	Hourly     []HourlyForecast
	Daily      []DailyForecast
	AirQuality *AirQualityReading
	FetchedAt  time.Time
}

// CurrentTemp returns the rounded current temperature in the given units.
func (b *ForecastBundle) CurrentTemp(units Units) int {
	return RoundTemp(ConvertTemp(b.Current.Temperature, units))
}

// HighLow returns today's rounded high and low, if the daily block had them.
func (b *ForecastBundle) HighLow(units Units) (high, low int, ok bool) {
	if b.Current.HighToday == nil || b.Current.LowToday == nil {
		return 0, 0, false
	}
	return RoundTemp(ConvertTemp(*b.Current.HighToday, units)),
		RoundTemp(ConvertTemp(*b.Current.LowToday, units)), true
}

// ConvertTemp converts a Celsius temperature to the requested units.
func ConvertTemp(celsius float64, units Units) float64 {
	if units == UnitsFahrenheit {
		return celsius*1.8 + 32.0
	}
	return celsius
}

// ConvertWindSpeed converts a km/h wind speed to m/s.
func ConvertWindSpeed(kmh float64) float64 {
	return kmh / 3.6
}

// RoundWindSpeed converts km/h to m/s and rounds to the nearest integer.
func RoundWindSpeed(kmh float64) int {
	return int(roundHalfAway(ConvertWindSpeed(kmh)))
}

// RoundTemp rounds a converted temperature to the nearest integer.
func RoundTemp(value float64) int {
	return int(roundHalfAway(value))
}

func roundHalfAway(v float64) float64 {
	if v < 0 {
		return float64(int(v - 0.5))
	}
	return float64(int(v + 0.5))
}

const (
	hourlyTimeLayout = "2006-01-02T15:04"
	dailyDateLayout  = "2006-01-02"
)

// ParseHourlyTime parses the provider's "2006-01-02T15:04" timestamps.
func ParseHourlyTime(value string) (time.Time, bool) {
	t, err := time.Parse(hourlyTimeLayout, value)
	return t, err == nil
}

// ParseDailyDate parses the provider's "2006-01-02" dates.
func ParseDailyDate(value string) (time.Time, bool) {
	t, err := time.Parse(dailyDateLayout, value)
	return t, err == nil
}
