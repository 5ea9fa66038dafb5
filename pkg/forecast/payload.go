package forecast

import (
	"time"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

// Open-Meteo serializes missing values as JSON null inside the parallel
// arrays, so every per-hour and per-day field decodes into a pointer slice.

type forecastResponse struct {
	Current currentBlock `json:"current"`
	Hourly  hourlyBlock  `json:"hourly"`
	Daily   dailyBlock   `json:"daily"`
}

type currentBlock struct {
	Temperature         float64 `json:"temperature_2m"`
	RelativeHumidity    float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	DewPoint            float64 `json:"dew_point_2m"`
	WeatherCode         int     `json:"weather_code"`
	Precipitation       float64 `json:"precipitation"`
	CloudCover          float64 `json:"cloud_cover"`
	PressureMSL         float64 `json:"pressure_msl"`
	Visibility          float64 `json:"visibility"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WindGusts           float64 `json:"wind_gusts_10m"`
	WindDirection       float64 `json:"wind_direction_10m"`
	IsDay               int     `json:"is_day"`
}

type hourlyBlock struct {
	Time                     []string   `json:"time"`
	Temperature              []*float64 `json:"temperature_2m"`
	WeatherCode              []*int     `json:"weather_code"`
	IsDay                    []*int     `json:"is_day"`
	RelativeHumidity         []*float64 `json:"relative_humidity_2m"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	Precipitation            []*float64 `json:"precipitation"`
	Rain                     []*float64 `json:"rain"`
	Snowfall                 []*float64 `json:"snowfall"`
	WindSpeed                []*float64 `json:"wind_speed_10m"`
	WindGusts                []*float64 `json:"wind_gusts_10m"`
	PressureMSL              []*float64 `json:"pressure_msl"`
	Visibility               []*float64 `json:"visibility"`
	CloudCover               []*float64 `json:"cloud_cover"`
}

type dailyBlock struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []*int     `json:"weather_code"`
	TemperatureMax              []*float64 `json:"temperature_2m_max"`
	TemperatureMin              []*float64 `json:"temperature_2m_min"`
	Sunrise                     []*string  `json:"sunrise"`
	Sunset                      []*string  `json:"sunset"`
	UVIndexMax                  []*float64 `json:"uv_index_max"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	RainSum                     []*float64 `json:"rain_sum"`
	SnowfallSum                 []*float64 `json:"snowfall_sum"`
	PrecipitationHours          []*float64 `json:"precipitation_hours"`
	WindGustsMax                []*float64 `json:"wind_gusts_10m_max"`
}

type airQualityResponse struct {
	Current *airQualityCurrentBlock `json:"current"`
}

type airQualityCurrentBlock struct {
	USAQI       *float64 `json:"us_aqi"`
	EuropeanAQI *float64 `json:"european_aqi"`
}

func currentFromPayload(current currentBlock, daily []weather.DailyForecast) weather.CurrentConditions {
	out := weather.CurrentConditions{
		Temperature:         current.Temperature,
		RelativeHumidity:    current.RelativeHumidity,
		ApparentTemperature: current.ApparentTemperature,
		DewPoint:            current.DewPoint,
		WeatherCode:         current.WeatherCode,
		Precipitation:       current.Precipitation,
		CloudCover:          current.CloudCover,
		PressureMSL:         current.PressureMSL,
		Visibility:          current.Visibility,
		WindSpeed:           current.WindSpeed,
		WindGusts:           current.WindGusts,
		WindDirection:       current.WindDirection,
		IsDay:               current.IsDay == 1,
	}
	if len(daily) > 0 {
		out.HighToday = daily[0].TemperatureMax
		out.LowToday = daily[0].TemperatureMin
	}
	return out
}

func parseHourly(block hourlyBlock) []weather.HourlyForecast {
	out := make([]weather.HourlyForecast, 0, len(block.Time))
	for i, raw := range block.Time {
		ts, ok := weather.ParseHourlyTime(raw)
		if !ok {
			continue
		}
		out = append(out, weather.HourlyForecast{
			Time:                     ts,
			Temperature:              at(block.Temperature, i),
			WeatherCode:              at(block.WeatherCode, i),
			IsDay:                    boolAt(block.IsDay, i),
			RelativeHumidity:         at(block.RelativeHumidity, i),
			PrecipitationProbability: at(block.PrecipitationProbability, i),
			Precipitation:            at(block.Precipitation, i),
			Rain:                     at(block.Rain, i),
			Snowfall:                 at(block.Snowfall, i),
			WindSpeed:                at(block.WindSpeed, i),
			WindGusts:                at(block.WindGusts, i),
			PressureMSL:              at(block.PressureMSL, i),
			Visibility:               at(block.Visibility, i),
			CloudCover:               at(block.CloudCover, i),
		})
	}
	return out
}

func parseDaily(block dailyBlock) []weather.DailyForecast {
	out := make([]weather.DailyForecast, 0, len(block.Time))
	for i, raw := range block.Time {
		date, ok := weather.ParseDailyDate(raw)
		if !ok {
			continue
		}
		out = append(out, weather.DailyForecast{
			Date:                        date,
			WeatherCode:                 at(block.WeatherCode, i),
			TemperatureMax:              at(block.TemperatureMax, i),
			TemperatureMin:              at(block.TemperatureMin, i),
			Sunrise:                     timeAt(block.Sunrise, i),
			Sunset:                      timeAt(block.Sunset, i),
			UVIndexMax:                  at(block.UVIndexMax, i),
			PrecipitationProbabilityMax: at(block.PrecipitationProbabilityMax, i),
			PrecipitationSum:            at(block.PrecipitationSum, i),
			RainSum:                     at(block.RainSum, i),
			SnowfallSum:                 at(block.SnowfallSum, i),
			PrecipitationHours:          at(block.PrecipitationHours, i),
			WindGustsMax:                at(block.WindGustsMax, i),
		})
	}
	return out
}

func at[T any](values []*T, i int) *T {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func boolAt(values []*int, i int) *bool {
	v := at(values, i)
	if v == nil {
		return nil
	}
	b := *v == 1
	return &b
}

func timeAt(values []*string, i int) *time.Time {
	v := at(values, i)
	if v == nil {
		return nil
	}
	ts, ok := weather.ParseHourlyTime(*v)
	if !ok {
		return nil
	}
	return &ts
}
