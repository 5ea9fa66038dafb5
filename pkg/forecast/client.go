// Package forecast fetches weather and air-quality data from Open-Meteo
// style endpoints and assembles the bundle the dashboard renders.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

const requestTimeout = 10 * time.Second

const (
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,dew_point_2m," +
		"weather_code,precipitation,cloud_cover,pressure_msl,visibility," +
		"wind_speed_10m,wind_gusts_10m,wind_direction_10m,is_day"
	hourlyFields = "temperature_2m,weather_code,is_day,relative_humidity_2m," +
		"precipitation_probability,precipitation,rain,snowfall," +
		"wind_speed_10m,wind_gusts_10m,pressure_msl,visibility,cloud_cover"
	dailyFields = "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset," +
		"uv_index_max,precipitation_probability_max,precipitation_sum,rain_sum," +
		"snowfall_sum,precipitation_hours,wind_gusts_10m_max"
)

// Client fetches forecasts. The air-quality lookup is best-effort: its
// failures never fail the bundle.
type Client struct {
	http          *http.Client
	limiter       *rate.Limiter
	baseURL       string
	airQualityURL string
	now           func() time.Time
}

// New builds a client for the given forecast and air-quality endpoints.
func New(baseURL, airQualityURL string) *Client {
	return &Client{
		http:          &http.Client{Timeout: requestTimeout},
		limiter:       rate.NewLimiter(rate.Limit(2), 4),
		baseURL:       baseURL,
		airQualityURL: airQualityURL,
		now:           time.Now,
	}
}

// Fetch retrieves the full bundle for a location. The forecast and
// air-quality requests run concurrently.
func (c *Client) Fetch(ctx context.Context, location weather.Location) (*weather.ForecastBundle, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var (
		payload    forecastResponse
		airQuality *weather.AirQualityReading
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.getJSON(gctx, c.baseURL, forecastQuery(location), &payload); err != nil {
			return fmt.Errorf("fetching forecast: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Tolerated failure: the bundle just ships without a reading.
		var aq airQualityResponse
		if err := c.getJSON(gctx, c.airQualityURL, airQualityQuery(location), &aq); err == nil && aq.Current != nil {
			airQuality = weather.AirQualityFromIndices(aq.Current.USAQI, aq.Current.EuropeanAQI)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	daily := parseDaily(payload.Daily)
	return &weather.ForecastBundle{
		Location:   location,
		Current:    currentFromPayload(payload.Current, daily),
		Hourly:     parseHourly(payload.Hourly),
		Daily:      daily,
		AirQuality: airQuality,
		FetchedAt:  c.now(),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func forecastQuery(loc weather.Location) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("current", currentFields)
	q.Set("hourly", hourlyFields)
	q.Set("daily", dailyFields)
	q.Set("timezone", "auto")
	q.Set("forecast_days", "7")
	q.Set("forecast_hours", "48")
	return q
}

func airQualityQuery(loc weather.Location) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("current", "us_aqi,european_aqi")
	q.Set("timezone", "auto")
	return q
}
