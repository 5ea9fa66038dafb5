// Package geocode resolves city names to coordinates through an Open-Meteo
// style geocoding API, ranking candidates and surfacing ambiguity instead of
// silently guessing.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

const (
	requestTimeout = 8 * time.Second
	userAgent      = "skycast/0.1"
)

// Client talks to the geocoding and reverse-geocoding endpoints. All
// requests pass through a shared rate limiter so bursts of retries cannot
// hammer the provider.
type Client struct {
	http       *http.Client
	limiter    *rate.Limiter
	baseURL    string
	reverseURL string
}

// New builds a client for baseURL, inferring the reverse endpoint by
// swapping a trailing "/search" for "/reverse".
func New(baseURL string) *Client {
	return NewWithURLs(baseURL, inferReverseURL(baseURL))
}

// NewWithURLs builds a client with explicit search and reverse endpoints.
func NewWithURLs(baseURL, reverseURL string) *Client {
	return &Client{
		http:       &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(2), 4),
		baseURL:    baseURL,
		reverseURL: reverseURL,
	}
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int64   `json:"population"`
}

func (r searchResult) location() weather.Location {
	return weather.Location{
		Name:       r.Name,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Country:    r.Country,
		Admin1:     r.Admin1,
		Timezone:   r.Timezone,
		Population: r.Population,
	}
}

// Resolve looks up city and returns the ranked outcome. countryCode, when
// non-empty, biases ranking toward that ISO2 country.
func (c *Client) Resolve(ctx context.Context, city, countryCode string) (weather.GeocodeResolution, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "5")
	query.Set("language", "en")
	query.Set("format", "json")
	if countryCode != "" {
		query.Set("countryCode", countryCode)
	}

	var payload searchResponse
	if err := c.getJSON(ctx, c.baseURL, query, &payload); err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", city, err)
	}

	if len(payload.Results) == 0 {
		return weather.NotFound{Query: city}, nil
	}

	ranked := rankCandidates(payload.Results, city, countryCode)
	top, rest := ranked[0], ranked[1:]

	if len(rest) > 0 && isAmbiguous(top, rest[0]) {
		options := []weather.Location{top.result.location()}
		for _, s := range rest[:min(len(rest), maxRunnersUp)] {
			options = append(options, s.result.location())
		}
		return weather.NeedsDisambiguation{Options: options}, nil
	}
	return weather.Selected{Location: top.result.location()}, nil
}

type reverseResponse struct {
	Address *reverseAddress `json:"address"`
}

type reverseAddress struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

// ReverseResolve names the place at the given coordinates. It returns nil
// with no error when the provider has no usable name; the caller falls back
// to a coordinate label.
func (c *Client) ReverseResolve(ctx context.Context, latitude, longitude float64) (*weather.Location, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("accept-language", "en")
	query.Set("format", "jsonv2")

	var payload reverseResponse
	if err := c.getJSON(ctx, c.reverseURL, query, &payload); err != nil {
		return nil, fmt.Errorf("reverse geocoding %.4f, %.4f: %w", latitude, longitude, err)
	}

	if payload.Address == nil {
		return nil, nil
	}
	name := firstNonEmpty(
		payload.Address.City,
		payload.Address.Town,
		payload.Address.Village,
		payload.Address.Municipality,
		payload.Address.County,
		payload.Address.State,
	)
	if name == "" {
		return nil, nil
	}
	return &weather.Location{
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Country:   payload.Address.Country,
		Admin1:    payload.Address.State,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

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

func inferReverseURL(baseURL string) string {
	if prefix, ok := strings.CutSuffix(baseURL, "/search"); ok {
		return prefix + "/reverse"
	}
	return baseURL
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
