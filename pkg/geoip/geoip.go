// Package geoip guesses the user's location from their public IP. It is
// strictly best-effort: any failure returns nil and the caller falls back to
// a default city.
package geoip

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

const requestTimeout = 5 * time.Second

type apiResponse struct {
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	CountryName string   `json:"country_name"`
	Region      string   `json:"region"`
	Timezone    string   `json:"timezone"`
}

// Detect queries endpoint (an ipapi.co style JSON service) for the location
// behind the caller's IP. Returns nil when anything at all goes wrong.
func Detect(ctx context.Context, endpoint string) *weather.Location {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	client := &http.Client{Timeout: requestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}
	if payload.City == "" || payload.Latitude == nil || payload.Longitude == nil {
		return nil
	}
	return &weather.Location{
		Name:      payload.City,
		Latitude:  *payload.Latitude,
		Longitude: *payload.Longitude,
		Country:   payload.CountryName,
		Admin1:    payload.Region,
		Timezone:  payload.Timezone,
	}
}
