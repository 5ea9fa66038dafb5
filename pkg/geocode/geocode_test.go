package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitlab.com/tinyland/lab/skycast/pkg/weather"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"New-York", "new york"},
		{"new  york", "new york"},
		{"  SAO_PAULO ", "sao paulo"},
		{"Åre", "åre"},
	}
	for _, tt := range tests {
		if got := normalizeQuery(tt.in); got != tt.want {
			t.Errorf("normalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRankingPrefersExactNameOverPopulation(t *testing.T) {
	results := []searchResult{
		{Name: "Parish", CountryCode: "US", Population: 10_000_000},
		{Name: "Paris", CountryCode: "FR", Population: 2_000_000},
	}
	ranked := rankCandidates(results, "Paris", "")
	if ranked[0].result.Name != "Paris" {
		t.Errorf("top candidate = %q, want Paris", ranked[0].result.Name)
	}
}

func TestRankingCountryBias(t *testing.T) {
	results := []searchResult{
		{Name: "London", CountryCode: "GB", Population: 9_000_000},
		{Name: "London", CountryCode: "CA", Population: 400_000},
	}
	ranked := rankCandidates(results, "London", "ca")
	if ranked[0].result.CountryCode != "CA" {
		t.Errorf("country bias ignored, top = %q", ranked[0].result.CountryCode)
	}
}

func TestIsAmbiguous(t *testing.T) {
	base := scoredCandidate{exactName: true, countryMatch: false}

	tests := []struct {
		name string
		p1   int64
		p2   int64
		want bool
	}{
		{"within ratio", 1_000_000, 950_000, true},
		{"ratio 1.053", 1_000_000, 950_000, true},
		{"clear winner", 3_000_000, 2_000_000, false},
		{"both unknown", 0, 0, true},
		{"one unknown", 5_000_000, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base, base
			a.population, b.population = tt.p1, tt.p2
			if got := isAmbiguous(a, b); got != tt.want {
				t.Errorf("isAmbiguous(%d, %d) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}

	differentExactness := base
	differentExactness.exactName = false
	differentExactness.population = 1_000_000
	top := base
	top.population = 1_000_000
	if isAmbiguous(top, differentExactness) {
		t.Error("differing exact-name flags should never be ambiguous")
	}
}

func TestResolveSelectsSingleResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Stockholm" {
			t.Errorf("name param = %q", got)
		}
		if got := r.URL.Query().Get("count"); got != "5" {
			t.Errorf("count param = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"Stockholm","latitude":59.3293,"longitude":18.0686,
			"country":"Sweden","country_code":"SE","admin1":"Stockholm","timezone":"Europe/Stockholm",
			"population":975904}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Resolve(context.Background(), "Stockholm", "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	sel, ok := res.(weather.Selected)
	if !ok {
		t.Fatalf("resolution = %T, want Selected", res)
	}
	if sel.Location.Name != "Stockholm" || sel.Location.Timezone != "Europe/Stockholm" {
		t.Errorf("location = %+v", sel.Location)
	}
}

func TestResolveAmbiguousReturnsOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"name":"Springfield","latitude":39.8,"longitude":-89.6,"country_code":"US","population":114000},
			{"name":"Springfield","latitude":42.1,"longitude":-72.6,"country_code":"US","population":155000},
			{"name":"Springfield","latitude":37.2,"longitude":-93.3,"country_code":"US","population":169000}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Resolve(context.Background(), "Springfield", "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	amb, ok := res.(weather.NeedsDisambiguation)
	if !ok {
		t.Fatalf("resolution = %T, want NeedsDisambiguation", res)
	}
	if len(amb.Options) != 3 {
		t.Errorf("options = %d, want 3", len(amb.Options))
	}
	// Highest population first among equal exactness.
	if amb.Options[0].Population != 169000 {
		t.Errorf("top option population = %d", amb.Options[0].Population)
	}
}

func TestResolveEmptyResultsIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Resolve(context.Background(), "Xyzzy", "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	nf, ok := res.(weather.NotFound)
	if !ok {
		t.Fatalf("resolution = %T, want NotFound", res)
	}
	if nf.Query != "Xyzzy" {
		t.Errorf("query = %q", nf.Query)
	}
}

func TestResolveServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Resolve(context.Background(), "Paris", ""); err == nil {
		t.Error("expected error for 502 response")
	}
}

func TestInferReverseURL(t *testing.T) {
	if got := inferReverseURL("https://geocoding-api.open-meteo.com/v1/search"); got != "https://geocoding-api.open-meteo.com/v1/reverse" {
		t.Errorf("inferReverseURL = %q", got)
	}
	if got := inferReverseURL("http://127.0.0.1:1234"); got != "http://127.0.0.1:1234" {
		t.Errorf("inferReverseURL without suffix = %q", got)
	}
}

func TestReverseResolve(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/reverse", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":{"city":"Stockholm","state":"Stockholm County","country":"Sweden"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL + "/v1/search")
	loc, err := c.ReverseResolve(context.Background(), 59.3293, 18.0686)
	if err != nil {
		t.Fatalf("ReverseResolve() error: %v", err)
	}
	if loc == nil {
		t.Fatal("expected a location")
	}
	if loc.Name != "Stockholm" || loc.Admin1 != "Stockholm County" || loc.Country != "Sweden" {
		t.Errorf("location = %+v", loc)
	}
}

func TestReverseResolveNoUsableName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"country":"Sweden"}}`))
	}))
	defer srv.Close()

	loc, err := NewWithURLs(srv.URL, srv.URL).ReverseResolve(context.Background(), 59.0, 18.0)
	if err != nil {
		t.Fatalf("ReverseResolve() error: %v", err)
	}
	if loc != nil {
		t.Errorf("expected nil location, got %+v", loc)
	}
}
