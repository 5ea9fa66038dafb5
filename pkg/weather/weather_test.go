package weather

import (
	"testing"
)

func TestConvertTemp(t *testing.T) {
	cases := []struct {
		celsius float64
		units   Units
		want    float64
	}{
		{0, UnitsCelsius, 0},
		{0, UnitsFahrenheit, 32},
		{100, UnitsFahrenheit, 212},
		{-40, UnitsFahrenheit, -40},
	}

	for _, tc := range cases {
		got := ConvertTemp(tc.celsius, tc.units)
		if got != tc.want {
			t.Errorf("ConvertTemp(%v, %v) = %v, want %v", tc.celsius, tc.units, got, tc.want)
		}
	}
}

func TestRoundTemp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{1.4, 1},
		{1.5, 2},
		{-1.5, -2},
		{-0.4, 0},
	}
	for _, tc := range cases {
		if got := RoundTemp(tc.in); got != tc.want {
			t.Errorf("RoundTemp(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRoundWindSpeedConvertsToMetersPerSecond(t *testing.T) {
	// 36 km/h = 10 m/s
	if got := RoundWindSpeed(36); got != 10 {
		t.Errorf("RoundWindSpeed(36) = %d, want 10", got)
	}
}

func TestFromCoordsFormatsName(t *testing.T) {
	loc := FromCoords(59.3293, 18.0686)
	if loc.Name != "59.3293, 18.0686" {
		t.Errorf("unexpected synthetic name %q", loc.Name)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		loc  Location
		want string
	}{
		{Location{Name: "Stockholm", Admin1: "Stockholm County", Country: "Sweden"}, "Stockholm, Stockholm County, Sweden"},
		{Location{Name: "Stockholm", Country: "Sweden"}, "Stockholm, Sweden"},
		{Location{Name: "Stockholm"}, "Stockholm"},
	}
	for _, tc := range cases {
		if got := tc.loc.DisplayName(); got != tc.want {
			t.Errorf("DisplayName() = %q, want %q", got, tc.want)
		}
	}
}

func TestCodeCategoryBuckets(t *testing.T) {
	cases := []struct {
		code int
		want Category
	}{
		{0, CategoryClear},
		{1, CategoryClear},
		{2, CategoryCloudy},
		{3, CategoryCloudy},
		{45, CategoryFog},
		{55, CategoryRain},
		{65, CategoryRain},
		{81, CategoryRain},
		{75, CategorySnow},
		{86, CategorySnow},
		{95, CategoryThunder},
		{42, CategoryUnknown},
	}
	for _, tc := range cases {
		if got := CodeCategory(tc.code); got != tc.want {
			t.Errorf("CodeCategory(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestCodeLabelForTimeDistinguishesNight(t *testing.T) {
	if got := CodeLabelForTime(0, false); got != "Clear night" {
		t.Errorf("expected clear night label, got %q", got)
	}
	if got := CodeLabelForTime(95, true); got != "Thunderstorm" {
		t.Errorf("expected thunderstorm label, got %q", got)
	}
	if got := CodeLabelForTime(200, true); got != "Unknown" {
		t.Errorf("expected unknown label, got %q", got)
	}
}

func TestCodeIconStyles(t *testing.T) {
	if got := CodeIcon(0, IconASCII, true); got != "SUN" {
		t.Errorf("ascii day clear icon = %q", got)
	}
	if got := CodeIcon(0, IconASCII, false); got != "MON" {
		t.Errorf("ascii night clear icon = %q", got)
	}
	if got := CodeIcon(63, IconUnicode, true); got != "☂" {
		t.Errorf("unicode rain icon = %q", got)
	}
}

func TestAirQualityFromIndices(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	if r := AirQualityFromIndices(nil, nil); r != nil {
		t.Error("expected nil reading when no indices")
	}

	r := AirQualityFromIndices(f(42), nil)
	if r == nil || r.Category != AirQualityGood {
		t.Fatalf("expected Good category, got %+v", r)
	}
	if r.DisplayValue() != "42" {
		t.Errorf("DisplayValue() = %q, want 42", r.DisplayValue())
	}

	r = AirQualityFromIndices(nil, f(90))
	if r == nil || r.Category != AirQualityVeryUnhealthy {
		t.Fatalf("expected Very Unhealthy on European scale, got %+v", r)
	}

	if r := AirQualityFromIndices(f(-3), nil); r != nil {
		t.Error("negative index should be discarded")
	}
}

func TestGeocodeResolutionVariants(t *testing.T) {
	var r GeocodeResolution = Selected{Location: Location{Name: "Paris"}}
	if _, ok := r.(Selected); !ok {
		t.Error("expected Selected variant")
	}
	r = NeedsDisambiguation{Options: []Location{{Name: "Paris"}}}
	if _, ok := r.(NeedsDisambiguation); !ok {
		t.Error("expected NeedsDisambiguation variant")
	}
	r = NotFound{Query: "Atlantis"}
	if nf, ok := r.(NotFound); !ok || nf.Query != "Atlantis" {
		t.Error("expected NotFound variant carrying the query")
	}
}

func TestParseTimes(t *testing.T) {
	if _, ok := ParseHourlyTime("2026-08-28T15:00"); !ok {
		t.Error("expected hourly time to parse")
	}
	if _, ok := ParseDailyDate("2026-08-28"); !ok {
		t.Error("expected daily date to parse")
	}
	if _, ok := ParseHourlyTime("not-a-time"); ok {
		t.Error("expected garbage to fail")
	}
}
