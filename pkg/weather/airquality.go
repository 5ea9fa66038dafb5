package weather

import "math"

// AirQualityCategory is the health bucket an AQI value falls into.
type AirQualityCategory int

const (
	AirQualityUnknown AirQualityCategory = iota
	AirQualityGood
	AirQualityModerate
	AirQualityUnhealthySensitive
	AirQualityUnhealthy
	AirQualityVeryUnhealthy
	AirQualityHazardous
)

func (c AirQualityCategory) String() string {
	switch c {
	case AirQualityGood:
		return "Good"
	case AirQualityModerate:
		return "Moderate"
	case AirQualityUnhealthySensitive:
		return "USG"
	case AirQualityUnhealthy:
		return "Unhealthy"
	case AirQualityVeryUnhealthy:
		return "Very Unhealthy"
	case AirQualityHazardous:
		return "Hazardous"
	default:
		return "Unknown"
	}
}

// AirQualityReading carries whichever AQI indices the provider reported.
// Zero-valued pointers never occur; a nil pointer means "not reported".
type AirQualityReading struct {
	USAQI       *int
	EuropeanAQI *int
	Category    AirQualityCategory
}

// AirQualityFromIndices builds a reading from raw provider values, dropping
// non-finite or negative indices. Returns nil when neither index survives.
func AirQualityFromIndices(usAQI, europeanAQI *float64) *AirQualityReading {
	us := sanitizeAQI(usAQI)
	eu := sanitizeAQI(europeanAQI)
	if us == nil && eu == nil {
		return nil
	}

	category := AirQualityUnknown
	switch {
	case us != nil:
		category = CategorizeUSAQI(*us)
	case eu != nil:
		category = CategorizeEuropeanAQI(*eu)
	}

	return &AirQualityReading{USAQI: us, EuropeanAQI: eu, Category: category}
}

// DisplayValue returns the preferred index as text, "N/A" when absent.
func (r *AirQualityReading) DisplayValue() string {
	switch {
	case r.USAQI != nil:
		return itoa(*r.USAQI)
	case r.EuropeanAQI != nil:
		return itoa(*r.EuropeanAQI)
	default:
		return "N/A"
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 && i > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func sanitizeAQI(value *float64) *int {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) || *value < 0 {
		return nil
	}
	v := int(roundHalfAway(*value))
	return &v
}

// CategorizeUSAQI buckets a US AQI value per the EPA scale.
func CategorizeUSAQI(aqi int) AirQualityCategory {
	switch {
	case aqi <= 50:
		return AirQualityGood
	case aqi <= 100:
		return AirQualityModerate
	case aqi <= 150:
		return AirQualityUnhealthySensitive
	case aqi <= 200:
		return AirQualityUnhealthy
	case aqi <= 300:
		return AirQualityVeryUnhealthy
	case aqi <= 500:
		return AirQualityHazardous
	default:
		return AirQualityUnknown
	}
}

// CategorizeEuropeanAQI buckets a European AQI value per the EEA scale.
func CategorizeEuropeanAQI(aqi int) AirQualityCategory {
	switch {
	case aqi <= 20:
		return AirQualityGood
	case aqi <= 40:
		return AirQualityModerate
	case aqi <= 60:
		return AirQualityUnhealthySensitive
	case aqi <= 80:
		return AirQualityUnhealthy
	case aqi <= 100:
		return AirQualityVeryUnhealthy
	default:
		return AirQualityHazardous
	}
}
