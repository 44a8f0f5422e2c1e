package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider abstracts the external weather data service. Implementations
// return pre-converted magnitudes for the requested unit system.
type Provider interface {
	CurrentByCity(ctx context.Context, query string, units Units) (*CurrentWeather, error)
	CurrentByCoords(ctx context.Context, lat, lon float64, units Units) (*CurrentWeather, error)
	ForecastByCity(ctx context.Context, query string, units Units) (*ForecastResponse, error)
}

// Sentinel errors carry the user-facing guidance text directly; callers
// surface them verbatim.
var (
	ErrMissingAPIKey = errors.New("Missing API key. Set OPENWEATHER_API_KEY in .env and restart.")
	ErrCityNotFound  = errors.New("City not found. Please check the name and try again.")
	ErrUnauthorized  = errors.New("Invalid API key. See the OpenWeather FAQ or check OPENWEATHER_API_KEY.")
)

// ParseUnits validates a unit-system selector.
func ParseUnits(s string) (Units, error) {
	switch Units(strings.ToLower(s)) {
	case UnitsMetric:
		return UnitsMetric, nil
	case UnitsImperial:
		return UnitsImperial, nil
	}
	return "", fmt.Errorf("unknown units %q (want metric or imperial)", s)
}
