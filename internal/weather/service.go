package weather

import (
	"context"
	"log"
	"sync"
)

// LookupResult bundles the two fetches a single user action triggers.
type LookupResult struct {
	Current  *CurrentWeather   `json:"current"`
	Forecast *ForecastResponse `json:"forecast,omitempty"`
}

// Service orchestrates provider calls for the lookup flows.
type Service struct {
	provider Provider
}

// NewService creates a new Service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Lookup fetches current conditions and the forecast for a free-text query
// concurrently and returns once both settle. Either failure fails the lookup,
// with the current-conditions error taking precedence.
func (s *Service) Lookup(ctx context.Context, query string, units Units) (*LookupResult, error) {
	var (
		wg       sync.WaitGroup
		current  *CurrentWeather
		forecast *ForecastResponse
		curErr   error
		fcErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, curErr = s.provider.CurrentByCity(ctx, query, units)
	}()
	go func() {
		defer wg.Done()
		forecast, fcErr = s.provider.ForecastByCity(ctx, query, units)
	}()
	wg.Wait()

	if curErr != nil {
		return nil, curErr
	}
	if fcErr != nil {
		return nil, fcErr
	}
	return &LookupResult{Current: current, Forecast: forecast}, nil
}

// LookupByCoords fetches current conditions for a coordinate pair, then the
// forecast for the resolved city name. A forecast failure here is non-fatal:
// the result carries current conditions with a nil forecast.
func (s *Service) LookupByCoords(ctx context.Context, lat, lon float64, units Units) (*LookupResult, error) {
	current, err := s.provider.CurrentByCoords(ctx, lat, lon, units)
	if err != nil {
		return nil, err
	}

	result := &LookupResult{Current: current}
	if current.Name != "" {
		forecast, err := s.provider.ForecastByCity(ctx, current.Name, units)
		if err != nil {
			log.Printf("forecast unavailable for %q: %v", current.Name, err)
		} else {
			result.Forecast = forecast
		}
	}
	return result, nil
}

// Forecast fetches the raw forecast series for a free-text query.
func (s *Service) Forecast(ctx context.Context, query string, units Units) (*ForecastResponse, error) {
	return s.provider.ForecastByCity(ctx, query, units)
}
