package weather

import (
	"context"
	"errors"
	"testing"
)

// stubProvider returns canned responses and records the queries it receives.
type stubProvider struct {
	current     *CurrentWeather
	forecast    *ForecastResponse
	currentErr  error
	forecastErr error

	forecastQueries []string
}

func (s *stubProvider) CurrentByCity(ctx context.Context, query string, units Units) (*CurrentWeather, error) {
	return s.current, s.currentErr
}

func (s *stubProvider) CurrentByCoords(ctx context.Context, lat, lon float64, units Units) (*CurrentWeather, error) {
	return s.current, s.currentErr
}

func (s *stubProvider) ForecastByCity(ctx context.Context, query string, units Units) (*ForecastResponse, error) {
	s.forecastQueries = append(s.forecastQueries, query)
	return s.forecast, s.forecastErr
}

func fixtureCurrent(name string) *CurrentWeather {
	cur := &CurrentWeather{Name: name}
	cur.Main.Temp = 21
	cur.Weather = []Condition{{Main: "Clear", Description: "clear sky"}}
	return cur
}

func TestLookupFetchesBoth(t *testing.T) {
	stub := &stubProvider{
		current:  fixtureCurrent("London"),
		forecast: &ForecastResponse{List: []ForecastSample{{Dt: 1}}},
	}
	svc := NewService(stub)

	result, err := svc.Lookup(context.Background(), "London", UnitsMetric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Current == nil || result.Current.Name != "London" {
		t.Fatalf("missing current conditions: %+v", result.Current)
	}
	if result.Forecast == nil || len(result.Forecast.List) != 1 {
		t.Fatalf("missing forecast: %+v", result.Forecast)
	}
}

func TestLookupCurrentErrorWins(t *testing.T) {
	stub := &stubProvider{
		currentErr:  ErrCityNotFound,
		forecastErr: errors.New("other failure"),
	}
	svc := NewService(stub)

	_, err := svc.Lookup(context.Background(), "Nowhere", UnitsMetric)
	if !errors.Is(err, ErrCityNotFound) {
		t.Fatalf("expected city-not-found, got %v", err)
	}
}

func TestLookupForecastErrorFailsLookup(t *testing.T) {
	stub := &stubProvider{
		current:     fixtureCurrent("London"),
		forecastErr: errors.New("forecast down"),
	}
	svc := NewService(stub)

	_, err := svc.Lookup(context.Background(), "London", UnitsMetric)
	if err == nil || err.Error() != "forecast down" {
		t.Fatalf("expected forecast error, got %v", err)
	}
}

func TestLookupByCoordsForecastFailureIsNonFatal(t *testing.T) {
	stub := &stubProvider{
		current:     fixtureCurrent("Colombo"),
		forecastErr: errors.New("forecast down"),
	}
	svc := NewService(stub)

	result, err := svc.LookupByCoords(context.Background(), 6.9, 79.8, UnitsMetric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Forecast != nil {
		t.Fatalf("expected nil forecast after forecast failure")
	}
	if len(stub.forecastQueries) != 1 || stub.forecastQueries[0] != "Colombo" {
		t.Fatalf("expected forecast fetched by resolved name, got %v", stub.forecastQueries)
	}
}
