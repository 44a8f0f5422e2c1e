package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skycast/backend/internal/weather"
)

// OpenWeatherClient implements weather.Provider against the OpenWeather
// /data/2.5 endpoints.
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherClient creates a client. A nil http.Client gets a 10 second
// timeout default.
func NewOpenWeatherClient(client *http.Client, apiKey string) *OpenWeatherClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		client:  client,
	}
}

// CurrentByCity fetches current conditions for a free-text location query.
func (c *OpenWeatherClient) CurrentByCity(ctx context.Context, query string, units weather.Units) (*weather.CurrentWeather, error) {
	values := url.Values{}
	values.Set("q", query)

	var out weather.CurrentWeather
	if err := c.get(ctx, "/weather", values, units, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentByCoords fetches current conditions for a coordinate pair.
func (c *OpenWeatherClient) CurrentByCoords(ctx context.Context, lat, lon float64, units weather.Units) (*weather.CurrentWeather, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var out weather.CurrentWeather
	if err := c.get(ctx, "/weather", values, units, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForecastByCity fetches the 3-hourly forecast series for a free-text
// location query.
func (c *OpenWeatherClient) ForecastByCity(ctx context.Context, query string, units weather.Units) (*weather.ForecastResponse, error) {
	values := url.Values{}
	values.Set("q", query)

	var out weather.ForecastResponse
	if err := c.get(ctx, "/forecast", values, units, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *OpenWeatherClient) get(ctx context.Context, path string, values url.Values, units weather.Units, out interface{}) error {
	if c.apiKey == "" {
		return weather.ErrMissingAPIKey
	}
	if units == "" {
		units = weather.UnitsMetric
	}
	values.Set("appid", c.apiKey)
	values.Set("units", string(units))

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return translateError(resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}

// translateError maps provider failures onto the user-facing error taxonomy:
// not-found and not-authorized get fixed guidance text, everything else uses
// the best available message from the payload, then the raw body, then a
// generic status description.
func translateError(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return weather.ErrCityNotFound
	case http.StatusUnauthorized:
		return weather.ErrUnauthorized
	}

	var payload struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return errors.New(payload.Message)
		}
		if payload.Error.Message != "" {
			return errors.New(payload.Error.Message)
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return fmt.Errorf("request failed with status %d: %s", status, text)
	}
	return fmt.Errorf("request failed with status %d", status)
}

var _ weather.Provider = (*OpenWeatherClient)(nil)
