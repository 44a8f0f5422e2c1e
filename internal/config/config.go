package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/skycast/backend/internal/weather"
)

// Favorites persistence backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type AppConfig struct {
	// OpenWeatherAPIKey may be empty; fetch attempts then fail with the
	// missing-credential guidance instead of startup failing.
	OpenWeatherAPIKey string

	// DefaultCity is looked up when no explicit query is given.
	DefaultCity string

	// Units is the default unit system for fetches.
	Units weather.Units

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	// FavoritesBackend selects the slot implementation; FavoritesPath is the
	// file or database location.
	FavoritesBackend string
	FavoritesPath    string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", "Colombo, Sri Lanka")
	cfg.Port = getenvDefault("PORT", "8080")

	units, err := weather.ParseUnits(getenvDefault("UNITS", "metric"))
	if err != nil {
		return nil, fmt.Errorf("invalid UNITS: %w", err)
	}
	cfg.Units = units

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.FavoritesBackend = getenvDefault("FAVORITES_BACKEND", BackendFile)
	switch cfg.FavoritesBackend {
	case BackendFile:
		cfg.FavoritesPath = getenvDefault("FAVORITES_PATH", "skycast-favorites.json")
	case BackendSQLite:
		cfg.FavoritesPath = getenvDefault("FAVORITES_PATH", "skycast.db")
	default:
		return nil, fmt.Errorf("invalid FAVORITES_BACKEND %q (want file or sqlite)", cfg.FavoritesBackend)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
