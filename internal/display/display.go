// Package display holds the pure presentation mappings: emoji by condition
// keyword, temperature formatting, compass lookup, visibility.
package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/skycast/backend/internal/common"
	"github.com/skycast/backend/internal/weather"
)

// Emoji maps a condition category keyword to an emoji.
func Emoji(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "clear"):
		return "☀️"
	case strings.Contains(c, "cloud"):
		return "☁️"
	case strings.Contains(c, "rain"):
		return "🌧️"
	case strings.Contains(c, "drizzle"):
		return "🌦️"
	case strings.Contains(c, "snow"):
		return "❄️"
	case strings.Contains(c, "thunder"):
		return "⛈️"
	case common.HasAny(c, "mist", "fog"):
		return "🌫️"
	}
	return "🌤️"
}

// FormatTemp rounds a temperature and appends the unit symbol. NaN renders
// as an em dash placeholder.
func FormatTemp(v float64, units weather.Units) string {
	if math.IsNaN(v) {
		return "—"
	}
	symbol := "°C"
	if units == weather.UnitsImperial {
		symbol = "°F"
	}
	return fmt.Sprintf("%d%s", int(math.Round(v)), symbol)
}

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection converts a wind bearing in degrees to a 16-point compass
// label.
func WindDirection(deg int) string {
	idx := int(math.Round(float64(deg)/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// FormatVisibility renders a visibility in meters as kilometers.
func FormatVisibility(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}
