package alerts

import (
	"strings"

	"github.com/skycast/backend/internal/common"
)

// Severity levels, highest to lowest.
const (
	SeverityDanger  = "danger"
	SeverityWarning = "warning"
	SeverityCaution = "caution"
	SeverityInfo    = "info"
)

// Alert is a display-ready advisory derived from current conditions.
type Alert struct {
	Severity string `json:"severity"`
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// Evaluate derives advisories from current conditions. Thresholds are applied
// to the magnitudes as returned for the selected unit system; they are
// calibrated for metric values (celsius, m/s).
func Evaluate(condition string, temp, windSpeed, humidity float64) []Alert {
	var out []Alert

	switch {
	case temp >= 35:
		out = append(out, Alert{
			Severity: SeverityWarning,
			Icon:     "🔥",
			Title:    "Extreme Heat Warning",
			Message:  "Very high temperatures detected. Stay hydrated and avoid prolonged sun exposure.",
		})
	case temp <= -10:
		out = append(out, Alert{
			Severity: SeverityWarning,
			Icon:     "🥶",
			Title:    "Extreme Cold Warning",
			Message:  "Very low temperatures detected. Dress warmly and limit outdoor exposure.",
		})
	}

	if windSpeed >= 15 {
		out = append(out, Alert{
			Severity: SeverityCaution,
			Icon:     "💨",
			Title:    "High Wind Advisory",
			Message:  "Strong winds detected. Secure loose objects and use caution when driving.",
		})
	}

	cond := strings.ToLower(condition)
	switch {
	case strings.Contains(cond, "thunder"):
		out = append(out, Alert{
			Severity: SeverityDanger,
			Icon:     "⛈️",
			Title:    "Thunderstorm Warning",
			Message:  "Thunderstorms in the area. Seek shelter indoors and avoid outdoor activities.",
		})
	case strings.Contains(cond, "snow"):
		out = append(out, Alert{
			Severity: SeverityCaution,
			Icon:     "❄️",
			Title:    "Snow Advisory",
			Message:  "Snow conditions detected. Drive carefully and allow extra travel time.",
		})
	case common.HasAny(cond, "rain", "drizzle"):
		out = append(out, Alert{
			Severity: SeverityInfo,
			Icon:     "☔",
			Title:    "Rain Advisory",
			Message:  "Rainy conditions expected. Carry an umbrella and drive carefully.",
		})
	}

	if humidity >= 85 {
		out = append(out, Alert{
			Severity: SeverityInfo,
			Icon:     "💧",
			Title:    "High Humidity",
			Message:  "Very humid conditions. Stay cool and hydrated.",
		})
	}

	return out
}
