package weather

// Units selects the measurement system the provider returns. It affects
// numeric magnitudes only, never response structure.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// Condition is the primary weather descriptor of a reading: a high-level
// category keyword, a human description, and an icon code.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Measurements holds the numeric block shared by current conditions and
// forecast samples.
type Measurements struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  float64 `json:"humidity"`
	Pressure  float64 `json:"pressure"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentWeather mirrors the provider's current-conditions payload, limited
// to the fields the application consumes.
type CurrentWeather struct {
	Name       string       `json:"name"`
	Coord      Coord        `json:"coord"`
	Main       Measurements `json:"main"`
	Wind       Wind         `json:"wind"`
	Weather    []Condition  `json:"weather"`
	Visibility int          `json:"visibility"` // meters
	Dt         int64        `json:"dt"`
	Timezone   int          `json:"timezone"` // seconds east of UTC
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// PrimaryCondition returns the leading condition descriptor, or a zero value
// when the provider sent none.
func (w *CurrentWeather) PrimaryCondition() Condition {
	if len(w.Weather) == 0 {
		return Condition{}
	}
	return w.Weather[0]
}

// ForecastSample is one fine-grained forecast interval (3-hourly for
// OpenWeather) with its timestamp in epoch seconds.
type ForecastSample struct {
	Dt      int64        `json:"dt"`
	Main    Measurements `json:"main"`
	Wind    Wind         `json:"wind"`
	Weather []Condition  `json:"weather"`
}

// ForecastResponse is the provider's multi-sample forecast payload. List is
// ordered chronologically as supplied by the provider.
type ForecastResponse struct {
	List []ForecastSample `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"` // seconds east of UTC
	} `json:"city"`
}
