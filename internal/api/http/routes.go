package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/skycast/backend/internal/alerts"
	"github.com/skycast/backend/internal/display"
	"github.com/skycast/backend/internal/favorites"
	"github.com/skycast/backend/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, favs *favorites.Store) {
	v1 := app.Group("/api/v1")

	// Current conditions plus derived alerts and daily summaries: the
	// response for one search action.
	v1.Get("/weather", func(c *fiber.Ctx) error {
		var req weatherQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.Lookup(c.Context(), req.Query, req.units())
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(lookupView(result))
	})

	v1.Get("/weather/by-coords", func(c *fiber.Ctx) error {
		var req coordsQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.LookupByCoords(c.Context(), req.Lat, req.Lon, req.units())
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(lookupView(result))
	})

	v1.Get("/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.Forecast(c.Context(), req.Query, req.units())
		if err != nil {
			return upstreamError(err)
		}
		return c.JSON(fiber.Map{
			"city": forecast.City,
			"days": forecastDays(forecast, req.Days),
		})
	})

	v1.Get("/favorites", func(c *fiber.Ctx) error {
		return c.JSON(favs.List())
	})

	v1.Post("/favorites", func(c *fiber.Ctx) error {
		var req favoriteRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(favs.Add(req.Name, req.Country))
	})

	v1.Delete("/favorites/:id", func(c *fiber.Ctx) error {
		return c.JSON(favs.Remove(c.Params("id")))
	})

	v1.Get("/favorites/status", func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name query parameter is required")
		}
		return c.JSON(fiber.Map{
			"favorite": favs.IsFavorite(name, c.Query("country")),
		})
	})
}

// upstreamError converts a provider error into an HTTP response carrying the
// user-facing message.
func upstreamError(err error) error {
	if errors.Is(err, weather.ErrCityNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusBadGateway, err.Error())
}

// lookupView shapes a lookup result for display: the raw current conditions,
// derived alerts, and one labeled entry per forecast day.
func lookupView(result *weather.LookupResult) fiber.Map {
	cond := result.Current.PrimaryCondition()
	return fiber.Map{
		"current":       result.Current,
		"emoji":         display.Emoji(cond.Main),
		"windDirection": display.WindDirection(result.Current.Wind.Deg),
		"alerts": alerts.Evaluate(
			cond.Main,
			result.Current.Main.Temp,
			result.Current.Wind.Speed,
			result.Current.Main.Humidity,
		),
		"days": forecastDays(result.Forecast, weather.DefaultHorizonDays),
	}
}

type forecastView struct {
	Label         string                 `json:"label"`
	Date          string                 `json:"date"`
	Emoji         string                 `json:"emoji"`
	WindDirection string                 `json:"windDirection"`
	Sample        weather.ForecastSample `json:"sample"`
}

// forecastDays buckets the raw series into daily summaries, labeled relative
// to the current date in the city's timezone.
func forecastDays(forecast *weather.ForecastResponse, horizon int) []forecastView {
	if forecast == nil {
		return nil
	}

	loc := time.FixedZone("city", forecast.City.Timezone)
	now := time.Now().In(loc)

	days := weather.DailySummaries(forecast.List, horizon, loc)
	out := make([]forecastView, 0, len(days))
	for _, d := range days {
		cond := ""
		if len(d.Sample.Weather) > 0 {
			cond = d.Sample.Weather[0].Main
		}
		out = append(out, forecastView{
			Label:         weather.DayLabel(d.Timestamp, now),
			Date:          d.Timestamp.Format("2006-01-02"),
			Emoji:         display.Emoji(cond),
			WindDirection: display.WindDirection(d.Sample.Wind.Deg),
			Sample:        d.Sample,
		})
	}
	return out
}

// weatherQuery holds query parameters for the current-conditions endpoint.
type weatherQuery struct {
	Query string `validate:"required"`
	Units string `validate:"omitempty,oneof=metric imperial"`
}

func (q *weatherQuery) bind(c *fiber.Ctx) error {
	q.Query = c.Query("q")
	q.Units = c.Query("units")
	return validate.Struct(q)
}

func (q *weatherQuery) units() weather.Units {
	return weather.Units(q.Units)
}

// forecastQuery adds the horizon parameter; absent days falls back to the
// default horizon.
type forecastQuery struct {
	weatherQuery
	Days int `validate:"omitempty,min=1,max=5"`
}

func (q *forecastQuery) bind(c *fiber.Ctx) error {
	if err := q.weatherQuery.bind(c); err != nil {
		return err
	}
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return errors.New("invalid days parameter; want an integer between 1 and 5")
		}
		q.Days = days
	}
	return validate.Struct(q)
}

// coordsQuery holds query parameters for coordinate lookups.
type coordsQuery struct {
	Lat   float64 `validate:"min=-90,max=90"`
	Lon   float64 `validate:"min=-180,max=180"`
	Units string  `validate:"omitempty,oneof=metric imperial"`
}

func (q *coordsQuery) bind(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		return errors.New("lat and lon query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return errors.New("invalid lat parameter")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return errors.New("invalid lon parameter")
	}

	q.Lat = lat
	q.Lon = lon
	q.Units = c.Query("units")
	return validate.Struct(q)
}

func (q *coordsQuery) units() weather.Units {
	return weather.Units(q.Units)
}

// favoriteRequest is the body for adding a favorite.
type favoriteRequest struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country"`
}
