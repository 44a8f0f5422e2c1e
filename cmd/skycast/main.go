package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/skycast/backend/internal/alerts"
	httpapi "github.com/skycast/backend/internal/api/http"
	"github.com/skycast/backend/internal/config"
	"github.com/skycast/backend/internal/display"
	"github.com/skycast/backend/internal/favorites"
	"github.com/skycast/backend/internal/weather"
	"github.com/skycast/backend/internal/weather/providers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	provider := providers.NewOpenWeatherClient(httpClient, cfg.OpenWeatherAPIKey)
	service := weather.NewService(provider)

	favStore, closeFavs, err := openFavorites(cfg)
	if err != nil {
		log.Fatalf("failed to open favorites storage: %v", err)
	}
	defer closeFavs()

	rootCmd := &cobra.Command{
		Use:           "skycast",
		Short:         "Weather lookup with favorites and daily forecasts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg, service, favStore)
		},
	}

	var unitsFlag, outputFlag string
	getCmd := &cobra.Command{
		Use:   "get [city]",
		Short: "Show current conditions and the 5-day forecast for a city",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			city := cfg.DefaultCity
			if len(args) > 0 {
				city = args[0]
			}
			units := cfg.Units
			if unitsFlag != "" {
				parsed, err := weather.ParseUnits(unitsFlag)
				if err != nil {
					return err
				}
				units = parsed
			}
			return getWeather(service, city, units, outputFlag)
		},
	}
	getCmd.Flags().StringVarP(&unitsFlag, "units", "u", "", "unit system (metric, imperial)")
	getCmd.Flags().StringVarP(&outputFlag, "output", "o", "text", "output format (text, json)")

	rootCmd.AddCommand(serveCmd, getCmd, favoritesCmd(favStore))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openFavorites(cfg *config.AppConfig) (*favorites.Store, func(), error) {
	if cfg.FavoritesBackend == config.BackendSQLite {
		slot, err := favorites.NewSQLiteSlot(cfg.FavoritesPath, favorites.DefaultSlotKey)
		if err != nil {
			return nil, nil, err
		}
		return favorites.New(slot), func() { slot.Close() }, nil
	}
	return favorites.New(favorites.NewFileSlot(cfg.FavoritesPath)), func() {}, nil
}

// serve runs the Fiber server until SIGINT/SIGTERM, then shuts down
// gracefully.
func serve(cfg *config.AppConfig, service *weather.Service, favStore *favorites.Store) error {
	app := fiber.New(fiber.Config{
		AppName:               "skycast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "skycast",
		})
	})

	httpapi.RegisterRoutes(app, service, favStore)

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

// getWeather runs one lookup and prints it.
func getWeather(service *weather.Service, city string, units weather.Units, output string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	result, err := service.Lookup(ctx, city, units)
	if err != nil {
		return err
	}

	if output == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printWeather(result, units)
	return nil
}

func printWeather(result *weather.LookupResult, units weather.Units) {
	cur := result.Current
	cond := cur.PrimaryCondition()
	cityLoc := time.FixedZone("city", cur.Timezone)

	title := cur.Name
	if cur.Sys.Country != "" {
		title = cur.Name + ", " + cur.Sys.Country
	}

	fmt.Printf("%s  %s\n", display.Emoji(cond.Main), title)
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("%s, feels like %s (min %s, max %s)\n",
		display.FormatTemp(cur.Main.Temp, units),
		display.FormatTemp(cur.Main.FeelsLike, units),
		display.FormatTemp(cur.Main.TempMin, units),
		display.FormatTemp(cur.Main.TempMax, units))
	if cond.Description != "" {
		fmt.Printf("Conditions: %s\n", cond.Description)
	}
	fmt.Printf("Humidity: %.0f%%   Pressure: %.0f hPa\n", cur.Main.Humidity, cur.Main.Pressure)
	fmt.Printf("Wind: %.1f %s from %s\n", cur.Wind.Speed, windUnit(units), display.WindDirection(cur.Wind.Deg))
	fmt.Printf("Visibility: %s\n", display.FormatVisibility(cur.Visibility))
	fmt.Printf("Sunrise: %s   Sunset: %s\n",
		time.Unix(cur.Sys.Sunrise, 0).In(cityLoc).Format("15:04"),
		time.Unix(cur.Sys.Sunset, 0).In(cityLoc).Format("15:04"))

	derived := alerts.Evaluate(cond.Main, cur.Main.Temp, cur.Wind.Speed, cur.Main.Humidity)
	for _, a := range derived {
		fmt.Printf("%s %s: %s\n", a.Icon, a.Title, a.Message)
	}

	if result.Forecast == nil {
		return
	}

	loc := time.FixedZone("city", result.Forecast.City.Timezone)
	now := time.Now().In(loc)
	fmt.Println()
	fmt.Println("5-Day Forecast")
	fmt.Println(strings.Repeat("-", 40))
	for _, d := range weather.DailySummaries(result.Forecast.List, weather.DefaultHorizonDays, loc) {
		dayCond := ""
		dayDesc := ""
		if len(d.Sample.Weather) > 0 {
			dayCond = d.Sample.Weather[0].Main
			dayDesc = d.Sample.Weather[0].Description
		}
		fmt.Printf("%-18s %s  %-6s %s\n",
			weather.DayLabel(d.Timestamp, now),
			display.Emoji(dayCond),
			display.FormatTemp(d.Sample.Main.Temp, units),
			dayDesc)
	}
}

func windUnit(units weather.Units) string {
	if units == weather.UnitsImperial {
		return "mph"
	}
	return "m/s"
}

func favoritesCmd(favStore *favorites.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite cities",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List favorite cities, most recent first",
		Run: func(cmd *cobra.Command, args []string) {
			printFavorites(favStore.List())
		},
	}

	var countryFlag string
	addCmd := &cobra.Command{
		Use:   "add [city]",
		Short: "Add a city to favorites",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printFavorites(favStore.Add(args[0], countryFlag))
		},
	}
	addCmd.Flags().StringVarP(&countryFlag, "country", "c", "", "country code (e.g. LK, GB)")

	removeCmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Remove a favorite by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printFavorites(favStore.Remove(args[0]))
		},
	}

	cmd.AddCommand(listCmd, addCmd, removeCmd)
	return cmd
}

func printFavorites(entries []favorites.Entry) {
	if len(entries) == 0 {
		fmt.Println("No favorite cities yet.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%-24s %s\n", e.DisplayName, e.ID)
	}
}
