package commands

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"tripmate/internal/config"
	"tripmate/internal/services"
	"tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

var cfg *config.Config

// LoadConfig reads the environment once per invocation and sets up logging.
func LoadConfig() error {
	cfg = config.Load()
	utils.InitLogger(cfg.LogLevel, "console")
	return nil
}

func newInvoker(ctx context.Context) (utils.ModelInvokerInterface, error) {
	generator, err := utils.NewTextGenerator(ctx, cfg.LLM.Provider, cfg.LLM.APIKey())
	if err != nil {
		return nil, err
	}
	return utils.NewModelInvoker(generator, utils.InvokerConfig{
		PrimaryModel:  cfg.LLM.PrimaryModel,
		FallbackModel: cfg.LLM.FallbackModel,
		Temperature:   cfg.LLM.Temperature,
		MaxRetries:    cfg.LLM.MaxRetries,
		BaseDelay:     cfg.LLM.BaseDelay,
		Timeout:       cfg.LLM.Timeout,
	}), nil
}

func newOrchestrator(invoker utils.ModelInvokerInterface) services.TravelOrchestratorInterface {
	return services.NewTravelOrchestrator(
		services.NewFlightAgent(invoker, cfg.Defaults.Origin),
		services.NewPlacesAgent(invoker),
		services.NewBudgetConstraintAgent(services.NewHotelAgent(invoker), services.NewActivityAgent(invoker)),
		services.NewItineraryAgent(invoker),
		services.NewBudgetAgent(invoker),
		services.NewVisaAgent(invoker),
		services.NewPackingAgent(invoker),
	)
}

func newFlightSearch() services.FlightSearchAgentInterface {
	amadeus := services.NewAmadeusService(services.AmadeusConfig{
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		BaseURL:      cfg.Amadeus.BaseURL,
		Currency:     cfg.Defaults.Currency,
		Timeout:      cfg.HTTP.Timeout,
	}, memcache.NewTTLCache(time.Hour, 10*time.Minute))
	return services.NewFlightSearchAgent(amadeus)
}

func newWeatherAgent() services.WeatherAgentInterface {
	return services.NewWeatherAgent(services.WeatherConfig{
		GeocodeURL:  cfg.Weather.GeocodeURL,
		ForecastURL: cfg.Weather.ForecastURL,
		Timeout:     cfg.HTTP.Timeout,
	})
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
