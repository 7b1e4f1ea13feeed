package agents_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/config"
	"tripmate/internal/services"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(services.NewItineraryAgent),
	fx.Provide(services.NewHotelAgent),
	fx.Provide(services.NewActivityAgent),
	fx.Provide(services.NewBudgetAgent),
	fx.Provide(services.NewDynamicBudgetAgent),
	fx.Provide(services.NewBudgetConstraintAgent),
	fx.Provide(services.NewPlacesAgent),
	fx.Provide(services.NewVisaAgent),
	fx.Provide(services.NewPackingAgent),
	fx.Provide(services.NewFlightSearchAgent),
	fx.Provide(services.NewTravelOrchestrator),
	fx.Provide(provideFlightAgent, provideAmadeus, provideWeatherAgent, provideReviewAgent))

func provideFlightAgent(invoker utils.ModelInvokerInterface, cfg *config.Config) services.FlightAgentInterface {
	return services.NewFlightAgent(invoker, cfg.Defaults.Origin)
}

func provideAmadeus(cfg *config.Config, cache mem.TTLStore) services.AmadeusServiceInterface {
	return services.NewAmadeusService(services.AmadeusConfig{
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		BaseURL:      cfg.Amadeus.BaseURL,
		Currency:     cfg.Defaults.Currency,
		Timeout:      cfg.HTTP.Timeout,
	}, cache)
}

func provideWeatherAgent(cfg *config.Config) services.WeatherAgentInterface {
	return services.NewWeatherAgent(services.WeatherConfig{
		GeocodeURL:  cfg.Weather.GeocodeURL,
		ForecastURL: cfg.Weather.ForecastURL,
		Timeout:     cfg.HTTP.Timeout,
	})
}

func provideReviewAgent(cfg *config.Config, invoker utils.ModelInvokerInterface) services.ReviewInsightsAgentInterface {
	return services.NewReviewInsightsAgent(services.SearchConfig{
		SerpAPIKey: cfg.Search.SerpAPIKey,
		SerpAPIURL: cfg.Search.SerpAPIURL,
		Timeout:    cfg.HTTP.Timeout,
	}, invoker)
}
