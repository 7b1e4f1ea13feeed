package trip_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(provideTripService)

type tripAgentsIn struct {
	fx.In

	Itinerary     services.ItineraryAgentInterface
	Budget        services.BudgetAgentInterface
	DynamicBudget services.DynamicBudgetAgentInterface
	Orchestrator  services.TravelOrchestratorInterface
	Flight        services.FlightAgentInterface
	FlightSearch  services.FlightSearchAgentInterface
	Visa          services.VisaAgentInterface
	Packing       services.PackingAgentInterface
	Weather       services.WeatherAgentInterface
	Reviews       services.ReviewInsightsAgentInterface
}

func provideTripService(repo repositories.IHistoryRepository, in tripAgentsIn) services.TripServiceInterface {
	return services.NewTripService(repo, services.TripAgents{
		Itinerary:     in.Itinerary,
		Budget:        in.Budget,
		DynamicBudget: in.DynamicBudget,
		Orchestrator:  in.Orchestrator,
		Flight:        in.Flight,
		FlightSearch:  in.FlightSearch,
		Visa:          in.Visa,
		Packing:       in.Packing,
		Weather:       in.Weather,
		Reviews:       in.Reviews,
	})
}
