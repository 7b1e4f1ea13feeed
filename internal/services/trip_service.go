package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const (
	flightEndpointOrigin = "Chennai"
	defaultPackingType   = "Leisure"
	defaultPlanTripType  = "leisure"
	defaultGender        = "unspecified"
)

type TripServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.QuickTripRequest) (response_models.QuickTripResult, error)
	PlanWithBudget(ctx context.Context, req request_models.BudgetTripRequest) (response_models.BudgetTripResult, error)
	ComprehensivePlan(ctx context.Context, req request_models.ComprehensiveTripRequest) (response_models.ComprehensivePlanResult, error)
	TravelOnMyBudget(ctx context.Context, req request_models.DailyBudgetRequest) (response_models.DailyBudgetResult, error)
	FlightOptions(ctx context.Context, req request_models.FlightOptionsRequest) (response_models.FlightOptionsResult, error)
	RealFlights(ctx context.Context, req request_models.RealFlightsRequest) (response_models.RealFlightsResult, error)
	Visa(ctx context.Context, req request_models.VisaRequest) (response_models.VisaResult, error)
	PackingList(ctx context.Context, req request_models.PackingListRequest) (response_models.PackingListResult, error)
	Weather(ctx context.Context, req request_models.WeatherQuery) (response_models.WeatherResult, error)
	CityReviews(ctx context.Context, req request_models.CityReviewQuery) (response_models.CityReviewResult, error)
	SearchHistory(ctx context.Context, req request_models.HistoryQuery) (*db_models.History, error)
}

// TripAgents groups the pipelines a TripService runs.
type TripAgents struct {
	Itinerary     ItineraryAgentInterface
	Budget        BudgetAgentInterface
	DynamicBudget DynamicBudgetAgentInterface
	Orchestrator  TravelOrchestratorInterface
	Flight        FlightAgentInterface
	FlightSearch  FlightSearchAgentInterface
	Visa          VisaAgentInterface
	Packing       PackingAgentInterface
	Weather       WeatherAgentInterface
	Reviews       ReviewInsightsAgentInterface
}

type TripService struct {
	repo   repositories.IHistoryRepository
	agents TripAgents
}

func NewTripService(repo repositories.IHistoryRepository, agents TripAgents) TripServiceInterface {
	return &TripService{repo: repo, agents: agents}
}

func toJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

// save appends a history record. A failed write is logged and reported as
// not saved; it never fails the request.
func (s *TripService) save(ctx context.Context, record repositories.HistoryRecord) (bool, *string) {
	id, err := s.repo.Create(ctx, record)
	if err != nil {
		log.Error().Err(err).Str("table", record.TableName()).Msg("history save failed (non-critical)")
		return false, nil
	}
	if id == uuid.Nil {
		return true, nil
	}
	idStr := id.String()
	return true, &idStr
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return utils.InvalidInput("userId is required")
	}
	return nil
}

func validateTrip(destination string, days int) error {
	if strings.TrimSpace(destination) == "" {
		return utils.InvalidInput("missing required field: destination")
	}
	if days < 1 {
		return utils.InvalidInput("invalid days: must be a number greater than 0")
	}
	return nil
}

func (s *TripService) PlanTrip(ctx context.Context, req request_models.QuickTripRequest) (response_models.QuickTripResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.QuickTripResult{}, err
	}
	if err := validateTrip(req.Destination, req.Days); err != nil {
		return response_models.QuickTripResult{}, err
	}

	itinerary, err := s.agents.Itinerary.Generate(ctx, req.Destination, req.Days)
	if err != nil {
		return response_models.QuickTripResult{}, err
	}

	saved, id := s.save(ctx, &db_models.QuickTrip{
		BaseModel:   db_models.BaseModel{UserID: req.UserID},
		Destination: req.Destination,
		Days:        req.Days,
		Itinerary:   toJSON(itinerary),
	})
	return response_models.QuickTripResult{Itinerary: itinerary, Saved: saved, TripID: id}, nil
}

func (s *TripService) PlanWithBudget(ctx context.Context, req request_models.BudgetTripRequest) (response_models.BudgetTripResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.BudgetTripResult{}, err
	}
	if err := validateTrip(req.Destination, req.Days); err != nil {
		return response_models.BudgetTripResult{}, err
	}
	if req.Budget == nil {
		return response_models.BudgetTripResult{}, utils.InvalidInput("missing required field: budget")
	}
	if *req.Budget < 0 {
		return response_models.BudgetTripResult{}, utils.InvalidInput("invalid budget: must be a number greater than or equal to 0")
	}

	base, err := s.agents.Itinerary.Generate(ctx, req.Destination, req.Days)
	if err != nil {
		return response_models.BudgetTripResult{}, err
	}
	optimized, err := s.agents.Budget.Optimize(ctx, &base, *req.Budget)
	if err != nil {
		return response_models.BudgetTripResult{}, err
	}

	finalCost, initialCost := optimized.FinalCost, optimized.InitialCost
	saved, id := s.save(ctx, &db_models.Trip{
		BaseModel:          db_models.BaseModel{UserID: req.UserID},
		Destination:        req.Destination,
		Days:               req.Days,
		Budget:             req.Budget,
		Type:               db_models.TripTypeBudgetOptimiser,
		BaseItinerary:      toJSON(base),
		OptimizedItinerary: toJSON(optimized.OptimizedItinerary),
		FinalCost:          &finalCost,
		InitialCost:        &initialCost,
		Warnings:           toJSON(response_models.OrEmpty(optimized.Warnings)),
	})

	return response_models.BudgetTripResult{
		Saved: saved,
		Trip: response_models.BudgetTrip{
			ID:                     id,
			Destination:            req.Destination,
			Days:                   req.Days,
			Budget:                 *req.Budget,
			Type:                   string(db_models.TripTypeBudgetOptimiser),
			BaseItinerary:          base,
			OptimizedItinerary:     optimized.OptimizedItinerary,
			FinalCost:              finalCost,
			InitialCost:            initialCost,
			Warnings:               response_models.OrEmpty(optimized.Warnings),
			BaseCostBreakdown:      LodgingAndActivities(base),
			OptimizedCostBreakdown: LodgingAndActivities(optimized.OptimizedItinerary),
		},
	}, nil
}

// ComprehensivePlan runs the orchestrator. Only budgeted plans are saved.
func (s *TripService) ComprehensivePlan(ctx context.Context, req request_models.ComprehensiveTripRequest) (response_models.ComprehensivePlanResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.ComprehensivePlanResult{}, err
	}
	if err := validateTrip(req.Destination, req.Days); err != nil {
		return response_models.ComprehensivePlanResult{}, err
	}
	if req.Budget != nil && *req.Budget < 0 {
		return response_models.ComprehensivePlanResult{}, utils.InvalidInput("invalid budget: must be a number greater than or equal to 0")
	}

	planReq := request_models.PlanRequest{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		Nationality: req.Nationality,
		Meta: request_models.PlanMeta{
			TripType:    orDefault(req.TripType, defaultPlanTripType),
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Gender:      orDefault(req.Gender, defaultGender),
			Preferences: req.Preferences,
			Origin:      orDefault(req.Origin, flightEndpointOrigin),
		},
	}
	plan, err := s.agents.Orchestrator.CreateComprehensivePlan(ctx, planReq)
	if err != nil {
		return response_models.ComprehensivePlanResult{}, err
	}

	result := response_models.ComprehensivePlanResult{Plan: plan}
	if !planReq.HasBudget() {
		return result, nil
	}

	optimized := plan.Itinerary.Optimized
	total := plan.BudgetAnalysis.Total
	result.Saved, result.TripID = s.save(ctx, &db_models.Trip{
		BaseModel:     db_models.BaseModel{UserID: req.UserID},
		Destination:   req.Destination,
		Days:          req.Days,
		Budget:        req.Budget,
		Type:          db_models.TripTypeComprehensive,
		BaseItinerary: toJSON(plan.Itinerary.Base),
		OptimizedItinerary: toJSON(response_models.StoredComprehensivePlan{
			Hotels:      response_models.OrEmpty(optimized.Hotels),
			Activities:  response_models.OrEmpty(optimized.Activities),
			TransportKm: optimized.TransportKm,
			Summary:     plan.Summary.Stored(),
			Visa:        plan.Visa,
			Flights:     plan.Flights,
			PackingList: plan.PackingList,
			Totals:      plan.BudgetAnalysis,
		}),
		FinalCost: &total,
		Warnings:  toJSON(plan.Warnings),
	})
	return result, nil
}

func (s *TripService) TravelOnMyBudget(ctx context.Context, req request_models.DailyBudgetRequest) (response_models.DailyBudgetResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.DailyBudgetResult{}, err
	}
	if err := validateTrip(req.Destination, req.Days); err != nil {
		return response_models.DailyBudgetResult{}, err
	}
	if req.DailyBudgetLimit == nil {
		return response_models.DailyBudgetResult{}, utils.InvalidInput("missing required field: dailyBudgetLimit")
	}
	if *req.DailyBudgetLimit <= 0 {
		return response_models.DailyBudgetResult{}, utils.InvalidInput("invalid dailyBudgetLimit: must be a number greater than 0")
	}

	base, err := s.agents.Itinerary.Generate(ctx, req.Destination, req.Days)
	if err != nil {
		return response_models.DailyBudgetResult{}, err
	}
	plan, err := s.agents.DynamicBudget.Simulate(ctx, req.Destination, req.Days, *req.DailyBudgetLimit, base)
	if err != nil {
		return response_models.DailyBudgetResult{}, err
	}

	warnings := []string{}
	if plan.Status == response_models.StatusOverBudget {
		warnings = response_models.OrEmpty(plan.Recommendations)
	}
	budget := *req.DailyBudgetLimit * float64(req.Days)
	total := plan.Totals.Total
	saved, id := s.save(ctx, &db_models.Trip{
		BaseModel:     db_models.BaseModel{UserID: req.UserID},
		Destination:   req.Destination,
		Days:          req.Days,
		Budget:        &budget,
		Type:          db_models.TripTypeDailyBudget,
		BaseItinerary: toJSON(base),
		OptimizedItinerary: toJSON(response_models.Itinerary{
			Hotels:      response_models.OrEmpty(plan.Hotels),
			Activities:  response_models.OrEmpty(plan.Activities),
			TransportKm: response_models.Amount(plan.Transport),
		}),
		FinalCost: &total,
		Warnings:  toJSON(warnings),
	})
	return response_models.DailyBudgetResult{BudgetPlan: plan, Saved: saved, TripID: id}, nil
}

// FlightOptions is a generative quote and is not persisted.
func (s *TripService) FlightOptions(ctx context.Context, req request_models.FlightOptionsRequest) (response_models.FlightOptionsResult, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return response_models.FlightOptionsResult{}, utils.InvalidInput("missing required field: destination")
	}

	info, err := s.agents.Flight.Quote(ctx, req.Destination, orDefault(req.Origin, flightEndpointOrigin))
	if err != nil {
		return response_models.FlightOptionsResult{}, err
	}
	info.Date = nil
	if req.Date != "" {
		date := req.Date
		info.Date = &date
	}
	return response_models.FlightOptionsResult{Flight: info}, nil
}

func (s *TripService) RealFlights(ctx context.Context, req request_models.RealFlightsRequest) (response_models.RealFlightsResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.RealFlightsResult{}, err
	}

	flights, err := s.agents.FlightSearch.Search(ctx, req.Origin, req.Destination, req.Date)
	if err != nil {
		return response_models.RealFlightsResult{}, err
	}

	saved, id := s.save(ctx, &db_models.FlightSearch{
		BaseModel:   db_models.BaseModel{UserID: req.UserID},
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        req.Date,
		Result:      toJSON(flights),
	})
	return response_models.RealFlightsResult{Flights: flights, Saved: saved, SearchID: id}, nil
}

func (s *TripService) Visa(ctx context.Context, req request_models.VisaRequest) (response_models.VisaResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.VisaResult{}, err
	}

	visa, err := s.agents.Visa.Lookup(ctx, req.Nationality, req.DestinationCountry)
	if err != nil {
		return response_models.VisaResult{}, err
	}

	saved, id := s.save(ctx, &db_models.VisaQuery{
		BaseModel:          db_models.BaseModel{UserID: req.UserID},
		Nationality:        req.Nationality,
		DestinationCountry: req.DestinationCountry,
		Visa:               toJSON(visa),
	})
	return response_models.VisaResult{Visa: visa, Saved: saved, QueryID: id}, nil
}

func (s *TripService) PackingList(ctx context.Context, req request_models.PackingListRequest) (response_models.PackingListResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.PackingListResult{}, err
	}
	if strings.TrimSpace(req.Destination) == "" || req.StartDate == "" || req.EndDate == "" {
		return response_models.PackingListResult{}, utils.InvalidInput("missing required fields: destination, startDate and endDate are required")
	}

	packingReq := request_models.PackingRequest{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TripType:    orDefault(req.TripType, defaultPackingType),
		Preferences: req.Preferences,
	}
	list, err := s.agents.Packing.Generate(ctx, packingReq)
	if err != nil {
		return response_models.PackingListResult{}, err
	}

	saved, id := s.save(ctx, &db_models.PackingQuery{
		BaseModel:   db_models.BaseModel{UserID: req.UserID},
		Destination: packingReq.Destination,
		StartDate:   packingReq.StartDate,
		EndDate:     packingReq.EndDate,
		TripType:    packingReq.TripType,
		Preferences: packingReq.Preferences,
		PackingList: toJSON(list),
	})
	return response_models.PackingListResult{PackingList: list, Saved: saved, PackingID: id}, nil
}

func (s *TripService) Weather(ctx context.Context, req request_models.WeatherQuery) (response_models.WeatherResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.WeatherResult{}, err
	}

	report, err := s.agents.Weather.Forecast(ctx, req.City, req.Date)
	if err != nil {
		return response_models.WeatherResult{}, err
	}

	saved, id := s.save(ctx, &db_models.WeatherLog{
		BaseModel: db_models.BaseModel{UserID: req.UserID},
		City:      req.City,
		Date:      req.Date,
		Weather:   toJSON(report),
	})
	return response_models.WeatherResult{Weather: report, Saved: saved, QueryID: id}, nil
}

func (s *TripService) CityReviews(ctx context.Context, req request_models.CityReviewQuery) (response_models.CityReviewResult, error) {
	if err := requireUser(req.UserID); err != nil {
		return response_models.CityReviewResult{}, err
	}

	insights, err := s.agents.Reviews.Run(ctx, req.City)
	if err != nil {
		return response_models.CityReviewResult{}, err
	}

	saved, id := s.save(ctx, &db_models.CityReview{
		BaseModel: db_models.BaseModel{UserID: req.UserID},
		City:      req.City,
		Insights:  toJSON(insights),
	})
	return response_models.CityReviewResult{Insights: insights, Saved: saved, ReviewID: id}, nil
}

func (s *TripService) SearchHistory(ctx context.Context, req request_models.HistoryQuery) (*db_models.History, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	return s.repo.FindHistoryByUserId(ctx, req.UserID)
}
