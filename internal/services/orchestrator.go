package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

const maxHighlights = 3

var genericTravelTips = []string{
	"Book accommodations in advance for better rates.",
	"Use public transport to save on travel costs.",
	"Try local street food for authentic experiences.",
	"Visit free attractions to maximize your budget.",
}

type TravelOrchestratorInterface interface {
	CreateComprehensivePlan(ctx context.Context, req request_models.PlanRequest) (response_models.ComprehensivePlan, error)
}

type TravelOrchestrator struct {
	flights    FlightAgentInterface
	places     PlacesAgentInterface
	constraint BudgetConstraintAgentInterface
	itinerary  ItineraryAgentInterface
	budget     BudgetAgentInterface
	visa       VisaAgentInterface
	packing    PackingAgentInterface
}

func NewTravelOrchestrator(
	flights FlightAgentInterface,
	places PlacesAgentInterface,
	constraint BudgetConstraintAgentInterface,
	itinerary ItineraryAgentInterface,
	budget BudgetAgentInterface,
	visa VisaAgentInterface,
	packing PackingAgentInterface,
) TravelOrchestratorInterface {
	return &TravelOrchestrator{
		flights:    flights,
		places:     places,
		constraint: constraint,
		itinerary:  itinerary,
		budget:     budget,
		visa:       visa,
		packing:    packing,
	}
}

// CreateComprehensivePlan runs every agent for one destination. Any step
// failure aborts the plan.
func (o *TravelOrchestrator) CreateComprehensivePlan(ctx context.Context, req request_models.PlanRequest) (response_models.ComprehensivePlan, error) {
	plan, err := o.createPlan(ctx, req)
	if err != nil {
		return response_models.ComprehensivePlan{}, errors.Wrap(err, "failed to create travel plan")
	}
	return plan, nil
}

func (o *TravelOrchestrator) createPlan(ctx context.Context, req request_models.PlanRequest) (response_models.ComprehensivePlan, error) {
	if strings.TrimSpace(req.Destination) == "" || req.Days < 1 {
		return response_models.ComprehensivePlan{}, utils.InvalidInput("destination and a positive number of days are required")
	}
	logger := log.With().Str("destination", req.Destination).Int("days", req.Days).Logger()

	var (
		flights response_models.FlightInfo
		places  response_models.PlacesRecommendation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flights, err = o.flights.Quote(gctx, req.Destination, req.Meta.Origin)
		return err
	})
	g.Go(func() error {
		var err error
		places, err = o.places.Recommend(gctx, req.Destination, req.Days)
		return err
	})
	if err := g.Wait(); err != nil {
		return response_models.ComprehensivePlan{}, err
	}
	logger.Debug().Msg("flights and places ready")

	recommendations := response_models.BudgetRecommendations{
		Hotels:      []response_models.HotelOption{},
		Activities:  []response_models.ActivityEntry{},
		Suggestions: []response_models.Suggestion{},
	}
	if req.HasBudget() {
		allocation, err := o.constraint.Allocate(ctx, req.Destination, req.Days, *req.Budget)
		if err != nil {
			return response_models.ComprehensivePlan{}, err
		}
		recommendations = allocation.Recommendations
	}

	base, err := o.itinerary.Generate(ctx, req.Destination, req.Days)
	if err != nil {
		return response_models.ComprehensivePlan{}, err
	}

	optimized := base
	warnings := response_models.StringList{}
	if req.HasBudget() {
		result, err := o.budget.Optimize(ctx, &base, *req.Budget)
		if err != nil {
			return response_models.ComprehensivePlan{}, err
		}
		optimized = result.OptimizedItinerary
		warnings = response_models.OrEmpty(result.Warnings)
	}

	var visa *response_models.VisaInfo
	if strings.TrimSpace(req.Nationality) != "" {
		info, err := o.visa.Lookup(ctx, req.Nationality, req.Destination)
		if err != nil {
			return response_models.ComprehensivePlan{}, err
		}
		visa = &info
	}

	packing, err := o.packing.Generate(ctx, request_models.PackingRequest{
		Destination: req.Destination,
		StartDate:   req.Meta.StartDate,
		EndDate:     req.Meta.EndDate,
		TripType:    orDefault(req.Meta.TripType, "leisure"),
		Preferences: strings.Join(req.Meta.Preferences, ", "),
	})
	if err != nil {
		return response_models.ComprehensivePlan{}, err
	}

	analysis := budgetAnalysis(flights, optimized, req)
	logger.Info().Float64("total", analysis.Total).Msg("comprehensive plan assembled")

	return response_models.ComprehensivePlan{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		Flights:     flights,
		Itinerary: response_models.PlanItineraries{
			Base:      base,
			Optimized: optimized,
		},
		Places:          places,
		BudgetAnalysis:  analysis,
		Recommendations: recommendations,
		DayWisePlan:     response_models.OrEmpty(places.DayWisePlan),
		CheapFacilities: response_models.OrEmpty(places.CheapFacilities),
		Warnings:        warnings,
		Visa:            visa,
		PackingList:     packing,
		Summary:         summarizePlan(req, places, analysis, visa),
	}, nil
}

func budgetAnalysis(flights response_models.FlightInfo, optimized response_models.Itinerary, req request_models.PlanRequest) response_models.BudgetBreakdown {
	costs := EstimateItinerary(optimized)
	flightCost := finite(flights.Cost())

	analysis := response_models.BudgetBreakdown{
		Flights:    flightCost,
		Hotels:     costs.Hotels,
		Activities: costs.Activities,
		Transport:  costs.Transport,
		Total:      finite(flightCost + costs.Total),
	}
	if req.HasBudget() {
		remaining := *req.Budget - analysis.Total
		analysis.Remaining = &remaining
	}
	return analysis
}

func summarizePlan(req request_models.PlanRequest, places response_models.PlacesRecommendation, analysis response_models.BudgetBreakdown, visa *response_models.VisaInfo) response_models.PlanSummary {
	mustSee := places.MustSee()

	overview := fmt.Sprintf("Your %d-day trip to %s includes %d places to visit, with %d must-see attractions.",
		req.Days, req.Destination, len(places.PlacesToVisit), len(mustSee))

	costSummary := fmt.Sprintf("Total estimated cost is ₹%s.", formatAmount(analysis.Total))
	if req.HasBudget() {
		verdict := "this fits within your budget"
		if analysis.Total > *req.Budget {
			verdict = "this exceeds your budget"
		}
		costSummary = fmt.Sprintf("Total estimated cost is ₹%s vs your budget ₹%s (%s).",
			formatAmount(analysis.Total), formatAmount(*req.Budget), verdict)
	}

	visaSummary := "Visa information not provided."
	if visa != nil {
		visaSummary = fmt.Sprintf("Visa requirement: %s (%s).", visa.VisaRequired, visa.VisaType)
	}

	highlights := lo.Map(lo.Slice(mustSee, 0, maxHighlights), func(p response_models.Place, _ int) string { return p.Name })

	return response_models.PlanSummary{
		Overview:    overview,
		CostSummary: costSummary,
		VisaSummary: visaSummary,
		Highlights:  highlights,
		Tips:        append([]string(nil), genericTravelTips...),
	}
}
