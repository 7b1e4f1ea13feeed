package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type stubOrchestrator struct {
	plan response_models.ComprehensivePlan
	req  request_models.PlanRequest
}

func (s *stubOrchestrator) CreateComprehensivePlan(_ context.Context, req request_models.PlanRequest) (response_models.ComprehensivePlan, error) {
	s.req = req
	return s.plan, nil
}

type stubDynamicBudgetAgent struct {
	plan response_models.DynamicBudgetPlan
}

func (s *stubDynamicBudgetAgent) Simulate(context.Context, string, int, float64, response_models.Itinerary) (response_models.DynamicBudgetPlan, error) {
	return s.plan, nil
}

func newTripServiceWithRepo(repo *memoryHistoryRepo, agents TripAgents) TripServiceInterface {
	return NewTripService(repo, agents)
}

func stubItinerary() *stubItineraryAgent {
	return &stubItineraryAgent{itinerary: response_models.Itinerary{
		Hotels:      []response_models.HotelOption{{Name: "Sea View", PricePerNight: 3000, Nights: 2}},
		Activities:  []response_models.ActivityEntry{{Name: "Snorkeling", Price: 1500, Day: 1}},
		TransportKm: 40,
	}}
}

func TestTripService_PlanTripSaves(t *testing.T) {
	repo := &memoryHistoryRepo{}
	svc := newTripServiceWithRepo(repo, TripAgents{Itinerary: stubItinerary()})

	result, err := svc.PlanTrip(context.Background(), request_models.QuickTripRequest{Destination: "Goa", Days: 2, UserID: "u1"})
	require.NoError(t, err)

	assert.True(t, result.Saved)
	require.NotNil(t, result.TripID)
	require.Len(t, repo.created, 1)

	row, ok := repo.created[0].(*db_models.QuickTrip)
	require.True(t, ok)
	assert.Equal(t, "u1", row.UserID)
	assert.Equal(t, "quick_trips", row.TableName())

	var stored response_models.Itinerary
	require.NoError(t, json.Unmarshal(row.Itinerary, &stored))
	assert.Equal(t, "Sea View", stored.Hotels[0].Name)
}

func TestTripService_SaveFailureIsNotFatal(t *testing.T) {
	repo := &memoryHistoryRepo{createErr: utils.Classify(utils.ErrDatabaseError, errors.New("connection refused"))}
	svc := newTripServiceWithRepo(repo, TripAgents{Itinerary: stubItinerary()})

	result, err := svc.PlanTrip(context.Background(), request_models.QuickTripRequest{Destination: "Goa", Days: 2, UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, result.Saved)
	assert.Nil(t, result.TripID)
	assert.Len(t, result.Itinerary.Hotels, 1)
}

func TestTripService_Validation(t *testing.T) {
	svc := newTripServiceWithRepo(&memoryHistoryRepo{}, TripAgents{Itinerary: stubItinerary(), Budget: &stubBudgetAgent{}})
	ctx := context.Background()
	negative := -1.0

	_, err := svc.PlanTrip(ctx, request_models.QuickTripRequest{Destination: "Goa", Days: 2})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.PlanTrip(ctx, request_models.QuickTripRequest{Days: 2, UserID: "u1"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.PlanTrip(ctx, request_models.QuickTripRequest{Destination: "Goa", UserID: "u1"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.PlanWithBudget(ctx, request_models.BudgetTripRequest{Destination: "Goa", Days: 2, UserID: "u1"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.PlanWithBudget(ctx, request_models.BudgetTripRequest{Destination: "Goa", Days: 2, Budget: &negative, UserID: "u1"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.TravelOnMyBudget(ctx, request_models.DailyBudgetRequest{Destination: "Goa", Days: 2, UserID: "u1"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.PackingList(ctx, request_models.PackingListRequest{Destination: "Goa", UserID: "u1"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.SearchHistory(ctx, request_models.HistoryQuery{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestTripService_PlanWithBudget(t *testing.T) {
	repo := &memoryHistoryRepo{}
	budgetAgent := &stubBudgetAgent{result: response_models.BudgetOptimization{
		OptimizedItinerary: response_models.Itinerary{
			Hotels:     []response_models.HotelOption{{Name: "Hostel", PricePerNight: 800, Nights: 2}},
			Activities: []response_models.ActivityEntry{{Name: "Beach", Price: 0, Day: 1}},
		},
		FinalCost:   1600,
		InitialCost: 7500,
	}}
	svc := newTripServiceWithRepo(repo, TripAgents{Itinerary: stubItinerary(), Budget: budgetAgent})
	budget := 2000.0

	result, err := svc.PlanWithBudget(context.Background(), request_models.BudgetTripRequest{Destination: "Goa", Days: 2, Budget: &budget, UserID: "u1"})
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.NotNil(t, result.Trip.ID)
	assert.Equal(t, "BUDGET_OPTIMISER", result.Trip.Type)
	assert.Equal(t, response_models.CostBreakdown{Hotels: 6000, Activities: 1500, Total: 7500}, result.Trip.BaseCostBreakdown)
	assert.Equal(t, response_models.CostBreakdown{Hotels: 1600, Activities: 0, Total: 1600}, result.Trip.OptimizedCostBreakdown)
	assert.NotNil(t, result.Trip.Warnings)

	row := repo.created[0].(*db_models.Trip)
	assert.Equal(t, db_models.TripTypeBudgetOptimiser, row.Type)
	assert.JSONEq(t, `[]`, string(row.Warnings))
}

func TestTripService_ComprehensivePlanSavesOnlyWithBudget(t *testing.T) {
	orchestrator := &stubOrchestrator{plan: response_models.ComprehensivePlan{
		Destination:    "Paris",
		Days:           3,
		BudgetAnalysis: response_models.BudgetBreakdown{Total: 42000},
		Warnings:       response_models.StringList{},
		Summary:        response_models.PlanSummary{Highlights: []string{"Louvre"}},
	}}

	repo := &memoryHistoryRepo{}
	svc := newTripServiceWithRepo(repo, TripAgents{Orchestrator: orchestrator})

	result, err := svc.ComprehensivePlan(context.Background(), request_models.ComprehensiveTripRequest{Destination: "Paris", Days: 3, UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, result.Saved)
	assert.Nil(t, result.TripID)
	assert.Empty(t, repo.created)
	assert.Equal(t, "Chennai", orchestrator.req.Meta.Origin)
	assert.Equal(t, "leisure", orchestrator.req.Meta.TripType)
	assert.Equal(t, "unspecified", orchestrator.req.Meta.Gender)

	budget := 50000.0
	result, err = svc.ComprehensivePlan(context.Background(), request_models.ComprehensiveTripRequest{
		Destination: "Paris", Days: 3, Budget: &budget, Origin: "Delhi", UserID: "u1",
	})
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Equal(t, "Delhi", orchestrator.req.Meta.Origin)
	require.Len(t, repo.created, 1)

	row := repo.created[0].(*db_models.Trip)
	assert.Equal(t, db_models.TripTypeComprehensive, row.Type)
	require.NotNil(t, row.FinalCost)
	assert.Equal(t, 42000.0, *row.FinalCost)

	var stored response_models.StoredComprehensivePlan
	require.NoError(t, json.Unmarshal(row.OptimizedItinerary, &stored))
	assert.Equal(t, []string{"Louvre"}, stored.Summary.MustSee)
	assert.Equal(t, 42000.0, stored.Totals.Total)
}

func TestTripService_TravelOnMyBudgetWarnings(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		warnings []string
	}{
		{name: "over budget", status: response_models.StatusOverBudget, warnings: []string{"Cut the boat tour"}},
		{name: "within budget", status: response_models.StatusWithinBudget, warnings: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryHistoryRepo{}
			dynamic := &stubDynamicBudgetAgent{plan: response_models.DynamicBudgetPlan{
				Status:          tt.status,
				Recommendations: []string{"Cut the boat tour"},
				Transport:       20,
				Totals:          response_models.BudgetTotals{Total: 9000},
			}}
			svc := newTripServiceWithRepo(repo, TripAgents{Itinerary: stubItinerary(), DynamicBudget: dynamic})
			limit := 4000.0

			result, err := svc.TravelOnMyBudget(context.Background(), request_models.DailyBudgetRequest{
				Destination: "Goa", Days: 2, DailyBudgetLimit: &limit, UserID: "u1",
			})
			require.NoError(t, err)
			assert.True(t, result.Saved)

			row := repo.created[0].(*db_models.Trip)
			require.NotNil(t, row.Budget)
			assert.Equal(t, 8000.0, *row.Budget)
			assert.Equal(t, db_models.TripTypeDailyBudget, row.Type)

			var warnings []string
			require.NoError(t, json.Unmarshal(row.Warnings, &warnings))
			assert.Equal(t, tt.warnings, warnings)
		})
	}
}

func TestTripService_FlightOptions(t *testing.T) {
	flights := &stubFlightAgent{info: response_models.FlightInfo{AveragePrice: response_models.AmountPtr(4000)}}
	repo := &memoryHistoryRepo{}
	svc := newTripServiceWithRepo(repo, TripAgents{Flight: flights})

	result, err := svc.FlightOptions(context.Background(), request_models.FlightOptionsRequest{Destination: "Goa", Date: "2025-12-01"})
	require.NoError(t, err)
	assert.Equal(t, "Chennai", flights.origin)
	require.NotNil(t, result.Flight.Date)
	assert.Equal(t, "2025-12-01", *result.Flight.Date)
	assert.Empty(t, repo.created)

	result, err = svc.FlightOptions(context.Background(), request_models.FlightOptionsRequest{Destination: "Goa", Origin: "Pune"})
	require.NoError(t, err)
	assert.Equal(t, "Pune", flights.origin)
	assert.Nil(t, result.Flight.Date)

	_, err = svc.FlightOptions(context.Background(), request_models.FlightOptionsRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestTripService_PackingListDefaultsTripType(t *testing.T) {
	packing := &stubPackingAgent{}
	repo := &memoryHistoryRepo{}
	svc := newTripServiceWithRepo(repo, TripAgents{Packing: packing})

	result, err := svc.PackingList(context.Background(), request_models.PackingListRequest{
		Destination: "Manali", StartDate: "2025-01-10", EndDate: "2025-01-15", UserID: "u1",
	})
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Equal(t, "Leisure", packing.req.TripType)

	row := repo.created[0].(*db_models.PackingQuery)
	assert.Equal(t, "Leisure", row.TripType)
}

func TestTripService_VisaSavesQuery(t *testing.T) {
	visa := &stubVisaAgent{info: response_models.VisaInfo{VisaRequired: "No"}}
	repo := &memoryHistoryRepo{}
	svc := newTripServiceWithRepo(repo, TripAgents{Visa: visa})

	result, err := svc.Visa(context.Background(), request_models.VisaRequest{Nationality: "Indian", DestinationCountry: "Thailand", UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.NotNil(t, result.QueryID)
	assert.Equal(t, response_models.Text("No"), result.Visa.VisaRequired)
	assert.Equal(t, "visa_queries", repo.created[0].TableName())
}

func TestTripService_SearchHistory(t *testing.T) {
	history := &db_models.History{QuickTrips: []db_models.QuickTrip{{Destination: "Goa"}}}
	svc := newTripServiceWithRepo(&memoryHistoryRepo{history: history}, TripAgents{})

	got, err := svc.SearchHistory(context.Background(), request_models.HistoryQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Same(t, history, got)
}
