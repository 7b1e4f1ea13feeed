package response_models

// Endpoint results. Saved reports whether the history write succeeded; the
// record id is null when it did not.

type QuickTripResult struct {
	Itinerary Itinerary `json:"itinerary"`
	Saved     bool      `json:"saved"`
	TripID    *string   `json:"tripId"`
}

type BudgetTrip struct {
	ID                     *string       `json:"id"`
	Destination            string        `json:"destination"`
	Days                   int           `json:"days"`
	Budget                 float64       `json:"budget"`
	Type                   string        `json:"type"`
	BaseItinerary          Itinerary     `json:"baseItinerary"`
	OptimizedItinerary     Itinerary     `json:"optimizedItinerary"`
	FinalCost              float64       `json:"finalCost"`
	InitialCost            float64       `json:"initialCost"`
	Warnings               StringList    `json:"warnings"`
	BaseCostBreakdown      CostBreakdown `json:"baseCostBreakdown"`
	OptimizedCostBreakdown CostBreakdown `json:"optimizedCostBreakdown"`
}

type BudgetTripResult struct {
	Trip  BudgetTrip `json:"trip"`
	Saved bool       `json:"saved"`
}

type ComprehensivePlanResult struct {
	Plan   ComprehensivePlan `json:"plan"`
	Saved  bool              `json:"saved"`
	TripID *string           `json:"tripId"`
}

type DailyBudgetResult struct {
	BudgetPlan DynamicBudgetPlan `json:"budgetPlan"`
	Saved      bool              `json:"saved"`
	TripID     *string           `json:"tripId"`
}

type FlightOptionsResult struct {
	Flight FlightInfo `json:"flight"`
}

type RealFlightsResult struct {
	Flights  FlightSearchResult `json:"flights"`
	Saved    bool               `json:"saved"`
	SearchID *string            `json:"searchId"`
}

type VisaResult struct {
	Visa    VisaInfo `json:"visa"`
	Saved   bool     `json:"saved"`
	QueryID *string  `json:"queryId"`
}

type PackingListResult struct {
	PackingList PackingList `json:"packingList"`
	Saved       bool        `json:"saved"`
	PackingID   *string     `json:"packingId"`
}

type WeatherResult struct {
	Weather WeatherReport `json:"weather"`
	Saved   bool          `json:"saved"`
	QueryID *string       `json:"queryId"`
}

type CityReviewResult struct {
	Insights ReviewInsights `json:"insights"`
	Saved    bool           `json:"saved"`
	ReviewID *string        `json:"reviewId"`
}

// StoredComprehensivePlan is the optimized itinerary row of a saved
// comprehensive trip, extended with the rest of the plan.
type StoredComprehensivePlan struct {
	Hotels      []HotelOption   `json:"hotels"`
	Activities  []ActivityEntry `json:"activities"`
	TransportKm Amount          `json:"transportKm"`
	Summary     StoredSummary   `json:"summary"`
	Visa        *VisaInfo       `json:"visa"`
	Flights     FlightInfo      `json:"flights"`
	PackingList PackingList     `json:"packingList"`
	Totals      BudgetBreakdown `json:"totals"`
}
