package response_models

type PlanSummary struct {
	Overview    string   `json:"overview"`
	CostSummary string   `json:"costSummary"`
	VisaSummary string   `json:"visaSummary"`
	Highlights  []string `json:"highlights"`
	Tips        []string `json:"tips"`
}

type PlanItineraries struct {
	Base      Itinerary `json:"base"`
	Optimized Itinerary `json:"optimized"`
}

// ComprehensivePlan is the aggregate returned by the orchestrator.
type ComprehensivePlan struct {
	Destination     string                `json:"destination"`
	Days            int                   `json:"days"`
	Budget          *float64              `json:"budget"`
	Flights         FlightInfo            `json:"flights"`
	Itinerary       PlanItineraries       `json:"itinerary"`
	Places          PlacesRecommendation  `json:"places"`
	BudgetAnalysis  BudgetBreakdown       `json:"budgetAnalysis"`
	Recommendations BudgetRecommendations `json:"recommendations"`
	DayWisePlan     []DayPlan             `json:"dayWisePlan"`
	CheapFacilities []Facility            `json:"cheapFacilities"`
	Warnings        StringList            `json:"warnings"`
	Visa            *VisaInfo             `json:"visa"`
	PackingList     PackingList           `json:"packingList"`
	Summary         PlanSummary           `json:"summary"`
}

// StoredSummary is the summary shape kept with a saved comprehensive trip.
type StoredSummary struct {
	Overview    string   `json:"overview"`
	CostSummary string   `json:"costSummary"`
	MustSee     []string `json:"mustSee"`
	Tips        []string `json:"tips"`
}

func (s PlanSummary) Stored() StoredSummary {
	return StoredSummary{
		Overview:    s.Overview,
		CostSummary: s.CostSummary,
		MustSee:     OrEmpty(s.Highlights),
		Tips:        OrEmpty(s.Tips),
	}
}
