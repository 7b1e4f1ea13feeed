package response_models

type BudgetOptimization struct {
	OptimizedItinerary Itinerary  `json:"optimizedItinerary"`
	FinalCost          float64    `json:"finalCost"`
	InitialCost        float64    `json:"initialCost"`
	Warnings           StringList `json:"warnings"`
}

const (
	StatusWithinBudget = "within-budget"
	StatusOverBudget   = "over-budget"
)

type BudgetTotals struct {
	Hotels       float64 `json:"hotels"`
	Activities   float64 `json:"activities"`
	Transport    float64 `json:"transport"`
	Total        float64 `json:"total"`
	DailyAverage float64 `json:"dailyAverage"`
}

type DynamicBudgetPlan struct {
	Destination      string          `json:"destination"`
	Days             int             `json:"days"`
	DailyBudgetLimit float64         `json:"dailyBudgetLimit"`
	Hotels           []HotelOption   `json:"hotels"`
	Activities       []ActivityEntry `json:"activities"`
	// Transport is the optimized transport distance in km.
	Transport       float64      `json:"transport"`
	Totals          BudgetTotals `json:"totals"`
	Status          string       `json:"status"`
	Recommendations []string     `json:"recommendations"`
}

const (
	SuggestionWarning     = "warning"
	SuggestionOpportunity = "opportunity"
	SuggestionSuccess     = "success"
)

type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type AllocationBreakdown struct {
	Hotel      float64 `json:"hotel"`
	Transport  float64 `json:"transport"`
	Activities float64 `json:"activities"`
	Total      float64 `json:"total"`
	Remaining  float64 `json:"remaining"`
}

type BudgetRecommendations struct {
	Hotels      []HotelOption   `json:"hotels"`
	Activities  []ActivityEntry `json:"activities"`
	TransportKm float64         `json:"transportKm"`
	Suggestions []Suggestion    `json:"suggestions"`
}

type BudgetConstraintResult struct {
	DailyBudget          float64               `json:"dailyBudget"`
	HotelBudgetPerNight  float64               `json:"hotelBudgetPerNight"`
	ActivityBudgetPerDay float64               `json:"activityBudgetPerDay"`
	BudgetBreakdown      AllocationBreakdown   `json:"budgetBreakdown"`
	Recommendations      BudgetRecommendations `json:"recommendations"`
}

// BudgetBreakdown is the unified cost block of a comprehensive plan.
type BudgetBreakdown struct {
	Flights    float64  `json:"flights"`
	Hotels     float64  `json:"hotels"`
	Activities float64  `json:"activities"`
	Transport  float64  `json:"transport"`
	Total      float64  `json:"total"`
	Remaining  *float64 `json:"remaining,omitempty"`
}
