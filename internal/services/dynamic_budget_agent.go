package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type DynamicBudgetAgentInterface interface {
	Simulate(ctx context.Context, destination string, days int, dailyLimit float64, base response_models.Itinerary) (response_models.DynamicBudgetPlan, error)
}

type DynamicBudgetAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewDynamicBudgetAgent(invoker utils.ModelInvokerInterface) DynamicBudgetAgentInterface {
	return &DynamicBudgetAgent{invoker: invoker}
}

func (a *DynamicBudgetAgent) Simulate(ctx context.Context, destination string, days int, dailyLimit float64, base response_models.Itinerary) (response_models.DynamicBudgetPlan, error) {
	if strings.TrimSpace(destination) == "" || days == 0 || dailyLimit == 0 {
		return response_models.DynamicBudgetPlan{}, utils.InvalidInput("destination, days, and dailyBudgetLimit are required")
	}
	if days < 0 {
		return response_models.DynamicBudgetPlan{}, utils.InvalidInput("days must be a number greater than 0")
	}
	if dailyLimit < 0 || math.IsNaN(dailyLimit) || math.IsInf(dailyLimit, 0) {
		return response_models.DynamicBudgetPlan{}, utils.InvalidInput("daily budget limit must be greater than 0")
	}

	totalBudget := dailyLimit * float64(days)

	optimized, err := a.optimizeForBudget(ctx, destination, days, dailyLimit, totalBudget, base)
	if err != nil {
		return response_models.DynamicBudgetPlan{}, err
	}

	totals := optimizedTotals(optimized, days)
	status, recommendations := classifyBudget(totals, dailyLimit, totalBudget, days, destination)

	return response_models.DynamicBudgetPlan{
		Destination:      destination,
		Days:             days,
		DailyBudgetLimit: dailyLimit,
		Hotels:           response_models.OrEmpty(optimized.Hotels),
		Activities:       response_models.OrEmpty(optimized.Activities),
		Transport:        optimized.TransportKm.Float(),
		Totals:           totals,
		Status:           status,
		Recommendations:  recommendations,
	}, nil
}

func (a *DynamicBudgetAgent) optimizeForBudget(ctx context.Context, destination string, days int, dailyLimit, totalBudget float64, base response_models.Itinerary) (response_models.Itinerary, error) {
	prompt := fmt.Sprintf(`
TASK: Optimize the given itinerary to fit within the user's daily budget limit
while still providing an enjoyable trip.

DESTINATION: %s
TRIP DURATION: %d days
DAILY BUDGET LIMIT: ₹%s
TOTAL BUDGET: ₹%s

BASE ITINERARY (JSON):
%s

REQUIREMENTS:
1. Prefer budget or mid-range hotels that are cheaper than expensive ones.
2. Prefer free or low-cost activities where possible.
3. Reduce transportKm where obvious (cluster nearby attractions, avoid long hops).
4. Try to keep total cost ≤ TOTAL BUDGET and daily average ≤ DAILY BUDGET LIMIT.
5. If that is impossible, still return the best cheaper plan.
6. Do NOT write prose; return JSON only.

Return JSON ONLY with this exact structure:

{
  "hotels": [
    {
      "name": "Hotel name",
      "pricePerNight": 0,
      "nights": 0,
      "type": "budget | mid-range | luxury",
      "area": "optional area/neighborhood",
      "category": "optional category/tag",
      "reason": "Why this hotel was chosen"
    }
  ],
  "activities": [
    {
      "name": "Activity name",
      "price": 0,
      "day": 1,
      "category": "sightseeing | cultural | nature | adventure | food | shopping",
      "reason": "Why this activity was chosen"
    }
  ],
  "transportKm": 0,
  "optimizationNotes": "Brief explanation of changes made"
}
`, destination, days, formatAmount(dailyLimit), formatAmount(totalBudget), mustMarshalIndent(base))

	raw, err := requestObject(ctx, a.invoker, "DynamicBudgetAgent", prompt,
		"You are a travel budget optimization expert. "+
			"Always return STRICTLY valid JSON and never include explanations outside JSON.")
	if err != nil {
		return response_models.Itinerary{}, errors.Wrap(err, "failed to optimize itinerary for budget")
	}

	var optimized response_models.Itinerary
	if err := json.Unmarshal(raw, &optimized); err != nil {
		return response_models.Itinerary{}, errors.Wrap(
			utils.InvalidAgentResponse("DynamicBudgetAgent", err.Error()), "failed to optimize itinerary for budget")
	}
	return optimized, nil
}

// optimizedTotals prices an itinerary. An explicit transportCost wins over
// the per-km estimate; the two are never combined.
func optimizedTotals(it response_models.Itinerary, days int) response_models.BudgetTotals {
	hotels := HotelCost(it.Hotels)
	activities := ActivityCost(it.Activities)

	transport := TransportCost(it.TransportKm.Float())
	if it.TransportCost != nil {
		transport = finite(it.TransportCost.Float())
	}

	total := hotels + activities + transport
	return response_models.BudgetTotals{
		Hotels:       hotels,
		Activities:   activities,
		Transport:    transport,
		Total:        total,
		DailyAverage: total / float64(max(days, 1)),
	}
}

func classifyBudget(totals response_models.BudgetTotals, dailyLimit, totalBudget float64, days int, destination string) (string, []string) {
	withinDaily := totals.DailyAverage <= dailyLimit
	withinTotal := totals.Total <= totalBudget

	if withinDaily && withinTotal {
		return response_models.StatusWithinBudget, []string{
			"Your plan fits within your daily budget. Keep a small 5–10% buffer for unexpected expenses.",
		}
	}

	requiredDaily := math.Ceil(totals.Total / float64(max(days, 1)))
	recommendations := []string{
		fmt.Sprintf("Current daily average is ₹%.0f. Increase your daily budget to about ₹%s OR reduce costs.",
			totals.DailyAverage, formatAmount(requiredDaily)),
	}

	if totals.Hotels >= totals.Activities {
		recommendations = append(recommendations,
			"Switch some stays to hostels or budget hotels, or reduce nights in premium properties.")
	} else {
		recommendations = append(recommendations,
			fmt.Sprintf("Replace expensive activities with free sights in %s, such as public viewpoints, beaches, or markets.", destination))
	}

	if totals.Transport > 0 {
		recommendations = append(recommendations,
			"Cluster nearby attractions on the same day and rely more on public transport to cut transport costs.")
	}

	return response_models.StatusOverBudget, recommendations
}
