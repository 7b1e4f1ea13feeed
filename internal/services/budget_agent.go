package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type BudgetAgentInterface interface {
	Optimize(ctx context.Context, itinerary *response_models.Itinerary, budget float64) (response_models.BudgetOptimization, error)
}

type BudgetAgent struct {
	invoker utils.ModelInvokerInterface
}

func NewBudgetAgent(invoker utils.ModelInvokerInterface) BudgetAgentInterface {
	return &BudgetAgent{invoker: invoker}
}

func (a *BudgetAgent) Optimize(ctx context.Context, itinerary *response_models.Itinerary, budget float64) (response_models.BudgetOptimization, error) {
	if itinerary == nil {
		return response_models.BudgetOptimization{}, utils.InvalidInput("invalid itinerary: must be an object")
	}

	initialCost := EstimateItinerary(*itinerary).Total

	prompt := fmt.Sprintf(`
You are a Travel Budget Optimization AI Agent.

Given this itinerary (JSON):
%s

Total Budget: ₹%s
Current Estimated Cost: ₹%s

Optimization goals:
1. Replace costly hotels with cheaper but safe and reasonably rated options.
2. Replace or remove very expensive activities while keeping the trip enjoyable.
3. Try to reduce transport distance where possible.
4. Keep the structure of days similar where you can.
5. Ensure final total cost is less than or equal to the given budget if realistic.
6. If it is impossible to fit within the budget, keep best-effort optimization and add warnings explaining why.

Return JSON ONLY with this exact structure:

{
  "optimizedItinerary": {
    "hotels": [{ "name": "string", "pricePerNight": 0, "nights": 0 }],
    "activities": [{ "name": "string", "price": 0, "day": 1 }],
    "transportKm": 0
  },
  "finalCost": 0,
  "warnings": [
    "Short warning message 1",
    "Short warning message 2"
  ]
}
`, mustMarshalIndent(itinerary), formatAmount(budget), formatAmount(initialCost))

	raw, err := requestObject(ctx, a.invoker, "BudgetAgent", prompt,
		"You are a travel budget optimization assistant. Always return strictly valid JSON, no extra text.")
	if err != nil {
		return response_models.BudgetOptimization{}, errors.Wrap(err, "failed to optimize budget")
	}

	var payload struct {
		OptimizedItinerary json.RawMessage            `json:"optimizedItinerary"`
		FinalCost          json.RawMessage            `json:"finalCost"`
		Warnings           response_models.StringList `json:"warnings"`
	}
	_ = json.Unmarshal(raw, &payload)

	if !response_models.IsObject(payload.OptimizedItinerary) || !response_models.IsNumber(payload.FinalCost) {
		return response_models.BudgetOptimization{}, errors.Wrap(
			utils.InvalidAgentResponse("BudgetAgent", "optimizedItinerary object and numeric finalCost are required"),
			"failed to optimize budget")
	}

	var optimized response_models.Itinerary
	if err := json.Unmarshal(payload.OptimizedItinerary, &optimized); err != nil {
		return response_models.BudgetOptimization{}, errors.Wrap(
			utils.InvalidAgentResponse("BudgetAgent", err.Error()), "failed to optimize budget")
	}
	var finalCost float64
	_ = json.Unmarshal(payload.FinalCost, &finalCost)

	return response_models.BudgetOptimization{
		OptimizedItinerary: optimized,
		FinalCost:          finalCost,
		InitialCost:        initialCost,
		Warnings:           response_models.OrEmpty(payload.Warnings),
	}, nil
}
